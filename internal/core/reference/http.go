// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
HTTP interface for reference data.

# Access Control

  - Public: listing and lookup by slug.
  - Editor: creating authors, translators, categories and publishers.
  - Admin: deletes and publisher directory rebuilds.
*/
package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookstore/internal/platform/middleware"
	requestutil "github.com/taibuivan/bookstore/internal/platform/request"
	"github.com/taibuivan/bookstore/internal/platform/respond"
	"github.com/taibuivan/bookstore/internal/platform/sec"
	"github.com/taibuivan/bookstore/pkg/pagination"
)

// Handler implements the HTTP layer for reference data.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the reference endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # People
	router.Route("/authors", handler.personRoutes(KindAuthor))
	router.Route("/translators", handler.personRoutes(KindTranslator))

	// # Terms
	router.Route("/categories", handler.termRoutes(KindCategory))
	router.Route("/publishers", func(publisherRoute chi.Router) {
		publisherRoute.Get("/directory", handler.listPublisherDirectory)
		publisherRoute.With(middleware.RequireRole(sec.RoleAdmin)).Post("/directory/sync", handler.syncPublisherDirectory)

		handler.termRoutes(KindPublisher)(publisherRoute)
	})

	return router
}

func (handler *Handler) personRoutes(kind PersonKind) func(chi.Router) {
	return func(personRoute chi.Router) {
		// Public
		personRoute.Get("/", handler.listPeople(kind))
		personRoute.Get("/{slug}", handler.getPerson(kind))

		// Editor or above
		personRoute.Group(func(adminRoute chi.Router) {
			adminRoute.Use(middleware.RequireRole(sec.RoleEditor))

			adminRoute.Post("/", handler.createPerson(kind))

			// Admin strict only
			adminRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{slug}", handler.deletePerson(kind))
		})
	}
}

func (handler *Handler) termRoutes(kind TermKind) func(chi.Router) {
	return func(termRoute chi.Router) {
		// Public
		termRoute.Get("/", handler.listTerms(kind))
		termRoute.Get("/{slug}", handler.getTerm(kind))

		// Editor or above
		termRoute.Group(func(adminRoute chi.Router) {
			adminRoute.Use(middleware.RequireRole(sec.RoleEditor))

			adminRoute.Post("/", handler.createTerm(kind))

			// Admin strict only
			adminRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{slug}", handler.deleteTerm(kind))
		})
	}
}

/*
GET /api/v1/authors and GET /api/v1/translators.

Request:
  - q: string (name search)
  - page, limit: int

Response:
  - 200: []Person: Paginated list
*/
func (handler *Handler) listPeople(kind PersonKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		paginationParams := pagination.FromRequest(request)
		filter := PersonFilter{Query: request.URL.Query().Get("q")}

		people, total, err := handler.service.ListPeople(request.Context(), kind, filter, paginationParams.Limit, paginationParams.Offset())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Paginated(writer, people, pagination.NewMeta(paginationParams, total))
	}
}

/*
GET /api/v1/authors/{slug} and GET /api/v1/translators/{slug}.

Response:
  - 200: Person
  - 404: NOT_FOUND
*/
func (handler *Handler) getPerson(kind PersonKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		person, err := handler.service.GetPerson(request.Context(), kind, requestutil.Slug(request, "slug"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, person)
	}
}

/*
POST /api/v1/authors and POST /api/v1/translators.

Request (Body):
  - full_name: string (required)
  - slug: string (optional, derived from full_name)

Response:
  - 201: Person
  - 400: VALIDATION_ERROR
  - 409: CONFLICT: slug taken
*/
func (handler *Handler) createPerson(kind PersonKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input struct {
			FullName string `json:"full_name"`
			Slug     string `json:"slug"`
		}
		if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		person := &Person{FullName: input.FullName, Slug: input.Slug}
		if err := handler.service.CreatePerson(request.Context(), kind, person); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, person)
	}
}

// DELETE /api/v1/authors/{slug} and DELETE /api/v1/translators/{slug}.
func (handler *Handler) deletePerson(kind PersonKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if err := handler.service.DeletePerson(request.Context(), kind, requestutil.Slug(request, "slug")); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.NoContent(writer)
	}
}

// GET /api/v1/categories and GET /api/v1/publishers.
func (handler *Handler) listTerms(kind TermKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		terms, err := handler.service.ListTerms(request.Context(), kind)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, terms)
	}
}

// GET /api/v1/categories/{slug} and GET /api/v1/publishers/{slug}.
func (handler *Handler) getTerm(kind TermKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		term, err := handler.service.GetTerm(request.Context(), kind, requestutil.Slug(request, "slug"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, term)
	}
}

/*
POST /api/v1/categories and POST /api/v1/publishers.

Request (Body):
  - name: string (required)
  - slug: string (optional, derived from name)
*/
func (handler *Handler) createTerm(kind TermKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input struct {
			Name string `json:"name"`
			Slug string `json:"slug"`
		}
		if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		term := &Term{Name: input.Name, Slug: input.Slug}
		if err := handler.service.CreateTerm(request.Context(), kind, term); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, term)
	}
}

// DELETE /api/v1/categories/{slug} and DELETE /api/v1/publishers/{slug}.
func (handler *Handler) deleteTerm(kind TermKind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if err := handler.service.DeleteTerm(request.Context(), kind, requestutil.Slug(request, "slug")); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.NoContent(writer)
	}
}

/*
GET /api/v1/publishers/directory.

Description: Alternate publisher listing served from Redis. It may lag
behind /publishers until the next sync.
*/
func (handler *Handler) listPublisherDirectory(writer http.ResponseWriter, request *http.Request) {
	publishers, err := handler.service.ListPublisherDirectory(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publishers)
}

// POST /api/v1/publishers/directory/sync.
func (handler *Handler) syncPublisherDirectory(writer http.ResponseWriter, request *http.Request) {
	count, err := handler.service.SyncPublisherDirectory(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"synced": count})
}
