// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/bookstore/internal/platform/request"
	"github.com/taibuivan/bookstore/internal/platform/respond"
	"github.com/taibuivan/bookstore/pkg/query"
)

// Handler implements the public HTTP layer of the catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the catalog endpoints.
// Every route is public.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listBooks)
	router.Get("/explore", handler.exploreBooks)
	router.Get("/{slug}", handler.getBook)
	router.Get("/{slug}/related", handler.relatedBooks)
	router.Get("/{slug}/comments", handler.bookComments)

	return router
}

/*
GET /api/v1/books.

Description: Full catalog listing. List filters accept comma-separated
values or repeated keys.

Request:
  - q: string (search in name and description)
  - category, publisher, author, translator: []string (slugs)

Response:
  - 200: []CatalogBook
*/
func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	filters := Filters{
		SearchText:      request.URL.Query().Get("q"),
		CategorySlugs:   requestutil.List(request, "category"),
		PublisherSlugs:  requestutil.List(request, "publisher"),
		AuthorSlugs:     requestutil.List(request, "author"),
		TranslatorSlugs: requestutil.List(request, "translator"),
	}

	books, err := handler.service.ListBooks(request.Context(), filters)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

/*
GET /api/v1/books/explore.

Request:
  - sort: newest | bestselling | cheapest | expensive | discounted
  - limit: int (optional)

Response:
  - 200: []CatalogBook
  - 400: VALIDATION_ERROR: unknown sort or limit too large
*/
func (handler *Handler) exploreBooks(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()
	explore := ExploreQuery{
		Sort:  SortOrder(values.Get("sort")),
		Limit: query.IntD(values.Get("limit"), 0),
	}

	books, err := handler.service.Explore(request.Context(), explore)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

/*
GET /api/v1/books/{slug}.

Response:
  - 200: CatalogBook
  - 404: NOT_FOUND
*/
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	book, err := handler.service.FindBook(request.Context(), requestutil.Slug(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

// GET /api/v1/books/{slug}/related?limit=.
func (handler *Handler) relatedBooks(writer http.ResponseWriter, request *http.Request) {
	limit := query.IntD(request.URL.Query().Get("limit"), 0)

	books, err := handler.service.RelatedBooks(request.Context(), requestutil.Slug(request, "slug"), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

// GET /api/v1/books/{slug}/comments.
func (handler *Handler) bookComments(writer http.ResponseWriter, request *http.Request) {
	comments, err := handler.service.BookComments(request.Context(), requestutil.Slug(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comments)
}
