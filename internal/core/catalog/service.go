// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/ctxutil"
	"github.com/taibuivan/bookstore/internal/platform/validate"
	"github.com/taibuivan/bookstore/pkg/slice"
)

// maxListingLimit bounds explicit explore and related limits.
const maxListingLimit = 60

// Limits are the default sizes of bounded listings.
type Limits struct {
	Related int
	Explore int
}

// Result is the outcome handed to page renderers.
//
// Failures never panic or return an error across this boundary; they carry
// a shopper-safe message and the zero value of T.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

// # Service Layer

// Service orchestrates catalog reads. Every method funnels raw rows through
// the same [Aggregator].
type Service struct {
	store      Store
	aggregator *Aggregator
	limits     Limits
	logger     *slog.Logger
}

// NewService constructs a new catalog [Service].
func NewService(store Store, limits Limits, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		aggregator: NewAggregator(store, logger),
		limits:     limits,
		logger:     logger,
	}
}

// # Book Lookups

/*
ListBooks returns every book matching filters.

Description: Search text, category and publisher slugs are pushed into the
store query. Author and translator slugs are applied after hydration.
Listings are not paginated.

Parameters:
  - context: context.Context
  - filters: Filters

Returns:
  - []*CatalogBook: Newest first, never nil
  - error: apperr.Internal on storage failure
*/
func (service *Service) ListBooks(context context.Context, filters Filters) ([]*CatalogBook, error) {
	rows, err := service.store.QueryBooks(context, BookQuery{
		SearchText:     strings.TrimSpace(filters.SearchText),
		CategorySlugs:  normalizeSlugs(filters.CategorySlugs),
		PublisherSlugs: normalizeSlugs(filters.PublisherSlugs),
		Sort:           SortNewest,
	})
	if err != nil {
		return nil, err
	}

	return service.aggregator.Hydrate(context, rows, RelationFilter{
		AuthorSlugs:     normalizeSlugs(filters.AuthorSlugs),
		TranslatorSlugs: normalizeSlugs(filters.TranslatorSlugs),
	})
}

/*
FindBook returns one hydrated book.

Description: A book whose category or publisher is missing is hidden from
listings, so it is reported as not found here too.

Returns:
  - *CatalogBook: Hydrated book
  - error: apperr.NotFound("Book") or storage errors
*/
func (service *Service) FindBook(context context.Context, slug string) (*CatalogBook, error) {
	row, err := service.store.FindBookBySlug(context, normalizeSlug(slug))
	if err != nil {
		return nil, err
	}

	books, err := service.aggregator.Hydrate(context, []*RawBookRow{row}, RelationFilter{})
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, apperr.NotFound("Book")
	}
	return books[0], nil
}

// RelatedBooks returns the best sellers sharing the book's category, excluding
// the book itself. A limit <= 0 uses the configured default.
// A hidden book is reported as not found, like [Service.FindBook].
func (service *Service) RelatedBooks(context context.Context, slug string, limit int) ([]*CatalogBook, error) {
	row, err := service.findListedRow(context, slug)
	if err != nil {
		return nil, err
	}

	rows, err := service.store.QueryBooks(context, BookQuery{
		CategorySlugs: []string{row.Category.Slug},
		ExcludeBookID: row.ID,
		Sort:          SortBestselling,
		Limit:         service.boundedLimit(limit, service.limits.Related),
	})
	if err != nil {
		return nil, err
	}

	return service.aggregator.Hydrate(context, rows, RelationFilter{})
}

/*
Explore returns a sorted, bounded listing for the storefront shelves.

Parameters:
  - context: context.Context
  - query: ExploreQuery (empty Sort means newest, Limit <= 0 the configured default)

Returns:
  - []*CatalogBook: At most the resolved limit, fewer when rows are hidden
  - error: Validation failures or storage errors
*/
func (service *Service) Explore(context context.Context, query ExploreQuery) ([]*CatalogBook, error) {
	if query.Sort == "" {
		query.Sort = SortNewest
	}

	validator := &validate.Validator{}
	validator.OneOf(FieldSort, string(query.Sort), SortOrders...)
	validator.Custom(FieldLimit, query.Limit > maxListingLimit, fmt.Sprintf("Must not exceed %d", maxListingLimit))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	rows, err := service.store.QueryBooks(context, BookQuery{
		OnlyDiscounted: query.Sort == SortDiscounted,
		Sort:           query.Sort,
		Limit:          service.boundedLimit(query.Limit, service.limits.Explore),
	})
	if err != nil {
		return nil, err
	}

	return service.aggregator.Hydrate(context, rows, RelationFilter{})
}

// BookComments returns the approved comments of one book, newest first.
func (service *Service) BookComments(context context.Context, slug string) ([]*Comment, error) {
	row, err := service.findListedRow(context, slug)
	if err != nil {
		return nil, err
	}
	return service.store.FindApprovedCommentsByBookSlug(context, row.Slug)
}

// findListedRow loads a raw row by slug, treating hidden books as missing.
func (service *Service) findListedRow(context context.Context, slug string) (*RawBookRow, error) {
	row, err := service.store.FindBookBySlug(context, normalizeSlug(slug))
	if err != nil {
		return nil, err
	}
	if !row.Listed() {
		return nil, apperr.NotFound("Book")
	}
	return row, nil
}

// # Page Renderer API

// GetBooks is [Service.ListBooks] for page renderers.
func (service *Service) GetBooks(context context.Context, filters Filters) Result[[]*CatalogBook] {
	books, err := service.ListBooks(context, filters)
	return toResult(context, service.logger, "get_books", books, err)
}

// GetBook is [Service.FindBook] for page renderers.
func (service *Service) GetBook(context context.Context, slug string) Result[*CatalogBook] {
	book, err := service.FindBook(context, slug)
	return toResult(context, service.logger, "get_book", book, err)
}

// GetRelatedBooks is [Service.RelatedBooks] for page renderers.
func (service *Service) GetRelatedBooks(context context.Context, slug string, limit int) Result[[]*CatalogBook] {
	books, err := service.RelatedBooks(context, slug, limit)
	return toResult(context, service.logger, "get_related_books", books, err)
}

// GetExploreBooks is [Service.Explore] for page renderers.
func (service *Service) GetExploreBooks(context context.Context, query ExploreQuery) Result[[]*CatalogBook] {
	books, err := service.Explore(context, query)
	return toResult(context, service.logger, "get_explore_books", books, err)
}

// GetBookComments is [Service.BookComments] for page renderers.
func (service *Service) GetBookComments(context context.Context, slug string) Result[[]*Comment] {
	comments, err := service.BookComments(context, slug)
	return toResult(context, service.logger, "get_book_comments", comments, err)
}

// toResult converts a (value, error) pair into a [Result]. Only server-side
// failures are logged; not-found and validation outcomes are expected.
func toResult[T any](context context.Context, logger *slog.Logger, operation string, data T, err error) Result[T] {
	if err == nil {
		return Result[T]{Success: true, Data: data}
	}

	if appError := apperr.As(err); appError == nil || appError.HTTPStatus >= http.StatusInternalServerError {
		ctxutil.LoggerOr(context, logger).Error("catalog_operation_failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}

	var zero T
	return Result[T]{Success: false, Data: zero, Error: apperr.PublicMessage(err)}
}

func (service *Service) boundedLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return min(limit, maxListingLimit)
}

func normalizeSlug(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func normalizeSlugs(values []string) []string {
	return slice.Unique(slice.Filter(slice.Map(values, normalizeSlug), func(value string) bool {
		return value != ""
	}))
}
