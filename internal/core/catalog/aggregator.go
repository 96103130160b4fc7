// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/bookstore/internal/core/reference"
	"github.com/taibuivan/bookstore/internal/platform/ctxutil"
	"github.com/taibuivan/bookstore/pkg/pointer"
	"github.com/taibuivan/bookstore/pkg/slice"
)

// RelationFilter keeps books by resolved author or translator slug.
//
// Within one kind any listed slug matches; when both kinds are set a book
// must match both. An empty filter keeps everything.
type RelationFilter struct {
	AuthorSlugs     []string
	TranslatorSlugs []string
}

// IsEmpty reports whether the filter keeps every book.
func (filter RelationFilter) IsEmpty() bool {
	return len(filter.AuthorSlugs) == 0 && len(filter.TranslatorSlugs) == 0
}

// Matches reports whether book passes the filter.
func (filter RelationFilter) Matches(book *CatalogBook) bool {
	if len(filter.AuthorSlugs) > 0 && !hasAnySlug(book.Authors, filter.AuthorSlugs) {
		return false
	}
	if len(filter.TranslatorSlugs) > 0 && !hasAnySlug(book.Translators, filter.TranslatorSlugs) {
		return false
	}
	return true
}

// # Aggregator

// Aggregator turns raw rows into [CatalogBook] values.
// It is the only place hydration happens; every listing surface goes through it.
type Aggregator struct {
	resolver *Resolver
	logger   *slog.Logger
}

// NewAggregator constructs an [Aggregator] resolving relations through store.
func NewAggregator(store RelationStore, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		resolver: NewResolver(store),
		logger:   logger,
	}
}

/*
Hydrate resolves relations and derived fields for rows.

Description: Rows without a category or publisher are dropped before any
lookup. The remaining rows are resolved with one [Resolver.Resolve] call,
hydrated in input order, and finally passed through filter.

Hydrate does not modify rows. Given the same rows and store contents it
returns equal output.

Parameters:
  - context: context.Context
  - rows: []*RawBookRow
  - filter: RelationFilter

Returns:
  - []*CatalogBook: Hydrated books, never nil
  - error: Store failure during resolution; no partial result is returned
*/
func (aggregator *Aggregator) Hydrate(context context.Context, rows []*RawBookRow, filter RelationFilter) ([]*CatalogBook, error) {
	logger := ctxutil.LoggerOr(context, aggregator.logger)

	visible := slice.Filter(rows, (*RawBookRow).Listed)
	if len(visible) == 0 {
		return []*CatalogBook{}, nil
	}

	decoded := make([]DecodedBook, len(visible))
	for i, row := range visible {
		decoded[i] = DecodedBook{
			BookID:        row.ID,
			AuthorIDs:     decodeRelation(logger, row.ID, "authors", row.AuthorIDs),
			TranslatorIDs: decodeRelation(logger, row.ID, "translators", row.TranslatorIDs),
		}
	}

	lookups, err := aggregator.resolver.Resolve(context, decoded)
	if err != nil {
		return nil, err
	}

	books := make([]*CatalogBook, len(visible))
	for i, row := range visible {
		books[i] = hydrate(row, decoded[i], lookups)
	}

	if filter.IsEmpty() {
		return books, nil
	}
	return slice.Filter(books, filter.Matches), nil
}

func decodeRelation(logger *slog.Logger, bookID, relation string, raw any) []string {
	result := DecodeIDs(raw)
	if !result.OK() {
		logger.Warn("catalog_relation_decode_failed",
			slog.String("book_id", bookID),
			slog.String("relation", relation),
			slog.Any("error", result.Err),
		)
	}
	return slice.Unique(result.IDs)
}

func hydrate(row *RawBookRow, decoded DecodedBook, lookups Lookups) *CatalogBook {
	category := *row.Category
	publisher := *row.Publisher

	comments := lookups.Comments[row.ID]
	if comments == nil {
		comments = []*Comment{}
	}

	return &CatalogBook{
		Book:         row.Book,
		Category:     &category,
		Publisher:    &publisher,
		Authors:      pickPeople(decoded.AuthorIDs, lookups.Authors),
		Translators:  pickPeople(decoded.TranslatorIDs, lookups.Translators),
		Comments:     comments,
		Rating:       Rating(comments),
		CommentCount: len(comments),
		FinalPrice:   FinalPrice(row.Price, row.Discount),
	}
}

// pickPeople maps ids through table in id order, dropping unknown ids.
func pickPeople(ids []string, table map[string]*reference.Person) []*reference.Person {
	people := make([]*reference.Person, 0, len(ids))
	for _, id := range ids {
		if person, ok := table[id]; ok {
			people = append(people, person)
		}
	}
	return people
}

// # Derived Fields

// Rating is the mean rating of comments, or [DefaultRating] when there are none.
func Rating(comments []*Comment) float64 {
	if len(comments) == 0 {
		return DefaultRating
	}

	total := 0
	for _, comment := range comments {
		total += comment.Rating
	}
	return float64(total) / float64(len(comments))
}

// FinalPrice applies a percentage discount to a non-negative price, rounding
// half up to the nearest currency unit.
// A nil, zero or negative discount leaves price unchanged; discounts above
// 100 are capped.
func FinalPrice(price int64, discount *int) int64 {
	percent := pointer.Val(discount)
	if percent <= 0 {
		return price
	}
	if percent > 100 {
		percent = 100
	}
	return (price*int64(100-percent) + 50) / 100
}

func hasAnySlug(people []*reference.Person, slugs []string) bool {
	for _, person := range people {
		for _, wanted := range slugs {
			if strings.EqualFold(person.Slug, wanted) {
				return true
			}
		}
	}
	return false
}
