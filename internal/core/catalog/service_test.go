// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/core/reference"
	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/pkg/pointer"
)

var testLimits = Limits{Related: 8, Explore: 12}

// bookstoreFixture is a single book by jane with two approved reviews.
func bookstoreFixture() *memoryStore {
	return &memoryStore{
		books: []*RawBookRow{
			newRow("b1", "b1-slug", `["a1"]`, "[]"),
		},
		authors: []*reference.Person{newPerson("a1", "jane")},
		comments: []*Comment{
			newComment("c1", "b1", 3, StatusApproved, 2),
			newComment("c2", "b1", 5, StatusApproved, 1),
			newComment("c3", "b1", 1, StatusPending, 0),
		},
	}
}

func TestService_GetBookEndToEnd(t *testing.T) {
	service := NewService(bookstoreFixture(), testLimits, discardLogger())

	result := service.GetBook(context.Background(), "b1-slug")

	require.True(t, result.Success)
	require.NotNil(t, result.Data)
	assert.Empty(t, result.Error)

	book := result.Data
	require.Len(t, book.Authors, 1)
	assert.Equal(t, "jane", book.Authors[0].Slug)
	assert.NotNil(t, book.Translators)
	assert.Empty(t, book.Translators)
	assert.Equal(t, 4.0, book.Rating)
	assert.Equal(t, 2, book.CommentCount)
	assert.Equal(t, "literature", book.Category.Slug)
	assert.Equal(t, "kim-dong", book.Publisher.Slug)
}

func TestService_GetBookNotFound(t *testing.T) {
	store := bookstoreFixture()
	hidden := newRow("b2", "hidden", "[]", "[]")
	hidden.Category = nil
	store.books = append(store.books, hidden)

	service := NewService(store, testLimits, discardLogger())

	for _, slug := range []string{"missing", "hidden"} {
		result := service.GetBook(context.Background(), slug)

		assert.False(t, result.Success, slug)
		assert.Nil(t, result.Data, slug)
		assert.Equal(t, "Book not found", result.Error, slug)
	}

	_, err := service.FindBook(context.Background(), "hidden")
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_GetBooksFiltersByAuthorAfterHydration(t *testing.T) {
	store := bookstoreFixture()
	store.authors = append(store.authors, newPerson("a2", "x"))
	store.books = append(store.books,
		newRow("b2", "by-x", `"[\"a2\"]"`, "[]"),
		newRow("b3", "by-x-and-jane", `["a1","a2"]`, "[]"),
	)
	service := NewService(store, testLimits, discardLogger())

	result := service.GetBooks(context.Background(), Filters{AuthorSlugs: []string{" X "}})

	require.True(t, result.Success)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "b2", result.Data[0].ID)
	assert.Equal(t, "b3", result.Data[1].ID)

	require.Len(t, store.queries, 1)
	assert.Equal(t, SortNewest, store.queries[0].Sort)
	assert.Empty(t, store.queries[0].CategorySlugs)
}

func TestService_GetBooksPushesDownSQLFilters(t *testing.T) {
	store := bookstoreFixture()
	service := NewService(store, testLimits, discardLogger())

	result := service.GetBooks(context.Background(), Filters{
		SearchText:     "  prince ",
		CategorySlugs:  []string{"Literature", "literature", ""},
		PublisherSlugs: []string{"kim-dong"},
	})

	require.True(t, result.Success)
	require.Len(t, store.queries, 1)
	assert.Equal(t, "prince", store.queries[0].SearchText)
	assert.Equal(t, []string{"literature"}, store.queries[0].CategorySlugs)
	assert.Equal(t, []string{"kim-dong"}, store.queries[0].PublisherSlugs)
}

func TestService_GetBooksStorageFailure(t *testing.T) {
	store := bookstoreFixture()
	store.err = apperr.Internal(errors.New("connection refused"))
	service := NewService(store, testLimits, discardLogger())

	result := service.GetBooks(context.Background(), Filters{})

	assert.False(t, result.Success)
	assert.Nil(t, result.Data)
	assert.Equal(t, "An unexpected error occurred", result.Error)
}

func TestService_RelatedBooks(t *testing.T) {
	store := bookstoreFixture()
	other := newRow("b2", "sibling", "[]", "[]")
	elsewhere := newRow("b3", "elsewhere", "[]", "[]")
	elsewhere.Category = &reference.Term{ID: "c2", Name: "Science", Slug: "science"}
	store.books = append(store.books, other, elsewhere)
	service := NewService(store, testLimits, discardLogger())

	books, err := service.RelatedBooks(context.Background(), "b1-slug", 0)

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "b2", books[0].ID)

	query := store.queries[0]
	assert.Equal(t, "b1", query.ExcludeBookID)
	assert.Equal(t, []string{"literature"}, query.CategorySlugs)
	assert.Equal(t, SortBestselling, query.Sort)
	assert.Equal(t, testLimits.Related, query.Limit)
}

func TestService_Explore(t *testing.T) {
	t.Run("discounted shelf", func(t *testing.T) {
		store := bookstoreFixture()
		onSale := newRow("b2", "on-sale", "[]", "[]")
		onSale.Discount = pointer.To(20)
		store.books = append(store.books, onSale)
		service := NewService(store, testLimits, discardLogger())

		books, err := service.Explore(context.Background(), ExploreQuery{Sort: SortDiscounted, Limit: 5})

		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, int64(80000), books[0].FinalPrice)
		assert.True(t, store.queries[0].OnlyDiscounted)
		assert.Equal(t, 5, store.queries[0].Limit)
	})

	t.Run("defaults", func(t *testing.T) {
		store := bookstoreFixture()
		service := NewService(store, testLimits, discardLogger())

		_, err := service.Explore(context.Background(), ExploreQuery{})

		require.NoError(t, err)
		assert.Equal(t, SortNewest, store.queries[0].Sort)
		assert.Equal(t, testLimits.Explore, store.queries[0].Limit)
	})

	t.Run("rejects unknown sort and oversized limit", func(t *testing.T) {
		store := bookstoreFixture()
		service := NewService(store, testLimits, discardLogger())

		_, err := service.Explore(context.Background(), ExploreQuery{Sort: "random", Limit: 500})

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, apperr.CodeValidation, appError.Code)
		assert.Len(t, appError.Details, 2)
		assert.Empty(t, store.queries)
	})
}

func TestService_BookComments(t *testing.T) {
	service := NewService(bookstoreFixture(), testLimits, discardLogger())

	result := service.GetBookComments(context.Background(), "B1-Slug")

	require.True(t, result.Success)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "c2", result.Data[0].ID)
	assert.Equal(t, "c1", result.Data[1].ID)

	missing := service.GetBookComments(context.Background(), "missing")
	assert.False(t, missing.Success)
	assert.Equal(t, "Book not found", missing.Error)
}

// hiddenBookFixture adds b2, whose publisher is missing, next to a visible
// sibling b3 in the same category.
func hiddenBookFixture() *memoryStore {
	store := bookstoreFixture()
	hidden := newRow("b2", "no-publisher", "[]", "[]")
	hidden.Publisher = nil
	store.books = append(store.books, hidden, newRow("b3", "sibling", "[]", "[]"))
	store.comments = append(store.comments, newComment("c4", "b2", 4, StatusApproved, 3))
	return store
}

func TestService_HiddenBookIsNotFoundEverywhere(t *testing.T) {
	store := hiddenBookFixture()
	service := NewService(store, testLimits, discardLogger())

	_, err := service.FindBook(context.Background(), "no-publisher")
	assert.True(t, apperr.IsNotFound(err))

	related, err := service.RelatedBooks(context.Background(), "no-publisher", 0)
	assert.True(t, apperr.IsNotFound(err))
	assert.Nil(t, related)
	assert.Empty(t, store.queries)

	comments, err := service.BookComments(context.Background(), "no-publisher")
	assert.True(t, apperr.IsNotFound(err))
	assert.Nil(t, comments)

	result := service.GetBookComments(context.Background(), "no-publisher")
	assert.False(t, result.Success)
	assert.Equal(t, "Book not found", result.Error)
}

func TestService_RelatedBooksSkipsHiddenSiblings(t *testing.T) {
	service := NewService(hiddenBookFixture(), testLimits, discardLogger())

	books, err := service.RelatedBooks(context.Background(), "b1-slug", 0)

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "b3", books[0].ID)
}

func TestService_GetRelatedBooks(t *testing.T) {
	store := bookstoreFixture()
	store.books = append(store.books, newRow("b2", "sibling", `["a1"]`, "[]"), newRow("b3", "cousin", "[]", "[]"))
	service := NewService(store, testLimits, discardLogger())

	result := service.GetRelatedBooks(context.Background(), "B1-Slug", 1)

	require.True(t, result.Success)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "b2", result.Data[0].ID)
	assert.Equal(t, 1, store.queries[0].Limit)

	missing := service.GetRelatedBooks(context.Background(), "missing", 0)
	assert.False(t, missing.Success)
	assert.Nil(t, missing.Data)
	assert.Equal(t, "Book not found", missing.Error)
}

func TestService_GetExploreBooks(t *testing.T) {
	store := bookstoreFixture()
	service := NewService(store, testLimits, discardLogger())

	result := service.GetExploreBooks(context.Background(), ExploreQuery{Sort: SortBestselling})

	require.True(t, result.Success)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "jane", result.Data[0].Authors[0].Slug)
	assert.Equal(t, SortBestselling, store.queries[0].Sort)

	invalid := service.GetExploreBooks(context.Background(), ExploreQuery{Sort: "random"})
	assert.False(t, invalid.Success)
	assert.Nil(t, invalid.Data)
	assert.NotEmpty(t, invalid.Error)

	store.err = errors.New("connection refused")
	failed := service.GetExploreBooks(context.Background(), ExploreQuery{})
	assert.False(t, failed.Success)
	assert.Equal(t, "An unexpected error occurred", failed.Error)
}
