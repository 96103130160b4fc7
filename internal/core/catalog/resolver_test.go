// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/core/reference"
	"github.com/taibuivan/bookstore/internal/platform/apperr"
)

func TestResolver_ResolveAuthorsBatchesUnion(t *testing.T) {
	ctx := context.Background()
	store := new(mockRelationStore)
	resolver := NewResolver(store)

	store.On("FindPeopleByIDs", ctx, reference.KindAuthor, []string{"a1", "a2", "a3"}).
		Return([]*reference.Person{newPerson("a1", "jane"), newPerson("a3", "tom")}, nil).Once()

	books := []DecodedBook{
		{BookID: "b1", AuthorIDs: []string{"a1", "a2"}},
		{BookID: "b2", AuthorIDs: []string{"a2", "a3", ""}},
		{BookID: "b3", AuthorIDs: []string{}},
	}

	table, err := resolver.ResolveAuthors(ctx, books)

	require.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, "jane", table["a1"].Slug)
	assert.NotContains(t, table, "a2")
	store.AssertNumberOfCalls(t, "FindPeopleByIDs", 1)
}

func TestResolver_EmptyUnionSkipsStore(t *testing.T) {
	ctx := context.Background()
	store := new(mockRelationStore)
	resolver := NewResolver(store)

	books := []DecodedBook{{BookID: "b1", AuthorIDs: []string{}, TranslatorIDs: nil}}

	authors, err := resolver.ResolveAuthors(ctx, books)
	require.NoError(t, err)
	assert.NotNil(t, authors)
	assert.Empty(t, authors)

	translators, err := resolver.ResolveTranslators(ctx, books)
	require.NoError(t, err)
	assert.Empty(t, translators)

	comments, err := resolver.ResolveApprovedComments(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, comments)

	store.AssertNotCalled(t, "FindPeopleByIDs", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "FindApprovedCommentsByBookIDs", mock.Anything, mock.Anything)
}

func TestResolver_ResolveApprovedCommentsGroupsByBook(t *testing.T) {
	ctx := context.Background()
	store := new(mockRelationStore)
	resolver := NewResolver(store)

	newest := newComment("c1", "b1", 5, StatusApproved, 0)
	older := newComment("c2", "b1", 3, StatusApproved, 1)
	other := newComment("c3", "b2", 4, StatusApproved, 0)
	pending := newComment("c4", "b2", 1, StatusPending, 0)

	store.On("FindApprovedCommentsByBookIDs", ctx, []string{"b1", "b2"}).
		Return([]*Comment{newest, other, pending, older}, nil).Once()

	table, err := resolver.ResolveApprovedComments(ctx, []string{"b1", "b2", "b1"})

	require.NoError(t, err)
	assert.Equal(t, []*Comment{newest, older}, table["b1"])
	assert.Equal(t, []*Comment{other}, table["b2"])
	store.AssertExpectations(t)
}

func TestResolver_ResolveRunsOneFetchPerKind(t *testing.T) {
	store := new(mockRelationStore)
	resolver := NewResolver(store)

	store.On("FindPeopleByIDs", mock.Anything, reference.KindAuthor, []string{"a1", "a2"}).
		Return([]*reference.Person{newPerson("a1", "jane"), newPerson("a2", "tom")}, nil).Once()
	store.On("FindPeopleByIDs", mock.Anything, reference.KindTranslator, []string{"t1"}).
		Return([]*reference.Person{newPerson("t1", "anna")}, nil).Once()
	store.On("FindApprovedCommentsByBookIDs", mock.Anything, []string{"b1", "b2", "b3"}).
		Return([]*Comment{newComment("c1", "b2", 4, StatusApproved, 0)}, nil).Once()

	books := []DecodedBook{
		{BookID: "b1", AuthorIDs: []string{"a1"}, TranslatorIDs: []string{"t1"}},
		{BookID: "b2", AuthorIDs: []string{"a1", "a2"}, TranslatorIDs: []string{}},
		{BookID: "b3", AuthorIDs: []string{"a2"}, TranslatorIDs: []string{"t1"}},
	}

	lookups, err := resolver.Resolve(context.Background(), books)

	require.NoError(t, err)
	assert.Len(t, lookups.Authors, 2)
	assert.Len(t, lookups.Translators, 1)
	assert.Len(t, lookups.Comments["b2"], 1)
	store.AssertNumberOfCalls(t, "FindPeopleByIDs", 2)
	store.AssertNumberOfCalls(t, "FindApprovedCommentsByBookIDs", 1)
}

func TestResolver_ResolvePropagatesStoreFailure(t *testing.T) {
	store := new(mockRelationStore)
	resolver := NewResolver(store)
	failure := apperr.Internal(errors.New("connection reset"))

	store.On("FindPeopleByIDs", mock.Anything, reference.KindAuthor, mock.Anything).
		Return([]*reference.Person{newPerson("a1", "jane")}, nil).Maybe()
	store.On("FindApprovedCommentsByBookIDs", mock.Anything, mock.Anything).
		Return(nil, failure).Once()

	books := []DecodedBook{{BookID: "b1", AuthorIDs: []string{"a1"}}}

	lookups, err := resolver.Resolve(context.Background(), books)

	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
	assert.Nil(t, lookups.Authors)
	assert.Nil(t, lookups.Comments)
}
