// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/bookstore/internal/core/reference"
	"github.com/taibuivan/bookstore/internal/platform/apperr"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// # Builders

var (
	literature = &reference.Term{ID: "c1", Name: "Literature", Slug: "literature"}
	kimDong    = &reference.Term{ID: "p1", Name: "Kim Dong", Slug: "kim-dong"}
)

func newRow(id, slug string, authorIDs, translatorIDs any) *RawBookRow {
	return &RawBookRow{
		Book: Book{
			ID:          id,
			Name:        "Book " + id,
			Slug:        slug,
			Price:       100000,
			CategoryID:  literature.ID,
			PublisherID: kimDong.ID,
			CreatedAt:   baseTime,
			UpdatedAt:   baseTime,
		},
		Category:      literature,
		Publisher:     kimDong,
		AuthorIDs:     authorIDs,
		TranslatorIDs: translatorIDs,
	}
}

func newPerson(id, slug string) *reference.Person {
	return &reference.Person{ID: id, FullName: slug, Slug: slug}
}

func newComment(id, bookID string, rating int, status CommentStatus, age time.Duration) *Comment {
	return &Comment{
		ID:        id,
		BookID:    bookID,
		FullName:  "Reader " + id,
		Text:      "text",
		Rating:    rating,
		Status:    status,
		CreatedAt: baseTime.Add(-age),
	}
}

// # In-memory Store

// memoryStore is a [Store] over fixed slices. It records the queries it
// receives and counts bulk lookups.
type memoryStore struct {
	mu sync.Mutex

	books       []*RawBookRow
	authors     []*reference.Person
	translators []*reference.Person
	comments    []*Comment
	err         error

	queries      []BookQuery
	peopleCalls  map[reference.PersonKind]int
	commentCalls int
}

func (store *memoryStore) QueryBooks(_ context.Context, query BookQuery) ([]*RawBookRow, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.queries = append(store.queries, query)
	if store.err != nil {
		return nil, store.err
	}

	rows := make([]*RawBookRow, 0)
	for _, row := range store.books {
		if len(query.CategorySlugs) > 0 && (row.Category == nil || !slices.Contains(query.CategorySlugs, row.Category.Slug)) {
			continue
		}
		if len(query.PublisherSlugs) > 0 && (row.Publisher == nil || !slices.Contains(query.PublisherSlugs, row.Publisher.Slug)) {
			continue
		}
		if query.ExcludeBookID != "" && row.ID == query.ExcludeBookID {
			continue
		}
		if query.OnlyDiscounted && (row.Discount == nil || *row.Discount <= 0) {
			continue
		}
		rows = append(rows, row)
	}

	if query.Limit > 0 && len(rows) > query.Limit {
		rows = rows[:query.Limit]
	}
	return rows, nil
}

func (store *memoryStore) FindBookBySlug(_ context.Context, slug string) (*RawBookRow, error) {
	if store.err != nil {
		return nil, store.err
	}
	for _, row := range store.books {
		if row.Slug == slug {
			return row, nil
		}
	}
	return nil, apperr.NotFound("Book")
}

func (store *memoryStore) FindPeopleByIDs(_ context.Context, kind reference.PersonKind, ids []string) ([]*reference.Person, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.peopleCalls == nil {
		store.peopleCalls = make(map[reference.PersonKind]int)
	}
	store.peopleCalls[kind]++
	if store.err != nil {
		return nil, store.err
	}

	source := store.authors
	if kind == reference.KindTranslator {
		source = store.translators
	}

	found := make([]*reference.Person, 0)
	for _, person := range source {
		if slices.Contains(ids, person.ID) {
			found = append(found, person)
		}
	}
	return found, nil
}

func (store *memoryStore) FindApprovedCommentsByBookIDs(_ context.Context, bookIDs []string) ([]*Comment, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.commentCalls++
	if store.err != nil {
		return nil, store.err
	}
	return store.approved(func(comment *Comment) bool { return slices.Contains(bookIDs, comment.BookID) }), nil
}

func (store *memoryStore) FindApprovedCommentsByBookSlug(_ context.Context, slug string) ([]*Comment, error) {
	for _, row := range store.books {
		if row.Slug == slug {
			return store.approved(func(comment *Comment) bool { return comment.BookID == row.ID }), nil
		}
	}
	return []*Comment{}, nil
}

func (store *memoryStore) approved(match func(*Comment) bool) []*Comment {
	result := make([]*Comment, 0)
	for _, comment := range store.comments {
		if comment.Status == StatusApproved && match(comment) {
			result = append(result, comment)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// # Mock Relation Store

type mockRelationStore struct {
	mock.Mock
}

func (m *mockRelationStore) FindPeopleByIDs(ctx context.Context, kind reference.PersonKind, ids []string) ([]*reference.Person, error) {
	args := m.Called(ctx, kind, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reference.Person), args.Error(1)
}

func (m *mockRelationStore) FindApprovedCommentsByBookIDs(ctx context.Context, bookIDs []string) ([]*Comment, error) {
	args := m.Called(ctx, bookIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}
