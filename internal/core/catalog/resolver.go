// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/bookstore/internal/core/reference"
	"github.com/taibuivan/bookstore/pkg/slice"
)

// RelationStore performs the bulk lookups behind relation resolution.
type RelationStore interface {

	// FindPeopleByIDs returns the authors or translators whose id is in ids.
	// Unknown ids are simply absent from the result.
	FindPeopleByIDs(context context.Context, kind reference.PersonKind, ids []string) ([]*reference.Person, error)

	// FindApprovedCommentsByBookIDs returns approved comments of the given
	// books, newest first.
	FindApprovedCommentsByBookIDs(context context.Context, bookIDs []string) ([]*Comment, error)
}

// DecodedBook is a book reduced to the ids the resolver needs.
type DecodedBook struct {
	BookID        string
	AuthorIDs     []string
	TranslatorIDs []string
}

// Lookups are the id-keyed tables built by [Resolver.Resolve].
// They are read-only once returned.
type Lookups struct {
	Authors     map[string]*reference.Person
	Translators map[string]*reference.Person
	Comments    map[string][]*Comment
}

// Resolver batch-resolves relations for a set of books.
//
// Each Resolve* method issues at most one store call regardless of how many
// books it is given, and none at all when there is nothing to look up.
type Resolver struct {
	store RelationStore
}

// NewResolver constructs a [Resolver] over store.
func NewResolver(store RelationStore) *Resolver {
	return &Resolver{store: store}
}

// ResolveAuthors builds the id→author table for every author id in books.
func (resolver *Resolver) ResolveAuthors(context context.Context, books []DecodedBook) (map[string]*reference.Person, error) {
	ids := unionIDs(books, func(book DecodedBook) []string { return book.AuthorIDs })
	return resolver.resolvePeople(context, reference.KindAuthor, ids)
}

// ResolveTranslators builds the id→translator table for every translator id in books.
func (resolver *Resolver) ResolveTranslators(context context.Context, books []DecodedBook) (map[string]*reference.Person, error) {
	ids := unionIDs(books, func(book DecodedBook) []string { return book.TranslatorIDs })
	return resolver.resolvePeople(context, reference.KindTranslator, ids)
}

/*
ResolveApprovedComments groups the approved comments of bookIDs by book.

Description: Within one book, comments keep the order returned by the store
(newest first). Books without comments are absent from the table.

Parameters:
  - context: context.Context
  - bookIDs: []string (duplicates allowed)

Returns:
  - map[string][]*Comment: bookID → comments
  - error: Store failure, returned unchanged
*/
func (resolver *Resolver) ResolveApprovedComments(context context.Context, bookIDs []string) (map[string][]*Comment, error) {
	ids := slice.Unique(slice.Filter(bookIDs, nonEmpty))
	table := make(map[string][]*Comment)
	if len(ids) == 0 {
		return table, nil
	}

	comments, err := resolver.store.FindApprovedCommentsByBookIDs(context, ids)
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		// only approved comments are ever exposed
		if comment == nil || comment.Status != StatusApproved {
			continue
		}
		table[comment.BookID] = append(table[comment.BookID], comment)
	}
	return table, nil
}

/*
Resolve runs the author, translator and comment lookups concurrently.

Description: The three fetches share a derived context; the first failure
cancels the others and is returned. On success every table is fully built
before Resolve returns.
*/
func (resolver *Resolver) Resolve(context context.Context, books []DecodedBook) (Lookups, error) {
	var lookups Lookups
	group, groupCtx := errgroup.WithContext(context)

	group.Go(func() error {
		authors, err := resolver.ResolveAuthors(groupCtx, books)
		lookups.Authors = authors
		return err
	})

	group.Go(func() error {
		translators, err := resolver.ResolveTranslators(groupCtx, books)
		lookups.Translators = translators
		return err
	})

	group.Go(func() error {
		bookIDs := slice.Map(books, func(book DecodedBook) string { return book.BookID })
		comments, err := resolver.ResolveApprovedComments(groupCtx, bookIDs)
		lookups.Comments = comments
		return err
	})

	if err := group.Wait(); err != nil {
		return Lookups{}, err
	}
	return lookups, nil
}

func (resolver *Resolver) resolvePeople(context context.Context, kind reference.PersonKind, ids []string) (map[string]*reference.Person, error) {
	table := make(map[string]*reference.Person, len(ids))
	if len(ids) == 0 {
		return table, nil
	}

	people, err := resolver.store.FindPeopleByIDs(context, kind, ids)
	if err != nil {
		return nil, err
	}

	for _, person := range people {
		if person != nil {
			table[person.ID] = person
		}
	}
	return table, nil
}

// unionIDs collects the distinct non-empty ids of one relation kind in
// first-seen order.
func unionIDs(books []DecodedBook, pick func(DecodedBook) []string) []string {
	var all []string
	for _, book := range books {
		all = append(all, pick(book)...)
	}
	return slice.Unique(slice.Filter(all, nonEmpty))
}

func nonEmpty(id string) bool {
	return id != ""
}
