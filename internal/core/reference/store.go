// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import "context"

// # Reference Data Access

// Repository defines the relational data access contract for reference data.
type Repository interface {

	// ## People

	ListPeople(context context.Context, kind PersonKind, filter PersonFilter, limit, offset int) ([]*Person, int, error)

	// FindPersonBySlug returns apperr.NotFound when no row matches.
	FindPersonBySlug(context context.Context, kind PersonKind, slug string) (*Person, error)

	CreatePerson(context context.Context, kind PersonKind, person *Person) error
	DeletePerson(context context.Context, kind PersonKind, slug string) error

	// ## Terms

	ListTerms(context context.Context, kind TermKind) ([]*Term, error)
	FindTermBySlug(context context.Context, kind TermKind, slug string) (*Term, error)
	CreateTerm(context context.Context, kind TermKind, term *Term) error
	DeleteTerm(context context.Context, kind TermKind, slug string) error
}

// DirectoryStore holds the denormalized publisher directory.
type DirectoryStore interface {

	// Replace swaps the whole directory for publishers atomically.
	Replace(context context.Context, publishers []*Term) error

	// List returns the directory ordered by name. An absent directory is empty.
	List(context context.Context) ([]*Term, error)
}
