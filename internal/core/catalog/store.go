// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// # Catalog Data Access

// Store defines the data access contract for catalog reads.
type Store interface {
	RelationStore

	/*
		QueryBooks returns the rows matching query with category and publisher
		joined. Rows whose category or publisher is missing are still returned,
		with a nil Category or Publisher.
	*/
	QueryBooks(context context.Context, query BookQuery) ([]*RawBookRow, error)

	// FindBookBySlug returns apperr.NotFound when no book has slug.
	FindBookBySlug(context context.Context, slug string) (*RawBookRow, error)

	// FindApprovedCommentsByBookSlug returns a book's approved comments, newest first.
	FindApprovedCommentsByBookSlug(context context.Context, slug string) ([]*Comment, error)
}
