// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference manages the master data books point at: authors,
translators, categories and publishers.

# Core Responsibility

  - People: [Person] records in two kinds, [KindAuthor] and [KindTranslator].
    Books reference them through link tables (legacy rows through JSON id
    arrays), resolved by the catalog.
  - Terms: [Term] records in two kinds, [KindCategory] and [KindPublisher].
    Books reference exactly one of each by id.
  - Publisher directory: a denormalized copy of the publisher list kept in
    Redis for the alternate listing page.

Every entity is addressed externally by its slug.
*/
package reference

import (
	"time"

	"github.com/taibuivan/bookstore/internal/platform/database/schema"
)

// # People

// PersonKind selects the author or translator table.
type PersonKind string

const (
	KindAuthor     PersonKind = "author"
	KindTranslator PersonKind = "translator"
)

// Valid reports whether k is a known person kind.
func (k PersonKind) Valid() bool {
	return k == KindAuthor || k == KindTranslator
}

// Table returns the schema definition backing k.
func (k PersonKind) Table() schema.CatalogPersonTable {
	if k == KindTranslator {
		return schema.CatalogTranslator
	}
	return schema.CatalogAuthor
}

// Person is an author or translator.
type Person struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// PersonFilter holds the parameters for a paginated people search.
type PersonFilter struct {
	Query string // ILIKE against full name
}

// # Terms

// TermKind selects the category or publisher table.
type TermKind string

const (
	KindCategory  TermKind = "category"
	KindPublisher TermKind = "publisher"
)

// Valid reports whether k is a known term kind.
func (k TermKind) Valid() bool {
	return k == KindCategory || k == KindPublisher
}

// Table returns the schema definition backing k.
func (k TermKind) Table() schema.CatalogTermTable {
	if k == KindPublisher {
		return schema.CatalogPublisher
	}
	return schema.CatalogCategory
}

// Term is a category or publisher.
type Term struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Field names for validation
const (
	FieldFullName = "full_name"
	FieldName     = "name"
	FieldSlug     = "slug"
)

const maxNameLength = 200
