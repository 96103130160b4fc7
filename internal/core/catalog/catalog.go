// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog serves every book listing and detail surface of the bookstore.

# Pipeline

A catalog read always runs the same steps, whatever the surface:

 1. The [Store] returns raw rows with category and publisher already joined
    and the author/translator relations still in their stored form.
 2. [DecodeIDs] turns each relation payload into a clean id list.
 3. The [Resolver] issues one bulk fetch per relation kind plus one for
    approved comments, concurrently, for the whole row set.
 4. The [Aggregator] hydrates each row into a [CatalogBook] and applies the
    author/translator slug filter, which can only run after resolution.

The [Service] exposes this pipeline to HTTP handlers and to page renderers.
*/
package catalog

import (
	"time"

	"github.com/taibuivan/bookstore/internal/core/reference"
)

// DefaultRating is reported for books without approved comments.
//
// TODO: confirm with product whether unrated books should show 3 stars or no
// rating at all; the storefront currently relies on this value.
const DefaultRating = 3.0

// # Book Domain

// Book holds the scalar columns of a catalog book.
type Book struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Image           string    `json:"image"`
	Price           int64     `json:"price"`
	Discount        *int      `json:"discount"`
	Description     string    `json:"description"`
	Pages           int       `json:"pages"`
	PublicationYear *int      `json:"publication_year"`
	SoldCount       int       `json:"sold_count"`
	CategoryID      string    `json:"category_id"`
	PublisherID     string    `json:"publisher_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RawBookRow is a book as returned by the [Store], before hydration.
//
// Category and Publisher are nil when the referenced row is missing.
// AuthorIDs and TranslatorIDs hold the stored relation payload in any form
// accepted by [DecodeIDs].
type RawBookRow struct {
	Book

	Category      *reference.Term
	Publisher     *reference.Term
	AuthorIDs     any
	TranslatorIDs any
}

// Listed reports whether the row may be shown to shoppers. A book whose
// category or publisher is missing is hidden from every surface.
func (row *RawBookRow) Listed() bool {
	return row != nil && row.Category != nil && row.Publisher != nil
}

// CatalogBook is the fully hydrated book shown to shoppers.
type CatalogBook struct {
	Book

	Category     *reference.Term     `json:"category"`
	Publisher    *reference.Term     `json:"publisher"`
	Authors      []*reference.Person `json:"authors"`
	Translators  []*reference.Person `json:"translators"`
	Comments     []*Comment          `json:"comments"`
	Rating       float64             `json:"rating"`
	CommentCount int                 `json:"comment_count"`
	FinalPrice   int64               `json:"final_price"`
}

// # Comment Domain

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	StatusPending  CommentStatus = "pending"
	StatusApproved CommentStatus = "approved"
	StatusRejected CommentStatus = "rejected"
)

// Comment is a shopper review of a book.
type Comment struct {
	ID        string        `json:"id"`
	BookID    string        `json:"book_id"`
	FullName  string        `json:"full_name"`
	Text      string        `json:"text"`
	Rating    int           `json:"rating"`
	Status    CommentStatus `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
}

// # Query Parameters

// SortOrder selects the ordering of an explore listing.
type SortOrder string

const (
	SortNewest      SortOrder = "newest"
	SortBestselling SortOrder = "bestselling"
	SortCheapest    SortOrder = "cheapest"
	SortExpensive   SortOrder = "expensive"
	SortDiscounted  SortOrder = "discounted"
)

// SortOrders lists every accepted [SortOrder].
var SortOrders = []string{
	string(SortNewest), string(SortBestselling), string(SortCheapest),
	string(SortExpensive), string(SortDiscounted),
}

// BookQuery is the part of a listing request the [Store] can evaluate in SQL.
type BookQuery struct {
	SearchText     string
	CategorySlugs  []string
	PublisherSlugs []string
	ExcludeBookID  string
	OnlyDiscounted bool
	Sort           SortOrder
	Limit          int // 0 means unbounded
}

// Filters are the shopper-facing listing filters.
type Filters struct {
	SearchText      string
	CategorySlugs   []string
	PublisherSlugs  []string
	AuthorSlugs     []string
	TranslatorSlugs []string
}

// ExploreQuery selects a sorted, bounded listing.
type ExploreQuery struct {
	Sort  SortOrder
	Limit int
}

// Field names for validation
const (
	FieldSort  = "sort"
	FieldLimit = "limit"
	FieldSlug  = "slug"
)
