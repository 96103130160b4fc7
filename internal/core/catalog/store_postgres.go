// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bookstore/internal/core/reference"
	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/database/schema"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
)

// PostgresStore implements [Store] using a pgxpool.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore returns a fully wired postgres implementation.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// linkTable returns the normalized link table for kind.
func linkTable(kind reference.PersonKind) schema.CatalogBookPersonTable {
	if kind == reference.KindTranslator {
		return schema.CatalogBookTranslator
	}
	return schema.CatalogBookAuthor
}

// relationColumn selects a book's relation ids. Link rows take precedence;
// books not yet migrated fall back to the legacy jsonb payload.
func relationColumn(kind reference.PersonKind, legacyColumn string) string {
	link := linkTable(kind)
	return fmt.Sprintf(`COALESCE(
			(SELECT jsonb_agg(l.%s ORDER BY l.%s) FROM %s l WHERE l.%s = b.%s),
			b.%s
		)`,
		link.PersonID, link.Position, link.Table, link.BookID, schema.CatalogBook.ID,
		legacyColumn,
	)
}

// bookSelect is shared by every book query. Aliases: b book, c category, p publisher.
func bookSelect() string {
	book := schema.CatalogBook
	category := schema.CatalogCategory
	publisher := schema.CatalogPublisher

	return fmt.Sprintf(`
		SELECT b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
		       COALESCE(b.%s, ''), COALESCE(b.%s, ''), b.%s, b.%s,
		       %s,
		       %s,
		       c.%s, c.%s, c.%s,
		       p.%s, p.%s, p.%s
		FROM %s b
		LEFT JOIN %s c ON c.%s = b.%s
		LEFT JOIN %s p ON p.%s = b.%s
	`,
		book.ID, book.Name, book.Slug, book.Image, book.Price, book.Discount,
		book.Description, book.Pages, book.PublicationYear, book.SoldCount,
		book.CategoryID, book.PublisherID, book.CreatedAt, book.UpdatedAt,
		relationColumn(reference.KindAuthor, book.AuthorIDs),
		relationColumn(reference.KindTranslator, book.TranslatorIDs),
		category.ID, category.Name, category.Slug,
		publisher.ID, publisher.Name, publisher.Slug,
		book.Table,
		category.Table, category.ID, book.CategoryID,
		publisher.Table, publisher.ID, book.PublisherID,
	)
}

// scanBookRow reads one row produced by [bookSelect].
func scanBookRow(row pgx.Row) (*RawBookRow, error) {
	var (
		raw                                       RawBookRow
		authorIDs, translatorIDs                  []byte
		categoryID, categoryName, categorySlug    *string
		publisherID, publisherName, publisherSlug *string
	)

	err := row.Scan(
		&raw.ID, &raw.Name, &raw.Slug, &raw.Image, &raw.Price, &raw.Discount,
		&raw.Description, &raw.Pages, &raw.PublicationYear, &raw.SoldCount,
		&raw.CategoryID, &raw.PublisherID, &raw.CreatedAt, &raw.UpdatedAt,
		&authorIDs, &translatorIDs,
		&categoryID, &categoryName, &categorySlug,
		&publisherID, &publisherName, &publisherSlug,
	)
	if err != nil {
		return nil, err
	}

	raw.AuthorIDs = authorIDs
	raw.TranslatorIDs = translatorIDs
	raw.Category = joinedTerm(categoryID, categoryName, categorySlug)
	raw.Publisher = joinedTerm(publisherID, publisherName, publisherSlug)
	return &raw, nil
}

func joinedTerm(id, name, slug *string) *reference.Term {
	if id == nil {
		return nil
	}
	term := &reference.Term{ID: *id}
	if name != nil {
		term.Name = *name
	}
	if slug != nil {
		term.Slug = *slug
	}
	return term
}

// # Books

/*
QueryBooks evaluates the SQL-expressible part of a listing.

Description: Text search is an ILIKE over name and description. Category
and publisher slugs match any of the listed values. Author and translator
filters are not handled here; they need resolved relations.

Parameters:
  - context: context.Context
  - query: BookQuery

Returns:
  - []*RawBookRow: Matching rows, never nil
  - error: apperr.Internal on storage failure
*/
func (store *PostgresStore) QueryBooks(context context.Context, query BookQuery) ([]*RawBookRow, error) {
	book := schema.CatalogBook

	var (
		conditions []string
		args       []any
	)
	bind := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if text := strings.TrimSpace(query.SearchText); text != "" {
		placeholder := bind("%" + text + "%")
		conditions = append(conditions, fmt.Sprintf("(b.%s ILIKE %s OR b.%s ILIKE %s)",
			book.Name, placeholder, book.Description, placeholder))
	}
	if len(query.CategorySlugs) > 0 {
		conditions = append(conditions, fmt.Sprintf("c.%s = ANY(%s)", schema.CatalogCategory.Slug, bind(query.CategorySlugs)))
	}
	if len(query.PublisherSlugs) > 0 {
		conditions = append(conditions, fmt.Sprintf("p.%s = ANY(%s)", schema.CatalogPublisher.Slug, bind(query.PublisherSlugs)))
	}
	if query.ExcludeBookID != "" {
		conditions = append(conditions, fmt.Sprintf("b.%s <> %s", book.ID, bind(query.ExcludeBookID)))
	}
	if query.OnlyDiscounted {
		conditions = append(conditions, fmt.Sprintf("b.%s > 0", book.Discount))
	}

	var sql strings.Builder
	sql.WriteString(bookSelect())
	if len(conditions) > 0 {
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(conditions, " AND "))
	}
	sql.WriteString(" ORDER BY ")
	sql.WriteString(orderBy(query.Sort))
	if query.Limit > 0 {
		sql.WriteString(" LIMIT ")
		sql.WriteString(bind(query.Limit))
	}

	rows, err := store.db.Query(context, sql.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Book", "query_books")
	}
	defer rows.Close()

	books := make([]*RawBookRow, 0)
	for rows.Next() {
		raw, err := scanBookRow(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Book", "scan_book")
		}
		books = append(books, raw)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Book", "query_books")
	}
	return books, nil
}

// orderBy maps a sort order to its ORDER BY clause. Every clause ends with the
// id so that ties are stable between calls.
func orderBy(sort SortOrder) string {
	book := schema.CatalogBook
	finalPrice := fmt.Sprintf("(CASE WHEN b.%[1]s > 0 THEN (b.%[2]s * (100 - LEAST(b.%[1]s, 100)) + 50) / 100 ELSE b.%[2]s END)",
		book.Discount, book.Price)

	switch sort {
	case SortBestselling:
		return fmt.Sprintf("b.%s DESC, b.%s DESC", book.SoldCount, book.ID)
	case SortCheapest:
		return fmt.Sprintf("%s ASC, b.%s DESC", finalPrice, book.ID)
	case SortExpensive:
		return fmt.Sprintf("%s DESC, b.%s DESC", finalPrice, book.ID)
	case SortDiscounted:
		return fmt.Sprintf("b.%s DESC NULLS LAST, b.%s DESC", book.Discount, book.ID)
	default:
		return fmt.Sprintf("b.%s DESC, b.%s DESC", book.CreatedAt, book.ID)
	}
}

// FindBookBySlug fetches a single raw row.
func (store *PostgresStore) FindBookBySlug(context context.Context, slug string) (*RawBookRow, error) {
	query := bookSelect() + fmt.Sprintf(" WHERE b.%s = $1", schema.CatalogBook.Slug)

	raw, err := scanBookRow(store.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "Book", "get_book")
	}
	return raw, nil
}

// # Relations

// FindPeopleByIDs fetches authors or translators in one round trip.
func (store *PostgresStore) FindPeopleByIDs(context context.Context, kind reference.PersonKind, ids []string) ([]*reference.Person, error) {
	if !kind.Valid() {
		return nil, apperr.Internal(fmt.Errorf("catalog: unknown person kind %q", kind))
	}

	table := kind.Table()
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = ANY($1)`,
		table.ID, table.FullName, table.Slug, table.CreatedAt, table.Table, table.ID,
	)

	rows, err := store.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "Person", "find_"+string(kind)+"s_by_ids")
	}
	defer rows.Close()

	people := make([]*reference.Person, 0, len(ids))
	for rows.Next() {
		person := &reference.Person{}
		if err := rows.Scan(&person.ID, &person.FullName, &person.Slug, &person.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "Person", "scan_"+string(kind))
		}
		people = append(people, person)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Person", "find_"+string(kind)+"s_by_ids")
	}
	return people, nil
}

// commentSelect selects approved comments; the caller appends the book predicate.
func commentSelect() string {
	comment := schema.SocialComment
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = '%s'
	`,
		comment.ID, comment.BookID, comment.FullName, comment.Text, comment.Rating, comment.Status, comment.CreatedAt,
		comment.Table,
		comment.Status, StatusApproved,
	)
}

// FindApprovedCommentsByBookIDs fetches approved comments for many books in one round trip.
func (store *PostgresStore) FindApprovedCommentsByBookIDs(context context.Context, bookIDs []string) ([]*Comment, error) {
	comment := schema.SocialComment
	query := commentSelect() + fmt.Sprintf(" AND %s = ANY($1) ORDER BY %s DESC, %s DESC",
		comment.BookID, comment.CreatedAt, comment.ID)

	return store.queryComments(context, query, bookIDs)
}

// FindApprovedCommentsByBookSlug fetches one book's approved comments, newest first.
func (store *PostgresStore) FindApprovedCommentsByBookSlug(context context.Context, slug string) ([]*Comment, error) {
	comment := schema.SocialComment
	book := schema.CatalogBook
	query := commentSelect() + fmt.Sprintf(" AND %s = (SELECT %s FROM %s WHERE %s = $1) ORDER BY %s DESC, %s DESC",
		comment.BookID, book.ID, book.Table, book.Slug, comment.CreatedAt, comment.ID)

	return store.queryComments(context, query, slug)
}

func (store *PostgresStore) queryComments(context context.Context, query string, arg any) ([]*Comment, error) {
	rows, err := store.db.Query(context, query, arg)
	if err != nil {
		return nil, dberr.Wrap(err, "Comment", "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(&c.ID, &c.BookID, &c.FullName, &c.Text, &c.Rating, &c.Status, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "Comment", "scan_comment")
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Comment", "list_comments")
	}
	return comments, nil
}
