// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// resourceName is the label used in not-found and conflict messages.
func (k PersonKind) resourceName() string {
	if k == KindTranslator {
		return "Translator"
	}
	return "Author"
}

func (k TermKind) resourceName() string {
	if k == KindPublisher {
		return "Publisher"
	}
	return "Category"
}

// # People

/*
ListPeople returns one page of authors or translators ordered by name,
together with the total match count.
*/
func (repository *PostgresRepository) ListPeople(context context.Context, kind PersonKind, filter PersonFilter, limit, offset int) ([]*Person, int, error) {
	table := kind.Table()

	where := "TRUE"
	args := []any{}
	if filter.Query != "" {
		where = fmt.Sprintf("%s ILIKE $1", table.FullName)
		args = append(args, "%"+filter.Query+"%")
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, table.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, kind.resourceName(), "count_"+string(kind))
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s
		ORDER BY %s ASC
		LIMIT $%d OFFSET $%d
	`,
		table.ID, table.FullName, table.Slug, table.CreatedAt,
		table.Table, where, table.FullName,
		len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, kind.resourceName(), "list_"+string(kind))
	}
	defer rows.Close()

	people := make([]*Person, 0)
	for rows.Next() {
		p := &Person{}
		if err := rows.Scan(&p.ID, &p.FullName, &p.Slug, &p.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, kind.resourceName(), "scan_"+string(kind))
		}
		people = append(people, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, kind.resourceName(), "list_"+string(kind))
	}
	return people, total, nil
}

// FindPersonBySlug fetches a single author or translator.
func (repository *PostgresRepository) FindPersonBySlug(context context.Context, kind PersonKind, slug string) (*Person, error) {
	table := kind.Table()
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		table.ID, table.FullName, table.Slug, table.CreatedAt, table.Table, table.Slug,
	)

	p := &Person{}
	if err := repository.db.QueryRow(context, query, slug).Scan(&p.ID, &p.FullName, &p.Slug, &p.CreatedAt); err != nil {
		return nil, dberr.Wrap(err, kind.resourceName(), "get_"+string(kind))
	}
	return p, nil
}

// CreatePerson inserts person and fills CreatedAt. A duplicate slug yields a conflict.
func (repository *PostgresRepository) CreatePerson(context context.Context, kind PersonKind, person *Person) error {
	table := kind.Table()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`,
		table.Table, table.ID, table.FullName, table.Slug, table.CreatedAt,
		table.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, person.ID, person.FullName, person.Slug).Scan(&person.CreatedAt)
	return dberr.Wrap(err, kind.resourceName(), "create_"+string(kind))
}

// DeletePerson removes a person by slug. Books referencing the id keep the
// stale id; the catalog drops it on resolution.
func (repository *PostgresRepository) DeletePerson(context context.Context, kind PersonKind, slug string) error {
	table := kind.Table()
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.Slug)

	cmd, err := repository.db.Exec(context, query, slug)
	if err != nil {
		return dberr.Wrap(err, kind.resourceName(), "delete_"+string(kind))
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(kind.resourceName())
	}
	return nil
}

// # Terms

// ListTerms returns every category or publisher ordered by name.
func (repository *PostgresRepository) ListTerms(context context.Context, kind TermKind) ([]*Term, error) {
	table := kind.Table()
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		table.ID, table.Name, table.Slug, table.CreatedAt, table.Table, table.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, kind.resourceName(), "list_"+string(kind))
	}
	defer rows.Close()

	terms := make([]*Term, 0)
	for rows.Next() {
		t := &Term{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, kind.resourceName(), "scan_"+string(kind))
		}
		terms = append(terms, t)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, kind.resourceName(), "list_"+string(kind))
	}
	return terms, nil
}

// FindTermBySlug fetches a single category or publisher.
func (repository *PostgresRepository) FindTermBySlug(context context.Context, kind TermKind, slug string) (*Term, error) {
	table := kind.Table()
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		table.ID, table.Name, table.Slug, table.CreatedAt, table.Table, table.Slug,
	)

	t := &Term{}
	if err := repository.db.QueryRow(context, query, slug).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
		return nil, dberr.Wrap(err, kind.resourceName(), "get_"+string(kind))
	}
	return t, nil
}

// CreateTerm inserts term and fills CreatedAt.
func (repository *PostgresRepository) CreateTerm(context context.Context, kind TermKind, term *Term) error {
	table := kind.Table()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`,
		table.Table, table.ID, table.Name, table.Slug, table.CreatedAt,
		table.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, term.ID, term.Name, term.Slug).Scan(&term.CreatedAt)
	return dberr.Wrap(err, kind.resourceName(), "create_"+string(kind))
}

// DeleteTerm removes a term by slug. Books pointing at it disappear from
// catalog listings until they are reassigned.
func (repository *PostgresRepository) DeleteTerm(context context.Context, kind TermKind, slug string) error {
	table := kind.Table()
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.Slug)

	cmd, err := repository.db.Exec(context, query, slug)
	if err != nil {
		return dberr.Wrap(err, kind.resourceName(), "delete_"+string(kind))
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(kind.resourceName())
	}
	return nil
}
