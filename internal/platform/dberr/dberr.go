// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr translates pgx errors into [apperr.AppError] values.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
)

// uniqueViolation is the SQLSTATE raised when a unique index rejects a row.
const uniqueViolation = "23505"

// Wrap classifies a database error.
//
//   - nil stays nil.
//   - [pgx.ErrNoRows] becomes NOT_FOUND for the named resource.
//   - A unique violation becomes CONFLICT.
//   - Anything else becomes INTERNAL_ERROR, keeping the action in the cause for logs.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict(resource + " with this slug already exists")
	}

	return apperr.Internal(fmt.Errorf("postgres: %s: %w", action, err))
}
