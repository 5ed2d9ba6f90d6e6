// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
)

// ErrNotFound is returned when a row does not exist in the caller's
// workspace. Handlers map it to 404; every other error is a real
// database failure and surfaces as 500 - never substituted with
// fabricated data.
var ErrNotFound = errors.New("not found")

// Store is the storage layer for the registry entities and DPIA records.
// All queries are workspace-scoped.
type Store struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
		// Dollar placeholders work for both lib/pq and sqlite.
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListFilter narrows list queries.
type ListFilter struct {
	// Query matches against the entity name (substring).
	Query string
	// Limit caps the result size; 0 means the default of 100, max 500.
	Limit int
}

func (f ListFilter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	if f.Query != "" {
		b = b.Where(sq.Like{"name": "%" + f.Query + "%"})
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return b.Limit(uint64(limit))
}

// affectedOrNotFound translates a zero-row update/delete into ErrNotFound.
func affectedOrNotFound(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
