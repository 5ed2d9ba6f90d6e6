// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/privacyops/dpia-platform/auth"
	"github.com/privacyops/dpia-platform/models"
)

var jurisdictionColumns = []string{"id", "workspace_id", "name", "country", "adequacy", "notes", "created_at", "updated_at"}

func scanJurisdiction(row sq.RowScanner) (models.Jurisdiction, error) {
	var j models.Jurisdiction
	err := row.Scan(&j.ID, &j.WorkspaceID, &j.Name, &j.Country, &j.Adequacy,
		&j.Notes, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Jurisdiction{}, ErrNotFound
	}
	return j, err
}

func (st *Store) ListJurisdictions(workspaceID string, f ListFilter) ([]models.Jurisdiction, error) {
	rows, err := f.apply(st.sb.Select(jurisdictionColumns...).
		From("jurisdiction").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("name ASC")).
		RunWith(st.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jurisdictions := []models.Jurisdiction{}
	for rows.Next() {
		j, err := scanJurisdiction(rows)
		if err != nil {
			return nil, err
		}
		jurisdictions = append(jurisdictions, j)
	}
	return jurisdictions, rows.Err()
}

func (st *Store) GetJurisdiction(workspaceID, id string) (models.Jurisdiction, error) {
	return scanJurisdiction(st.sb.Select(jurisdictionColumns...).
		From("jurisdiction").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).QueryRow())
}

func (st *Store) CreateJurisdiction(j *models.Jurisdiction) error {
	now := time.Now().UTC()
	j.ID = auth.NewID()
	j.CreatedAt = now
	j.UpdatedAt = now

	_, err := st.sb.Insert("jurisdiction").
		Columns(jurisdictionColumns...).
		Values(j.ID, j.WorkspaceID, j.Name, j.Country, j.Adequacy, j.Notes, j.CreatedAt, j.UpdatedAt).
		RunWith(st.db).Exec()
	return err
}

func (st *Store) UpdateJurisdiction(j *models.Jurisdiction) error {
	j.UpdatedAt = time.Now().UTC()

	res, err := st.sb.Update("jurisdiction").
		Set("name", j.Name).
		Set("country", j.Country).
		Set("adequacy", j.Adequacy).
		Set("notes", j.Notes).
		Set("updated_at", j.UpdatedAt).
		Where(sq.Eq{"workspace_id": j.WorkspaceID, "id": j.ID}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}

func (st *Store) DeleteJurisdiction(workspaceID, id string) error {
	res, err := st.sb.Delete("jurisdiction").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}
