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

var systemColumns = []string{"id", "workspace_id", "name", "description", "owner", "hosting", "status", "created_at", "updated_at"}

func scanSystem(row sq.RowScanner) (models.System, error) {
	var s models.System
	err := row.Scan(&s.ID, &s.WorkspaceID, &s.Name, &s.Description, &s.Owner,
		&s.Hosting, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.System{}, ErrNotFound
	}
	return s, err
}

func (st *Store) ListSystems(workspaceID string, f ListFilter) ([]models.System, error) {
	rows, err := f.apply(st.sb.Select(systemColumns...).
		From("system").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("name ASC")).
		RunWith(st.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	systems := []models.System{}
	for rows.Next() {
		s, err := scanSystem(rows)
		if err != nil {
			return nil, err
		}
		systems = append(systems, s)
	}
	return systems, rows.Err()
}

func (st *Store) GetSystem(workspaceID, id string) (models.System, error) {
	return scanSystem(st.sb.Select(systemColumns...).
		From("system").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).QueryRow())
}

func (st *Store) CreateSystem(s *models.System) error {
	now := time.Now().UTC()
	s.ID = auth.NewID()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := st.sb.Insert("system").
		Columns(systemColumns...).
		Values(s.ID, s.WorkspaceID, s.Name, s.Description, s.Owner, s.Hosting, s.Status, s.CreatedAt, s.UpdatedAt).
		RunWith(st.db).Exec()
	return err
}

func (st *Store) UpdateSystem(s *models.System) error {
	s.UpdatedAt = time.Now().UTC()

	res, err := st.sb.Update("system").
		Set("name", s.Name).
		Set("description", s.Description).
		Set("owner", s.Owner).
		Set("hosting", s.Hosting).
		Set("status", s.Status).
		Set("updated_at", s.UpdatedAt).
		Where(sq.Eq{"workspace_id": s.WorkspaceID, "id": s.ID}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}

func (st *Store) DeleteSystem(workspaceID, id string) error {
	res, err := st.sb.Delete("system").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}
