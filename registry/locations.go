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

var locationColumns = []string{"id", "workspace_id", "name", "country", "type", "created_at", "updated_at"}

func scanLocation(row sq.RowScanner) (models.Location, error) {
	var l models.Location
	err := row.Scan(&l.ID, &l.WorkspaceID, &l.Name, &l.Country, &l.Type, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Location{}, ErrNotFound
	}
	return l, err
}

func (st *Store) ListLocations(workspaceID string, f ListFilter) ([]models.Location, error) {
	rows, err := f.apply(st.sb.Select(locationColumns...).
		From("location").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("name ASC")).
		RunWith(st.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (st *Store) GetLocation(workspaceID, id string) (models.Location, error) {
	return scanLocation(st.sb.Select(locationColumns...).
		From("location").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).QueryRow())
}

func (st *Store) CreateLocation(l *models.Location) error {
	now := time.Now().UTC()
	l.ID = auth.NewID()
	l.CreatedAt = now
	l.UpdatedAt = now

	_, err := st.sb.Insert("location").
		Columns(locationColumns...).
		Values(l.ID, l.WorkspaceID, l.Name, l.Country, l.Type, l.CreatedAt, l.UpdatedAt).
		RunWith(st.db).Exec()
	return err
}

func (st *Store) UpdateLocation(l *models.Location) error {
	l.UpdatedAt = time.Now().UTC()

	res, err := st.sb.Update("location").
		Set("name", l.Name).
		Set("country", l.Country).
		Set("type", l.Type).
		Set("updated_at", l.UpdatedAt).
		Where(sq.Eq{"workspace_id": l.WorkspaceID, "id": l.ID}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}

func (st *Store) DeleteLocation(workspaceID, id string) error {
	res, err := st.sb.Delete("location").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}
