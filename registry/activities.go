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

var activityColumns = []string{"id", "workspace_id", "name", "purpose", "lawful_basis", "system_id", "created_at", "updated_at"}

func scanActivity(row sq.RowScanner) (models.ProcessingActivity, error) {
	var a models.ProcessingActivity
	var systemID sql.NullString
	err := row.Scan(&a.ID, &a.WorkspaceID, &a.Name, &a.Purpose, &a.LawfulBasis,
		&systemID, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProcessingActivity{}, ErrNotFound
	}
	if systemID.Valid {
		a.SystemID = &systemID.String
	}
	return a, err
}

func (st *Store) ListActivities(workspaceID string, f ListFilter) ([]models.ProcessingActivity, error) {
	rows, err := f.apply(st.sb.Select(activityColumns...).
		From("processing_activity").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("name ASC")).
		RunWith(st.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []models.ProcessingActivity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (st *Store) GetActivity(workspaceID, id string) (models.ProcessingActivity, error) {
	return scanActivity(st.sb.Select(activityColumns...).
		From("processing_activity").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).QueryRow())
}

func (st *Store) CreateActivity(a *models.ProcessingActivity) error {
	now := time.Now().UTC()
	a.ID = auth.NewID()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := st.sb.Insert("processing_activity").
		Columns(activityColumns...).
		Values(a.ID, a.WorkspaceID, a.Name, a.Purpose, a.LawfulBasis, a.SystemID, a.CreatedAt, a.UpdatedAt).
		RunWith(st.db).Exec()
	return err
}

func (st *Store) UpdateActivity(a *models.ProcessingActivity) error {
	a.UpdatedAt = time.Now().UTC()

	res, err := st.sb.Update("processing_activity").
		Set("name", a.Name).
		Set("purpose", a.Purpose).
		Set("lawful_basis", a.LawfulBasis).
		Set("system_id", a.SystemID).
		Set("updated_at", a.UpdatedAt).
		Where(sq.Eq{"workspace_id": a.WorkspaceID, "id": a.ID}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}

func (st *Store) DeleteActivity(workspaceID, id string) error {
	res, err := st.sb.Delete("processing_activity").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}
