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

var dataCategoryColumns = []string{"id", "workspace_id", "name", "description", "sensitivity", "retention", "created_at", "updated_at"}

func scanDataCategory(row sq.RowScanner) (models.DataCategory, error) {
	var c models.DataCategory
	err := row.Scan(&c.ID, &c.WorkspaceID, &c.Name, &c.Description, &c.Sensitivity,
		&c.Retention, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DataCategory{}, ErrNotFound
	}
	return c, err
}

func (st *Store) ListDataCategories(workspaceID string, f ListFilter) ([]models.DataCategory, error) {
	rows, err := f.apply(st.sb.Select(dataCategoryColumns...).
		From("data_category").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("name ASC")).
		RunWith(st.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.DataCategory{}
	for rows.Next() {
		c, err := scanDataCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (st *Store) GetDataCategory(workspaceID, id string) (models.DataCategory, error) {
	return scanDataCategory(st.sb.Select(dataCategoryColumns...).
		From("data_category").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).QueryRow())
}

func (st *Store) CreateDataCategory(c *models.DataCategory) error {
	now := time.Now().UTC()
	c.ID = auth.NewID()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := st.sb.Insert("data_category").
		Columns(dataCategoryColumns...).
		Values(c.ID, c.WorkspaceID, c.Name, c.Description, c.Sensitivity, c.Retention, c.CreatedAt, c.UpdatedAt).
		RunWith(st.db).Exec()
	return err
}

func (st *Store) UpdateDataCategory(c *models.DataCategory) error {
	c.UpdatedAt = time.Now().UTC()

	res, err := st.sb.Update("data_category").
		Set("name", c.Name).
		Set("description", c.Description).
		Set("sensitivity", c.Sensitivity).
		Set("retention", c.Retention).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"workspace_id": c.WorkspaceID, "id": c.ID}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}

func (st *Store) DeleteDataCategory(workspaceID, id string) error {
	res, err := st.sb.Delete("data_category").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}
