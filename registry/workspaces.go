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

func (st *Store) CreateWorkspace(w *models.Workspace) error {
	w.ID = auth.NewID()
	w.CreatedAt = time.Now().UTC()

	_, err := st.sb.Insert("workspace").
		Columns("id", "name", "created_at").
		Values(w.ID, w.Name, w.CreatedAt).
		RunWith(st.db).Exec()
	return err
}

func (st *Store) GetWorkspace(id string) (models.Workspace, error) {
	var w models.Workspace
	err := st.sb.Select("id", "name", "created_at").
		From("workspace").
		Where(sq.Eq{"id": id}).
		RunWith(st.db).QueryRow().
		Scan(&w.ID, &w.Name, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Workspace{}, ErrNotFound
	}
	return w, err
}
