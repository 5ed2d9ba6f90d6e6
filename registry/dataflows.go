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

var dataFlowColumns = []string{"id", "workspace_id", "name", "source_system_id", "target_kind", "target_id", "transfer", "cross_border", "created_at", "updated_at"}

func scanDataFlow(row sq.RowScanner) (models.DataFlow, error) {
	var d models.DataFlow
	err := row.Scan(&d.ID, &d.WorkspaceID, &d.Name, &d.SourceSystemID, &d.TargetKind,
		&d.TargetID, &d.Transfer, &d.CrossBorder, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DataFlow{}, ErrNotFound
	}
	return d, err
}

func (st *Store) ListDataFlows(workspaceID string, f ListFilter) ([]models.DataFlow, error) {
	rows, err := f.apply(st.sb.Select(dataFlowColumns...).
		From("data_flow").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("name ASC")).
		RunWith(st.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flows := []models.DataFlow{}
	for rows.Next() {
		d, err := scanDataFlow(rows)
		if err != nil {
			return nil, err
		}
		flows = append(flows, d)
	}
	return flows, rows.Err()
}

func (st *Store) GetDataFlow(workspaceID, id string) (models.DataFlow, error) {
	return scanDataFlow(st.sb.Select(dataFlowColumns...).
		From("data_flow").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).QueryRow())
}

func (st *Store) CreateDataFlow(d *models.DataFlow) error {
	now := time.Now().UTC()
	d.ID = auth.NewID()
	d.CreatedAt = now
	d.UpdatedAt = now

	_, err := st.sb.Insert("data_flow").
		Columns(dataFlowColumns...).
		Values(d.ID, d.WorkspaceID, d.Name, d.SourceSystemID, d.TargetKind, d.TargetID,
			d.Transfer, d.CrossBorder, d.CreatedAt, d.UpdatedAt).
		RunWith(st.db).Exec()
	return err
}

func (st *Store) UpdateDataFlow(d *models.DataFlow) error {
	d.UpdatedAt = time.Now().UTC()

	res, err := st.sb.Update("data_flow").
		Set("name", d.Name).
		Set("source_system_id", d.SourceSystemID).
		Set("target_kind", d.TargetKind).
		Set("target_id", d.TargetID).
		Set("transfer", d.Transfer).
		Set("cross_border", d.CrossBorder).
		Set("updated_at", d.UpdatedAt).
		Where(sq.Eq{"workspace_id": d.WorkspaceID, "id": d.ID}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}

func (st *Store) DeleteDataFlow(workspaceID, id string) error {
	res, err := st.sb.Delete("data_flow").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}
