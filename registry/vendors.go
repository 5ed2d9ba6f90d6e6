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

var vendorColumns = []string{"id", "workspace_id", "name", "description", "contact_email", "country", "dpa_signed", "created_at", "updated_at"}

func scanVendor(row sq.RowScanner) (models.Vendor, error) {
	var v models.Vendor
	err := row.Scan(&v.ID, &v.WorkspaceID, &v.Name, &v.Description, &v.ContactEmail,
		&v.Country, &v.DPASigned, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vendor{}, ErrNotFound
	}
	return v, err
}

func (st *Store) ListVendors(workspaceID string, f ListFilter) ([]models.Vendor, error) {
	rows, err := f.apply(st.sb.Select(vendorColumns...).
		From("vendor").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("name ASC")).
		RunWith(st.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := []models.Vendor{}
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (st *Store) GetVendor(workspaceID, id string) (models.Vendor, error) {
	return scanVendor(st.sb.Select(vendorColumns...).
		From("vendor").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).QueryRow())
}

func (st *Store) CreateVendor(v *models.Vendor) error {
	now := time.Now().UTC()
	v.ID = auth.NewID()
	v.CreatedAt = now
	v.UpdatedAt = now

	_, err := st.sb.Insert("vendor").
		Columns(vendorColumns...).
		Values(v.ID, v.WorkspaceID, v.Name, v.Description, v.ContactEmail, v.Country, v.DPASigned, v.CreatedAt, v.UpdatedAt).
		RunWith(st.db).Exec()
	return err
}

func (st *Store) UpdateVendor(v *models.Vendor) error {
	v.UpdatedAt = time.Now().UTC()

	res, err := st.sb.Update("vendor").
		Set("name", v.Name).
		Set("description", v.Description).
		Set("contact_email", v.ContactEmail).
		Set("country", v.Country).
		Set("dpa_signed", v.DPASigned).
		Set("updated_at", v.UpdatedAt).
		Where(sq.Eq{"workspace_id": v.WorkspaceID, "id": v.ID}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}

func (st *Store) DeleteVendor(workspaceID, id string) error {
	res, err := st.sb.Delete("vendor").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}
