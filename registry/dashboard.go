// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	sq "github.com/Masterminds/squirrel"
)

// registryTables maps the dashboard count keys to their tables.
var registryTables = map[string]string{
	"systems":               "system",
	"vendors":               "vendor",
	"data_categories":       "data_category",
	"processing_activities": "processing_activity",
	"locations":             "location",
	"jurisdictions":         "jurisdiction",
	"data_flows":            "data_flow",
}

func (st *Store) countWhere(table string, where sq.Eq) (int, error) {
	var n int
	err := st.sb.Select("COUNT(*)").
		From(table).
		Where(where).
		RunWith(st.db).QueryRow().
		Scan(&n)
	return n, err
}

// RegistryCounts returns the per-entity row counts for a workspace.
func (st *Store) RegistryCounts(workspaceID string) (map[string]int, error) {
	counts := make(map[string]int, len(registryTables))
	for key, table := range registryTables {
		n, err := st.countWhere(table, sq.Eq{"workspace_id": workspaceID})
		if err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, nil
}

// AssessmentCounts returns assessment counts grouped by status.
func (st *Store) AssessmentCounts(workspaceID string) (map[string]int, error) {
	rows, err := st.sb.Select("status", "COUNT(*)").
		From("assessment").
		Where(sq.Eq{"workspace_id": workspaceID}).
		GroupBy("status").
		RunWith(st.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// AuditEventCount returns the size of a workspace's audit trail.
func (st *Store) AuditEventCount(workspaceID string) (int, error) {
	return st.countWhere("audit_event", sq.Eq{"workspace_id": workspaceID})
}
