// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// driver is "postgres" or "sqlite"; the sqlite variant swaps JSONB for TEXT
// and drops the NOW() defaults (timestamps are always set by the
// application anyway).
func CreateSchema(db *sql.DB, driver string) error {
	_, err := db.Exec(schemaFor(driver))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// EnsureWorkspace inserts the workspace row if it does not exist yet.
// Used at startup for the configured default (anonymous) workspace.
func EnsureWorkspace(db *sql.DB, id, name string) error {
	_, err := db.Exec(`
		INSERT INTO workspace (id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, id, name, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to ensure workspace %s: %w", id, err)
	}
	return nil
}

func schemaFor(driver string) string {
	if driver == "postgres" {
		return schema
	}
	r := strings.NewReplacer(
		"JSONB", "TEXT",
		" DEFAULT NOW()", "",
	)
	return r.Replace(schema)
}

const schema = `
-- Workspaces (tenants)
CREATE TABLE IF NOT EXISTS workspace (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Systems
CREATE TABLE IF NOT EXISTS system (
    id TEXT PRIMARY KEY,
    workspace_id TEXT NOT NULL REFERENCES workspace(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT,
    owner TEXT,
    hosting TEXT NOT NULL CHECK (hosting IN ('cloud', 'on_prem', 'hybrid')),
    status TEXT NOT NULL CHECK (status IN ('planned', 'active', 'retired')),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_system_workspace ON system(workspace_id);

-- Vendors
CREATE TABLE IF NOT EXISTS vendor (
    id TEXT PRIMARY KEY,
    workspace_id TEXT NOT NULL REFERENCES workspace(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT,
    contact_email TEXT,
    country TEXT,
    dpa_signed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_vendor_workspace ON vendor(workspace_id);

-- Data categories
CREATE TABLE IF NOT EXISTS data_category (
    id TEXT PRIMARY KEY,
    workspace_id TEXT NOT NULL REFERENCES workspace(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT,
    sensitivity TEXT NOT NULL CHECK (sensitivity IN ('normal', 'special', 'criminal')),
    retention TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_data_category_workspace ON data_category(workspace_id);

-- Processing activities
CREATE TABLE IF NOT EXISTS processing_activity (
    id TEXT PRIMARY KEY,
    workspace_id TEXT NOT NULL REFERENCES workspace(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    purpose TEXT,
    lawful_basis TEXT NOT NULL CHECK (lawful_basis IN
        ('consent', 'contract', 'legal_obligation', 'vital_interests', 'public_task', 'legitimate_interests')),
    system_id TEXT REFERENCES system(id) ON DELETE SET NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_activity_workspace ON processing_activity(workspace_id);
CREATE INDEX IF NOT EXISTS idx_activity_system ON processing_activity(system_id);

-- Locations
CREATE TABLE IF NOT EXISTS location (
    id TEXT PRIMARY KEY,
    workspace_id TEXT NOT NULL REFERENCES workspace(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    country TEXT NOT NULL,
    type TEXT NOT NULL CHECK (type IN ('datacenter', 'office', 'cloud_region')),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_location_workspace ON location(workspace_id);

-- Jurisdictions
CREATE TABLE IF NOT EXISTS jurisdiction (
    id TEXT PRIMARY KEY,
    workspace_id TEXT NOT NULL REFERENCES workspace(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    country TEXT NOT NULL,
    adequacy BOOLEAN NOT NULL DEFAULT FALSE,
    notes TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_jurisdiction_workspace ON jurisdiction(workspace_id);

-- Data flows
CREATE TABLE IF NOT EXISTS data_flow (
    id TEXT PRIMARY KEY,
    workspace_id TEXT NOT NULL REFERENCES workspace(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    source_system_id TEXT NOT NULL REFERENCES system(id) ON DELETE CASCADE,
    target_kind TEXT NOT NULL CHECK (target_kind IN ('system', 'vendor')),
    target_id TEXT NOT NULL,
    transfer TEXT NOT NULL CHECK (transfer IN ('adequacy', 'sccs', 'bcrs', 'derogation', 'none')),
    cross_border BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_data_flow_workspace ON data_flow(workspace_id);
CREATE INDEX IF NOT EXISTS idx_data_flow_source ON data_flow(source_system_id);

-- Pre-check results
CREATE TABLE IF NOT EXISTS precheck_result (
    id TEXT PRIMARY KEY,
    workspace_id TEXT NOT NULL REFERENCES workspace(id) ON DELETE CASCADE,
    answers JSONB NOT NULL,
    score INTEGER NOT NULL,
    outcome TEXT NOT NULL CHECK (outcome IN ('required', 'recommended', 'not_required')),
    result JSONB NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_precheck_result_workspace ON precheck_result(workspace_id);

-- Assessments (DPIA wizard)
CREATE TABLE IF NOT EXISTS assessment (
    id TEXT PRIMARY KEY,
    workspace_id TEXT NOT NULL REFERENCES workspace(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'in_progress', 'completed')),
    precheck_result_id TEXT REFERENCES precheck_result(id) ON DELETE SET NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
    completed_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_assessment_workspace ON assessment(workspace_id);
CREATE INDEX IF NOT EXISTS idx_assessment_status ON assessment(status);

-- Assessment steps
CREATE TABLE IF NOT EXISTS assessment_step (
    assessment_id TEXT NOT NULL REFERENCES assessment(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    payload JSONB NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
    PRIMARY KEY (assessment_id, name)
);

-- Audit events
CREATE TABLE IF NOT EXISTS audit_event (
    id TEXT PRIMARY KEY,
    workspace_id TEXT NOT NULL REFERENCES workspace(id) ON DELETE CASCADE,
    type TEXT NOT NULL,
    entity_id TEXT,
    payload JSONB NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_audit_event_workspace ON audit_event(workspace_id);
CREATE INDEX IF NOT EXISTS idx_audit_event_type ON audit_event(type);
`
