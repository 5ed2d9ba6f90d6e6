// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the given driver:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The "sqlite" variant is derived from the postgres DDL by swapping JSONB for
TEXT and dropping NOW() defaults; timestamps are always written by the
application, so both variants behave identically.

EnsureWorkspace seeds the configured default workspace at startup.

# Tables

  - workspace: tenants
  - system, vendor, data_category, processing_activity, location,
    jurisdiction, data_flow: the registry entities
  - precheck_result: persisted Article 35 pre-check evaluations
  - assessment, assessment_step: DPIA wizard records
  - audit_event: best-effort audit trail

# Relationships

	workspace 1──* <every other table>
	system 1──* processing_activity (optional link)
	system 1──* data_flow (source)
	assessment 1──* assessment_step
	precheck_result 1──0..1 assessment

All workspace foreign keys use ON DELETE CASCADE; optional links use
ON DELETE SET NULL.
*/
package db
