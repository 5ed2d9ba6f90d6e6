// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry is the storage layer for the registry entities, DPIA
assessments, pre-check results, and dashboard aggregates.

Queries are built with squirrel using dollar placeholders, which both
supported drivers (lib/pq and modernc sqlite) accept, so one query dialect
serves postgres and sqlite alike.

Every read and write is workspace-scoped. ErrNotFound is the only sentinel:
it covers both "no such row" and "row belongs to another workspace", so
handlers cannot leak cross-tenant existence. All other errors are real
database failures and propagate unchanged - lookups never fall back to
fabricated data.

The Store generates UUIDs and UTC timestamps itself; callers pass domain
structs with the user-supplied fields filled in and read back the
server-generated ones.
*/
package registry
