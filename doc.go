// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the DPIA platform API server.

The DPIA platform is a multi-tenant GDPR compliance service: a registry
of processing systems, vendors, data categories, activities, locations,
jurisdictions, and data flows; an Article 35 pre-check that scores
whether a Data Protection Impact Assessment is required; a multi-step
DPIA wizard; and PDF/XLSX document export with a full audit trail.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 4800 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string (postgres URL or sqlite path)
  - WORKSPACE_KEY_SALT (--workspace-salt): Secret for workspace key HMAC

Optional settings:

  - PORT (-p): Server port (default: 4800)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - PRECHECK_RULES (-rules): YAML file overriding scoring thresholds
  - DEFAULT_WORKSPACE_ID (--default-workspace): Tenant used when no
    X-Workspace-ID header is sent

# Architecture

The server uses a handler-based architecture with dependency injection:

  - precheck: Article 35 question catalog, scoring engine, narratives
  - registry: Store for all persisted entities, built on squirrel
  - handlers: HTTP request handlers (registry, wizard, export, audit)
  - export: PDF and XLSX document rendering
  - audit: Best-effort audit trail
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, tenancy resolution
  - models: Domain and request/response types
  - auth: Workspace key generation and validation
  - db: Schema creation for both database drivers
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
