// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the DPIA platform API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, rules)

# Endpoints

Health:

	GET /health

Workspaces:

	POST /workspaces    - Create workspace (returns workspace_key)
	GET  /workspaces/me - Resolve the caller's workspace

Article 35 pre-check:

	GET  /precheck/template     - Question catalog
	POST /precheck/submissions  - Evaluate a submission
	GET  /precheck/results/{id} - Stored result

Registry (reads public, mutations require X-Workspace-Key). Each of
systems, vendors, data-categories, processing-activities, locations,
jurisdictions, and data-flows gets the same shape:

	GET    /registry/{collection}
	POST   /registry/{collection}
	GET    /registry/{collection}/{id}
	PUT    /registry/{collection}/{id}
	DELETE /registry/{collection}/{id}

DPIA wizard:

	GET    /assessments
	POST   /assessments
	GET    /assessments/{id}
	PUT    /assessments/{id}/steps/{step}
	POST   /assessments/{id}/complete
	DELETE /assessments/{id}

Export:

	GET /assessments/{id}/export?format=pdf - DPIA document
	GET /registry/export                    - XLSX workbook

Dashboard and audit:

	GET /dashboard/summary
	GET /audit/events?limit=N

# Handler Initialization

The router builds the registry store and audit logger once and injects
them into every handler:

	store := registry.NewStore(db)
	auditLog := audit.NewLogger(db)
	systemHandler := handlers.NewSystemHandler(store, auditLog, cfg)
*/
package router
