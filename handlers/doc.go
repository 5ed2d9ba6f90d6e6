// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the DPIA platform API.

# Handler Types

Each handler is a struct with store, audit, and config dependencies:

  - PrecheckHandler: Article 35 pre-check template, submission, results
  - SystemHandler, VendorHandler, DataCategoryHandler, ActivityHandler,
    LocationHandler, JurisdictionHandler, DataFlowHandler: registry CRUD
  - AssessmentHandler: the multi-step DPIA wizard
  - ExportHandler: PDF assessment documents and XLSX registry workbooks
  - DashboardHandler: aggregate counts for the workspace
  - AuditHandler: audit trail listing
  - WorkspaceHandler: workspace creation and lookup

Handlers are created via constructor functions:

	precheckHandler := handlers.NewPrecheckHandler(store, auditLog, cfg, rules)

# Tenancy

Every request resolves its workspace from the X-Workspace-ID header,
falling back to the configured default workspace. Mutating routes
additionally require the X-Workspace-Key header, an HMAC of the
workspace ID issued once at workspace creation.

# Pre-check Flow

	GET  /precheck/template → question catalog and scoring metadata
	POST /precheck/submissions → evaluate answers, persist, return outcome
	GET  /precheck/results/{id} → stored result

An incomplete submission returns 400 with the missing question IDs.

# Wizard Flow

Assessments progress draft → in_progress → completed:

	POST   /assessments                     → create draft
	PUT    /assessments/{id}/steps/{step}   → record a step
	POST   /assessments/{id}/complete       → requires all steps
	DELETE /assessments/{id}                → drafts only

# Error Shape

All errors are JSON: {"error": "..."}. Registry misses are 404, bad
input is 400, a missing or wrong workspace key is 401, conflicts with
assessment state are 409, and database failures are 500.
*/
package handlers
