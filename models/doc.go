// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Every registry entity is workspace-scoped and carries a UUID id plus
created/updated timestamps:

  - System: IT system or application processing personal data
  - Vendor: external processor with DPA status
  - DataCategory: category of personal data with sensitivity level
  - ProcessingActivity: Article 30 processing activity with lawful basis
  - Location: physical or cloud processing location
  - Jurisdiction: legal jurisdiction with adequacy status
  - DataFlow: movement of data between a system and a system or vendor

DPIA types:

  - Assessment: multi-step DPIA record (draft → in_progress → completed)
  - AssessmentStep: one wizard step's JSON payload
  - PrecheckResult: persisted Article 35 pre-check evaluation

Plus Workspace (tenant) and AuditEvent (best-effort audit trail).

# Constants

Closed string sets used for handler-side validation: assessment statuses,
hosting models, system states, sensitivity levels, Article 6 lawful bases,
location types, data flow target kinds, and Chapter V transfer mechanisms.
AssessmentSteps fixes the wizard step names and their order.

# Request and Response Types

One request struct per mutating endpoint (SystemRequest, VendorRequest, ...,
SubmitPrecheckRequest, CreateAssessmentRequest, UpdateStepRequest) and
typed responses for the pre-check template, submissions, workspace
provisioning, the dashboard summary, and the ErrorResponse envelope.
*/
package models
