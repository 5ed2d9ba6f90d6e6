package models

import (
	"encoding/json"
	"time"

	"github.com/privacyops/dpia-platform/precheck"
)

// Assessment status constants
const (
	StatusDraft      = "draft"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Hosting models for systems
const (
	HostingCloud  = "cloud"
	HostingOnPrem = "on_prem"
	HostingHybrid = "hybrid"
)

// System lifecycle states
const (
	SystemPlanned = "planned"
	SystemActive  = "active"
	SystemRetired = "retired"
)

// Data category sensitivity levels
const (
	SensitivityNormal   = "normal"
	SensitivitySpecial  = "special"
	SensitivityCriminal = "criminal"
)

// Lawful bases under Article 6 GDPR
const (
	BasisConsent             = "consent"
	BasisContract            = "contract"
	BasisLegalObligation     = "legal_obligation"
	BasisVitalInterests      = "vital_interests"
	BasisPublicTask          = "public_task"
	BasisLegitimateInterests = "legitimate_interests"
)

// Location types
const (
	LocationDatacenter  = "datacenter"
	LocationOffice      = "office"
	LocationCloudRegion = "cloud_region"
)

// Data flow target kinds
const (
	TargetSystem = "system"
	TargetVendor = "vendor"
)

// Cross-border transfer mechanisms under Chapter V GDPR
const (
	TransferAdequacy   = "adequacy"
	TransferSCCs       = "sccs"
	TransferBCRs       = "bcrs"
	TransferDerogation = "derogation"
	TransferNone       = "none"
)

// AssessmentSteps lists the DPIA wizard steps in presentation order.
var AssessmentSteps = []string{"context", "data", "necessity", "risks", "measures", "review"}

// Domain types

type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type System struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	Hosting     string    `json:"hosting"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Vendor struct {
	ID           string    `json:"id"`
	WorkspaceID  string    `json:"workspace_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ContactEmail string    `json:"contact_email"`
	Country      string    `json:"country"`
	DPASigned    bool      `json:"dpa_signed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type DataCategory struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Sensitivity string    `json:"sensitivity"`
	Retention   string    `json:"retention"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProcessingActivity struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Purpose     string    `json:"purpose"`
	LawfulBasis string    `json:"lawful_basis"`
	SystemID    *string   `json:"system_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Location struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Jurisdiction struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	Adequacy    bool      `json:"adequacy"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DataFlow struct {
	ID             string    `json:"id"`
	WorkspaceID    string    `json:"workspace_id"`
	Name           string    `json:"name"`
	SourceSystemID string    `json:"source_system_id"`
	TargetKind     string    `json:"target_kind"`
	TargetID       string    `json:"target_id"`
	Transfer       string    `json:"transfer"`
	CrossBorder    bool      `json:"cross_border"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Assessment struct {
	ID               string     `json:"id"`
	WorkspaceID      string     `json:"workspace_id"`
	Title            string     `json:"title"`
	Status           string     `json:"status"`
	PrecheckResultID *string    `json:"precheck_result_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

type AssessmentStep struct {
	AssessmentID string          `json:"assessment_id"`
	Name         string          `json:"name"`
	Payload      json.RawMessage `json:"payload"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type AssessmentWithSteps struct {
	Assessment Assessment       `json:"assessment"`
	Steps      []AssessmentStep `json:"steps"`
}

type PrecheckResult struct {
	ID          string                    `json:"id"`
	WorkspaceID string                    `json:"workspace_id"`
	Answers     map[string]string         `json:"answers"`
	Score       int                       `json:"score"`
	Outcome     precheck.Outcome          `json:"outcome"`
	Result      precheck.EvaluationResult `json:"result"`
	CreatedAt   time.Time                 `json:"created_at"`
}

type AuditEvent struct {
	ID          string          `json:"id"`
	WorkspaceID string          `json:"workspace_id"`
	Type        string          `json:"type"`
	EntityID    string          `json:"entity_id"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Request types

type CreateWorkspaceRequest struct {
	Name string `json:"name"`
}

type SystemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Hosting     string `json:"hosting"`
	Status      string `json:"status"`
}

type VendorRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	Country      string `json:"country"`
	DPASigned    bool   `json:"dpa_signed"`
}

type DataCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Sensitivity string `json:"sensitivity"`
	Retention   string `json:"retention"`
}

type ProcessingActivityRequest struct {
	Name        string  `json:"name"`
	Purpose     string  `json:"purpose"`
	LawfulBasis string  `json:"lawful_basis"`
	SystemID    *string `json:"system_id,omitempty"`
}

type LocationRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Type    string `json:"type"`
}

type JurisdictionRequest struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Adequacy bool   `json:"adequacy"`
	Notes    string `json:"notes"`
}

type DataFlowRequest struct {
	Name           string `json:"name"`
	SourceSystemID string `json:"source_system_id"`
	TargetKind     string `json:"target_kind"`
	TargetID       string `json:"target_id"`
	Transfer       string `json:"transfer"`
	CrossBorder    bool   `json:"cross_border"`
}

type SubmitPrecheckRequest struct {
	Answers map[string]string `json:"answers"`
}

type CreateAssessmentRequest struct {
	Title            string  `json:"title"`
	PrecheckResultID *string `json:"precheck_result_id,omitempty"`
}

type UpdateStepRequest struct {
	Payload json.RawMessage `json:"payload"`
}

// Response types

type CreateWorkspaceResponse struct {
	Workspace    Workspace `json:"workspace"`
	WorkspaceKey string    `json:"workspace_key"`
	APIBaseURL   string    `json:"api_base_url"`
}

type PrecheckTemplateResponse struct {
	Metadata  precheck.Metadata   `json:"metadata"`
	Questions []precheck.Question `json:"questions"`
}

type SubmitPrecheckResponse struct {
	Success  bool                      `json:"success"`
	ResultID string                    `json:"result_id,omitempty"`
	Result   precheck.EvaluationResult `json:"result"`
}

type IncompleteSubmissionResponse struct {
	Error            string   `json:"error"`
	MissingQuestions []string `json:"missing_questions"`
	UnknownQuestions []string `json:"unknown_questions,omitempty"`
}

type DashboardSummary struct {
	Workspace       string         `json:"workspace"`
	RegistryCounts  map[string]int `json:"registry_counts"`
	Assessments     map[string]int `json:"assessments"`
	LatestPrecheck  *string        `json:"latest_precheck,omitempty"`
	TotalAuditTrail int            `json:"total_audit_events"`
	GeneratedAt     time.Time      `json:"generated_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
