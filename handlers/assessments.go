// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/privacyops/dpia-platform/audit"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/middleware"
	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/registry"
)

// AssessmentHandler drives the multi-step DPIA wizard: create a draft,
// fill in steps in any order, complete once every step is recorded.
type AssessmentHandler struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func NewAssessmentHandler(store *registry.Store, auditLog *audit.Logger, cfg cliparse.Config) *AssessmentHandler {
	return &AssessmentHandler{store: store, auditLog: auditLog, cfg: cfg}
}

// List handles GET /assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	assessments, err := h.store.ListAssessments(workspaceID)
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, assessments)
}

// Get handles GET /assessments/{id}, returning the assessment together
// with whatever steps have been recorded so far.
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	assessment, err := h.store.GetAssessment(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Assessment not found")
		return
	}

	steps, err := h.store.StepsFor(assessment.ID)
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AssessmentWithSteps{Assessment: assessment, Steps: steps})
}

// Create handles POST /assessments
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.CreateAssessmentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.PrecheckResultID != nil && *req.PrecheckResultID != "" {
		if _, err := h.store.GetPrecheckResult(workspaceID, *req.PrecheckResultID); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "precheck_result_id does not reference a known pre-check result")
			return
		}
	} else {
		req.PrecheckResultID = nil
	}

	assessment := models.Assessment{
		WorkspaceID:      workspaceID,
		Title:            req.Title,
		PrecheckResultID: req.PrecheckResultID,
	}
	if err := h.store.CreateAssessment(&assessment); err != nil {
		storeError(w, err, "")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("assessment", "created"), assessment.ID, map[string]any{"title": assessment.Title})
	slog.Info("assessment created", "workspace_id", workspaceID, "assessment_id", assessment.ID)

	middleware.JSONResponse(w, http.StatusCreated, assessment)
}

// UpdateStep handles PUT /assessments/{id}/steps/{step}
func (h *AssessmentHandler) UpdateStep(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	step := r.PathValue("step")
	if !oneOf(step, models.AssessmentSteps...) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown wizard step")
		return
	}

	var req models.UpdateStepRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Payload) == 0 {
		req.Payload = json.RawMessage("{}")
	}

	assessment, err := h.store.GetAssessment(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Assessment not found")
		return
	}
	if assessment.Status == models.StatusCompleted {
		middleware.ErrorResponse(w, http.StatusConflict, "Assessment is already completed")
		return
	}

	if err := h.store.UpsertStep(workspaceID, assessment.ID, step, req.Payload); err != nil {
		storeError(w, err, "")
		return
	}

	assessment, err = h.store.GetAssessment(workspaceID, assessment.ID)
	if err != nil {
		storeError(w, err, "Assessment not found")
		return
	}
	steps, err := h.store.StepsFor(assessment.ID)
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AssessmentWithSteps{Assessment: assessment, Steps: steps})
}

// Complete handles POST /assessments/{id}/complete. Every wizard step
// must be recorded before an assessment can be completed.
func (h *AssessmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	assessment, err := h.store.GetAssessment(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Assessment not found")
		return
	}
	if assessment.Status == models.StatusCompleted {
		middleware.ErrorResponse(w, http.StatusConflict, "Assessment is already completed")
		return
	}

	steps, err := h.store.StepsFor(assessment.ID)
	if err != nil {
		storeError(w, err, "")
		return
	}
	if missing := missingSteps(steps); len(missing) > 0 {
		middleware.JSONResponse(w, http.StatusBadRequest, map[string]any{
			"error":         "Assessment is incomplete",
			"missing_steps": missing,
		})
		return
	}

	completedAt, err := h.store.CompleteAssessment(workspaceID, assessment.ID)
	if err != nil {
		storeError(w, err, "Assessment not found")
		return
	}
	assessment.Status = models.StatusCompleted
	assessment.CompletedAt = &completedAt
	assessment.UpdatedAt = completedAt

	h.auditLog.Record(workspaceID, audit.DPIACompleted, assessment.ID, map[string]any{"title": assessment.Title})
	slog.Info("assessment completed", "workspace_id", workspaceID, "assessment_id", assessment.ID)

	middleware.JSONResponse(w, http.StatusOK, assessment)
}

// Delete handles DELETE /assessments/{id}. Only drafts can be deleted.
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	assessment, err := h.store.GetAssessment(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Assessment not found")
		return
	}
	if assessment.Status != models.StatusDraft {
		middleware.ErrorResponse(w, http.StatusConflict, "Only draft assessments can be deleted")
		return
	}

	if err := h.store.DeleteAssessment(workspaceID, assessment.ID); err != nil {
		storeError(w, err, "Assessment not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("assessment", "deleted"), assessment.ID, map[string]any{})

	w.WriteHeader(http.StatusNoContent)
}

func missingSteps(steps []models.AssessmentStep) []string {
	recorded := map[string]bool{}
	for _, s := range steps {
		recorded[s.Name] = true
	}
	missing := []string{}
	for _, name := range models.AssessmentSteps {
		if !recorded[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
