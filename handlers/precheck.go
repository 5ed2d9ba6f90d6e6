// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/privacyops/dpia-platform/audit"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/middleware"
	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/precheck"
	"github.com/privacyops/dpia-platform/registry"
)

type PrecheckHandler struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
	rules    precheck.Rules
}

func NewPrecheckHandler(store *registry.Store, auditLog *audit.Logger, cfg cliparse.Config, rules precheck.Rules) *PrecheckHandler {
	return &PrecheckHandler{store: store, auditLog: auditLog, cfg: cfg, rules: rules}
}

// GetTemplate handles GET /precheck/template
// Returns the question catalog for clients rendering the form.
func (h *PrecheckHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.PrecheckTemplateResponse{
		Metadata:  precheck.CatalogMetadata(),
		Questions: precheck.Questions(),
	})
}

// Submit handles POST /precheck/submissions
//
// The evaluation result is the authoritative, synchronous part of the
// contract: persistence and the audit event afterwards are best-effort
// and never change the response.
func (h *PrecheckHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitPrecheckRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Answers == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answers is required")
		return
	}

	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	// Completeness gate: scoring is only defined for validated submissions.
	validation := precheck.ValidateSubmission(req.Answers)
	if !validation.IsValid {
		middleware.JSONResponse(w, http.StatusBadRequest, models.IncompleteSubmissionResponse{
			Error:            "Incomplete submission",
			MissingQuestions: validation.MissingQuestions,
			UnknownQuestions: validation.UnknownQuestions,
		})
		return
	}

	result, err := precheck.Evaluate(req.Answers, h.rules)
	if err != nil {
		// Unrecognized answer values pass the presence check but fail here.
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	saved := &models.PrecheckResult{
		WorkspaceID: workspaceID,
		Answers:     req.Answers,
		Score:       result.Score,
		Outcome:     result.Outcome,
		Result:      result,
	}
	if err := h.store.SavePrecheckResult(saved); err != nil {
		slog.Error("failed to persist precheck result", "error", err, "workspace_id", workspaceID)
		saved.ID = ""
	}

	h.auditLog.Record(workspaceID, audit.PrecheckCompleted, saved.ID, map[string]any{
		"score":         result.Score,
		"result":        result.Outcome.String(),
		"answers_count": len(req.Answers),
	})

	slog.Info("precheck evaluated",
		"workspace_id", workspaceID,
		"score", result.Score,
		"outcome", result.Outcome.String(),
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitPrecheckResponse{
		Success:  true,
		ResultID: saved.ID,
		Result:   result,
	})
}

// GetResult handles GET /precheck/results/{id}
func (h *PrecheckHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	result, err := h.store.GetPrecheckResult(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Pre-check result not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
