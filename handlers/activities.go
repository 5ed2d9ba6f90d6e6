// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/privacyops/dpia-platform/audit"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/middleware"
	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/registry"
)

type ActivityHandler struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func NewActivityHandler(store *registry.Store, auditLog *audit.Logger, cfg cliparse.Config) *ActivityHandler {
	return &ActivityHandler{store: store, auditLog: auditLog, cfg: cfg}
}

func validateActivityRequest(req *models.ProcessingActivityRequest) string {
	if req.Name == "" {
		return "name is required"
	}
	if req.LawfulBasis == "" {
		return "lawful_basis is required"
	}
	if !oneOf(req.LawfulBasis,
		models.BasisConsent, models.BasisContract, models.BasisLegalObligation,
		models.BasisVitalInterests, models.BasisPublicTask, models.BasisLegitimateInterests) {
		return "lawful_basis is not a recognized Article 6 basis"
	}
	return ""
}

// resolveSystemLink verifies an optional system reference belongs to the workspace.
func (h *ActivityHandler) resolveSystemLink(workspaceID string, systemID *string) (string, error) {
	if systemID == nil || *systemID == "" {
		return "", nil
	}
	if _, err := h.store.GetSystem(workspaceID, *systemID); err != nil {
		return "system_id does not reference a known system", err
	}
	return "", nil
}

// List handles GET /registry/processing-activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	activities, err := h.store.ListActivities(workspaceID, listFilter(r))
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, activities)
}

// Get handles GET /registry/processing-activities/{id}
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	activity, err := h.store.GetActivity(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Processing activity not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, activity)
}

// Create handles POST /registry/processing-activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.ProcessingActivityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateActivityRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if msg, err := h.resolveSystemLink(workspaceID, req.SystemID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	activity := models.ProcessingActivity{
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Purpose:     req.Purpose,
		LawfulBasis: req.LawfulBasis,
		SystemID:    req.SystemID,
	}
	if err := h.store.CreateActivity(&activity); err != nil {
		storeError(w, err, "")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("processing_activity", "created"), activity.ID, map[string]any{"name": activity.Name, "lawful_basis": activity.LawfulBasis})

	middleware.JSONResponse(w, http.StatusCreated, activity)
}

// Update handles PUT /registry/processing-activities/{id}
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.ProcessingActivityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateActivityRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if msg, err := h.resolveSystemLink(workspaceID, req.SystemID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	activity, err := h.store.GetActivity(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Processing activity not found")
		return
	}

	activity.Name = req.Name
	activity.Purpose = req.Purpose
	activity.LawfulBasis = req.LawfulBasis
	activity.SystemID = req.SystemID
	if err := h.store.UpdateActivity(&activity); err != nil {
		storeError(w, err, "Processing activity not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("processing_activity", "updated"), activity.ID, map[string]any{"name": activity.Name})

	middleware.JSONResponse(w, http.StatusOK, activity)
}

// Delete handles DELETE /registry/processing-activities/{id}
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	id := r.PathValue("id")
	if err := h.store.DeleteActivity(workspaceID, id); err != nil {
		storeError(w, err, "Processing activity not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("processing_activity", "deleted"), id, map[string]any{})

	w.WriteHeader(http.StatusNoContent)
}
