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

type JurisdictionHandler struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func NewJurisdictionHandler(store *registry.Store, auditLog *audit.Logger, cfg cliparse.Config) *JurisdictionHandler {
	return &JurisdictionHandler{store: store, auditLog: auditLog, cfg: cfg}
}

func validateJurisdictionRequest(req *models.JurisdictionRequest) string {
	if req.Name == "" {
		return "name is required"
	}
	if req.Country == "" {
		return "country is required"
	}
	return ""
}

// List handles GET /registry/jurisdictions
func (h *JurisdictionHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	jurisdictions, err := h.store.ListJurisdictions(workspaceID, listFilter(r))
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, jurisdictions)
}

// Get handles GET /registry/jurisdictions/{id}
func (h *JurisdictionHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	jurisdiction, err := h.store.GetJurisdiction(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Jurisdiction not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, jurisdiction)
}

// Create handles POST /registry/jurisdictions
func (h *JurisdictionHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.JurisdictionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateJurisdictionRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	jurisdiction := models.Jurisdiction{
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Country:     req.Country,
		Adequacy:    req.Adequacy,
		Notes:       req.Notes,
	}
	if err := h.store.CreateJurisdiction(&jurisdiction); err != nil {
		storeError(w, err, "")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("jurisdiction", "created"), jurisdiction.ID, map[string]any{"name": jurisdiction.Name, "adequacy": jurisdiction.Adequacy})

	middleware.JSONResponse(w, http.StatusCreated, jurisdiction)
}

// Update handles PUT /registry/jurisdictions/{id}
func (h *JurisdictionHandler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.JurisdictionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateJurisdictionRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	jurisdiction, err := h.store.GetJurisdiction(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Jurisdiction not found")
		return
	}

	jurisdiction.Name = req.Name
	jurisdiction.Country = req.Country
	jurisdiction.Adequacy = req.Adequacy
	jurisdiction.Notes = req.Notes
	if err := h.store.UpdateJurisdiction(&jurisdiction); err != nil {
		storeError(w, err, "Jurisdiction not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("jurisdiction", "updated"), jurisdiction.ID, map[string]any{"name": jurisdiction.Name})

	middleware.JSONResponse(w, http.StatusOK, jurisdiction)
}

// Delete handles DELETE /registry/jurisdictions/{id}
func (h *JurisdictionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	id := r.PathValue("id")
	if err := h.store.DeleteJurisdiction(workspaceID, id); err != nil {
		storeError(w, err, "Jurisdiction not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("jurisdiction", "deleted"), id, map[string]any{})

	w.WriteHeader(http.StatusNoContent)
}
