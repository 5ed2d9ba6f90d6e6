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
	"github.com/privacyops/dpia-platform/registry"
)

type SystemHandler struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func NewSystemHandler(store *registry.Store, auditLog *audit.Logger, cfg cliparse.Config) *SystemHandler {
	return &SystemHandler{store: store, auditLog: auditLog, cfg: cfg}
}

func validateSystemRequest(req *models.SystemRequest) string {
	if req.Name == "" {
		return "name is required"
	}
	if req.Hosting == "" {
		req.Hosting = models.HostingCloud
	}
	if !oneOf(req.Hosting, models.HostingCloud, models.HostingOnPrem, models.HostingHybrid) {
		return "hosting must be cloud, on_prem, or hybrid"
	}
	if req.Status == "" {
		req.Status = models.SystemActive
	}
	if !oneOf(req.Status, models.SystemPlanned, models.SystemActive, models.SystemRetired) {
		return "status must be planned, active, or retired"
	}
	return ""
}

// List handles GET /registry/systems
func (h *SystemHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	systems, err := h.store.ListSystems(workspaceID, listFilter(r))
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, systems)
}

// Get handles GET /registry/systems/{id}
func (h *SystemHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	system, err := h.store.GetSystem(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "System not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, system)
}

// Create handles POST /registry/systems
func (h *SystemHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.SystemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateSystemRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	system := models.System{
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Description: req.Description,
		Owner:       req.Owner,
		Hosting:     req.Hosting,
		Status:      req.Status,
	}
	if err := h.store.CreateSystem(&system); err != nil {
		storeError(w, err, "")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("system", "created"), system.ID, map[string]any{"name": system.Name})
	slog.Info("system created", "workspace_id", workspaceID, "system_id", system.ID)

	middleware.JSONResponse(w, http.StatusCreated, system)
}

// Update handles PUT /registry/systems/{id}
func (h *SystemHandler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.SystemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateSystemRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	system, err := h.store.GetSystem(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "System not found")
		return
	}

	system.Name = req.Name
	system.Description = req.Description
	system.Owner = req.Owner
	system.Hosting = req.Hosting
	system.Status = req.Status
	if err := h.store.UpdateSystem(&system); err != nil {
		storeError(w, err, "System not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("system", "updated"), system.ID, map[string]any{"name": system.Name})

	middleware.JSONResponse(w, http.StatusOK, system)
}

// Delete handles DELETE /registry/systems/{id}
func (h *SystemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	id := r.PathValue("id")
	if err := h.store.DeleteSystem(workspaceID, id); err != nil {
		storeError(w, err, "System not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("system", "deleted"), id, map[string]any{})
	slog.Info("system deleted", "workspace_id", workspaceID, "system_id", id)

	w.WriteHeader(http.StatusNoContent)
}
