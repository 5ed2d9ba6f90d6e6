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

type LocationHandler struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func NewLocationHandler(store *registry.Store, auditLog *audit.Logger, cfg cliparse.Config) *LocationHandler {
	return &LocationHandler{store: store, auditLog: auditLog, cfg: cfg}
}

func validateLocationRequest(req *models.LocationRequest) string {
	if req.Name == "" {
		return "name is required"
	}
	if req.Country == "" {
		return "country is required"
	}
	if req.Type == "" {
		req.Type = models.LocationDatacenter
	}
	if !oneOf(req.Type, models.LocationDatacenter, models.LocationOffice, models.LocationCloudRegion) {
		return "type must be datacenter, office, or cloud_region"
	}
	return ""
}

// List handles GET /registry/locations
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	locations, err := h.store.ListLocations(workspaceID, listFilter(r))
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, locations)
}

// Get handles GET /registry/locations/{id}
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	location, err := h.store.GetLocation(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Location not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, location)
}

// Create handles POST /registry/locations
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.LocationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateLocationRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	location := models.Location{
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Country:     req.Country,
		Type:        req.Type,
	}
	if err := h.store.CreateLocation(&location); err != nil {
		storeError(w, err, "")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("location", "created"), location.ID, map[string]any{"name": location.Name, "country": location.Country})

	middleware.JSONResponse(w, http.StatusCreated, location)
}

// Update handles PUT /registry/locations/{id}
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.LocationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateLocationRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	location, err := h.store.GetLocation(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Location not found")
		return
	}

	location.Name = req.Name
	location.Country = req.Country
	location.Type = req.Type
	if err := h.store.UpdateLocation(&location); err != nil {
		storeError(w, err, "Location not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("location", "updated"), location.ID, map[string]any{"name": location.Name})

	middleware.JSONResponse(w, http.StatusOK, location)
}

// Delete handles DELETE /registry/locations/{id}
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	id := r.PathValue("id")
	if err := h.store.DeleteLocation(workspaceID, id); err != nil {
		storeError(w, err, "Location not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("location", "deleted"), id, map[string]any{})

	w.WriteHeader(http.StatusNoContent)
}
