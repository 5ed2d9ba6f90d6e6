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

type DataCategoryHandler struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func NewDataCategoryHandler(store *registry.Store, auditLog *audit.Logger, cfg cliparse.Config) *DataCategoryHandler {
	return &DataCategoryHandler{store: store, auditLog: auditLog, cfg: cfg}
}

func validateDataCategoryRequest(req *models.DataCategoryRequest) string {
	if req.Name == "" {
		return "name is required"
	}
	if req.Sensitivity == "" {
		req.Sensitivity = models.SensitivityNormal
	}
	if !oneOf(req.Sensitivity, models.SensitivityNormal, models.SensitivitySpecial, models.SensitivityCriminal) {
		return "sensitivity must be normal, special, or criminal"
	}
	return ""
}

// List handles GET /registry/data-categories
func (h *DataCategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	categories, err := h.store.ListDataCategories(workspaceID, listFilter(r))
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, categories)
}

// Get handles GET /registry/data-categories/{id}
func (h *DataCategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	category, err := h.store.GetDataCategory(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Data category not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, category)
}

// Create handles POST /registry/data-categories
func (h *DataCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.DataCategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateDataCategoryRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	category := models.DataCategory{
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Description: req.Description,
		Sensitivity: req.Sensitivity,
		Retention:   req.Retention,
	}
	if err := h.store.CreateDataCategory(&category); err != nil {
		storeError(w, err, "")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("data_category", "created"), category.ID, map[string]any{"name": category.Name, "sensitivity": category.Sensitivity})

	middleware.JSONResponse(w, http.StatusCreated, category)
}

// Update handles PUT /registry/data-categories/{id}
func (h *DataCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.DataCategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateDataCategoryRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	category, err := h.store.GetDataCategory(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Data category not found")
		return
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Sensitivity = req.Sensitivity
	category.Retention = req.Retention
	if err := h.store.UpdateDataCategory(&category); err != nil {
		storeError(w, err, "Data category not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("data_category", "updated"), category.ID, map[string]any{"name": category.Name})

	middleware.JSONResponse(w, http.StatusOK, category)
}

// Delete handles DELETE /registry/data-categories/{id}
func (h *DataCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	id := r.PathValue("id")
	if err := h.store.DeleteDataCategory(workspaceID, id); err != nil {
		storeError(w, err, "Data category not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("data_category", "deleted"), id, map[string]any{})

	w.WriteHeader(http.StatusNoContent)
}
