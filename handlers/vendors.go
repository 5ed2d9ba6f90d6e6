// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/privacyops/dpia-platform/audit"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/middleware"
	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/registry"
)

type VendorHandler struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func NewVendorHandler(store *registry.Store, auditLog *audit.Logger, cfg cliparse.Config) *VendorHandler {
	return &VendorHandler{store: store, auditLog: auditLog, cfg: cfg}
}

func validateVendorRequest(req *models.VendorRequest) string {
	if req.Name == "" {
		return "name is required"
	}
	if req.ContactEmail != "" && !strings.Contains(req.ContactEmail, "@") {
		return "contact_email is not a valid address"
	}
	return ""
}

// List handles GET /registry/vendors
func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	vendors, err := h.store.ListVendors(workspaceID, listFilter(r))
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vendors)
}

// Get handles GET /registry/vendors/{id}
func (h *VendorHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	vendor, err := h.store.GetVendor(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Vendor not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vendor)
}

// Create handles POST /registry/vendors
func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.VendorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateVendorRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	vendor := models.Vendor{
		WorkspaceID:  workspaceID,
		Name:         req.Name,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		Country:      req.Country,
		DPASigned:    req.DPASigned,
	}
	if err := h.store.CreateVendor(&vendor); err != nil {
		storeError(w, err, "")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("vendor", "created"), vendor.ID, map[string]any{"name": vendor.Name})

	middleware.JSONResponse(w, http.StatusCreated, vendor)
}

// Update handles PUT /registry/vendors/{id}
func (h *VendorHandler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.VendorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateVendorRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	vendor, err := h.store.GetVendor(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Vendor not found")
		return
	}

	vendor.Name = req.Name
	vendor.Description = req.Description
	vendor.ContactEmail = req.ContactEmail
	vendor.Country = req.Country
	vendor.DPASigned = req.DPASigned
	if err := h.store.UpdateVendor(&vendor); err != nil {
		storeError(w, err, "Vendor not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("vendor", "updated"), vendor.ID, map[string]any{"name": vendor.Name})

	middleware.JSONResponse(w, http.StatusOK, vendor)
}

// Delete handles DELETE /registry/vendors/{id}
func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	id := r.PathValue("id")
	if err := h.store.DeleteVendor(workspaceID, id); err != nil {
		storeError(w, err, "Vendor not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("vendor", "deleted"), id, map[string]any{})

	w.WriteHeader(http.StatusNoContent)
}
