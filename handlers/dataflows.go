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

type DataFlowHandler struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func NewDataFlowHandler(store *registry.Store, auditLog *audit.Logger, cfg cliparse.Config) *DataFlowHandler {
	return &DataFlowHandler{store: store, auditLog: auditLog, cfg: cfg}
}

func validateDataFlowRequest(req *models.DataFlowRequest) string {
	if req.Name == "" {
		return "name is required"
	}
	if req.SourceSystemID == "" {
		return "source_system_id is required"
	}
	if !oneOf(req.TargetKind, models.TargetSystem, models.TargetVendor) {
		return "target_kind must be system or vendor"
	}
	if req.TargetID == "" {
		return "target_id is required"
	}
	if req.Transfer == "" {
		req.Transfer = models.TransferNone
	}
	if !oneOf(req.Transfer, models.TransferAdequacy, models.TransferSCCs, models.TransferBCRs, models.TransferDerogation, models.TransferNone) {
		return "transfer must be adequacy, sccs, bcrs, derogation, or none"
	}
	return ""
}

// resolveEndpoints checks the source system and the target against the workspace.
func (h *DataFlowHandler) resolveEndpoints(workspaceID string, req *models.DataFlowRequest) string {
	if _, err := h.store.GetSystem(workspaceID, req.SourceSystemID); err != nil {
		return "source_system_id does not reference a known system"
	}
	switch req.TargetKind {
	case models.TargetSystem:
		if _, err := h.store.GetSystem(workspaceID, req.TargetID); err != nil {
			return "target_id does not reference a known system"
		}
	case models.TargetVendor:
		if _, err := h.store.GetVendor(workspaceID, req.TargetID); err != nil {
			return "target_id does not reference a known vendor"
		}
	}
	return ""
}

// List handles GET /registry/data-flows
func (h *DataFlowHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	flows, err := h.store.ListDataFlows(workspaceID, listFilter(r))
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, flows)
}

// Get handles GET /registry/data-flows/{id}
func (h *DataFlowHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	flow, err := h.store.GetDataFlow(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Data flow not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, flow)
}

// Create handles POST /registry/data-flows
func (h *DataFlowHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.DataFlowRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateDataFlowRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if msg := h.resolveEndpoints(workspaceID, &req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	flow := models.DataFlow{
		WorkspaceID:    workspaceID,
		Name:           req.Name,
		SourceSystemID: req.SourceSystemID,
		TargetKind:     req.TargetKind,
		TargetID:       req.TargetID,
		Transfer:       req.Transfer,
		CrossBorder:    req.CrossBorder,
	}
	if err := h.store.CreateDataFlow(&flow); err != nil {
		storeError(w, err, "")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("data_flow", "created"), flow.ID, map[string]any{"name": flow.Name, "transfer": flow.Transfer})

	middleware.JSONResponse(w, http.StatusCreated, flow)
}

// Update handles PUT /registry/data-flows/{id}
func (h *DataFlowHandler) Update(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	var req models.DataFlowRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if msg := validateDataFlowRequest(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if msg := h.resolveEndpoints(workspaceID, &req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	flow, err := h.store.GetDataFlow(workspaceID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "Data flow not found")
		return
	}

	flow.Name = req.Name
	flow.SourceSystemID = req.SourceSystemID
	flow.TargetKind = req.TargetKind
	flow.TargetID = req.TargetID
	flow.Transfer = req.Transfer
	flow.CrossBorder = req.CrossBorder
	if err := h.store.UpdateDataFlow(&flow); err != nil {
		storeError(w, err, "Data flow not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("data_flow", "updated"), flow.ID, map[string]any{"name": flow.Name})

	middleware.JSONResponse(w, http.StatusOK, flow)
}

// Delete handles DELETE /registry/data-flows/{id}
func (h *DataFlowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}
	if !requireWorkspaceKey(w, r, workspaceID, h.cfg) {
		return
	}

	id := r.PathValue("id")
	if err := h.store.DeleteDataFlow(workspaceID, id); err != nil {
		storeError(w, err, "Data flow not found")
		return
	}

	h.auditLog.Record(workspaceID, audit.EntityEvent("data_flow", "deleted"), id, map[string]any{})

	w.WriteHeader(http.StatusNoContent)
}
