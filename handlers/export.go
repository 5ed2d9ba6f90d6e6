// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/privacyops/dpia-platform/audit"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/export"
	"github.com/privacyops/dpia-platform/middleware"
	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/registry"
)

type ExportHandler struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func NewExportHandler(store *registry.Store, auditLog *audit.Logger, cfg cliparse.Config) *ExportHandler {
	return &ExportHandler{store: store, auditLog: auditLog, cfg: cfg}
}

// AssessmentDocument handles GET /assessments/{id}/export?format=pdf
func (h *ExportHandler) AssessmentDocument(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "pdf"
	}
	if format != "pdf" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unsupported export format")
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

	var precheckResult *models.PrecheckResult
	if assessment.PrecheckResultID != nil {
		result, err := h.store.GetPrecheckResult(workspaceID, *assessment.PrecheckResultID)
		switch {
		case err == nil:
			precheckResult = &result
		case errors.Is(err, registry.ErrNotFound):
			// Linked result was removed; the document just omits it.
		default:
			storeError(w, err, "")
			return
		}
	}

	// Render into memory first so a late failure never leaves a caller
	// with half a document and a 200 status.
	var buf bytes.Buffer
	bundle := models.AssessmentWithSteps{Assessment: assessment, Steps: steps}
	if err := export.AssessmentPDF(&buf, bundle, precheckResult); err != nil {
		slog.Error("pdf generation failed", "error", err, "assessment_id", assessment.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	h.auditLog.Record(workspaceID, audit.ExportGenerated, assessment.ID, map[string]any{"format": "pdf"})

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "dpia-"+assessment.ID+".pdf"))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// RegistryWorkbook handles GET /registry/export
func (h *ExportHandler) RegistryWorkbook(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	snapshot, err := h.loadSnapshot(workspaceID)
	if err != nil {
		storeError(w, err, "")
		return
	}

	var buf bytes.Buffer
	if err := export.RegistryWorkbook(&buf, snapshot); err != nil {
		slog.Error("workbook generation failed", "error", err, "workspace_id", workspaceID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	h.auditLog.Record(workspaceID, audit.ExportGenerated, workspaceID, map[string]any{"format": "xlsx"})

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="registry.xlsx"`)
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (h *ExportHandler) loadSnapshot(workspaceID string) (export.RegistrySnapshot, error) {
	var snapshot export.RegistrySnapshot
	var err error
	all := registry.ListFilter{Limit: 500}

	if snapshot.Systems, err = h.store.ListSystems(workspaceID, all); err != nil {
		return snapshot, err
	}
	if snapshot.Vendors, err = h.store.ListVendors(workspaceID, all); err != nil {
		return snapshot, err
	}
	if snapshot.Categories, err = h.store.ListDataCategories(workspaceID, all); err != nil {
		return snapshot, err
	}
	if snapshot.Activities, err = h.store.ListActivities(workspaceID, all); err != nil {
		return snapshot, err
	}
	if snapshot.Locations, err = h.store.ListLocations(workspaceID, all); err != nil {
		return snapshot, err
	}
	if snapshot.Jurisdictions, err = h.store.ListJurisdictions(workspaceID, all); err != nil {
		return snapshot, err
	}
	if snapshot.Flows, err = h.store.ListDataFlows(workspaceID, all); err != nil {
		return snapshot, err
	}
	return snapshot, nil
}
