// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/middleware"
	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/registry"
)

type DashboardHandler struct {
	store *registry.Store
	cfg   cliparse.Config
}

func NewDashboardHandler(store *registry.Store, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{store: store, cfg: cfg}
}

// Summary handles GET /dashboard/summary
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	registryCounts, err := h.store.RegistryCounts(workspaceID)
	if err != nil {
		storeError(w, err, "")
		return
	}
	assessmentCounts, err := h.store.AssessmentCounts(workspaceID)
	if err != nil {
		storeError(w, err, "")
		return
	}
	auditTotal, err := h.store.AuditEventCount(workspaceID)
	if err != nil {
		storeError(w, err, "")
		return
	}

	var latest *string
	outcome, err := h.store.LatestPrecheckOutcome(workspaceID)
	switch {
	case err == nil:
		latest = &outcome
	case errors.Is(err, registry.ErrNotFound):
		// No pre-check run yet.
	default:
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DashboardSummary{
		Workspace:       workspaceID,
		RegistryCounts:  registryCounts,
		Assessments:     assessmentCounts,
		LatestPrecheck:  latest,
		TotalAuditTrail: auditTotal,
		GeneratedAt:     time.Now().UTC(),
	})
}
