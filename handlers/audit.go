// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/privacyops/dpia-platform/audit"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/middleware"
)

type AuditHandler struct {
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func NewAuditHandler(auditLog *audit.Logger, cfg cliparse.Config) *AuditHandler {
	return &AuditHandler{auditLog: auditLog, cfg: cfg}
}

// List handles GET /audit/events?limit=N
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	events, err := h.auditLog.Recent(workspaceID, limit)
	if err != nil {
		storeError(w, err, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}
