// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/privacyops/dpia-platform/auth"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/middleware"
	"github.com/privacyops/dpia-platform/registry"
)

// workspaceFor resolves the request's tenant, writing a 400 on a bad header.
func workspaceFor(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (string, bool) {
	id, err := middleware.WorkspaceID(r, cfg)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid workspace ID")
		return "", false
	}
	return id, true
}

// requireWorkspaceKey guards mutating routes with the X-Workspace-Key header.
func requireWorkspaceKey(w http.ResponseWriter, r *http.Request, workspaceID string, cfg cliparse.Config) bool {
	key := r.Header.Get("X-Workspace-Key")
	if err := auth.ValidateWorkspaceKey(workspaceID, key, cfg.WorkspaceKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid workspace key")
		return false
	}
	return true
}

// storeError maps registry errors onto HTTP responses. Database failures
// surface as 500s; they are never papered over with substitute data.
func storeError(w http.ResponseWriter, err error, notFoundMsg string) {
	if errors.Is(err, registry.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, notFoundMsg)
		return
	}
	slog.Error("database error", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}

// listFilter reads the q and limit query parameters.
func listFilter(r *http.Request) registry.ListFilter {
	f := registry.ListFilter{Query: r.URL.Query().Get("q")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			f.Limit = limit
		}
	}
	return f
}

// oneOf reports whether value is in the allowed set.
func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
