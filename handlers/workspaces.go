// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/privacyops/dpia-platform/auth"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/middleware"
	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/registry"
)

type WorkspaceHandler struct {
	store *registry.Store
	cfg   cliparse.Config
}

func NewWorkspaceHandler(store *registry.Store, cfg cliparse.Config) *WorkspaceHandler {
	return &WorkspaceHandler{store: store, cfg: cfg}
}

// Create handles POST /workspaces. The workspace key is derived from the
// new ID and returned exactly once; it is never stored.
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWorkspaceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	workspace := models.Workspace{Name: req.Name}
	if err := h.store.CreateWorkspace(&workspace); err != nil {
		storeError(w, err, "")
		return
	}

	slog.Info("workspace created", "workspace_id", workspace.ID, "name", workspace.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateWorkspaceResponse{
		Workspace:    workspace,
		WorkspaceKey: auth.GenerateWorkspaceKey(workspace.ID, h.cfg.WorkspaceKeySalt),
		APIBaseURL:   h.cfg.BaseURL,
	})
}

// GetMe handles GET /workspaces/me, resolving the caller's workspace
// from the X-Workspace-ID header.
func (h *WorkspaceHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFor(w, r, h.cfg)
	if !ok {
		return
	}

	workspace, err := h.store.GetWorkspace(workspaceID)
	if err != nil {
		storeError(w, err, "Workspace not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, workspace)
}
