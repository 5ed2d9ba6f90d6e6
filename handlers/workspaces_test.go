// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/privacyops/dpia-platform/auth"
	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/testutil"
)

func TestWorkspaceCreate(t *testing.T) {
	env := newTestEnv(t)
	handler := NewWorkspaceHandler(env.store, env.cfg)

	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/workspaces", models.CreateWorkspaceRequest{Name: "acme"}, nil))
	testutil.AssertStatus(t, w, 201)

	var resp models.CreateWorkspaceResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Workspace.ID == "" || resp.Workspace.Name != "acme" {
		t.Errorf("Unexpected workspace: %+v", resp.Workspace)
	}
	// The returned key must validate against the new workspace
	if err := auth.ValidateWorkspaceKey(resp.Workspace.ID, resp.WorkspaceKey, env.cfg.WorkspaceKeySalt); err != nil {
		t.Errorf("Returned workspace key does not validate: %v", err)
	}
	if resp.APIBaseURL != env.cfg.BaseURL {
		t.Errorf("Expected base URL %s, got %s", env.cfg.BaseURL, resp.APIBaseURL)
	}
}

func TestWorkspaceCreateRequiresName(t *testing.T) {
	env := newTestEnv(t)
	handler := NewWorkspaceHandler(env.store, env.cfg)

	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/workspaces", models.CreateWorkspaceRequest{}, nil))
	testutil.AssertStatus(t, w, 400)
}

func TestWorkspaceGetMe(t *testing.T) {
	env := newTestEnv(t)
	handler := NewWorkspaceHandler(env.store, env.cfg)

	// Default workspace resolves with no header
	w := httptest.NewRecorder()
	handler.GetMe(w, testutil.MakeRequest("GET", "/workspaces/me", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var workspace models.Workspace
	testutil.AssertJSON(t, w, &workspace)
	if workspace.ID != env.cfg.DefaultWorkspaceID {
		t.Errorf("Expected default workspace, got %s", workspace.ID)
	}

	// A malformed workspace header is rejected
	w = httptest.NewRecorder()
	handler.GetMe(w, testutil.MakeRequest("GET", "/workspaces/me", nil, map[string]string{"X-Workspace-ID": "not-a-uuid"}))
	testutil.AssertStatus(t, w, 400)
}
