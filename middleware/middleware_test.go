// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/models"
)

func testConfig() cliparse.Config {
	return cliparse.Config{
		DefaultWorkspaceID: cliparse.DefaultWorkspaceID,
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %s", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusBadRequest, "name is required")

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Error != http.StatusText(http.StatusBadRequest) {
		t.Errorf("Unexpected error field: %s", body.Error)
	}
	if body.Message != "name is required" {
		t.Errorf("Unexpected message: %s", body.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{"name":"CRM"}`)))

	var parsed struct {
		Name string `json:"name"`
	}
	if err := ParseJSONBody(req, &parsed); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if parsed.Name != "CRM" {
		t.Errorf("Unexpected name: %s", parsed.Name)
	}

	req = httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	if err := ParseJSONBody(req, &parsed); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestWorkspaceIDDefault(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	id, err := WorkspaceID(req, testConfig())
	if err != nil {
		t.Fatalf("WorkspaceID failed: %v", err)
	}
	if id != cliparse.DefaultWorkspaceID {
		t.Errorf("Expected default workspace, got %s", id)
	}
}

func TestWorkspaceIDHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Workspace-ID", "11111111-2222-3333-4444-555555555555")

	id, err := WorkspaceID(req, testConfig())
	if err != nil {
		t.Fatalf("WorkspaceID failed: %v", err)
	}
	if id != "11111111-2222-3333-4444-555555555555" {
		t.Errorf("Unexpected workspace %s", id)
	}
}

func TestWorkspaceIDInvalid(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Workspace-ID", "not-a-uuid")

	if _, err := WorkspaceID(req, testConfig()); err == nil {
		t.Error("Expected error for invalid workspace header")
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/registry/systems", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Unexpected allow-origin %q", got)
	}
}
