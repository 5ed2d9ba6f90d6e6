// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/privacyops/dpia-platform/auth"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/db"
	"github.com/privacyops/dpia-platform/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema and the default workspace seeded. Each test gets its own
// database, so no cleanup between tests is needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// One connection keeps every statement on the same in-memory database.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.EnsureWorkspace(conn, cliparse.DefaultWorkspaceID, "default"); err != nil {
		t.Fatalf("Failed to seed default workspace: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               4800,
		DatabaseURL:        ":memory:",
		DatabaseType:       "sqlite",
		WorkspaceKeySalt:   "test-workspace-salt",
		DefaultWorkspaceID: cliparse.DefaultWorkspaceID,
		BaseURL:            "http://localhost:4800",
	}
}

// WorkspaceKey returns the valid key for a workspace under the test config.
func WorkspaceKey(workspaceID string) string {
	return auth.GenerateWorkspaceKey(workspaceID, GetTestConfig().WorkspaceKeySalt)
}

// CreateTestSystem inserts a system row and returns its ID.
func CreateTestSystem(t *testing.T, conn *sql.DB, workspaceID, name string) string {
	t.Helper()

	id := auth.NewID()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO system (id, workspace_id, name, description, owner, hosting, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'A test system', 'QA', $4, $5, $6, $7)
	`, id, workspaceID, name, models.HostingCloud, models.SystemActive, now, now)
	if err != nil {
		t.Fatalf("Failed to create test system: %v", err)
	}

	return id
}

// CreateTestAssessment inserts an assessment row and returns its ID.
func CreateTestAssessment(t *testing.T, conn *sql.DB, workspaceID, title, status string) string {
	t.Helper()

	id := auth.NewID()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO assessment (id, workspace_id, title, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, workspaceID, title, status, now, now)
	if err != nil {
		t.Fatalf("Failed to create test assessment: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
