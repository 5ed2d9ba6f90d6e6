// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/testutil"
)

func TestAssessmentExportPDF(t *testing.T) {
	env := newTestEnv(t)
	handler := NewExportHandler(env.store, env.auditLog, env.cfg)

	assessment := models.Assessment{WorkspaceID: env.cfg.DefaultWorkspaceID, Title: "Export me"}
	if err := env.store.CreateAssessment(&assessment); err != nil {
		t.Fatalf("Failed to create assessment: %v", err)
	}
	payload, _ := json.Marshal(map[string]string{"summary": "CCTV rollout"})
	if err := env.store.UpsertStep(env.cfg.DefaultWorkspaceID, assessment.ID, "context", payload); err != nil {
		t.Fatalf("Failed to record step: %v", err)
	}

	req := testutil.MakeRequest("GET", "/assessments/"+assessment.ID+"/export?format=pdf", nil, nil)
	req.SetPathValue("id", assessment.ID)
	w := httptest.NewRecorder()
	handler.AssessmentDocument(w, req)

	testutil.AssertStatus(t, w, 200)
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Expected application/pdf, got %s", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("Response body is not a PDF document")
	}
}

func TestAssessmentExportUnsupportedFormat(t *testing.T) {
	env := newTestEnv(t)
	handler := NewExportHandler(env.store, env.auditLog, env.cfg)

	assessment := models.Assessment{WorkspaceID: env.cfg.DefaultWorkspaceID, Title: "Wrong format"}
	if err := env.store.CreateAssessment(&assessment); err != nil {
		t.Fatalf("Failed to create assessment: %v", err)
	}

	req := testutil.MakeRequest("GET", "/assessments/"+assessment.ID+"/export?format=docx", nil, nil)
	req.SetPathValue("id", assessment.ID)
	w := httptest.NewRecorder()
	handler.AssessmentDocument(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestAssessmentExportNotFound(t *testing.T) {
	env := newTestEnv(t)
	handler := NewExportHandler(env.store, env.auditLog, env.cfg)

	req := testutil.MakeRequest("GET", "/assessments/ghost/export", nil, nil)
	req.SetPathValue("id", "ghost")
	w := httptest.NewRecorder()
	handler.AssessmentDocument(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestRegistryExportXLSX(t *testing.T) {
	env := newTestEnv(t)
	handler := NewExportHandler(env.store, env.auditLog, env.cfg)

	system := models.System{WorkspaceID: env.cfg.DefaultWorkspaceID, Name: "Billing", Hosting: models.HostingCloud, Status: models.SystemActive}
	if err := env.store.CreateSystem(&system); err != nil {
		t.Fatalf("Failed to create system: %v", err)
	}

	w := httptest.NewRecorder()
	handler.RegistryWorkbook(w, testutil.MakeRequest("GET", "/registry/export", nil, nil))

	testutil.AssertStatus(t, w, 200)
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Unexpected content type: %s", ct)
	}
	// XLSX files are zip archives
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Error("Response body is not an XLSX workbook")
	}
}
