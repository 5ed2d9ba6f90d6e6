// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/testutil"
)

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t)
	handler := NewDashboardHandler(env.store, env.cfg)

	system := models.System{WorkspaceID: env.cfg.DefaultWorkspaceID, Name: "ERP", Hosting: models.HostingOnPrem, Status: models.SystemActive}
	if err := env.store.CreateSystem(&system); err != nil {
		t.Fatalf("Failed to create system: %v", err)
	}
	assessment := models.Assessment{WorkspaceID: env.cfg.DefaultWorkspaceID, Title: "ERP DPIA"}
	if err := env.store.CreateAssessment(&assessment); err != nil {
		t.Fatalf("Failed to create assessment: %v", err)
	}

	w := httptest.NewRecorder()
	handler.Summary(w, testutil.MakeRequest("GET", "/dashboard/summary", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var summary models.DashboardSummary
	testutil.AssertJSON(t, w, &summary)

	if summary.RegistryCounts["systems"] != 1 {
		t.Errorf("Expected 1 system, got %d", summary.RegistryCounts["systems"])
	}
	if summary.RegistryCounts["vendors"] != 0 {
		t.Errorf("Expected 0 vendors, got %d", summary.RegistryCounts["vendors"])
	}
	if summary.Assessments[models.StatusDraft] != 1 {
		t.Errorf("Expected 1 draft assessment, got %d", summary.Assessments[models.StatusDraft])
	}
	// No pre-check has run yet
	if summary.LatestPrecheck != nil {
		t.Errorf("Expected no latest precheck, got %v", *summary.LatestPrecheck)
	}
}

func TestAuditEventsList(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAuditHandler(env.auditLog, env.cfg)

	env.auditLog.Record(env.cfg.DefaultWorkspaceID, "system.created", "sys-1", map[string]any{"name": "ERP"})
	env.auditLog.Record(env.cfg.DefaultWorkspaceID, "system.deleted", "sys-1", map[string]any{})

	w := httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/audit/events", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var events []models.AuditEvent
	testutil.AssertJSON(t, w, &events)
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}

	w = httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/audit/events?limit=1", nil, nil))
	testutil.AssertStatus(t, w, 200)

	events = nil
	testutil.AssertJSON(t, w, &events)
	if len(events) != 1 {
		t.Errorf("Expected 1 event with limit=1, got %d", len(events))
	}

	w = httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/audit/events?limit=abc", nil, nil))
	testutil.AssertStatus(t, w, 400)
}
