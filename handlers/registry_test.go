// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/testutil"
)

func TestSystemCRUDOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	handler := NewSystemHandler(env.store, env.auditLog, env.cfg)

	createBody := models.SystemRequest{Name: "CRM", Owner: "sales", Hosting: "cloud"}

	// Mutations without a workspace key are rejected
	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/registry/systems", createBody, nil))
	testutil.AssertStatus(t, w, 401)

	// Create
	w = httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/registry/systems", createBody, authHeaders()))
	testutil.AssertStatus(t, w, 201)
	var created models.System
	testutil.AssertJSON(t, w, &created)
	if created.ID == "" || created.Status != models.SystemActive {
		t.Errorf("Unexpected created system: %+v", created)
	}

	// List
	w = httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/registry/systems", nil, nil))
	testutil.AssertStatus(t, w, 200)
	var systems []models.System
	testutil.AssertJSON(t, w, &systems)
	if len(systems) != 1 {
		t.Errorf("Expected 1 system, got %d", len(systems))
	}

	// Get
	req := testutil.MakeRequest("GET", "/registry/systems/"+created.ID, nil, nil)
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, 200)

	// Update
	updateBody := models.SystemRequest{Name: "CRM v2", Hosting: "hybrid", Status: "retired"}
	req = testutil.MakeRequest("PUT", "/registry/systems/"+created.ID, updateBody, authHeaders())
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Update(w, req)
	testutil.AssertStatus(t, w, 200)
	var updated models.System
	testutil.AssertJSON(t, w, &updated)
	if updated.Name != "CRM v2" || updated.Hosting != models.HostingHybrid {
		t.Errorf("Update not applied: %+v", updated)
	}

	// Delete
	req = testutil.MakeRequest("DELETE", "/registry/systems/"+created.ID, nil, authHeaders())
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, 204)

	// Gone
	req = testutil.MakeRequest("GET", "/registry/systems/"+created.ID, nil, nil)
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, 404)
}

func TestSystemValidation(t *testing.T) {
	env := newTestEnv(t)
	handler := NewSystemHandler(env.store, env.auditLog, env.cfg)

	tests := []struct {
		name string
		body models.SystemRequest
	}{
		{"missing name", models.SystemRequest{Hosting: "cloud"}},
		{"bad hosting", models.SystemRequest{Name: "X", Hosting: "mainframe"}},
		{"bad status", models.SystemRequest{Name: "X", Status: "zombie"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Create(w, testutil.MakeRequest("POST", "/registry/systems", tt.body, authHeaders()))
			testutil.AssertStatus(t, w, 400)
		})
	}
}

func TestActivityLawfulBasisValidation(t *testing.T) {
	env := newTestEnv(t)
	handler := NewActivityHandler(env.store, env.auditLog, env.cfg)

	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/registry/processing-activities",
		models.ProcessingActivityRequest{Name: "Marketing", LawfulBasis: "vibes"}, authHeaders()))
	testutil.AssertStatus(t, w, 400)

	w = httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/registry/processing-activities",
		models.ProcessingActivityRequest{Name: "Marketing", LawfulBasis: models.BasisConsent}, authHeaders()))
	testutil.AssertStatus(t, w, 201)
}

func TestActivityRejectsUnknownSystemLink(t *testing.T) {
	env := newTestEnv(t)
	handler := NewActivityHandler(env.store, env.auditLog, env.cfg)

	ghost := "not-a-real-system"
	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/registry/processing-activities",
		models.ProcessingActivityRequest{Name: "Billing", LawfulBasis: models.BasisContract, SystemID: &ghost}, authHeaders()))
	testutil.AssertStatus(t, w, 400)
}

func TestDataFlowEndpointChecks(t *testing.T) {
	env := newTestEnv(t)
	flowHandler := NewDataFlowHandler(env.store, env.auditLog, env.cfg)

	// A flow whose source system does not exist is rejected
	w := httptest.NewRecorder()
	flowHandler.Create(w, testutil.MakeRequest("POST", "/registry/data-flows", models.DataFlowRequest{
		Name:           "export to ghost",
		SourceSystemID: "missing",
		TargetKind:     models.TargetVendor,
		TargetID:       "also-missing",
	}, authHeaders()))
	testutil.AssertStatus(t, w, 400)

	// Wire up a real system and vendor, then the flow is accepted
	system := models.System{WorkspaceID: env.cfg.DefaultWorkspaceID, Name: "HR", Hosting: models.HostingCloud, Status: models.SystemActive}
	if err := env.store.CreateSystem(&system); err != nil {
		t.Fatalf("Failed to create system: %v", err)
	}
	vendor := models.Vendor{WorkspaceID: env.cfg.DefaultWorkspaceID, Name: "Payroll Inc", Country: "US"}
	if err := env.store.CreateVendor(&vendor); err != nil {
		t.Fatalf("Failed to create vendor: %v", err)
	}

	w = httptest.NewRecorder()
	flowHandler.Create(w, testutil.MakeRequest("POST", "/registry/data-flows", models.DataFlowRequest{
		Name:           "payroll export",
		SourceSystemID: system.ID,
		TargetKind:     models.TargetVendor,
		TargetID:       vendor.ID,
		Transfer:       models.TransferSCCs,
		CrossBorder:    true,
	}, authHeaders()))
	testutil.AssertStatus(t, w, 201)

	var flow models.DataFlow
	testutil.AssertJSON(t, w, &flow)
	if flow.Transfer != models.TransferSCCs || !flow.CrossBorder {
		t.Errorf("Unexpected flow: %+v", flow)
	}
}

func TestDataFlowTargetKindValidation(t *testing.T) {
	env := newTestEnv(t)
	handler := NewDataFlowHandler(env.store, env.auditLog, env.cfg)

	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/registry/data-flows", models.DataFlowRequest{
		Name:           "bad target",
		SourceSystemID: "x",
		TargetKind:     "satellite",
		TargetID:       "y",
	}, authHeaders()))
	testutil.AssertStatus(t, w, 400)
}
