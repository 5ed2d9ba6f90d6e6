// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/testutil"
)

func createDraft(t *testing.T, handler *AssessmentHandler, title string) models.Assessment {
	t.Helper()

	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/assessments", models.CreateAssessmentRequest{Title: title}, authHeaders()))
	testutil.AssertStatus(t, w, 201)

	var created models.Assessment
	testutil.AssertJSON(t, w, &created)
	return created
}

func putStep(t *testing.T, handler *AssessmentHandler, id, step string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	req := testutil.MakeRequest("PUT", "/assessments/"+id+"/steps/"+step,
		models.UpdateStepRequest{Payload: raw}, authHeaders())
	req.SetPathValue("id", id)
	req.SetPathValue("step", step)

	w := httptest.NewRecorder()
	handler.UpdateStep(w, req)
	return w
}

func TestWizardLifecycle(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAssessmentHandler(env.store, env.auditLog, env.cfg)

	created := createDraft(t, handler, "HR analytics DPIA")
	if created.Status != models.StatusDraft {
		t.Fatalf("Expected draft, got %s", created.Status)
	}

	// Recording a step moves the assessment to in_progress
	w := putStep(t, handler, created.ID, "context", map[string]string{"summary": "HR analytics rollout"})
	testutil.AssertStatus(t, w, 200)
	var bundle models.AssessmentWithSteps
	testutil.AssertJSON(t, w, &bundle)
	if bundle.Assessment.Status != models.StatusInProgress {
		t.Errorf("Expected in_progress, got %s", bundle.Assessment.Status)
	}
	if len(bundle.Steps) != 1 || bundle.Steps[0].Name != "context" {
		t.Errorf("Unexpected steps: %+v", bundle.Steps)
	}

	// Completion is rejected while steps are missing
	req := testutil.MakeRequest("POST", "/assessments/"+created.ID+"/complete", nil, authHeaders())
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Complete(w, req)
	testutil.AssertStatus(t, w, 400)

	var incomplete struct {
		Error        string   `json:"error"`
		MissingSteps []string `json:"missing_steps"`
	}
	testutil.AssertJSON(t, w, &incomplete)
	if len(incomplete.MissingSteps) != 5 {
		t.Errorf("Expected 5 missing steps, got %v", incomplete.MissingSteps)
	}

	// Fill in the rest
	for _, step := range models.AssessmentSteps[1:] {
		w = putStep(t, handler, created.ID, step, map[string]string{"note": step + " recorded"})
		testutil.AssertStatus(t, w, 200)
	}

	// Now completion succeeds
	req = testutil.MakeRequest("POST", "/assessments/"+created.ID+"/complete", nil, authHeaders())
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Complete(w, req)
	testutil.AssertStatus(t, w, 200)

	var completed models.Assessment
	testutil.AssertJSON(t, w, &completed)
	if completed.Status != models.StatusCompleted || completed.CompletedAt == nil {
		t.Errorf("Unexpected completed assessment: %+v", completed)
	}

	// Completed assessments are immutable
	w = putStep(t, handler, created.ID, "context", map[string]string{"summary": "revised"})
	testutil.AssertStatus(t, w, 409)

	req = testutil.MakeRequest("POST", "/assessments/"+created.ID+"/complete", nil, authHeaders())
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Complete(w, req)
	testutil.AssertStatus(t, w, 409)

	// And cannot be deleted
	req = testutil.MakeRequest("DELETE", "/assessments/"+created.ID, nil, authHeaders())
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, 409)
}

func TestStepPayloadUpsert(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAssessmentHandler(env.store, env.auditLog, env.cfg)

	created := createDraft(t, handler, "Payload overwrite")

	w := putStep(t, handler, created.ID, "risks", map[string]string{"risk": "profiling"})
	testutil.AssertStatus(t, w, 200)

	w = putStep(t, handler, created.ID, "risks", map[string]string{"risk": "re-identification"})
	testutil.AssertStatus(t, w, 200)

	var bundle models.AssessmentWithSteps
	testutil.AssertJSON(t, w, &bundle)
	if len(bundle.Steps) != 1 {
		t.Fatalf("Expected 1 step after overwrite, got %d", len(bundle.Steps))
	}

	var payload map[string]string
	if err := json.Unmarshal(bundle.Steps[0].Payload, &payload); err != nil {
		t.Fatalf("Failed to unmarshal payload: %v", err)
	}
	if payload["risk"] != "re-identification" {
		t.Errorf("Expected overwritten payload, got %v", payload)
	}
}

func TestUnknownStepRejected(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAssessmentHandler(env.store, env.auditLog, env.cfg)

	created := createDraft(t, handler, "Bad step")

	w := putStep(t, handler, created.ID, "vibes", map[string]string{})
	testutil.AssertStatus(t, w, 400)
}

func TestCreateRequiresTitle(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAssessmentHandler(env.store, env.auditLog, env.cfg)

	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/assessments", models.CreateAssessmentRequest{}, authHeaders()))
	testutil.AssertStatus(t, w, 400)
}

func TestCreateRejectsUnknownPrecheckLink(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAssessmentHandler(env.store, env.auditLog, env.cfg)

	ghost := "no-such-result"
	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/assessments",
		models.CreateAssessmentRequest{Title: "Linked", PrecheckResultID: &ghost}, authHeaders()))
	testutil.AssertStatus(t, w, 400)
}

func TestDeleteDraft(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAssessmentHandler(env.store, env.auditLog, env.cfg)

	created := createDraft(t, handler, "Abandoned")

	req := testutil.MakeRequest("DELETE", "/assessments/"+created.ID, nil, authHeaders())
	req.SetPathValue("id", created.ID)
	w := httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, 204)

	req = testutil.MakeRequest("GET", "/assessments/"+created.ID, nil, nil)
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, 404)
}

func TestListAssessments(t *testing.T) {
	env := newTestEnv(t)
	handler := NewAssessmentHandler(env.store, env.auditLog, env.cfg)

	createDraft(t, handler, "First")
	createDraft(t, handler, "Second")

	w := httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/assessments", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var assessments []models.Assessment
	testutil.AssertJSON(t, w, &assessments)
	if len(assessments) != 2 {
		t.Errorf("Expected 2 assessments, got %d", len(assessments))
	}
}
