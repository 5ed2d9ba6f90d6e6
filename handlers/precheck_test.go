// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/privacyops/dpia-platform/audit"
	"github.com/privacyops/dpia-platform/cliparse"
	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/precheck"
	"github.com/privacyops/dpia-platform/registry"
	"github.com/privacyops/dpia-platform/testutil"
)

// testEnv bundles the dependencies every handler needs.
type testEnv struct {
	store    *registry.Store
	auditLog *audit.Logger
	cfg      cliparse.Config
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return testEnv{
		store:    registry.NewStore(conn),
		auditLog: audit.NewLogger(conn),
		cfg:      testutil.GetTestConfig(),
	}
}

// authHeaders returns the headers for a mutation on the default workspace.
func authHeaders() map[string]string {
	return map[string]string{
		"X-Workspace-Key": testutil.WorkspaceKey(cliparse.DefaultWorkspaceID),
	}
}

// lowestAnswers is a complete submission with every risk factor absent.
func lowestAnswers() map[string]string {
	return map[string]string{
		"processing_scale":      "fewer_than_1000",
		"data_sensitivity":      "ordinary",
		"automated_decisions":   "no",
		"vulnerable_subjects":   "no",
		"new_technology":        "no",
		"data_matching":         "no",
		"public_monitoring":     "no",
		"systematic_monitoring": "no",
	}
}

func highestAnswers() map[string]string {
	return map[string]string{
		"processing_scale":      "more_than_100000",
		"data_sensitivity":      "special_categories",
		"automated_decisions":   "yes",
		"vulnerable_subjects":   "yes",
		"new_technology":        "yes",
		"data_matching":         "yes",
		"public_monitoring":     "yes",
		"systematic_monitoring": "yes",
	}
}

func TestGetTemplate(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPrecheckHandler(env.store, env.auditLog, env.cfg, precheck.DefaultRules())

	req := testutil.MakeRequest("GET", "/precheck/template", nil, nil)
	w := httptest.NewRecorder()
	handler.GetTemplate(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.PrecheckTemplateResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Metadata.TotalQuestions != 8 {
		t.Errorf("Expected 8 questions, got %d", resp.Metadata.TotalQuestions)
	}
	if resp.Metadata.MaxScore != precheck.MaxScore {
		t.Errorf("Expected max score %d, got %d", precheck.MaxScore, resp.Metadata.MaxScore)
	}
	if len(resp.Questions) != 8 {
		t.Errorf("Expected 8 questions in template, got %d", len(resp.Questions))
	}
}

func TestSubmitOutcomes(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPrecheckHandler(env.store, env.auditLog, env.cfg, precheck.DefaultRules())

	mixed := lowestAnswers()
	mixed["processing_scale"] = "up_to_100000"
	mixed["data_sensitivity"] = "confidential"
	mixed["automated_decisions"] = "yes"
	mixed["new_technology"] = "yes"

	tests := []struct {
		name        string
		answers     map[string]string
		wantScore   int
		wantOutcome precheck.Outcome
	}{
		{"all lowest", lowestAnswers(), 0, precheck.OutcomeNotRequired},
		{"mid-range", mixed, 8, precheck.OutcomeRecommended},
		{"all highest", highestAnswers(), 24, precheck.OutcomeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/precheck/submissions", models.SubmitPrecheckRequest{Answers: tt.answers}, nil)
			w := httptest.NewRecorder()
			handler.Submit(w, req)

			testutil.AssertStatus(t, w, 200)

			var resp models.SubmitPrecheckResponse
			testutil.AssertJSON(t, w, &resp)

			if !resp.Success {
				t.Error("Expected success")
			}
			if resp.Result.Score != tt.wantScore {
				t.Errorf("Expected score %d, got %d", tt.wantScore, resp.Result.Score)
			}
			if resp.Result.Outcome != tt.wantOutcome {
				t.Errorf("Expected outcome %s, got %s", tt.wantOutcome, resp.Result.Outcome)
			}
			if resp.ResultID == "" {
				t.Error("Expected a persisted result ID")
			}
		})
	}
}

func TestSubmitIncomplete(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPrecheckHandler(env.store, env.auditLog, env.cfg, precheck.DefaultRules())

	answers := lowestAnswers()
	delete(answers, "new_technology")
	answers["made_up_question"] = "yes"

	req := testutil.MakeRequest("POST", "/precheck/submissions", models.SubmitPrecheckRequest{Answers: answers}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 400)

	var resp models.IncompleteSubmissionResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Error != "Incomplete submission" {
		t.Errorf("Unexpected error message: %s", resp.Error)
	}
	if len(resp.MissingQuestions) != 1 || resp.MissingQuestions[0] != "new_technology" {
		t.Errorf("Expected missing [new_technology], got %v", resp.MissingQuestions)
	}
	if len(resp.UnknownQuestions) != 1 || resp.UnknownQuestions[0] != "made_up_question" {
		t.Errorf("Expected unknown [made_up_question], got %v", resp.UnknownQuestions)
	}
}

func TestSubmitUnknownChoice(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPrecheckHandler(env.store, env.auditLog, env.cfg, precheck.DefaultRules())

	answers := lowestAnswers()
	answers["data_sensitivity"] = "radioactive"

	req := testutil.MakeRequest("POST", "/precheck/submissions", models.SubmitPrecheckRequest{Answers: answers}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestSubmitInvalidBody(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPrecheckHandler(env.store, env.auditLog, env.cfg, precheck.DefaultRules())

	// No answers key at all
	req := testutil.MakeRequest("POST", "/precheck/submissions", map[string]string{"not_answers": "x"}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestGetResultRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPrecheckHandler(env.store, env.auditLog, env.cfg, precheck.DefaultRules())

	req := testutil.MakeRequest("POST", "/precheck/submissions", models.SubmitPrecheckRequest{Answers: highestAnswers()}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	testutil.AssertStatus(t, w, 200)

	var submitted models.SubmitPrecheckResponse
	testutil.AssertJSON(t, w, &submitted)

	req = testutil.MakeRequest("GET", "/precheck/results/"+submitted.ResultID, nil, nil)
	req.SetPathValue("id", submitted.ResultID)
	w = httptest.NewRecorder()
	handler.GetResult(w, req)

	testutil.AssertStatus(t, w, 200)

	var stored models.PrecheckResult
	testutil.AssertJSON(t, w, &stored)

	if stored.Score != 24 || stored.Outcome != precheck.OutcomeRequired {
		t.Errorf("Stored result mismatch: score %d outcome %s", stored.Score, stored.Outcome)
	}
	if len(stored.Answers) != 8 {
		t.Errorf("Expected 8 stored answers, got %d", len(stored.Answers))
	}
}

func TestGetResultNotFound(t *testing.T) {
	env := newTestEnv(t)
	handler := NewPrecheckHandler(env.store, env.auditLog, env.cfg, precheck.DefaultRules())

	req := testutil.MakeRequest("GET", "/precheck/results/nope", nil, nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	handler.GetResult(w, req)

	testutil.AssertStatus(t, w, 404)
}
