// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/privacyops/dpia-platform/auth"
	"github.com/privacyops/dpia-platform/models"
	"github.com/privacyops/dpia-platform/precheck"
)

// SavePrecheckResult persists one evaluation. Answers and the full result
// are stored as JSON so the record is self-contained even if the catalog
// or thresholds change later.
func (st *Store) SavePrecheckResult(r *models.PrecheckResult) error {
	r.ID = auth.NewID()
	r.CreatedAt = time.Now().UTC()

	answers, err := json.Marshal(r.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	result, err := json.Marshal(r.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = st.sb.Insert("precheck_result").
		Columns("id", "workspace_id", "answers", "score", "outcome", "result", "created_at").
		Values(r.ID, r.WorkspaceID, string(answers), r.Score, r.Outcome.String(), string(result), r.CreatedAt).
		RunWith(st.db).Exec()
	return err
}

// GetPrecheckResult loads a stored evaluation.
func (st *Store) GetPrecheckResult(workspaceID, id string) (models.PrecheckResult, error) {
	var r models.PrecheckResult
	var answers, outcome, result string

	err := st.sb.Select("id", "workspace_id", "answers", "score", "outcome", "result", "created_at").
		From("precheck_result").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).QueryRow().
		Scan(&r.ID, &r.WorkspaceID, &answers, &r.Score, &outcome, &result, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PrecheckResult{}, ErrNotFound
	}
	if err != nil {
		return models.PrecheckResult{}, err
	}

	if err := json.Unmarshal([]byte(answers), &r.Answers); err != nil {
		return models.PrecheckResult{}, fmt.Errorf("corrupt answers for %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(result), &r.Result); err != nil {
		return models.PrecheckResult{}, fmt.Errorf("corrupt result for %s: %w", r.ID, err)
	}
	r.Outcome, err = precheck.ParseOutcome(outcome)
	if err != nil {
		return models.PrecheckResult{}, fmt.Errorf("corrupt outcome for %s: %w", r.ID, err)
	}

	return r, nil
}

// LatestPrecheckOutcome returns the most recent outcome for a workspace,
// or ErrNotFound when no pre-check was ever run.
func (st *Store) LatestPrecheckOutcome(workspaceID string) (string, error) {
	var outcome string
	err := st.sb.Select("outcome").
		From("precheck_result").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at DESC").
		Limit(1).
		RunWith(st.db).QueryRow().
		Scan(&outcome)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return outcome, err
}
