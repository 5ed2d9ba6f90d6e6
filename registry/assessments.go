// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/privacyops/dpia-platform/auth"
	"github.com/privacyops/dpia-platform/models"
)

var assessmentColumns = []string{"id", "workspace_id", "title", "status", "precheck_result_id", "created_at", "updated_at", "completed_at"}

func scanAssessment(row sq.RowScanner) (models.Assessment, error) {
	var a models.Assessment
	var precheckID sql.NullString
	var completedAt sql.NullTime
	err := row.Scan(&a.ID, &a.WorkspaceID, &a.Title, &a.Status, &precheckID,
		&a.CreatedAt, &a.UpdatedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Assessment{}, ErrNotFound
	}
	if precheckID.Valid {
		a.PrecheckResultID = &precheckID.String
	}
	if completedAt.Valid {
		a.CompletedAt = &completedAt.Time
	}
	return a, err
}

func (st *Store) ListAssessments(workspaceID string) ([]models.Assessment, error) {
	rows, err := st.sb.Select(assessmentColumns...).
		From("assessment").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at DESC").
		RunWith(st.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assessments := []models.Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	return assessments, rows.Err()
}

func (st *Store) GetAssessment(workspaceID, id string) (models.Assessment, error) {
	return scanAssessment(st.sb.Select(assessmentColumns...).
		From("assessment").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).QueryRow())
}

func (st *Store) CreateAssessment(a *models.Assessment) error {
	now := time.Now().UTC()
	a.ID = auth.NewID()
	a.Status = models.StatusDraft
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := st.sb.Insert("assessment").
		Columns("id", "workspace_id", "title", "status", "precheck_result_id", "created_at", "updated_at").
		Values(a.ID, a.WorkspaceID, a.Title, a.Status, a.PrecheckResultID, a.CreatedAt, a.UpdatedAt).
		RunWith(st.db).Exec()
	return err
}

// DeleteAssessment removes a draft. Non-draft assessments are immutable
// records and cannot be deleted.
func (st *Store) DeleteAssessment(workspaceID, id string) error {
	res, err := st.sb.Delete("assessment").
		Where(sq.Eq{"workspace_id": workspaceID, "id": id, "status": models.StatusDraft}).
		RunWith(st.db).Exec()
	return affectedOrNotFound(res, err)
}

// StepsFor returns the stored wizard steps in wizard order.
func (st *Store) StepsFor(assessmentID string) ([]models.AssessmentStep, error) {
	rows, err := st.sb.Select("assessment_id", "name", "payload", "updated_at").
		From("assessment_step").
		Where(sq.Eq{"assessment_id": assessmentID}).
		RunWith(st.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byName := map[string]models.AssessmentStep{}
	for rows.Next() {
		var s models.AssessmentStep
		var payload string
		if err := rows.Scan(&s.AssessmentID, &s.Name, &payload, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Payload = json.RawMessage(payload)
		byName[s.Name] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	steps := []models.AssessmentStep{}
	for _, name := range models.AssessmentSteps {
		if s, ok := byName[name]; ok {
			steps = append(steps, s)
		}
	}
	return steps, nil
}

// UpsertStep stores one wizard step's payload and bumps the assessment
// from draft to in_progress.
func (st *Store) UpsertStep(workspaceID, assessmentID, name string, payload json.RawMessage) error {
	now := time.Now().UTC()

	tx, err := st.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The ON CONFLICT form is supported by both postgres and sqlite.
	_, err = st.sb.Insert("assessment_step").
		Columns("assessment_id", "name", "payload", "updated_at").
		Values(assessmentID, name, string(payload), now).
		Suffix("ON CONFLICT (assessment_id, name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		RunWith(tx).Exec()
	if err != nil {
		return err
	}

	_, err = st.sb.Update("assessment").
		Set("status", models.StatusInProgress).
		Set("updated_at", now).
		Where(sq.Eq{"workspace_id": workspaceID, "id": assessmentID, "status": models.StatusDraft}).
		RunWith(tx).Exec()
	if err != nil {
		return err
	}

	_, err = st.sb.Update("assessment").
		Set("updated_at", now).
		Where(sq.Eq{"workspace_id": workspaceID, "id": assessmentID}).
		RunWith(tx).Exec()
	if err != nil {
		return err
	}

	return tx.Commit()
}

// CompleteAssessment stamps the completion time.
func (st *Store) CompleteAssessment(workspaceID, id string) (time.Time, error) {
	now := time.Now().UTC()

	res, err := st.sb.Update("assessment").
		Set("status", models.StatusCompleted).
		Set("completed_at", now).
		Set("updated_at", now).
		Where(sq.Eq{"workspace_id": workspaceID, "id": id}).
		RunWith(st.db).Exec()
	if err := affectedOrNotFound(res, err); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
