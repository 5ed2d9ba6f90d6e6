// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/privacyops/dpia-platform/auth"
	"github.com/privacyops/dpia-platform/models"
)

// Event type constants
const (
	PrecheckCompleted = "precheck.completed"
	DPIACompleted     = "dpia.completed"
	ExportGenerated   = "export.generated"
)

// Logger writes audit events. All writes are best-effort: the trail must
// never turn a successful operation into a failed response, so errors are
// logged and swallowed.
type Logger struct {
	db *sql.DB
}

func NewLogger(db *sql.DB) *Logger {
	return &Logger{db: db}
}

// Record stores one audit event. Marshal or insert failures are logged,
// never returned.
func (l *Logger) Record(workspaceID, eventType, entityID string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal audit payload", "error", err, "type", eventType)
		return
	}

	_, err = l.db.Exec(`
		INSERT INTO audit_event (id, workspace_id, type, entity_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, auth.NewID(), workspaceID, eventType, entityID, string(data), time.Now().UTC())

	if err != nil {
		slog.Error("failed to record audit event", "error", err, "type", eventType, "entity_id", entityID)
		return
	}

	slog.Info("audit event recorded", "type", eventType, "entity_id", entityID)
}

// EntityEvent derives the event type for a registry mutation,
// e.g. ("system", "created") -> "system.created".
func EntityEvent(entity, action string) string {
	return entity + "." + action
}

// Recent returns the newest events for a workspace, newest first.
// Unlike Record, the read path does surface errors.
func (l *Logger) Recent(workspaceID string, limit int) ([]models.AuditEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := l.db.Query(`
		SELECT id, workspace_id, type, entity_id, payload, created_at
		FROM audit_event
		WHERE workspace_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, workspaceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.AuditEvent{}
	for rows.Next() {
		var ev models.AuditEvent
		var entityID sql.NullString
		var payload string
		if err := rows.Scan(&ev.ID, &ev.WorkspaceID, &ev.Type, &entityID, &payload, &ev.CreatedAt); err != nil {
			return nil, err
		}
		ev.EntityID = entityID.String
		ev.Payload = json.RawMessage(payload)
		events = append(events, ev)
	}

	return events, rows.Err()
}
