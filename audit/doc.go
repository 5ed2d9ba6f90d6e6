// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package audit implements the best-effort audit trail.

Record never returns an error: the evaluation or mutation that triggered
the event has already succeeded, and a failed audit write must not change
the HTTP response. Failures are logged via slog and dropped.

	auditLog := audit.NewLogger(db)
	auditLog.Record(workspaceID, audit.PrecheckCompleted, resultID, map[string]any{
		"score":         result.Score,
		"result":        result.Outcome.String(),
		"answers_count": len(answers),
	})

Reads (Recent) surface errors normally; only the write path is
fire-and-forget.
*/
package audit
