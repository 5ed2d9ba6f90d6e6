// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides ID generation and workspace key validation.

Workspace keys are HMAC-SHA256 over the workspace UUID with a server-side
salt, URL-safe base64 encoded. Being deterministic, they are verified by
recomputation and never stored:

	key := auth.GenerateWorkspaceKey(workspaceID, cfg.WorkspaceKeySalt)
	err := auth.ValidateWorkspaceKey(workspaceID, key, cfg.WorkspaceKeySalt)

Mutating routes require the key in the X-Workspace-Key header. Full identity
management is delegated to an external auth provider; this package only
covers the write-protection the API itself enforces.
*/
package auth
