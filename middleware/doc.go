// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides request logging, CORS, JSON helpers, and
tenant resolution.

WithLogging wraps a handler with slog request/completion logging.
JSONResponse, ErrorResponse, and ParseJSONBody keep handler bodies free of
encoding boilerplate; errors are always returned in the
{error, message} envelope.

WorkspaceID resolves the tenant for a request from the X-Workspace-ID
header (must be a UUID) and falls back to the single configured anonymous
workspace. Handlers never hard-code that UUID themselves.
*/
package middleware
