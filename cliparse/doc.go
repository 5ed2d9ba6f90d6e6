// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables, with a .env file loaded (via godotenv) before parsing.

Precedence: flag > environment > default. Required settings:

  - DATABASE_URL (-d): connection string
  - WORKSPACE_KEY_SALT (--workspace-salt): secret for workspace key HMAC

Optional settings:

  - PORT (-p): server port (default 4800)
  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - DEFAULT_WORKSPACE_ID (--default-workspace): anonymous tenant UUID
  - PRECHECK_RULES (--rules): YAML file overriding pre-check thresholds
  - BASE_URL (--base-url): public base URL

The default workspace UUID is validated exactly once here; every handler
receives it through Config rather than re-declaring the literal.
*/
package cliparse
