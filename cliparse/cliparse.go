package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// DefaultWorkspaceID is the anonymous tenant used when no workspace header
// is supplied. Parsed and validated once at startup; nothing else in the
// codebase re-declares this literal.
const DefaultWorkspaceID = "00000000-0000-0000-0000-000000000001"

type Config struct {
	Port               int
	DatabaseURL        string
	DatabaseType       string
	WorkspaceKeySalt   string
	DefaultWorkspaceID string
	RulesPath          string
	BaseURL            string
}

// ParseFlags validates flags, loads .env, and fills defaults from the
// environment.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("dpia-platform", flag.ContinueOnError)

	// Network and database config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RulesPath, "rules", "", "Optional YAML file with pre-check thresholds")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public base URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.WorkspaceKeySalt, "workspace-salt", "", "Workspace key salt (prefer env)")
	fs.StringVar(&cfg.DefaultWorkspaceID, "default-workspace", "", "Anonymous workspace UUID")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4800 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, errors.New("database type must be postgres or sqlite")
	}

	if cfg.RulesPath == "" {
		cfg.RulesPath = os.Getenv("PRECHECK_RULES")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}

	// Secrets - MUST be provided
	if cfg.WorkspaceKeySalt == "" {
		cfg.WorkspaceKeySalt = os.Getenv("WORKSPACE_KEY_SALT")
	}
	if cfg.WorkspaceKeySalt == "" {
		return Config{}, errors.New("WORKSPACE_KEY_SALT required")
	}

	if cfg.DefaultWorkspaceID == "" {
		cfg.DefaultWorkspaceID = os.Getenv("DEFAULT_WORKSPACE_ID")
	}
	if cfg.DefaultWorkspaceID == "" {
		cfg.DefaultWorkspaceID = DefaultWorkspaceID
	}
	parsed, err := uuid.Parse(cfg.DefaultWorkspaceID)
	if err != nil {
		return Config{}, errors.New("default workspace ID must be a UUID")
	}
	cfg.DefaultWorkspaceID = parsed.String()

	return cfg, nil
}
