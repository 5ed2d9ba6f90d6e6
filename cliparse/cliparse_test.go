package cliparse

import (
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-d", "postgres://localhost/dpia",
		"-workspace-salt", "test-salt",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 4800 {
		t.Errorf("Expected default port 4800, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("Expected default database type postgres, got %s", cfg.DatabaseType)
	}
	if cfg.DefaultWorkspaceID != DefaultWorkspaceID {
		t.Errorf("Expected default workspace %s, got %s", DefaultWorkspaceID, cfg.DefaultWorkspaceID)
	}
	if cfg.BaseURL != "http://localhost:4800" {
		t.Errorf("Unexpected base URL %s", cfg.BaseURL)
	}
}

func TestParseFlagsExplicit(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-p", "9000",
		"-d", "file:dpia.db",
		"-t", "sqlite",
		"-workspace-salt", "test-salt",
		"-default-workspace", "11111111-2222-3333-4444-555555555555",
		"-rules", "/etc/dpia/rules.yaml",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DefaultWorkspaceID != "11111111-2222-3333-4444-555555555555" {
		t.Errorf("Unexpected workspace ID %s", cfg.DefaultWorkspaceID)
	}
	if cfg.RulesPath != "/etc/dpia/rules.yaml" {
		t.Errorf("Unexpected rules path %s", cfg.RulesPath)
	}
}

func TestParseFlagsMissingDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := ParseFlags([]string{"-workspace-salt", "s"}); err == nil {
		t.Fatal("Expected error for missing database URL")
	}
}

func TestParseFlagsMissingSalt(t *testing.T) {
	t.Setenv("WORKSPACE_KEY_SALT", "")
	if _, err := ParseFlags([]string{"-d", "postgres://localhost/dpia"}); err == nil {
		t.Fatal("Expected error for missing workspace key salt")
	}
}

func TestParseFlagsBadWorkspaceUUID(t *testing.T) {
	_, err := ParseFlags([]string{
		"-d", "postgres://localhost/dpia",
		"-workspace-salt", "s",
		"-default-workspace", "not-a-uuid",
	})
	if err == nil {
		t.Fatal("Expected error for invalid workspace UUID")
	}
}

func TestParseFlagsBadDatabaseType(t *testing.T) {
	_, err := ParseFlags([]string{
		"-d", "postgres://localhost/dpia",
		"-t", "oracle",
		"-workspace-salt", "s",
	})
	if err == nil {
		t.Fatal("Expected error for unsupported database type")
	}
}
