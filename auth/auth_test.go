// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	if a == b {
		t.Error("Expected distinct IDs")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("ID %q is not a UUID: %v", a, err)
	}
}

func TestWorkspaceKeyDeterministic(t *testing.T) {
	id := NewID()
	first := GenerateWorkspaceKey(id, "salt")
	second := GenerateWorkspaceKey(id, "salt")

	if first != second {
		t.Error("Expected deterministic keys for identical inputs")
	}
	if first == GenerateWorkspaceKey(id, "other-salt") {
		t.Error("Expected different keys for different salts")
	}
	if first == GenerateWorkspaceKey(NewID(), "salt") {
		t.Error("Expected different keys for different workspaces")
	}
}

func TestValidateWorkspaceKey(t *testing.T) {
	id := NewID()
	key := GenerateWorkspaceKey(id, "salt")

	if err := ValidateWorkspaceKey(id, key, "salt"); err != nil {
		t.Errorf("Valid key rejected: %v", err)
	}
	if err := ValidateWorkspaceKey(id, "bogus", "salt"); err == nil {
		t.Error("Invalid key accepted")
	}
	if err := ValidateWorkspaceKey(id, key, "other-salt"); err == nil {
		t.Error("Key accepted under wrong salt")
	}
}
