// Copyright (c) 2026 PrivacyOps.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidWorkspaceKey = errors.New("invalid workspace key")

// NewID returns a fresh UUID string. All persisted rows are keyed by UUID.
func NewID() string {
	return uuid.NewString()
}

// GenerateWorkspaceKey creates an HMAC-based key for a workspace.
// This is deterministic and verifiable, so keys never need storing.
func GenerateWorkspaceKey(workspaceID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(workspaceID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateWorkspaceKey checks that the provided key is valid for the workspace.
func ValidateWorkspaceKey(workspaceID, key, salt string) error {
	expected := GenerateWorkspaceKey(workspaceID, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidWorkspaceKey
	}
	return nil
}
