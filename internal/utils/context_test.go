// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestWithSession(t *testing.T) {
	ctx := WithSession(context.Background(), "alice", "session-1")

	username, ok := GetUsernameFromContext(ctx)
	if !ok || username != "alice" {
		t.Errorf("expected alice, got %q (ok=%v)", username, ok)
	}

	sessionID, ok := GetSessionIDFromContext(ctx)
	if !ok || sessionID != "session-1" {
		t.Errorf("expected session-1, got %q (ok=%v)", sessionID, ok)
	}
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	username, ok := GetUsernameFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if username != "" {
		t.Errorf("expected empty username, got %q", username)
	}
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, 42)

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUsernameFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "")

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty username, got true")
	}
}

func TestGetSessionIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "session-1")

	if _, ok := GetSessionIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
