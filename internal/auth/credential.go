// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth holds the client-side session credential and the call
// interceptor that attaches it to every outbound gRPC call.
package auth

import (
	"errors"
	"strings"
)

// ErrEmptyCredential is returned by NewCredential for a blank token.
var ErrEmptyCredential = errors.New("auth: empty token")

// Credential is the opaque session token obtained by a successful login.
//
// A Credential is immutable once built: it is passed by value and has no
// setters, so it is safe to share between the command loop and the event
// consumer without locking.
type Credential struct {
	token string
}

// NewCredential wraps a non-empty token. Surrounding whitespace is kept as
// is, the token is opaque to the client.
func NewCredential(token string) (Credential, error) {
	if strings.TrimSpace(token) == "" {
		return Credential{}, ErrEmptyCredential
	}
	return Credential{token: token}, nil
}

// Token returns the raw token value.
func (c Credential) Token() string {
	return c.token
}

// IsZero reports whether c was never populated by a login.
func (c Credential) IsZero() bool {
	return c.token == ""
}

// String never prints the token itself.
func (c Credential) String() string {
	if c.IsZero() {
		return "Credential(<none>)"
	}
	return "Credential(<redacted>)"
}
