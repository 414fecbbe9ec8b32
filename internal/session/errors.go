// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

// Error taxonomy of the console. Every error returned by this package wraps
// exactly one of these, and transport errors additionally keep the
// underlying *adapter.TransportError reachable through errors.As.
var (
	// ErrAuthenticationFailure means the gateway rejected the operator's
	// credentials or the session token.
	ErrAuthenticationFailure = errors.New("authentication failure")
	// ErrTransportFailure means the call did not complete: the gateway was
	// unreachable, the deadline passed, or the stream broke.
	ErrTransportFailure = errors.New("transport failure")
	// ErrValidationFailure means local input was rejected before any call.
	ErrValidationFailure = errors.New("validation failure")
	// ErrServerRejection means the gateway understood the call and refused
	// it, e.g. AddUser after the engine was stopped.
	ErrServerRejection = errors.New("rejected by server")

	// ErrNoCredential is returned by New for a zero Credential.
	ErrNoCredential = errors.New("session requires a credential")
)
