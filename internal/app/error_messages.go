// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// admin gateway handlers and interceptors.
//
// All Msg* constants are human-readable message strings that are written into
// gRPC statuses, HTTP response bodies or log entries. Keeping them in one
// place ensures consistent wording between transports.
package app

const (
	// MsgPong is the reply of the Ping call.
	MsgPong = "pong"

	// MsgInvalidCredentials is returned in an unsuccessful LoginResponse
	// when the username/password pair does not match a configured operator.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgAuthenticationRequired is the Unauthenticated status message for
	// calls without a valid session token.
	MsgAuthenticationRequired = "Authentication required."

	// MsgLoggedInFromAnotherLocation is the Canceled status message of calls
	// whose session was superseded by a newer login of the same operator.
	MsgLoggedInFromAnotherLocation = "Logged in from another location"

	// MsgTooManyLoginAttempts is returned when the login rate is exceeded.
	MsgTooManyLoginAttempts = "too many login attempts, try again later"

	// MsgEngineStopped is returned for commands sent after StopEngine.
	MsgEngineStopped = "engine is stopped"

	// MsgInvalidUserID is returned when an AddUser request carries a
	// non-positive UID.
	MsgInvalidUserID = "user id must be a positive integer"

	// MsgCommandQueueFull is returned when the asynchronous command queue
	// has no free slot.
	MsgCommandQueueFull = "command queue is full, try again later"

	// MsgStorageUnavailable is returned when the event log database reports
	// a transient failure.
	MsgStorageUnavailable = "storage temporarily unavailable, try again later"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStatusOK and MsgStatusUnavailable are the bodies of /healthz.
	MsgStatusOK          = "ok"
	MsgStatusUnavailable = "unavailable"
)
