// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-exchange-admin/internal/adapter"
	"github.com/MKhiriev/go-exchange-admin/internal/session"
)

const msgGatewayUnavailable = "No network or the gateway is unavailable"

// humanizeError turns a session error into one line for the operator.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var te *adapter.TransportError
	isTransport := errors.As(err, &te)
	hasStatus := isTransport && te.Message != ""

	if isServerUnavailable(err) {
		if !isTransport {
			return msgGatewayUnavailable
		}
		if hasStatus {
			return fmt.Sprintf("%s (%s: %s)", msgGatewayUnavailable, te.Code, te.Message)
		}
		return fmt.Sprintf("%s (%s)", msgGatewayUnavailable, te.Code)
	}

	switch {
	case errors.Is(err, session.ErrValidationFailure):
		return err.Error()
	case errors.Is(err, session.ErrAuthenticationFailure):
		if hasStatus {
			return "Authentication failed: " + te.Message
		}
		return err.Error()
	case errors.Is(err, adapter.ErrCanceled) && hasStatus:
		return "Ended by gateway: " + te.Message
	case errors.Is(err, session.ErrServerRejection):
		if hasStatus {
			return "Rejected by gateway: " + te.Message
		}
		return err.Error()
	default:
		return err.Error()
	}
}

func isServerUnavailable(err error) bool {
	if errors.Is(err, adapter.ErrUnavailable) || errors.Is(err, adapter.ErrDeadlineExceeded) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout")
}
