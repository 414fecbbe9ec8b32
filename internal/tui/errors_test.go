package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"

	"github.com/MKhiriev/go-exchange-admin/internal/adapter"
	"github.com/MKhiriev/go-exchange-admin/internal/session"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "unavailable",
			err:  fmt.Errorf("%w: %w", session.ErrTransportFailure, &adapter.TransportError{Code: codes.Unavailable, Message: "connection refused"}),
			want: msgGatewayUnavailable + " (Unavailable: connection refused)",
		},
		{
			name: "deadline without message",
			err:  fmt.Errorf("%w: %w", session.ErrTransportFailure, &adapter.TransportError{Op: "Ping", Code: codes.DeadlineExceeded}),
			want: msgGatewayUnavailable + " (DeadlineExceeded)",
		},
		{
			name: "canceled by gateway",
			err:  fmt.Errorf("%w: %w", session.ErrTransportFailure, &adapter.TransportError{Code: codes.Canceled, Message: "Logged in from another location"}),
			want: "Ended by gateway: Logged in from another location",
		},
		{
			name: "auth with status",
			err:  fmt.Errorf("%w: %w", session.ErrAuthenticationFailure, &adapter.TransportError{Code: codes.Unauthenticated, Message: "Authentication required."}),
			want: "Authentication failed: Authentication required.",
		},
		{
			name: "rejection",
			err:  fmt.Errorf("%w: %w", session.ErrServerRejection, &adapter.TransportError{Code: codes.FailedPrecondition, Message: "engine is stopped"}),
			want: "Rejected by gateway: engine is stopped",
		},
		{name: "dial", err: errors.New("dial tcp 127.0.0.1:9090: connect: connection refused"), want: msgGatewayUnavailable},
		{name: "other", err: errors.New("strange"), want: "strange"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
