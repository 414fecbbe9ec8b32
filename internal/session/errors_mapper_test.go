package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"

	"github.com/MKhiriev/go-exchange-admin/internal/adapter"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "login rejected", err: fmt.Errorf("%w: bad", adapter.ErrLoginRejected), want: ErrAuthenticationFailure},
		{name: "unauthenticated", err: &adapter.TransportError{Code: codes.Unauthenticated}, want: ErrAuthenticationFailure},
		{name: "engine stopped", err: &adapter.TransportError{Code: codes.FailedPrecondition}, want: ErrServerRejection},
		{name: "rate limited", err: &adapter.TransportError{Code: codes.ResourceExhausted}, want: ErrServerRejection},
		{name: "unavailable", err: &adapter.TransportError{Code: codes.Unavailable}, want: ErrTransportFailure},
		{name: "deadline", err: &adapter.TransportError{Code: codes.DeadlineExceeded}, want: ErrTransportFailure},
		{name: "foreign error", err: errors.New("???"), want: ErrTransportFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, mapError(nil))
}
