package session

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"

	"github.com/MKhiriev/go-exchange-admin/internal/adapter"
)

// mapError places an adapter error into the console taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrLoginRejected) {
		return fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}

	var te *adapter.TransportError
	if !errors.As(err, &te) {
		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}

	switch te.Code {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	case codes.FailedPrecondition, codes.InvalidArgument, codes.AlreadyExists,
		codes.ResourceExhausted, codes.OutOfRange, codes.Aborted:
		return fmt.Errorf("%w: %w", ErrServerRejection, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
}
