package adapter

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

var (
	ErrLoginRejected      = errors.New("login rejected")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUnavailable        = errors.New("gateway unavailable")
	ErrDeadlineExceeded   = errors.New("deadline exceeded")
	ErrCanceled           = errors.New("call canceled")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrFailedPrecondition = errors.New("failed precondition")
	ErrResourceExhausted  = errors.New("resource exhausted")
	ErrUnimplemented      = errors.New("method not implemented by gateway")
	ErrInternal           = errors.New("internal gateway error")
)

// TransportError is a failed call as observed on the wire.
type TransportError struct {
	// Op is the short method name, e.g. "Ping".
	Op string
	// Code is the gRPC status code.
	Code codes.Code
	// Message is the status message sent by the gateway.
	Message string
}

func (e *TransportError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
}

// Unwrap exposes the sentinel for Code, nil for codes without one.
func (e *TransportError) Unwrap() error {
	switch e.Code {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthenticated
	case codes.Unavailable:
		return ErrUnavailable
	case codes.DeadlineExceeded:
		return ErrDeadlineExceeded
	case codes.Canceled:
		return ErrCanceled
	case codes.InvalidArgument:
		return ErrInvalidArgument
	case codes.FailedPrecondition:
		return ErrFailedPrecondition
	case codes.ResourceExhausted:
		return ErrResourceExhausted
	case codes.Unimplemented:
		return ErrUnimplemented
	case codes.Internal, codes.Unknown, codes.DataLoss:
		return ErrInternal
	default:
		return nil
	}
}
