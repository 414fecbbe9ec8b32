package adapter

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func mapGRPCError(op string, err error) error {
	if err == nil {
		return nil
	}

	if st, ok := status.FromError(err); ok {
		return &TransportError{Op: op, Code: st.Code(), Message: st.Message()}
	}

	switch {
	case errors.Is(err, context.Canceled):
		return &TransportError{Op: op, Code: codes.Canceled, Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return &TransportError{Op: op, Code: codes.DeadlineExceeded, Message: err.Error()}
	default:
		return &TransportError{Op: op, Code: codes.Unknown, Message: err.Error()}
	}
}
