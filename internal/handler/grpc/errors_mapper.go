// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-exchange-admin/internal/app"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/service"
	"github.com/MKhiriev/go-exchange-admin/internal/store"
	"github.com/MKhiriev/go-exchange-admin/internal/validators"
)

// mapServiceError converts a service-layer error into a gRPC status error.
// nil stays nil. Unknown errors are logged and reported as Internal without
// leaking their text.
func mapServiceError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, service.ErrSessionSuperseded):
		return status.Error(codes.Canceled, app.MsgLoggedInFromAnotherLocation)
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
		errors.Is(err, service.ErrSessionNotActive):
		return status.Error(codes.Unauthenticated, app.MsgAuthenticationRequired)
	case errors.Is(err, service.ErrTooManyLoginAttempts):
		return status.Error(codes.ResourceExhausted, app.MsgTooManyLoginAttempts)
	case errors.Is(err, service.ErrCommandQueueFull):
		return status.Error(codes.ResourceExhausted, app.MsgCommandQueueFull)
	case errors.Is(err, service.ErrEngineStopped):
		return status.Error(codes.FailedPrecondition, app.MsgEngineStopped)
	case errors.Is(err, service.ErrInvalidUID),
		errors.Is(err, validators.ErrInvalidUID):
		return status.Error(codes.InvalidArgument, app.MsgInvalidUserID)
	case errors.Is(err, store.ErrTransient):
		logger.FromContext(ctx).Warn().Err(err).Msg("transient storage failure")
		return status.Error(codes.Unavailable, app.MsgStorageUnavailable)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	logger.FromContext(ctx).Err(err).Msg("unexpected service error")
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
