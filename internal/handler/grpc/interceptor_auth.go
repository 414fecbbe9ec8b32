package grpc

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-exchange-admin/internal/app"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
	"github.com/MKhiriev/go-exchange-admin/internal/service"
)

// AuthInterceptor rejects every call except Login that does not carry a
// token of an active session under [rpc.AuthMetadataKey].
type AuthInterceptor struct {
	auth service.AuthService
}

// NewAuthInterceptor constructs an [AuthInterceptor] over auth.
func NewAuthInterceptor(auth service.AuthService) *AuthInterceptor {
	return &AuthInterceptor{auth: auth}
}

// Unary returns the unary server interceptor.
func (i *AuthInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if info.FullMethod == rpc.AdminService_Login_FullMethodName {
			return handler(ctx, req)
		}

		callCtx, done, err := i.authenticate(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}
		defer done()

		resp, err := handler(callCtx, req)
		return resp, superseded(callCtx, err)
	}
}

// Stream returns the stream server interceptor.
func (i *AuthInterceptor) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		callCtx, done, err := i.authenticate(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}
		defer done()

		err = handler(srv, &serverStream{ServerStream: ss, ctx: callCtx})
		return superseded(callCtx, err)
	}
}

func (i *AuthInterceptor) authenticate(ctx context.Context, method string) (context.Context, context.CancelFunc, error) {
	log := logger.FromContext(ctx)

	token := tokenFromMetadata(ctx)
	if token == "" {
		log.Warn().Str("method", method).Msg("unauthenticated access attempt")
		return nil, nil, status.Error(codes.Unauthenticated, app.MsgAuthenticationRequired)
	}

	callCtx, done, err := i.auth.Authenticate(ctx, token)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Msg("rejected session token")
		return nil, nil, status.Error(codes.Unauthenticated, app.MsgAuthenticationRequired)
	}

	return callCtx, done, nil
}

// superseded replaces the result of a call cut short by a newer login of
// the same operator.
func superseded(callCtx context.Context, err error) error {
	if err != nil && errors.Is(context.Cause(callCtx), service.ErrSessionSuperseded) {
		return status.Error(codes.Canceled, app.MsgLoggedInFromAnotherLocation)
	}
	return err
}

func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get(rpc.AuthMetadataKey)
	if len(values) == 0 {
		return ""
	}

	return strings.TrimSpace(values[0])
}

// serverStream overrides the context of a wrapped stream.
type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *serverStream) Context() context.Context {
	return s.ctx
}
