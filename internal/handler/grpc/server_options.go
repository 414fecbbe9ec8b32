package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
)

// ServerOptions returns the interceptor chain of the admin service: metrics
// first, then call logging, then authentication. A positive requestTimeout
// bounds every unary call; streams are not bounded.
func (h *Handler) ServerOptions(metrics *Metrics, requestTimeout time.Duration) []grpc.ServerOption {
	logging := NewLoggingInterceptor(h.logger)
	auth := NewAuthInterceptor(h.services.AuthService)

	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(metrics.Unary(), logging.Unary(), withTimeout(requestTimeout), auth.Unary()),
		grpc.ChainStreamInterceptor(metrics.Stream(), logging.Stream(), auth.Stream()),
	}
}

// Register registers the admin service on s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	rpc.RegisterAdminServiceServer(s, h)
}

func withTimeout(d time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if d <= 0 {
			return handler(ctx, req)
		}

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
