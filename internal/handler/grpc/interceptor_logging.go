package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
	"github.com/MKhiriev/go-exchange-admin/internal/utils"
)

// LoggingInterceptor attaches a call-scoped logger carrying trace_id and
// method to the call context and writes one access log entry per call.
type LoggingInterceptor struct {
	logger *logger.Logger
	ids    *utils.UUIDGenerator
}

// NewLoggingInterceptor constructs a [LoggingInterceptor] deriving call
// loggers from log.
func NewLoggingInterceptor(log *logger.Logger) *LoggingInterceptor {
	return &LoggingInterceptor{logger: log, ids: utils.NewUUIDGenerator()}
}

// Unary returns the unary server interceptor.
func (i *LoggingInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, log := i.withCallLogger(ctx, info.FullMethod)

		start := time.Now()
		resp, err := handler(ctx, req)
		i.access(log, start, err)

		return resp, err
	}
}

// Stream returns the stream server interceptor.
func (i *LoggingInterceptor) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, log := i.withCallLogger(ss.Context(), info.FullMethod)

		start := time.Now()
		err := handler(srv, &serverStream{ServerStream: ss, ctx: ctx})
		i.access(log, start, err)

		return err
	}
}

func (i *LoggingInterceptor) withCallLogger(ctx context.Context, method string) (context.Context, *logger.Logger) {
	traceID := traceIDFromMetadata(ctx)
	if traceID == "" {
		traceID = i.ids.Generate()
	}

	l := i.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).Str("method", method)
	})

	return l.WithContext(ctx), l
}

func (i *LoggingInterceptor) access(log *logger.Logger, start time.Time, err error) {
	log.Info().
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
}

func traceIDFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(rpc.TraceIDMetadataKey); len(values) > 0 {
		return values[0]
	}
	return ""
}
