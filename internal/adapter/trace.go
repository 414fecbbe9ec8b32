package adapter

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
)

func withTraceID(ctx context.Context) context.Context {
	if md, ok := metadata.FromOutgoingContext(ctx); ok && len(md.Get(rpc.TraceIDMetadataKey)) > 0 {
		return ctx
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return metadata.AppendToOutgoingContext(ctx, rpc.TraceIDMetadataKey, id.String())
}

func traceIDUnaryInterceptor(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	return invoker(withTraceID(ctx), method, req, reply, cc, opts...)
}

func traceIDStreamInterceptor(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return streamer(withTraceID(ctx), desc, cc, method, opts...)
}
