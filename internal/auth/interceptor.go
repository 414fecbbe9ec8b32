package auth

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
)

// Augment returns a copy of md with the credential under rpc.AuthMetadataKey.
// Any value already present under that key is replaced, so the result
// carries exactly one token entry. The input is never modified.
func Augment(md metadata.MD, cred Credential) metadata.MD {
	out := md.Copy()
	if out == nil {
		out = metadata.MD{}
	}
	out.Set(rpc.AuthMetadataKey, cred.Token())
	return out
}

// Interceptor attaches a Credential to outgoing calls. The same rule is used
// for unary and server-streaming calls.
type Interceptor struct {
	cred Credential
}

// NewInterceptor binds the interceptor to cred for its whole lifetime.
func NewInterceptor(cred Credential) *Interceptor {
	return &Interceptor{cred: cred}
}

func (i *Interceptor) attach(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	return metadata.NewOutgoingContext(ctx, Augment(md, i.cred))
}

// Unary is the grpc.UnaryClientInterceptor flavour.
func (i *Interceptor) Unary() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return invoker(i.attach(ctx), method, req, reply, cc, opts...)
	}
}

// Stream is the grpc.StreamClientInterceptor flavour.
func (i *Interceptor) Stream() grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return streamer(i.attach(ctx), desc, cc, method, opts...)
	}
}

// DialOptions installs both flavours on a connection.
func (i *Interceptor) DialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithChainUnaryInterceptor(i.Unary()),
		grpc.WithChainStreamInterceptor(i.Stream()),
	}
}
