package adapter

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Dial creates a client connection to target with the console's transport
// defaults: plaintext credentials, keepalive pings and the trace-id
// interceptors. Extra options are appended, so callers can chain more
// interceptors or replace the dialer in tests.
//
// grpc.NewClient does not connect eagerly; the first call does.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	base := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             10 * time.Second,
			PermitWithoutStream: false,
		}),
		grpc.WithChainUnaryInterceptor(traceIDUnaryInterceptor),
		grpc.WithChainStreamInterceptor(traceIDStreamInterceptor),
	}

	conn, err := grpc.NewClient(target, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("error creating grpc client for %q: %w", target, err)
	}

	return conn, nil
}
