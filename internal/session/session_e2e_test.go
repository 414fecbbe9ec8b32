package session

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-exchange-admin/internal/adapter"
	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
	"github.com/MKhiriev/go-exchange-admin/models"
)

// recordingGateway accepts alice/secret, issues "abc123" and records the
// metadata of every call it serves.
type recordingGateway struct {
	rpc.UnimplementedAdminServiceServer

	mu    sync.Mutex
	calls map[string]metadata.MD
}

func (g *recordingGateway) record(method string, ctx context.Context) {
	md, _ := metadata.FromIncomingContext(ctx)
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.calls == nil {
		g.calls = make(map[string]metadata.MD)
	}
	g.calls[method] = md
}

func (g *recordingGateway) seen(method string) metadata.MD {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[method]
}

func (g *recordingGateway) Login(ctx context.Context, in *rpc.LoginRequest) (*rpc.LoginResponse, error) {
	g.record("Login", ctx)
	if in.Username == "alice" && in.Password == "secret" {
		return &rpc.LoginResponse{Success: true, Token: "abc123"}, nil
	}
	return &rpc.LoginResponse{Success: false, Message: "Invalid credentials"}, nil
}

func (g *recordingGateway) Ping(ctx context.Context, _ *rpc.PingRequest) (*rpc.PingResponse, error) {
	g.record("Ping", ctx)
	md, _ := metadata.FromIncomingContext(ctx)
	if got := md.Get(rpc.AuthMetadataKey); len(got) != 1 || got[0] != "abc123" {
		return nil, status.Error(codes.Unauthenticated, "Authentication required.")
	}
	return &rpc.PingResponse{Message: "pong"}, nil
}

func (g *recordingGateway) SubscribeAdminEvents(_ *rpc.SubscribeAdminEventsRequest, stream grpc.ServerStreamingServer[models.AdminEvent]) error {
	g.record("SubscribeAdminEvents", stream.Context())
	for i := int64(0); i < 3; i++ {
		if err := stream.Send(&models.AdminEvent{Index: i}); err != nil {
			return err
		}
	}
	return nil
}

func startRecordingGateway(t *testing.T) (*recordingGateway, grpc.DialOption) {
	t.Helper()

	gw := &recordingGateway{}
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	rpc.RegisterAdminServiceServer(srv, gw)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	dialer := grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
	return gw, dialer
}

func TestEndToEnd_LoginThenAuthenticatedCalls(t *testing.T) {
	gw, dialer := startRecordingGateway(t)
	cfg := config.ClientAdapter{GRPCAddress: "passthrough:///bufnet", RequestTimeout: time.Second, AddUserMode: config.AddUserModeSync}
	ctx := context.Background()

	loginConn, err := adapter.Dial(cfg.GRPCAddress, dialer)
	require.NoError(t, err)
	defer loginConn.Close()

	cred, err := Login(ctx, adapter.NewGRPCAdminAdapter(loginConn, cfg, logger.Nop()), "alice", "secret")
	require.NoError(t, err)
	assert.Empty(t, gw.seen("Login").Get(rpc.AuthMetadataKey))

	s, err := New(cfg, cred, logger.Nop(), WithDialOptions(dialer))
	require.NoError(t, err)
	defer s.Close()

	msg, err := s.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pong", msg)
	assert.Equal(t, []string{"abc123"}, gw.seen("Ping").Get(rpc.AuthMetadataKey))
	assert.Len(t, gw.seen("Ping").Get(rpc.TraceIDMetadataKey), 1)

	var got []int64
	for ev, err := range s.SubscribeEvents(ctx, 0) {
		require.NoError(t, err)
		got = append(got, ev.Index)
	}
	assert.Equal(t, []int64{0, 1, 2}, got)
	assert.Equal(t, []string{"abc123"}, gw.seen("SubscribeAdminEvents").Get(rpc.AuthMetadataKey))
}

func TestEndToEnd_WrongPassword(t *testing.T) {
	_, dialer := startRecordingGateway(t)
	cfg := config.ClientAdapter{GRPCAddress: "passthrough:///bufnet", RequestTimeout: time.Second}

	conn, err := adapter.Dial(cfg.GRPCAddress, dialer)
	require.NoError(t, err)
	defer conn.Close()

	cred, err := Login(context.Background(), adapter.NewGRPCAdminAdapter(conn, cfg, logger.Nop()), "alice", "nope")
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
	assert.True(t, cred.IsZero())
}

func TestEndToEnd_UnauthenticatedConnectionIsRejected(t *testing.T) {
	_, dialer := startRecordingGateway(t)
	cfg := config.ClientAdapter{GRPCAddress: "passthrough:///bufnet", RequestTimeout: time.Second}

	conn, err := adapter.Dial(cfg.GRPCAddress, dialer)
	require.NoError(t, err)
	defer conn.Close()

	s := newSession(adapter.NewGRPCAdminAdapter(conn, cfg, logger.Nop()), config.AddUserModeSync, logger.Nop())
	_, err = s.Ping(context.Background())
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
}
