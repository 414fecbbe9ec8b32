package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
	"github.com/MKhiriev/go-exchange-admin/models"
)

type grpcAdminAdapter struct {
	client  rpc.AdminServiceClient
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCAdminAdapter builds an [AdminAdapter] on top of cc. The adapter
// does not close cc; its owner does.
func NewGRPCAdminAdapter(cc grpc.ClientConnInterface, adapterCfg config.ClientAdapter, log *logger.Logger) AdminAdapter {
	return &grpcAdminAdapter{
		client:  rpc.NewAdminServiceClient(cc),
		timeout: adapterCfg.RequestTimeout,
		logger:  log,
	}
}

func (g *grpcAdminAdapter) unaryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

// Login implements [AdminAdapter].
func (g *grpcAdminAdapter) Login(ctx context.Context, username, password string) (string, error) {
	ctx, cancel := g.unaryContext(ctx)
	defer cancel()

	resp, err := g.client.Login(ctx, &rpc.LoginRequest{Username: username, Password: password})
	if err != nil {
		g.logger.Err(err).Str("username", username).Msg("login call failed")
		return "", mapGRPCError("Login", err)
	}

	if !resp.Success {
		return "", fmt.Errorf("%w: %s", ErrLoginRejected, strings.TrimSpace(resp.Message))
	}

	return resp.Token, nil
}

// Ping implements [AdminAdapter].
func (g *grpcAdminAdapter) Ping(ctx context.Context) (string, error) {
	ctx, cancel := g.unaryContext(ctx)
	defer cancel()

	resp, err := g.client.Ping(ctx, &rpc.PingRequest{})
	if err != nil {
		g.logger.Err(err).Msg("ping call failed")
		return "", mapGRPCError("Ping", err)
	}

	return resp.Message, nil
}

// StopEngine implements [AdminAdapter].
func (g *grpcAdminAdapter) StopEngine(ctx context.Context) (bool, error) {
	ctx, cancel := g.unaryContext(ctx)
	defer cancel()

	resp, err := g.client.StopEngine(ctx, &rpc.StopEngineRequest{})
	if err != nil {
		g.logger.Err(err).Msg("stop engine call failed")
		return false, mapGRPCError("StopEngine", err)
	}

	return resp.Success, nil
}

// AddUser implements [AdminAdapter].
func (g *grpcAdminAdapter) AddUser(ctx context.Context, uid int64) (models.AddUserResult, error) {
	ctx, cancel := g.unaryContext(ctx)
	defer cancel()

	resp, err := g.client.AddUser(ctx, &rpc.AddUserRequest{UID: uid})
	if err != nil {
		g.logger.Err(err).Int64("uid", uid).Msg("add user call failed")
		return models.AddUserResult{}, mapGRPCError("AddUser", err)
	}

	return models.AddUserResult{UID: uid, Accepted: resp.Success, Message: resp.Message}, nil
}

// AddUserAsync implements [AdminAdapter].
func (g *grpcAdminAdapter) AddUserAsync(ctx context.Context, uid int64) error {
	ctx, cancel := g.unaryContext(ctx)
	defer cancel()

	if _, err := g.client.AddUserAsync(ctx, &rpc.AddUserRequest{UID: uid}); err != nil {
		g.logger.Err(err).Int64("uid", uid).Msg("async add user call failed")
		return mapGRPCError("AddUserAsync", err)
	}

	return nil
}

// SubscribeAdminEvents implements [AdminAdapter]. The stream is bound to ctx
// only; the unary request timeout does not apply.
func (g *grpcAdminAdapter) SubscribeAdminEvents(ctx context.Context, fromIndex int64) (EventStream, error) {
	stream, err := g.client.SubscribeAdminEvents(ctx, &rpc.SubscribeAdminEventsRequest{LastEventIndex: fromIndex})
	if err != nil {
		return nil, mapGRPCError("SubscribeAdminEvents", err)
	}

	return &eventStream{stream: stream}, nil
}

type eventStream struct {
	stream grpc.ServerStreamingClient[models.AdminEvent]
}

func (s *eventStream) Recv() (models.AdminEvent, error) {
	event, err := s.stream.Recv()
	if errors.Is(err, io.EOF) {
		return models.AdminEvent{}, io.EOF
	}
	if err != nil {
		return models.AdminEvent{}, mapGRPCError("SubscribeAdminEvents", err)
	}
	return *event, nil
}
