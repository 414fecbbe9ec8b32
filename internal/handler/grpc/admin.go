package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-exchange-admin/internal/app"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
	"github.com/MKhiriev/go-exchange-admin/internal/service"
	"github.com/MKhiriev/go-exchange-admin/models"
)

// Login implements [rpc.AdminServiceServer]. Wrong credentials are not a
// transport error: the response carries Success=false and a message.
func (h *Handler) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.LoginResponse, error) {
	if err := h.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("malformed login request")
		return &rpc.LoginResponse{Success: false, Message: app.MsgInvalidCredentials}, nil
	}

	token, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return &rpc.LoginResponse{Success: false, Message: app.MsgInvalidCredentials}, nil
	case err != nil:
		return nil, mapServiceError(ctx, err)
	}

	return &rpc.LoginResponse{Success: true, Token: token.String()}, nil
}

// Ping implements [rpc.AdminServiceServer].
func (h *Handler) Ping(ctx context.Context, _ *rpc.PingRequest) (*rpc.PingResponse, error) {
	logger.FromContext(ctx).Info().Msg("ping received")
	return &rpc.PingResponse{Message: app.MsgPong}, nil
}

// StopEngine implements [rpc.AdminServiceServer].
func (h *Handler) StopEngine(ctx context.Context, _ *rpc.StopEngineRequest) (*rpc.StopEngineResponse, error) {
	logger.FromContext(ctx).Info().Msg("received request to stop the engine")

	if err := h.services.ExchangeService.StopEngine(ctx); err != nil {
		return nil, mapServiceError(ctx, err)
	}

	return &rpc.StopEngineResponse{Success: true}, nil
}

// AddUser implements [rpc.AdminServiceServer].
func (h *Handler) AddUser(ctx context.Context, req *rpc.AddUserRequest) (*rpc.AddUserResponse, error) {
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, mapServiceError(ctx, err)
	}

	result, err := h.services.ExchangeService.AddUser(ctx, req.UID)
	if err != nil {
		return nil, mapServiceError(ctx, err)
	}

	return &rpc.AddUserResponse{
		Success: result.ResultCode == models.ResultCodeSuccess,
		Message: result.Message,
	}, nil
}

// AddUserAsync implements [rpc.AdminServiceServer].
func (h *Handler) AddUserAsync(ctx context.Context, req *rpc.AddUserRequest) (*rpc.Empty, error) {
	if err := h.validator.Validate(ctx, req); err != nil {
		return nil, mapServiceError(ctx, err)
	}

	if err := h.services.ExchangeService.AddUserAsync(ctx, req.UID); err != nil {
		return nil, mapServiceError(ctx, err)
	}

	return &rpc.Empty{}, nil
}

// SubscribeAdminEvents implements [rpc.AdminServiceServer]. The stream
// stays open until the client goes away or its session ends.
func (h *Handler) SubscribeAdminEvents(req *rpc.SubscribeAdminEventsRequest, stream grpc.ServerStreamingServer[models.AdminEvent]) error {
	ctx := stream.Context()
	log := logger.FromContext(ctx)
	log.Info().Int64("last_event_index", req.LastEventIndex).Msg("admin event subscription started")

	err := h.services.EventService.Subscribe(ctx, req.LastEventIndex, func(event models.AdminEvent) error {
		log.Debug().Stringer("event", event).Msg("sending event to client")
		return stream.Send(&event)
	})

	return mapServiceError(ctx, err)
}
