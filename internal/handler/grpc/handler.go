package grpc

import (
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/rpc"
	"github.com/MKhiriev/go-exchange-admin/internal/service"
	"github.com/MKhiriev/go-exchange-admin/internal/validators"
)

// Handler is the root gRPC transport handler. It implements
// [rpc.AdminServiceServer] on top of the service layer.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	rpc.UnimplementedAdminServiceServer

	// services provides access to all application business operations.
	services *service.Services

	// validator rejects malformed requests before they reach services.
	validator validators.Validator

	// logger is used for diagnostic log output outside of a call.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:  services,
		validator: validators.NewAdminRequestValidator(),
		logger:    logger,
	}
}
