package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/handler/grpc"
	"github.com/MKhiriev/go-exchange-admin/internal/handler/http"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/service"
)

type Handlers struct {
	HTTP    *http.Handler
	GRPC    *grpc.Handler
	Metrics *grpc.Metrics
}

// NewHandlers creates a handler for every transport that has an address in
// cfg. The admin service collectors are registered in registry, which the
// HTTP handler also exposes on /metrics.
func NewHandlers(services *service.Services, health http.HealthChecker, registry *prometheus.Registry, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, health, registry, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
		handlers.Metrics = grpc.NewMetrics(registry)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
