package http

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/service"
	"github.com/MKhiriev/go-exchange-admin/internal/utils"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	health   HealthChecker
	gatherer prometheus.Gatherer
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. health and gatherer may be nil: the
// health probe then skips the database and /metrics is not routed.
func NewHandler(services *service.Services, health HealthChecker, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		health:   health,
		gatherer: gatherer,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
