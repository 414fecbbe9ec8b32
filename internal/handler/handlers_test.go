package handler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
)

// TestNewHandlers_BothAddresses verifies that when both HTTPAddress and
// GRPCAddress are configured, both handlers are initialised.
func TestNewHandlers_BothAddresses(t *testing.T) {
	cfg := config.Server{
		HTTPAddress: ":8080",
		GRPCAddress: ":9090",
	}

	h, err := NewHandlers(nil, nil, prometheus.NewRegistry(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.GRPC)
	assert.NotNil(t, h.Metrics)
}

func TestNewHandlers_OnlyGRPC(t *testing.T) {
	h, err := NewHandlers(nil, nil, nil, config.Server{GRPCAddress: ":9090"}, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, h.HTTP, "expected HTTP handler to be nil")
	assert.NotNil(t, h.GRPC)
	assert.NotNil(t, h.Metrics)
}

func TestNewHandlers_OnlyHTTP(t *testing.T) {
	h, err := NewHandlers(nil, nil, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.Nil(t, h.GRPC)
}

// TestNewHandlers_NoAddresses verifies that NewHandlers refuses an empty
// server configuration.
func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(nil, nil, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_SharedRegistry verifies that the admin service collectors
// land in the registry the status endpoint exposes.
func TestNewHandlers_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewHandlers(nil, nil, reg, config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, logger.Nop())
	require.NoError(t, err)

	// registering the same collector again must collide
	err = reg.Register(prometheus.NewGauge(prometheus.GaugeOpts{Name: "admin_event_streams_active", Help: "dup"}))
	assert.Error(t, err)
}
