package grpc

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Metrics holds the Prometheus collectors of the admin service.
type Metrics struct {
	requests      *prometheus.CounterVec
	activeStreams prometheus.Gauge
}

// NewMetrics registers the admin service collectors in reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_rpc_requests_total",
			Help: "Admin service calls by method and status code.",
		}, []string{"method", "code"}),
		activeStreams: factory.NewGauge(prometheus.GaugeOpts{
			Name: "admin_event_streams_active",
			Help: "Admin event subscriptions currently open.",
		}),
	}
}

// Unary returns the unary server interceptor counting calls.
func (m *Metrics) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		m.requests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}

// Stream returns the stream server interceptor counting calls and open
// streams.
func (m *Metrics) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		m.activeStreams.Inc()
		defer m.activeStreams.Dec()

		err := handler(srv, ss)
		m.requests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return err
	}
}
