package grpc

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMetrics_CountsUnaryCalls(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	interceptor := m.Unary()
	info := &grpc.UnaryServerInfo{FullMethod: "/exchange.admin.v1.AdminService/Ping"}

	_, _ = interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, nil
	})
	_, _ = interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Unauthenticated, "no")
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(info.FullMethod, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(info.FullMethod, "Unauthenticated")))
}

func TestMetrics_TracksActiveStreams(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	interceptor := m.Stream()
	info := &grpc.StreamServerInfo{FullMethod: "/exchange.admin.v1.AdminService/SubscribeAdminEvents"}

	_ = interceptor(nil, &fakeEventStream{ctx: context.Background()}, info, func(any, grpc.ServerStream) error {
		assert.Equal(t, 1.0, testutil.ToFloat64(m.activeStreams))
		return nil
	})

	assert.Equal(t, 0.0, testutil.ToFloat64(m.activeStreams))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(info.FullMethod, "OK")))
}
