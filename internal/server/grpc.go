package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-exchange-admin/internal/config"
	myGRPC "github.com/MKhiriev/go-exchange-admin/internal/handler/grpc"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
)

// gracefulStopTimeout bounds GracefulStop. Event subscriptions never end on
// their own, so open streams are cut after it.
const gracefulStopTimeout = 5 * time.Second

type grpcServer struct {
	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, metrics *myGRPC.Metrics, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(handler.ServerOptions(metrics, cfg.RequestTimeout)...)
	handler.Register(s)

	return &grpcServer{
		server:  s,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}

	return g.serve(lis)
}

func (g *grpcServer) serve(lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")

	if err := g.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(gracefulStopTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out, closing open streams")
		g.server.Stop()
		<-stopped
	}
}
