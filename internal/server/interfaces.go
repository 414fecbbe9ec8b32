package server

import "context"

// Server defines the lifecycle contract of the gateway.
type Server interface {
	// RunServer serves until ctx is cancelled or a transport fails, then
	// shuts everything down. A failed transport's error is returned.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops all transports and workers. It is safe to
	// call more than once.
	Shutdown()
}
