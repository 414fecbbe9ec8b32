// Package server wires and runs the transport servers of the admin gateway.
//
// It owns the lifecycle of the gRPC admin service, the optional HTTP status
// endpoint and the background command worker: startup, graceful shutdown
// on context cancellation, and teardown in dependency order.
package server
