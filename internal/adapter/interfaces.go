// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for talking to the
// exchange admin gateway.
//
// The primary abstraction is [AdminAdapter], which decouples the session
// layer from gRPC. [NewGRPCAdminAdapter] is the only implementation; it does
// not own the connection it is given, so the same adapter type serves the
// unauthenticated login connection and the authenticated session
// connection.
//
// Failed calls are mapped once, by mapGRPCError, into a [*TransportError]
// that unwraps to the sentinels in errors.go (e.g. [ErrUnavailable] for
// codes.Unavailable) so callers can use [errors.Is] without importing grpc.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-exchange-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/admin_adapter_mock.go -package=mock

// AdminAdapter defines communication with the admin gateway. Implementations
// are responsible for serialisation, per-call timeouts and mapping transport
// errors to the values defined in this package. Authentication metadata is
// not the adapter's concern: it is attached by the interceptors of the
// connection the adapter was built on.
type AdminAdapter interface {
	// Login exchanges operator credentials for a session token. A rejection
	// by the gateway is returned as [ErrLoginRejected] wrapping the
	// gateway's message.
	Login(ctx context.Context, username, password string) (string, error)

	// Ping returns the gateway's liveness reply.
	Ping(ctx context.Context) (string, error)

	// StopEngine asks the gateway to stop the exchange engine and reports
	// whether the request was accepted.
	StopEngine(ctx context.Context) (bool, error)

	// AddUser provisions uid and waits for the outcome.
	AddUser(ctx context.Context, uid int64) (models.AddUserResult, error)

	// AddUserAsync enqueues the provisioning of uid. The outcome is only
	// observable on the admin event stream.
	AddUserAsync(ctx context.Context, uid int64) error

	// SubscribeAdminEvents opens the admin event stream starting at
	// fromIndex. The stream lives until ctx is done or the gateway closes it.
	SubscribeAdminEvents(ctx context.Context, fromIndex int64) (EventStream, error)
}

// EventStream is an open admin event subscription.
type EventStream interface {
	// Recv blocks until the next event arrives. It returns io.EOF when the
	// gateway closes the stream cleanly.
	Recv() (models.AdminEvent, error)
}
