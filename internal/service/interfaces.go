package service

import (
	"context"

	"github.com/MKhiriev/go-exchange-admin/internal/workers"
	"github.com/MKhiriev/go-exchange-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies operators and tracks their sessions. Each operator
// has at most one active session: a new login supersedes the previous one
// and cancels every call still running under it.
type AuthService interface {
	// Login verifies the password of username and opens a new session.
	// Returns ErrInvalidCredentials on a mismatch and
	// ErrTooManyLoginAttempts when the login rate is exceeded.
	Login(ctx context.Context, username, password string) (models.Token, error)

	// Authenticate validates rawToken and returns a context derived from ctx
	// that carries the operator and is cancelled when the session is
	// superseded. The returned CancelFunc must be called when the call ends.
	Authenticate(ctx context.Context, rawToken string) (context.Context, context.CancelFunc, error)
}

// ExchangeService executes administrative commands against the exchange
// engine. It is also the worker draining the asynchronous command queue.
type ExchangeService interface {
	workers.Worker

	// StopEngine stops the engine. Commands submitted afterwards fail with
	// ErrEngineStopped. Calling it again is a no-op.
	StopEngine(ctx context.Context) error

	// AddUser creates the exchange user uid, publishes the outcome to the
	// event log and returns it.
	AddUser(ctx context.Context, uid int64) (models.CommandResult, error)

	// AddUserAsync queues the creation of uid. The outcome is only visible
	// in the event log.
	AddUserAsync(ctx context.Context, uid int64) error

	// Running reports whether the engine accepts commands.
	Running() bool
}

// EventService tails the admin event log.
type EventService interface {
	// Subscribe calls send for every event with Index >= fromIndex, in
	// order, and keeps waiting for new ones until ctx is done or send
	// fails.
	Subscribe(ctx context.Context, fromIndex int64, send func(models.AdminEvent) error) error
}

// AppInfoService exposes build metadata of the gateway.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
