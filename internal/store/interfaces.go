package store

import (
	"context"

	"github.com/MKhiriev/go-exchange-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ExchangeUserRepository persists exchange accounts created by operators.
type ExchangeUserRepository interface {
	// CreateUser stores a new account. Returns [ErrUserAlreadyExists] when
	// the UID is taken.
	CreateUser(ctx context.Context, user models.ExchangeUser) (models.ExchangeUser, error)
}

// EventRepository is the append-only admin event log.
type EventRepository interface {
	// AppendEvent stores result and returns the event with its assigned index.
	AppendEvent(ctx context.Context, result models.CommandResult) (models.AdminEvent, error)

	// ListEventsFrom returns up to limit events with Index >= fromIndex in
	// index order.
	ListEventsFrom(ctx context.Context, fromIndex int64, limit uint64) ([]models.AdminEvent, error)
}

// ErrorClassificator maps driver errors to storage-level meaning.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
