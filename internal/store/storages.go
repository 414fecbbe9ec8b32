package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
)

// Storages groups the repositories of the gateway over one database.
type Storages struct {
	ExchangeUserRepository ExchangeUserRepository
	EventRepository        EventRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("dialect", string(db.Dialect())).Msg("database migrated")

	return &Storages{
		ExchangeUserRepository: NewExchangeUserRepository(db, log),
		EventRepository:        NewEventRepository(db, log),
		db:                     db,
	}, nil
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
