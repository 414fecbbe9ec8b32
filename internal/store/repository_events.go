// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/models"
)

// eventRepository is the SQL implementation of [EventRepository] over the
// "admin_events" table. Indexes come from the table's auto-increment key and
// start at 1.
type eventRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEventRepository constructs an [EventRepository] backed by db.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating admin event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

// AppendEvent implements [EventRepository].
//
// On PostgreSQL the insert runs under an EXCLUSIVE lock on the table, so
// indexes commit in the order they are assigned and a tailing reader never
// sees idx N+1 before idx N. SQLite already serializes writers.
func (r *eventRepository) AppendEvent(ctx context.Context, result models.CommandResult) (models.AdminEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEventQuery(r.db.builder, result)
	if err != nil {
		return models.AdminEvent{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.AppendEvent").Msg("error starting transaction")
		return models.AdminEvent{}, r.db.queryError(err)
	}
	defer func() { _ = tx.Rollback() }()

	if r.db.dialect == DialectPostgres {
		if _, err = tx.ExecContext(ctx, lockAdminEventsQuery); err != nil {
			log.Err(err).Str("func", "*eventRepository.AppendEvent").Msg("error locking admin events")
			return models.AdminEvent{}, r.db.queryError(err)
		}
	}

	var idx int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&idx); err != nil {
		log.Err(err).Str("func", "*eventRepository.AppendEvent").Msg("error appending admin event")
		return models.AdminEvent{}, r.db.queryError(err)
	}
	if idx == 0 {
		return models.AdminEvent{}, ErrEventNotSaved
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*eventRepository.AppendEvent").Msg("error committing admin event")
		return models.AdminEvent{}, r.db.queryError(err)
	}

	stored := result
	return models.AdminEvent{Index: idx, CommandResult: &stored}, nil
}

// ListEventsFrom implements [EventRepository].
func (r *eventRepository) ListEventsFrom(ctx context.Context, fromIndex int64, limit uint64) ([]models.AdminEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEventsFromQuery(r.db.builder, fromIndex, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.ListEventsFrom").Msg("error listing admin events")
		return nil, r.db.queryError(err)
	}
	defer rows.Close()

	events := make([]models.AdminEvent, 0)
	for rows.Next() {
		var (
			event  models.AdminEvent
			result models.CommandResult
			code   int32
		)
		if err = rows.Scan(&event.Index, &result.UID, &code, &result.Message); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result.ResultCode = models.ResultCode(code)
		event.CommandResult = &result
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}
