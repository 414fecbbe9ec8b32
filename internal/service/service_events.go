package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/store"
	"github.com/MKhiriev/go-exchange-admin/models"
)

const eventBatchSize = 100

type eventService struct {
	events       store.EventRepository
	pollInterval time.Duration

	logger *logger.Logger
}

// NewEventService constructs an EventService polling the log every
// cfg.PollInterval while a subscriber is caught up.
func NewEventService(events store.EventRepository, cfg config.Workers, logger *logger.Logger) EventService {
	return &eventService{
		events:       events,
		pollInterval: cfg.PollInterval,
		logger:       logger,
	}
}

// Subscribe implements [EventService]. It returns ctx's cancellation cause
// when ctx ends.
func (s *eventService) Subscribe(ctx context.Context, fromIndex int64, send func(models.AdminEvent) error) error {
	log := logger.FromContext(ctx)
	next := max(fromIndex, 0)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		batch, err := s.events.ListEventsFrom(ctx, next, eventBatchSize)
		if err != nil {
			if ctx.Err() != nil {
				return context.Cause(ctx)
			}
			return fmt.Errorf("error reading admin events from %d: %w", next, err)
		}

		for _, event := range batch {
			if err = send(event); err != nil {
				return err
			}
			next = event.Index + 1
		}

		if len(batch) == eventBatchSize {
			continue
		}

		select {
		case <-ctx.Done():
			log.Debug().Int64("next_index", next).Msg("event subscription ended")
			return context.Cause(ctx)
		case <-ticker.C:
		}
	}
}
