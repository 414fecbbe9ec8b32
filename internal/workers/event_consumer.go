// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exchange-admin/internal/logger"
)

// EventConsumer renders the admin event stream for as long as it lasts.
//
// It subscribes once from index 0 and never resubscribes: after a failure
// or a close by the gateway the operator keeps a working command loop but
// sees no further events.
type EventConsumer struct {
	source   EventSource
	renderer EventRenderer

	logger *logger.Logger
}

// NewEventConsumer builds a consumer reading from source.
func NewEventConsumer(source EventSource, renderer EventRenderer, log *logger.Logger) *EventConsumer {
	return &EventConsumer{source: source, renderer: renderer, logger: log}
}

// Run implements [Worker]. It returns nil on a clean close or when ctx is
// cancelled, and the stream error otherwise.
func (c *EventConsumer) Run(ctx context.Context) error {
	var received int
	for event, err := range c.source.SubscribeEvents(ctx, 0) {
		if err != nil {
			// a Canceled status from the gateway still ends the stream
			// remotely; only our own ctx means a local teardown
			if ctx.Err() != nil {
				return nil
			}
			c.renderer.RenderStreamEnd(err)
			return fmt.Errorf("admin event stream after %d events: %w", received, err)
		}

		received++
		c.logger.Debug().Int64("index", event.Index).Msg("admin event received")
		c.renderer.RenderEvent(event)
	}

	if ctx.Err() != nil {
		return nil
	}

	c.logger.Info().Int("events", received).Msg("admin event stream closed by gateway")
	c.renderer.RenderStreamEnd(nil)
	return nil
}
