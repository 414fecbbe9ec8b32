// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers group that starts workers in
// their own goroutines and stops them together.
package workers

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-exchange-admin/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the work is finished or ctx is done. A worker that ends
// because of ctx must return nil or an error wrapping ctx.Err().
type Worker interface {
	Run(ctx context.Context) error
}

// EventSource yields admin events. *session.Session satisfies it.
type EventSource interface {
	SubscribeEvents(ctx context.Context, fromIndex int64) iter.Seq2[models.AdminEvent, error]
}

// EventRenderer presents events to the operator.
type EventRenderer interface {
	// RenderEvent is called once per event, in arrival order.
	RenderEvent(event models.AdminEvent)
	// RenderStreamEnd is called once when the stream ends on its own: err
	// is nil for a clean close by the gateway.
	RenderStreamEnd(err error)
}
