package workers

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrQueueFull is returned by Submit when the queue has no free slot.
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueClosed is returned by Submit after Close.
	ErrQueueClosed = errors.New("queue is closed")
)

// Queue is a bounded work queue drained by a single worker goroutine. Items
// are handled one at a time in submission order.
type Queue[T any] struct {
	items  chan T
	handle func(ctx context.Context, item T)

	mu     sync.RWMutex
	closed bool
}

// NewQueue creates a queue with capacity size. handle is called from Run.
func NewQueue[T any](size int, handle func(ctx context.Context, item T)) *Queue[T] {
	if size < 1 {
		size = 1
	}
	return &Queue[T]{items: make(chan T, size), handle: handle}
}

// Submit enqueues item without blocking.
func (q *Queue[T]) Submit(item T) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.items <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting items. Items already queued are still handled by
// Run before it returns.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.items)
	}
}

// Run implements [Worker]. It returns when the queue is closed and drained,
// or when ctx is done.
func (q *Queue[T]) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case item, ok := <-q.items:
			if !ok {
				return nil
			}
			q.handle(ctx, item)
		}
	}
}
