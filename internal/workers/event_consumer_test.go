package workers

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/MKhiriev/go-exchange-admin/internal/adapter"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/models"
)

// sliceSource yields events then optionally an error; block keeps the
// stream open until ctx is cancelled.
type sliceSource struct {
	events []models.AdminEvent
	err    error
	block  bool

	mu    sync.Mutex
	opens []int64
}

func (s *sliceSource) SubscribeEvents(ctx context.Context, fromIndex int64) iter.Seq2[models.AdminEvent, error] {
	return func(yield func(models.AdminEvent, error) bool) {
		s.mu.Lock()
		s.opens = append(s.opens, fromIndex)
		s.mu.Unlock()

		for _, ev := range s.events {
			if !yield(ev, nil) {
				return
			}
		}
		if s.block {
			<-ctx.Done()
			yield(models.AdminEvent{}, fmt.Errorf("stream: %w", &adapter.TransportError{Code: codes.Canceled}))
			return
		}
		if s.err != nil {
			yield(models.AdminEvent{}, s.err)
		}
	}
}

type recordingRenderer struct {
	mu      sync.Mutex
	indexes []int64
	ends    []error
}

func (r *recordingRenderer) RenderEvent(ev models.AdminEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexes = append(r.indexes, ev.Index)
}

func (r *recordingRenderer) RenderStreamEnd(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ends = append(r.ends, err)
}

func (r *recordingRenderer) snapshot() ([]int64, []error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.indexes...), append([]error(nil), r.ends...)
}

func TestEventConsumer_RendersInOrderThenClose(t *testing.T) {
	src := &sliceSource{events: []models.AdminEvent{{Index: 0}, {Index: 1}, {Index: 2}}}
	r := &recordingRenderer{}

	err := NewEventConsumer(src, r, logger.Nop()).Run(context.Background())
	require.NoError(t, err)

	indexes, ends := r.snapshot()
	assert.Equal(t, []int64{0, 1, 2}, indexes)
	assert.Equal(t, []error{nil}, ends)
	assert.Equal(t, []int64{0}, src.opens)
}

func TestEventConsumer_ErrorReportedOnceNoResubscribe(t *testing.T) {
	streamErr := &adapter.TransportError{Op: "SubscribeAdminEvents", Code: codes.Unavailable}
	src := &sliceSource{events: []models.AdminEvent{{Index: 0}}, err: streamErr}
	r := &recordingRenderer{}

	err := NewEventConsumer(src, r, logger.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, adapter.ErrUnavailable)

	indexes, ends := r.snapshot()
	assert.Equal(t, []int64{0}, indexes)
	require.Len(t, ends, 1)
	assert.ErrorIs(t, ends[0], adapter.ErrUnavailable)
	assert.Len(t, src.opens, 1)
}

func TestEventConsumer_GatewayCancelIsReported(t *testing.T) {
	streamErr := fmt.Errorf("stream: %w", &adapter.TransportError{
		Op:      "SubscribeAdminEvents",
		Code:    codes.Canceled,
		Message: "Logged in from another location",
	})
	src := &sliceSource{events: []models.AdminEvent{{Index: 0}}, err: streamErr}
	r := &recordingRenderer{}

	err := NewEventConsumer(src, r, logger.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, adapter.ErrCanceled)

	_, ends := r.snapshot()
	require.Len(t, ends, 1)
	assert.ErrorIs(t, ends[0], adapter.ErrCanceled)
	assert.Contains(t, ends[0].Error(), "Logged in from another location")
}

func TestEventConsumer_CancellationIsQuiet(t *testing.T) {
	src := &sliceSource{events: []models.AdminEvent{{Index: 0}}, block: true}
	r := &recordingRenderer{}
	ws := NewWorkers(logger.Nop(), NewEventConsumer(src, r, logger.Nop()))

	ws.Start(context.Background())
	assert.Eventually(t, func() bool {
		indexes, _ := r.snapshot()
		return len(indexes) == 1
	}, time.Second, 5*time.Millisecond)
	ws.Stop()

	_, ends := r.snapshot()
	assert.Empty(t, ends)
}
