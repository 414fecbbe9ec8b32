package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-exchange-admin/internal/logger"
)

// Workers runs a fixed set of workers, each in its own goroutine.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewWorkers groups ws. Nothing runs until Start.
func NewWorkers(log *logger.Logger, ws ...Worker) *Workers {
	return &Workers{workers: ws, logger: log}
}

// Start launches every worker under a context derived from ctx. Calling
// Start again first stops the previous run.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(len(w.workers))
	w.mu.Unlock()

	for _, worker := range w.workers {
		go func() {
			defer w.wg.Done()
			w.run(runCtx, worker)
		}()
	}
}

func (w *Workers) run(ctx context.Context, worker Worker) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error().Str("worker", fmt.Sprintf("%T", worker)).Interface("panic", r).Msg("worker panicked")
		}
	}()

	err := worker.Run(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		w.logger.Debug().Str("worker", fmt.Sprintf("%T", worker)).Msg("worker finished")
	default:
		w.logger.Err(err).Str("worker", fmt.Sprintf("%T", worker)).Msg("worker failed")
	}
}

// Wait blocks until every worker has returned on its own or after Stop.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// Stop cancels the workers' context and blocks until all of them have
// returned. It is a no-op when nothing is running.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
