package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured workers. A non-positive sweep interval
// leaves the session sweeper out.
func NewWorkers(cfg config.Workers, sessions SessionSweeper, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.SessionSweepInterval > 0 {
		w.workers = append(w.workers, newSessionSweepWorker(sessions, cfg.SessionSweepInterval, logger))
	} else {
		logger.Info().Msg("session sweeper disabled")
	}

	return w
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
