// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-spellbook/internal/logger"
)

type sessionSweepWorker struct {
	sessions SessionSweeper
	interval time.Duration

	logger *logger.Logger
}

func newSessionSweepWorker(sessions SessionSweeper, interval time.Duration, logger *logger.Logger) *sessionSweepWorker {
	return &sessionSweepWorker{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps idle sessions every interval until ctx is done.
func (w *sessionSweepWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			if n := w.sessions.Sweep(); n > 0 {
				w.logger.Info().Int("expired", n).Msg("idle sessions expired")
			}
		}
	}
}
