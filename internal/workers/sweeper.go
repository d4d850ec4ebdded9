// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"
)

const defaultSweepInterval = time.Minute

type sessionSweeper struct {
	purger   Purger
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionSweeper creates a worker that calls purger.PurgeExpired on a
// ticker. The worker is idle until Start is called. A non-positive interval
// defaults to one minute.
func NewSessionSweeper(purger Purger, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &sessionSweeper{purger: purger, interval: interval, logger: logger}
}

// Start stops any previously running sweep, then launches a goroutine that
// purges every interval until ctx is cancelled or Stop is called.
func (s *sessionSweeper) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.sweep(jobCtx)
			}
		}
	}()
}

// Stop cancels the sweep goroutine and blocks until it has exited.
func (s *sessionSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	removed, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionSweeper.sweep").Msg("error purging expired sessions")
		return
	}
	if removed > 0 {
		s.logger.Debug().Str("func", "*sessionSweeper.sweep").Int("removed", removed).Msg("expired sessions purged")
	}
}
