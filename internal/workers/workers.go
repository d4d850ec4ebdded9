package workers

import (
	"context"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/session"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewWorkersFromConfig returns the workers enabled by cfg. The session sweeper
// runs only when an interval is set and the session store can purge; the
// database and redis stores expire sessions on their own.
func NewWorkersFromConfig(cfg config.Workers, sessions session.Store, log *logger.Logger) *Workers {
	ws := &Workers{}

	purger, ok := sessions.(Purger)
	switch {
	case cfg.SessionSweepInterval <= 0:
		log.Info().Str("func", "NewWorkersFromConfig").Msg("session sweeper disabled")
	case !ok:
		log.Info().Str("func", "NewWorkersFromConfig").Msg("session store expires sessions itself, sweeper not needed")
	default:
		ws.workers = append(ws.workers, NewSessionSweeper(purger, cfg.SessionSweepInterval, log))
	}

	return ws
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

func (w *Workers) Len() int {
	return len(w.workers)
}
