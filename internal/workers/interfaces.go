// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers in a unified way, and the expired session sweeper.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutine and keep
// running until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is a no-op on an idle worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Purger removes expired sessions and reports how many were removed.
// session.MemoryStore implements it.
type Purger interface {
	PurgeExpired(ctx context.Context) (int, error)
}
