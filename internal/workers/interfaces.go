// Package workers runs the background jobs of the server.
//
// A [Worker] runs until its context is canceled. [Workers] starts several
// workers together and waits for all of them to return.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// SessionSweeper drops idle sessions and reports how many it dropped.
type SessionSweeper interface {
	Sweep() int
}
