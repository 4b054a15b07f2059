package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer starts serving and blocks until a stop signal arrives and
	// the shutdown has finished.
	RunServer()

	// Shutdown gracefully stops serving, waiting at most until ctx is done.
	Shutdown(ctx context.Context) error
}

// BackgroundRunner is run next to the server and stopped with it.
type BackgroundRunner interface {
	Run(ctx context.Context)
}
