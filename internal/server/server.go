package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/handler"
	"github.com/MKhiriev/go-spellbook/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	background BackgroundRunner
	logger     *logger.Logger
}

// NewServer builds the HTTP server over handlers. background, when not nil,
// runs for as long as the server does.
func NewServer(handlers *handler.Handlers, background BackgroundRunner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPHandler
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		background: background,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// run serves until ctx is done or the listener fails, then shuts down and
// waits for the background runner to return.
func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	backgroundDone := make(chan struct{})
	go func() {
		defer close(backgroundDone)
		if s.background != nil {
			s.background.Run(ctx)
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("http server stopped: %w", err)
		}
	}
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if shutdownErr := s.Shutdown(shutdownCtx); shutdownErr != nil {
		s.logger.Err(shutdownErr).Msg("error shutting down HTTP server")
	}

	<-backgroundDone
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
