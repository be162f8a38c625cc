// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/handler"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/workers"
)

type server struct {
	httpServer *httpServer

	// background runs for the lifetime of the server, e.g. the eviction of
	// idle rate limit buckets.
	background *workers.Workers

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		background: workers.NewWorkers(handlers.HTTP.Limiter()),
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
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or the listener fails, then shuts the HTTP
// server down and waits for the background workers.
func (s *server) run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
	}

	ctx, cancel := context.WithCancel(s.logger.WithContext(ctx))
	defer cancel()

	s.background.Start(ctx)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
		s.Shutdown()
		err = <-serveErr
	case err = <-serveErr:
	}

	cancel()
	s.background.Wait()

	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
