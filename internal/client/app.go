// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/service"
	"github.com/MKhiriev/go-folio/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.BootstrapService == nil {
		return nil, errors.New("client services are not configured")
	}
	if ui == nil {
		return nil, errors.New("ui is not configured")
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run shows the terminal UI until the user quits or a termination signal
// arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	bundle, err := a.ui.Run(ctx)
	switch {
	case errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("user quit before the site was ready")
		return nil
	case err != nil && ctx.Err() != nil:
		a.logger.Info().Err(ctx.Err()).Msg("client stopped")
		return nil
	case err != nil:
		return fmt.Errorf("client ui: %w", err)
	}

	a.logger.Info().
		Str("foreground", bundle.Foreground).
		Int("background", len(bundle.Background)).
		Str("secondary", bundle.Secondary).
		Msg("site bundle ready")

	return nil
}
