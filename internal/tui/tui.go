// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/service"
	"github.com/MKhiriev/go-folio/models"
)

type TUI struct {
	bootstrap service.ClientBootstrapService
	site      *url.URL
	buildInfo models.AppBuildInfo

	// programOptions are appended to the defaults; tests use them to run
	// without a terminal.
	programOptions []tea.ProgramOption

	logger *logger.Logger
}

// New returns a TUI showing the bootstrap of siteURL.
func New(services *service.ClientServices, siteURL string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	site, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("parse site url: %w", err)
	}

	return &TUI{
		bootstrap: services.BootstrapService,
		site:      site,
		buildInfo: buildInfo,
		programOptions: []tea.ProgramOption{
			tea.WithAltScreen(),
		},
		logger: logger,
	}, nil
}

// Run shows the loading indicator while the bootstrap sequence runs, then
// the ready view until the user quits. It returns the bundle the sequence
// produced. Quitting before the bundle is ready returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) (models.AssetBundle, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	program := tea.NewProgram(newModel(t.site, t.buildInfo), opts...)

	var (
		wg     sync.WaitGroup
		bundle models.AssetBundle
	)
	wg.Add(1)
	go func() {
		defer wg.Done()

		bundle = t.bootstrap.Run(ctx, hooksFor(program))
		t.bootstrap.Wait()
		program.Send(backgroundDoneMsg{})
	}()

	finalModel, runErr := program.Run()

	// stops the background phase when the user leaves early
	cancel()
	wg.Wait()

	if runErr != nil {
		return bundle, fmt.Errorf("run terminal ui: %w", runErr)
	}

	result, ok := finalModel.(model)
	if !ok {
		return bundle, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return bundle, ErrUserQuit
	}

	t.logger.Info().
		Str("state", t.bootstrap.State().String()).
		Int("loaded", t.bootstrap.Progress().Loaded).
		Msg("terminal ui closed")

	return bundle, nil
}

// hooksFor forwards every bootstrap step to program as a message.
func hooksFor(program *tea.Program) service.BootstrapHooks {
	return service.BootstrapHooks{
		OnAnimation: func(anim models.LoaderAnimation) {
			program.Send(animationMsg{anim: anim})
		},
		OnProgress: func(loaded, total int) {
			program.Send(progressMsg{loaded: loaded, total: total})
		},
		OnReady: func(bundle models.AssetBundle) {
			program.Send(readyMsg{bundle: bundle})
		},
		OnHeld: func(bundle models.AssetBundle) {
			program.Send(heldMsg{bundle: bundle})
		},
	}
}
