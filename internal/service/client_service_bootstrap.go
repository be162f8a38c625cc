// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-folio/internal/adapter"
	"github.com/MKhiriev/go-folio/internal/assets"
	"github.com/MKhiriev/go-folio/internal/config"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/workers"
	"github.com/MKhiriev/go-folio/models"
)

type clientBootstrapService struct {
	site adapter.SiteAdapter
	cfg  config.ClientAssets

	// bundle builds the asset bundle of a run.
	bundle func() models.AssetBundle

	state       atomic.Int32
	nonCritical atomic.Bool

	mu       sync.Mutex
	progress models.LoadProgress

	background *workers.Workers

	logger *logger.Logger
}

// NewClientBootstrapService returns a sequencer fetching images through site.
func NewClientBootstrapService(site adapter.SiteAdapter, cfg config.ClientAssets, logger *logger.Logger) ClientBootstrapService {
	return &clientBootstrapService{
		site:       site,
		cfg:        cfg,
		bundle:     assets.Bundle,
		background: workers.NewWorkers(),
		logger:     logger,
	}
}

func (s *clientBootstrapService) Run(ctx context.Context, hooks BootstrapHooks) (bundle models.AssetBundle) {
	start := time.Now()
	revealed := false

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.logger.Error().Str("func", "*clientBootstrapService.Run").
			Str("panic", fmt.Sprint(r)).Msg("bootstrap failed, using fallback bundle")

		bundle = assets.FallbackBundle()
		if !revealed {
			s.reveal(hooks, bundle)
		}
	}()

	s.setState(models.BootstrapLoadingCritical)
	s.loadAnimation(ctx, hooks)

	bundle = s.bundle()
	s.loadCritical(ctx, bundle, hooks)

	s.setState(models.BootstrapMinimumWait)
	s.waitMinimumDisplay(ctx, start)

	revealed = true
	s.reveal(hooks, bundle)

	if ctx.Err() == nil {
		s.startNonCritical(ctx, bundle)
	}

	return bundle
}

func (s *clientBootstrapService) State() models.BootstrapState {
	return models.BootstrapState(s.state.Load())
}

func (s *clientBootstrapService) Progress() models.LoadProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

func (s *clientBootstrapService) LoadingNonCritical() bool {
	return s.nonCritical.Load()
}

func (s *clientBootstrapService) Wait() {
	s.background.Wait()
}

func (s *clientBootstrapService) setState(state models.BootstrapState) {
	s.state.Store(int32(state))
}

// loadAnimation never fails the run: the indicator works without it.
func (s *clientBootstrapService) loadAnimation(ctx context.Context, hooks BootstrapHooks) {
	anim, err := s.site.FetchLoaderAnimation(ctx, s.cfg.LoaderPath)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", s.cfg.LoaderPath).Msg("loader animation unavailable")
		return
	}
	if hooks.OnAnimation != nil {
		hooks.OnAnimation(anim)
	}
}

func (s *clientBootstrapService) loadCritical(ctx context.Context, bundle models.AssetBundle, hooks BootstrapHooks) {
	critical := assets.CriticalSet(bundle)

	s.mu.Lock()
	s.progress = models.LoadProgress{Total: len(critical)}
	s.mu.Unlock()

	workers.Settle(ctx, critical, s.cfg.Concurrency, s.fetchImage,
		func(res workers.Result[string, models.AssetResult]) {
			if !res.OK() {
				s.logger.Warn().Err(res.Err).Str("url", res.Item).Msg("critical image failed to load")
			}

			s.mu.Lock()
			s.progress.Loaded++
			p := s.progress
			s.mu.Unlock()

			// Settle serializes this callback, so hook calls never overlap.
			if hooks.OnProgress != nil {
				s.safeHook("OnProgress", func() { hooks.OnProgress(p.Loaded, p.Total) })
			}
		})
}

// waitMinimumDisplay keeps the indicator up for at least MinDisplay since
// start. Slow loads get no extra wait. Cancellation ends the wait early.
func (s *clientBootstrapService) waitMinimumDisplay(ctx context.Context, start time.Time) {
	remaining := s.cfg.MinDisplay - time.Since(start)
	if remaining <= 0 {
		return
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *clientBootstrapService) reveal(hooks BootstrapHooks, bundle models.AssetBundle) {
	if s.cfg.LockLoader {
		s.setState(models.BootstrapHeld)
		s.logger.Debug().Msg("loader locked, holding the loading indicator")
		if hooks.OnHeld != nil {
			hooks.OnHeld(bundle.Clone())
		}
		return
	}

	s.setState(models.BootstrapReady)
	if hooks.OnReady != nil {
		hooks.OnReady(bundle.Clone())
	}
}

// startNonCritical preloads the remaining images. Failures are logged only
// and progress is left untouched.
func (s *clientBootstrapService) startNonCritical(ctx context.Context, bundle models.AssetBundle) {
	refs := assets.NonCriticalSet(bundle)
	if len(refs) == 0 {
		return
	}

	s.nonCritical.Store(true)
	s.background.Add(workers.WorkerFunc(func(ctx context.Context) {
		defer s.nonCritical.Store(false)

		results := workers.Settle(ctx, refs, s.cfg.Concurrency, s.fetchImage,
			func(res workers.Result[string, models.AssetResult]) {
				if !res.OK() {
					s.logger.Debug().Err(res.Err).Str("url", res.Item).Msg("background image failed to load")
				}
			})

		loaded := 0
		for _, res := range results {
			if res.OK() {
				loaded++
			}
		}
		s.logger.Info().Int("loaded", loaded).Int("total", len(results)).Msg("background images settled")
	}))
	s.background.Start(ctx)
}

func (s *clientBootstrapService) fetchImage(ctx context.Context, ref string) (models.AssetResult, error) {
	return s.site.FetchImage(ctx, ref)
}

// safeHook runs a hook called from a worker goroutine, where a panic could
// not be recovered by Run.
func (s *clientBootstrapService) safeHook(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Str("hook", name).Str("panic", fmt.Sprint(r)).Msg("bootstrap hook panicked")
		}
	}()
	fn()
}
