// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-folio/models"
)

// BootstrapHooks receives the observable steps of one bootstrap run. Every
// field is optional.
type BootstrapHooks struct {
	// OnAnimation is called once the loader animation has been fetched.
	// It is never called when the animation is unavailable.
	OnAnimation func(models.LoaderAnimation)

	// OnProgress is called after every settled critical image. Calls never
	// overlap and loaded grows by one on each call.
	OnProgress models.ProgressFunc

	// OnReady is called once when the loading indicator may be dismissed.
	// It is never called while the loader is locked.
	OnReady func(models.AssetBundle)

	// OnHeld is called instead of OnReady when the loader is locked.
	OnHeld func(models.AssetBundle)
}

// ClientBootstrapService sequences the preloading of the site images: the
// critical set first, gated by a minimum display time, then the rest in the
// background.
type ClientBootstrapService interface {
	// Run executes one bootstrap sequence and returns the bundle to render.
	// It returns as soon as the indicator is dismissed (or held) and does not
	// wait for the background phase. A panic inside the sequence yields the
	// fallback bundle.
	Run(ctx context.Context, hooks BootstrapHooks) models.AssetBundle

	// State reports the current lifecycle step.
	State() models.BootstrapState

	// Progress returns a snapshot of the critical phase counters.
	Progress() models.LoadProgress

	// LoadingNonCritical reports whether the background phase is running.
	LoadingNonCritical() bool

	// Wait blocks until the background phase of the last Run has finished.
	Wait()
}
