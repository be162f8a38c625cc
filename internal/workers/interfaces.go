// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
//
// It defines the Worker interface, a Workers aggregate that runs several
// workers and waits for them, and Settle, a fan-out/fan-in join that never
// lets one failing task abort its siblings.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks for the duration of the work and should return early once ctx
// is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // process until done or ctx is cancelled
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a plain function to the Worker interface.
type WorkerFunc func(ctx context.Context)

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
