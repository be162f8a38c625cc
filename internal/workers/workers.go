// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// Workers runs a set of workers in their own goroutines.
type Workers struct {
	mu      sync.Mutex
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers returns a Workers holding ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Add registers w to be started by the next Start call.
func (w *Workers) Add(worker Worker) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.workers = append(w.workers, worker)
}

// Start launches every registered worker and clears the registry, so a
// worker is started at most once. It does not block.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	pending := w.workers
	w.workers = nil
	w.mu.Unlock()

	for _, worker := range pending {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
