// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	defer goleak.VerifyNone(t)

	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Start(context.Background())
	ws.Wait()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Start_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not block on an empty registry
	ws.Start(context.Background())
	ws.Wait()
}

func TestWorkers_Start_Nil(t *testing.T) {
	ws := &Workers{}

	ws.Start(context.Background())
	ws.Wait()
}

func TestWorkers_StartTwice_RunsOnce(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Start(context.Background())
	ws.Start(context.Background())
	ws.Wait()

	assert.EqualValues(t, 1, w.runCount.Load())
}

func TestWorkers_Add_AfterStart(t *testing.T) {
	first := &mockWorker{}
	second := &mockWorker{}
	ws := NewWorkers(first)

	ws.Start(context.Background())
	ws.Add(second)
	ws.Start(context.Background())
	ws.Wait()

	assert.EqualValues(t, 1, first.runCount.Load())
	assert.EqualValues(t, 1, second.runCount.Load())
}

func TestWorkers_Wait_BlocksUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(WorkerFunc(func(ctx context.Context) {
		<-ctx.Done()
	}))
	ws.Start(ctx)

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before the worker finished")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancel")
	}
}

func TestWorkerFunc_Run(t *testing.T) {
	var mu sync.Mutex
	called := false

	WorkerFunc(func(context.Context) {
		mu.Lock()
		called = true
		mu.Unlock()
	}).Run(context.Background())

	assert.True(t, called)
}
