// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrTaskPanicked wraps a panic recovered from a settle task.
var ErrTaskPanicked = errors.New("task panicked")

// Result is the settled outcome of one task. Exactly one of Value or Err is
// meaningful.
type Result[T, R any] struct {
	// Index is the position of Item in the input slice.
	Index int
	Item  T
	Value R
	Err   error
}

// OK reports whether the task succeeded.
func (r Result[T, R]) OK() bool {
	return r.Err == nil
}

// Settle runs fn for every item and waits until all of them settle. A task
// error or panic is recorded in its Result and never cancels the others.
//
// At most limit tasks run at once; limit <= 0 starts them all together.
// onSettled, when not nil, is called once per task in completion order. Calls
// are serialized, so it may touch shared state without extra locking.
//
// The returned slice is ordered like items.
func Settle[T, R any](
	ctx context.Context,
	items []T,
	limit int,
	fn func(ctx context.Context, item T) (R, error),
	onSettled func(Result[T, R]),
) []Result[T, R] {
	results := make([]Result[T, R], len(items))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	var mu sync.Mutex
	for i, item := range items {
		g.Go(func() error {
			res := Result[T, R]{Index: i, Item: item}
			res.Value, res.Err = runTask(ctx, item, fn)

			mu.Lock()
			defer mu.Unlock()
			results[i] = res
			if onSettled != nil {
				onSettled(res)
			}

			return nil
		})
	}

	// every task returns nil
	_ = g.Wait()

	return results
}

func runTask[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (value R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()

	return fn(ctx, item)
}
