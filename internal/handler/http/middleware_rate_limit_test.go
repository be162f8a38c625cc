// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeClock lets tests move the limiter through time.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestLimiter(rps float64, burst int) (*ClientLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := NewClientLimiter(rps, burst)
	l.now = clock.Now
	return l, clock
}

func TestClientLimiter_Disabled(t *testing.T) {
	for _, l := range []*ClientLimiter{nil, NewClientLimiter(0, 5), NewClientLimiter(-1, 5)} {
		assert.False(t, l.Enabled())
		for i := 0; i < 100; i++ {
			ok, wait := l.Allow("192.0.2.1")
			require.True(t, ok)
			require.Zero(t, wait)
		}
	}
}

func TestClientLimiter_BurstThenRefill(t *testing.T) {
	l, clock := newTestLimiter(2, 3)

	for i := 0; i < 3; i++ {
		ok, _ := l.Allow("192.0.2.1")
		require.True(t, ok, "request %d within burst", i)
	}

	ok, wait := l.Allow("192.0.2.1")
	assert.False(t, ok)
	assert.Equal(t, 500*time.Millisecond, wait)

	clock.now = clock.now.Add(500 * time.Millisecond)
	ok, _ = l.Allow("192.0.2.1")
	assert.True(t, ok, "one token refills after 1/rps")
}

func TestClientLimiter_RejectedRequestsDoNotDrainBucket(t *testing.T) {
	l, clock := newTestLimiter(1, 1)

	ok, _ := l.Allow("c")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		ok, _ = l.Allow("c")
		require.False(t, ok)
	}

	clock.now = clock.now.Add(time.Second)
	ok, _ = l.Allow("c")
	assert.True(t, ok)
}

func TestClientLimiter_Sweep(t *testing.T) {
	l, clock := newTestLimiter(1, 1)

	l.Allow("old")
	clock.now = clock.now.Add(5 * time.Minute)
	l.Allow("recent")
	clock.now = clock.now.Add(6 * time.Minute)

	assert.Equal(t, 1, l.Sweep(10*time.Minute))

	_, oldKept := l.clients.Load("old")
	_, recentKept := l.clients.Load("recent")
	assert.False(t, oldKept)
	assert.True(t, recentKept)
}

func TestClientLimiter_RunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewClientLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{remote: "192.0.2.1:1234", want: "192.0.2.1"},
		{remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{remote: "no-port", want: "no-port"},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
