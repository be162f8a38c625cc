// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/internal/utils"
)

const (
	limiterSweepInterval = time.Minute
	limiterIdleTTL       = 10 * time.Minute
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// ClientLimiter keeps one token bucket per client IP.
type ClientLimiter struct {
	limit   rate.Limit
	burst   int
	clients sync.Map // ip -> *clientBucket
	now     func() time.Time
}

// NewClientLimiter allows rps requests per second with bursts of burst per
// client. rps <= 0 disables limiting.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &ClientLimiter{limit: rate.Limit(rps), burst: burst, now: time.Now}
}

// Enabled reports whether requests are throttled at all.
func (l *ClientLimiter) Enabled() bool {
	return l != nil && l.limit > 0
}

// Allow consumes a token of client and returns how long to wait when none
// is available.
func (l *ClientLimiter) Allow(client string) (bool, time.Duration) {
	if !l.Enabled() {
		return true, 0
	}

	now := l.now()
	val, _ := l.clients.LoadOrStore(client, &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)})
	bucket := val.(*clientBucket)
	bucket.lastSeen.Store(now.UnixNano())

	reservation := bucket.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	reservation.CancelAt(now)
	return false, delay
}

// Sweep forgets clients idle for longer than ttl.
func (l *ClientLimiter) Sweep(ttl time.Duration) int {
	cutoff := l.now().Add(-ttl).UnixNano()
	removed := 0
	l.clients.Range(func(key, val any) bool {
		if val.(*clientBucket).lastSeen.Load() < cutoff {
			l.clients.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Run sweeps idle clients until ctx is done.
func (l *ClientLimiter) Run(ctx context.Context) {
	if !l.Enabled() {
		return
	}

	t := time.NewTicker(limiterSweepInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := l.Sweep(limiterIdleTTL); n > 0 {
				logger.FromContext(ctx).Debug().Int("clients", n).Msg("evicted idle rate limit buckets")
			}
		}
	}
}

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := h.limiter.Allow(clientIP(r))
		if !ok {
			logger.FromRequest(r).Warn().Str("client", clientIP(r)).Dur("retry_after", wait).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
