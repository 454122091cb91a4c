// Package ratelimit implements fixed-window request limiting behind an
// injectable Store interface: an in-memory map for single-process deployments
// and Redis for multi-process ones. Unlike the router-level per-IP limiter,
// this limiter keys on the authenticated caller identity, so it sits after
// the auth middleware.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ghuser/product-catalog/pkg/auth"
	"github.com/ghuser/product-catalog/pkg/httpx"
)

// Result describes the outcome of a single counted request.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Store counts requests per key within a fixed window. Incr both records the
// request and returns the running count for the current window; the window
// starts at the first request for the key and expires after window elapses.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
}

// Limiter applies a max-requests-per-window policy over a Store.
type Limiter struct {
	store  Store
	max    int
	window time.Duration
	prefix string
}

// New returns a Limiter. prefix namespaces keys so independent endpoints can
// share one Store without sharing budgets.
func New(store Store, max int, window time.Duration, prefix string) *Limiter {
	return &Limiter{store: store, max: max, window: window, prefix: prefix}
}

// Check counts one request for key and reports whether it is within budget.
func (l *Limiter) Check(ctx context.Context, key string) (Result, error) {
	count, resetAt, err := l.store.Incr(ctx, l.prefix+":"+key, l.window)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: %w", err)
	}
	remaining := l.max - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= l.max,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Middleware limits requests per authenticated user. Requests without an
// authenticated identity fall back to the remote address, so the limiter
// still functions on routes mounted before auth. A Store failure fails open:
// limiting is protection against abuse, not a correctness gate.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if userID, err := auth.UserIDFromCtx(r.Context()); err == nil {
			key = userID.String()
		}

		res, err := l.Check(r.Context(), key)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if !res.Allowed {
			retryAfter := int(time.Until(res.ResetAt).Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			httpx.JSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MemoryStore is a process-local Store. Expired windows are swept lazily on
// access; there is no background goroutine to stop.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	count   int
	resetAt time.Time
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

// Incr implements Store.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || e.resetAt.Before(now) {
		e = &memoryEntry{resetAt: now.Add(window)}
		s.entries[key] = e
	}
	e.count++

	// Opportunistic sweep: drop a handful of expired entries per call so the
	// map does not grow unbounded under churning keys.
	swept := 0
	for k, v := range s.entries {
		if v.resetAt.Before(now) {
			delete(s.entries, k)
			if swept++; swept >= 8 {
				break
			}
		}
	}

	return e.count, e.resetAt, nil
}
