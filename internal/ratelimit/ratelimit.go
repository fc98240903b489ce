// Package ratelimit implements a fixed-window request counter keyed by client
// identifier. The window state lives behind a small Store abstraction so the
// default in-process map can be swapped for a shared external store without
// touching call sites.
package ratelimit

import (
	"time"
)

// Window is one counting bucket: how many requests the identifier has made in
// the current window and when that window resets.
type Window struct {
	Count   int       `json:"count"`
	ResetAt time.Time `json:"reset_at"`
}

// Store holds one Window per identifier. Purge removes windows whose reset
// time has passed; stores with native expiry may implement it as a no-op.
type Store interface {
	Get(key string) (Window, bool)
	Set(key string, w Window)
	Delete(key string)
	Purge(now time.Time)
}

// Decision is the outcome of a limit check. RetryAfter is only meaningful
// when Allowed is false.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter applies a (max, window) policy to identifiers. The limiter itself
// is policy-agnostic; each call site supplies its own policy.
//
// With the in-memory store this is a best-effort single-process limiter: it
// shares no state across processes.
type Limiter struct {
	store Store
	now   func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithNow overrides the limiter's clock. Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(store Store, opts ...Option) *Limiter {
	l := &Limiter{store: store, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check records one request for key under the given policy and decides
// whether it is allowed. Expired windows across all identifiers are purged
// opportunistically on every call; windows are small and short-lived, so the
// amortized sweep is cheap.
func (l *Limiter) Check(key string, maxRequests int, window time.Duration) Decision {
	now := l.now()
	l.store.Purge(now)

	w, ok := l.store.Get(key)
	if !ok || !now.Before(w.ResetAt) {
		l.store.Set(key, Window{Count: 1, ResetAt: now.Add(window)})
		return Decision{Allowed: true}
	}

	w.Count++
	l.store.Set(key, w)
	if w.Count > maxRequests {
		return Decision{Allowed: false, RetryAfter: w.ResetAt.Sub(now)}
	}
	return Decision{Allowed: true}
}

// RetryAfterSeconds converts a Decision's RetryAfter into the whole seconds
// carried by the Retry-After header, rounding up so a client never retries
// inside the same window.
func (d Decision) RetryAfterSeconds() int {
	secs := int((d.RetryAfter + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
