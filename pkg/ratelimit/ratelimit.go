// Package ratelimit provides keyed fixed-window counters used to throttle
// contact form submissions per client IP. Two backends exist: a process-local
// in-memory counter and a Redis-backed one for multi-instance deployments.
package ratelimit

import (
	"context"
	"time"
)

// Result reports the state of a key's window after counting one request.
type Result struct {
	Count   int
	Limit   int
	ResetAt time.Time
}

// Allowed reports whether the request that produced this result is within
// the window limit.
func (r Result) Allowed() bool {
	return r.Count <= r.Limit
}

// Remaining returns how many more requests the key may make in the current
// window, never below zero.
func (r Result) Remaining() int {
	remaining := r.Limit - r.Count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Limiter counts a request against a key and reports whether it fits the
// window. Implementations must count atomically per key so bursts are not
// undercounted.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
