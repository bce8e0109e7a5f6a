package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a process-local fixed-window counter. It is the default
// backend and the fallback when Redis is unavailable.
type MemoryLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	entries map[string]*memoryEntry

	now func() time.Time
}

// NewMemoryLimiter creates an in-memory limiter allowing limit requests per
// key per window. A background sweep removes expired entries so the map does
// not grow unbounded under scanner traffic.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	m := &MemoryLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
	go m.sweep()
	return m
}

// Allow counts one request against key. The count increments atomically
// under the limiter lock; an expired window resets to a fresh count of one.
func (m *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &memoryEntry{resetAt: now.Add(m.window)}
		m.entries[key] = entry
	}
	entry.count++

	return Result{
		Count:   entry.count,
		Limit:   m.limit,
		ResetAt: entry.resetAt,
	}, nil
}

func (m *MemoryLimiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		now := m.now()
		m.mu.Lock()
		for key, entry := range m.entries {
			if now.After(entry.resetAt) {
				delete(m.entries, key)
			}
		}
		m.mu.Unlock()
	}
}
