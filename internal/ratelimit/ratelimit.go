package ratelimit

import (
	"sync"
	"time"
)

// Limiter - per-client rate limiter (sliding window)
type Limiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

type Config struct {
	RequestsPerMinute int
}

func New(cfg Config) *Limiter {
	limit := cfg.RequestsPerMinute
	if limit <= 0 {
		limit = 10
	}

	l := &Limiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   time.Minute,
	}
	go l.cleanup()
	return l
}

func (l *Limiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-l.window)

	// keep only requests inside the window
	old := l.requests[client]
	fresh := old[:0] // reuse underlying array
	for _, t := range old {
		if t.After(cutoff) {
			fresh = append(fresh, t)
		}
	}

	if len(fresh) >= l.limit {
		l.requests[client] = fresh
		return false
	}

	l.requests[client] = append(fresh, now)
	return true
}

func (l *Limiter) RemainingRequests(client string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-l.window)
	cnt := 0
	for _, t := range l.requests[client] {
		if t.After(cutoff) {
			cnt++
		}
	}

	if rem := l.limit - cnt; rem > 0 {
		return rem
	}
	return 0
}

// ResetTime - when the limit resets (approximately)
func (l *Limiter) ResetTime(client string) time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.requests[client]
	if len(ts) == 0 {
		return time.Now()
	}

	oldest := ts[0]
	for _, t := range ts[1:] {
		if t.Before(oldest) {
			oldest = t
		}
	}
	return oldest.Add(l.window)
}

// cleanup - background sweep of stale entries
// TODO: add graceful shutdown
func (l *Limiter) cleanup() {
	tick := time.NewTicker(5 * time.Minute)
	for range tick.C {
		l.mu.Lock()
		now := time.Now()
		cutoff := now.Add(-l.window)

		for client, ts := range l.requests {
			var fresh []time.Time
			for _, t := range ts {
				if t.After(cutoff) {
					fresh = append(fresh, t)
				}
			}
			if len(fresh) == 0 {
				delete(l.requests, client)
			} else {
				l.requests[client] = fresh
			}
		}
		l.mu.Unlock()
	}
}
