package academy

import (
	"sync"
	"time"
)

// windowLimiter allows at most max events per client within a sliding
// window. It guards session writes, which the preview rate limiter does not
// cover.
type windowLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration
	stop   chan struct{}
	once   sync.Once
}

func newWindowLimiter(max int, window time.Duration) *windowLimiter {
	l := &windowLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
		stop:   make(chan struct{}),
	}
	go l.sweep()
	return l
}

// sweep drops idle clients once per window until Close.
func (l *windowLimiter) sweep() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			for key := range l.hits {
				if l.prune(key, now) == 0 {
					delete(l.hits, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// prune drops expired hits for key and returns how many remain. Callers
// hold l.mu.
func (l *windowLimiter) prune(key string, now time.Time) int {
	cutoff := now.Add(-l.window)
	hits := l.hits[key]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.hits[key] = kept
	return len(kept)
}

// Allow records an event for key when it is under the limit.
func (l *windowLimiter) Allow(key string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.prune(key, now) >= l.max {
		return false
	}
	l.hits[key] = append(l.hits[key], now)
	return true
}

// Close stops the background sweep.
func (l *windowLimiter) Close() {
	l.once.Do(func() { close(l.stop) })
}
