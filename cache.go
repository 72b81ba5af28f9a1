package academy

import (
	"sync"
	"time"
)

// PreviewCache memoizes rendered preview images per slug with a TTL.
// Failed renders are never stored, so unknown slugs cannot grow it past
// the catalog size.
type PreviewCache struct {
	mu       sync.RWMutex
	entries  map[string]previewEntry
	inflight map[string]*previewCall
	ttl      time.Duration
	render   func(slug string) ([]byte, error)
}

type previewEntry struct {
	data    []byte
	fetched time.Time
}

// previewCall is a render in progress that concurrent misses wait on.
type previewCall struct {
	done chan struct{}
	data []byte
	err  error
}

// NewPreviewCache creates a PreviewCache backed by the given render func.
func NewPreviewCache(render func(slug string) ([]byte, error), ttl time.Duration) *PreviewCache {
	return &PreviewCache{
		entries:  make(map[string]previewEntry),
		inflight: make(map[string]*previewCall),
		ttl:      ttl,
		render:   render,
	}
}

func (c *PreviewCache) valid(e previewEntry) bool {
	return time.Since(e.fetched) < c.ttl
}

// Get returns the cached image for slug, rendering it when missing or
// stale. Renders run outside the lock; concurrent misses for the same
// slug share one render.
func (c *PreviewCache) Get(slug string) ([]byte, error) {
	c.mu.RLock()
	if e, ok := c.entries[slug]; ok && c.valid(e) {
		c.mu.RUnlock()
		return e.data, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	if e, ok := c.entries[slug]; ok && c.valid(e) {
		c.mu.Unlock()
		return e.data, nil
	}
	if call, ok := c.inflight[slug]; ok {
		c.mu.Unlock()
		<-call.done
		return call.data, call.err
	}
	call := &previewCall{done: make(chan struct{})}
	c.inflight[slug] = call
	c.mu.Unlock()

	call.data, call.err = c.render(slug)

	c.mu.Lock()
	delete(c.inflight, slug)
	if call.err == nil {
		c.entries[slug] = previewEntry{data: call.data, fetched: time.Now()}
	}
	c.mu.Unlock()
	close(call.done)
	return call.data, call.err
}

// Len reports how many slugs are cached.
func (c *PreviewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
