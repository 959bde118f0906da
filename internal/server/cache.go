package server

import (
	"sync"
	"time"

	"github.com/mj1618/selection-lens/internal/selection"
)

// SnapshotCache provides a TTL-based cache for the latest selection snapshot.
type SnapshotCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	snap  selection.Snapshot
	taken time.Time
	valid bool
}

// NewSnapshotCache creates a new cache. A ttl of 0 disables caching.
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{ttl: ttl, now: time.Now}
}

// Get returns the cached snapshot if within TTL, otherwise calls walk and
// caches its result. The caller must serialize walks.
func (c *SnapshotCache) Get(walk func() selection.Snapshot) selection.Snapshot {
	if c.ttl == 0 {
		return walk()
	}

	c.mu.Lock()
	if c.valid && c.now().Sub(c.taken) < c.ttl {
		snap := c.snap
		c.mu.Unlock()
		return snap
	}
	c.mu.Unlock()

	snap := walk()

	c.mu.Lock()
	c.snap = snap
	c.taken = c.now()
	c.valid = true
	c.mu.Unlock()

	return snap
}

// Invalidate drops the cached snapshot.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}
