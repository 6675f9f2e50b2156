package server

import (
	"context"
	"sync"
	"time"

	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/selection"
)

// cacheKey identifies the options a plan was built with.
type cacheKey struct {
	Area layout.SearchArea
	Sort layout.SortMethod
}

// cacheEntry holds a cached plan with its timestamp.
type cacheEntry struct {
	plan      *selection.Plan
	timestamp time.Time
}

// PlanCache provides a TTL-based cache of selection plans.
type PlanCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewPlanCache creates a new cache. A ttl of 0 disables caching.
func NewPlanCache(ttl time.Duration) *PlanCache {
	return &PlanCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Plan returns a cached plan if within TTL, otherwise builds a fresh one.
// The caller must hold the window manager mutex.
func (c *PlanCache) Plan(ctx context.Context, wm platform.WindowManager, opts selection.Options) (*selection.Plan, error) {
	if c.ttl == 0 {
		return selection.BuildPlan(ctx, wm, opts)
	}

	key := cacheKey{Area: opts.Area, Sort: opts.Sort}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		plan := entry.plan
		c.mu.Unlock()
		return plan, nil
	}
	c.mu.Unlock()

	plan, err := selection.BuildPlan(ctx, wm, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{plan: plan, timestamp: c.now()}
	c.mu.Unlock()

	return plan, nil
}

// Latest returns the most recent unexpired plan of any options.
func (c *PlanCache) Latest() (*selection.Plan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var best cacheEntry
	for _, e := range c.entries {
		if c.now().Sub(e.timestamp) < c.ttl && e.timestamp.After(best.timestamp) {
			best = e
		}
	}
	return best.plan, best.plan != nil
}

// InvalidateAll clears the entire cache.
func (c *PlanCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}
