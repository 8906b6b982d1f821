package insight

import (
	"sync"
	"time"

	"FinSentinel/internal/model"
)

// DefaultCooldown is the minimum time between repeated deliveries of the
// same (type, category) pair.
const DefaultCooldown = time.Hour

type cooldownKey struct {
	Type       model.InsightType
	CategoryID string
}

// Cooldown suppresses repeat deliveries of the same (type, category) pair
// within its window. Suppressed insights are dropped, not queued.
type Cooldown struct {
	mu     sync.Mutex
	window time.Duration
	last   map[cooldownKey]time.Time
}

// NewCooldown creates a limiter. Non-positive windows fall back to
// DefaultCooldown.
func NewCooldown(window time.Duration) *Cooldown {
	if window <= 0 {
		window = DefaultCooldown
	}
	return &Cooldown{window: window, last: make(map[cooldownKey]time.Time)}
}

// Allow reports whether the insight may be delivered now, and if so records
// the delivery. Expired entries are pruned as a side effect.
func (c *Cooldown) Allow(ins model.Insight, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, at := range c.last {
		if now.Sub(at) >= c.window {
			delete(c.last, k)
		}
	}

	key := cooldownKey{Type: ins.Type, CategoryID: ins.RelatedCategoryID}
	if at, ok := c.last[key]; ok && now.Sub(at) < c.window {
		return false
	}
	c.last[key] = now
	return true
}
