package mask

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"tissue-mask/internal/imaging"
)

// defaultCacheCapacity bounds how many per-slide results a strategy keeps.
const defaultCacheCapacity = 100

// resultCache memoizes computed masks per slide key. Capacity is bounded
// with oldest-first eviction, and concurrent callers for the same key
// share a single in-flight computation. Failed computations are never
// stored.
type resultCache struct {
	group singleflight.Group

	mu      sync.Mutex
	results map[string]*imaging.Binary
	order   []string
	cap     int
}

func newResultCache(capacity int) *resultCache {
	if capacity < 1 {
		capacity = 1
	}
	return &resultCache{
		results: make(map[string]*imaging.Binary, capacity),
		cap:     capacity,
	}
}

// getOrCompute returns the cached mask for key, computing and storing it
// on a miss. At most one compute runs per key at a time.
func (c *resultCache) getOrCompute(key string, compute func() (*imaging.Binary, error)) (*imaging.Binary, error) {
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.Lock()
		cached, ok := c.results[key]
		c.mu.Unlock()
		if ok {
			return cached, nil
		}

		m, err := compute()
		if err != nil {
			return nil, err
		}
		c.put(key, m)
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*imaging.Binary), nil
}

func (c *resultCache) put(key string, m *imaging.Binary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.results[key]; ok {
		c.results[key] = m
		return
	}
	if len(c.order) >= c.cap {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.results, oldest)
	}
	c.results[key] = m
	c.order = append(c.order, key)
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}
