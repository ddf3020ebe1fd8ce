package cache

import (
	"context"
	"errors"
	"sync"
)

// In-process distance cache. Entries live as long as the process.
type MemoryDistanceCache struct {
	mu sync.RWMutex
	m  map[string]int64
}

func NewMemoryDistanceCache() *MemoryDistanceCache {
	return &MemoryDistanceCache{m: make(map[string]int64)}
}

func memoryKey(origin, destination string) string { return origin + "|" + destination }

// Fetch cached distances for one origin and multiple destinations.
func (c *MemoryDistanceCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (map[string]int64, error) {
	if origin == "" {
		return nil, errors.New("get distance cache: origin must not be empty")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]int64, len(destinations))
	for _, d := range destinations {
		if v, ok := c.m[memoryKey(origin, d)]; ok {
			out[d] = v
		}
	}
	return out, nil
}

// Store many cached distances for a single origin.
func (c *MemoryDistanceCache) PutMany(ctx context.Context, origin string, results map[string]int64) error {
	if origin == "" {
		return errors.New("insert distance cache: origin must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for d, v := range results {
		c.m[memoryKey(origin, d)] = v
	}
	return nil
}

// Len reports the number of cached pairs.
func (c *MemoryDistanceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
