package cache

import (
	"context"
	"sync"

	"trending-board/domain/dto"
	"trending-board/domain/repository"
)

// TrendingCache is the in-memory default backend. Entries live for the
// process lifetime or until InvalidateAll.
type TrendingCache struct {
	mu    sync.RWMutex
	items map[string][]dto.TrendingVideo
}

func NewTrendingCache() repository.ITrendingCache {
	return &TrendingCache{items: make(map[string][]dto.TrendingVideo)}
}

func (c *TrendingCache) Get(_ context.Context, key string) ([]dto.TrendingVideo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, ok := c.items[key]
	return items, ok
}

func (c *TrendingCache) Set(_ context.Context, key string, items []dto.TrendingVideo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = items
}

// InvalidateAll drops the whole map; a refresh must clear every parameter
// tuple, not just the one currently displayed.
func (c *TrendingCache) InvalidateAll(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string][]dto.TrendingVideo)
	return nil
}
