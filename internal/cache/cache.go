// Package cache memoizes fetch+classify results for a TTL so repeated
// requests inside the freshness window skip the network entirely.
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tidemark/ipnews/internal/article"
)

// Cache is the memoization contract. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key string) ([]article.Article, bool)
	Set(key string, value []article.Article, ttl time.Duration)
	Clear()
}

// Key derives a stable cache key from the requested source set and the full
// filter criteria; any criteria change produces a different key. The
// criteria's own source selection is part of the filter set, so it is hashed
// too, order-independently.
func Key(sources []string, c article.Criteria) string {
	selected := make([]string, len(c.Sources))
	copy(selected, c.Sources)
	sort.Strings(selected)

	h := sha1.New()
	h.Write([]byte(strings.Join(sources, "\n")))
	fmt.Fprintf(h, "|%s|%s|%s|%d|%s|%s|%s|%s",
		strings.Join(selected, ","), c.Topic, c.Country, c.MinImportance,
		c.Sentiment, c.SearchTerm, c.Window, c.SortBy)
	return hex.EncodeToString(h.Sum(nil))
}

type memoryItem struct {
	value     []article.Article
	expiresAt time.Time
}

// Memory is the in-process TTL cache. Expired entries are evicted lazily on
// lookup and swept hourly in the background.
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryItem
}

func NewMemory() *Memory {
	c := &Memory{items: make(map[string]memoryItem)}
	go c.cleanupLoop()
	return c
}

func (c *Memory) Get(key string) ([]article.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(item.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return item.value, true
}

func (c *Memory) Set(key string, value []article.Article, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = memoryItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *Memory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]memoryItem)
}

func (c *Memory) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *Memory) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
		}
	}
}
