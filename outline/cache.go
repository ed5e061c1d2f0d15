// seehuhn.de/go/glyphsolid - extrude font glyphs into 3D solids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package outline

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// Cache keeps recently loaded fonts in memory, keyed by file name.
// Least recently used fonts are evicted once the cache is full.
//
// A Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	maxSize int
	fonts   map[string]*list.Element
	lru     *list.List // of *cacheEntry, most recent first

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheEntry struct {
	fname string
	font  *Font
}

// NewCache returns a cache holding at most maxSize fonts.
// A maxSize of 0 or less means that the cache is unbounded.
func NewCache(maxSize int) *Cache {
	return &Cache{
		maxSize: maxSize,
		fonts:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// LoadFile returns the font stored in fname, reading the file only if
// the font is not already cached.  Failed loads are not cached.
func (c *Cache) LoadFile(fname string) (*Font, error) {
	c.mu.Lock()
	if elem, ok := c.fonts[fname]; ok {
		c.lru.MoveToFront(elem)
		c.mu.Unlock()
		c.hits.Add(1)
		return elem.Value.(*cacheEntry).font, nil
	}
	c.mu.Unlock()
	c.misses.Add(1)

	font, err := LoadFile(fname)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.fonts[fname]; ok {
		// loaded concurrently by another goroutine
		c.lru.MoveToFront(elem)
		return elem.Value.(*cacheEntry).font, nil
	}
	if c.maxSize > 0 && c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.fonts, oldest.Value.(*cacheEntry).fname)
		c.evictions.Add(1)
	}
	c.fonts[fname] = c.lru.PushFront(&cacheEntry{fname: fname, font: font})
	return font, nil
}

// Len returns the number of cached fonts.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// CacheStats summarizes the activity of a Cache.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Stats returns the hit, miss and eviction counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
