// Package meshcache memoizes frustum builds by their options.
package meshcache

import (
	"sync"

	"github.com/Faultbox/frustum/pkg/frustum"
	"github.com/Faultbox/frustum/pkg/geometry"
)

// DefaultCapacity is the number of meshes kept when New is given zero.
const DefaultCapacity = 32

// Cache keeps recently built meshes. Cached meshes are shared between
// callers and must be treated as read-only.
type Cache struct {
	mu       sync.Mutex
	capacity int
	meshes   map[frustum.Options]*geometry.Mesh
	order    []frustum.Options // oldest first

	hits   int
	misses int
}

// New creates a cache holding up to capacity meshes.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		meshes:   make(map[frustum.Options]*geometry.Mesh, capacity),
	}
}

// Get returns the mesh for opts, building it on a miss. Options that differ
// only in defaulted fields share one entry. Builds run outside the lock, so
// two concurrent misses for the same key may both build.
func (c *Cache) Get(opts frustum.Options) (*geometry.Mesh, error) {
	f, err := frustum.New(opts)
	if err != nil {
		return nil, err
	}
	key := f.Options()

	c.mu.Lock()
	if m, ok := c.meshes[key]; ok {
		c.hits++
		c.touch(key)
		c.mu.Unlock()
		return m, nil
	}
	c.misses++
	c.mu.Unlock()

	m := f.Build()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.meshes[key]; ok {
		return existing, nil
	}
	c.meshes[key] = m
	c.order = append(c.order, key)
	for len(c.order) > c.capacity {
		delete(c.meshes, c.order[0])
		c.order = c.order[1:]
	}
	return m, nil
}

// touch moves key to the newest position. Caller holds mu.
func (c *Cache) touch(key frustum.Options) {
	for i, k := range c.order {
		if k == key {
			copy(c.order[i:], c.order[i+1:])
			c.order[len(c.order)-1] = key
			return
		}
	}
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.meshes)
}

// Clear drops every mesh and resets the statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meshes = make(map[frustum.Options]*geometry.Mesh, c.capacity)
	c.order = nil
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
