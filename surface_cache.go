// surface_cache.go - Surface Deduplication Cache

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TegraCore

License: GPLv3 or later
*/

/*
surface_cache.go - Surface Deduplication Cache

Caches surfaces keyed by the parameter hash so repeated register snapshots
that describe the same surface reuse one entry. The hash is 64-bit FNV-1a
over every identity field, but collisions are still possible, so each
bucket holds a slice and lookups confirm with full equality before
returning a hit.
*/

package tegracore

import (
	"sync"
)

// CachedSurface is one cache entry: the identity parameters plus the guest
// address range the surface was created from.
type CachedSurface struct {
	Params    SurfaceParams
	GpuAddr   GPUVAddr
	SizeBytes uint64
	Registered
}

// Registered carries cache bookkeeping shared by cached objects.
type Registered struct {
	IsRegistered bool
	IsModified   bool
}

// SurfaceCache deduplicates surfaces by parameter identity.
type SurfaceCache struct {
	mutex   sync.RWMutex
	entries map[uint64][]*CachedSurface

	hits   uint64
	misses uint64
}

func NewSurfaceCache() *SurfaceCache {
	return &SurfaceCache{
		entries: make(map[uint64][]*CachedSurface),
	}
}

// TryGet returns the cached surface for params, or nil.
func (c *SurfaceCache) TryGet(params SurfaceParams) *CachedSurface {
	key := params.Hash()
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	for _, entry := range c.entries[key] {
		if entry.Params.Equal(params) {
			return entry
		}
	}
	return nil
}

// GetOrCreate returns the cached surface for params, creating and
// registering a new one at gpuAddr when absent.
func (c *SurfaceCache) GetOrCreate(params SurfaceParams, gpuAddr GPUVAddr) *CachedSurface {
	key := params.Hash()
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for _, entry := range c.entries[key] {
		if entry.Params.Equal(params) {
			c.hits++
			return entry
		}
	}
	c.misses++
	entry := &CachedSurface{
		Params:    params,
		GpuAddr:   gpuAddr,
		SizeBytes: params.GetGuestSizeInBytes(),
		Registered: Registered{
			IsRegistered: true,
		},
	}
	c.entries[key] = append(c.entries[key], entry)
	return entry
}

// MarkModified flags a surface as written by the GPU since upload.
func (c *SurfaceCache) MarkModified(entry *CachedSurface) {
	c.mutex.Lock()
	entry.IsModified = true
	c.mutex.Unlock()
}

// InvalidateRegion drops every surface overlapping [addr, addr+size).
// Returns the number of surfaces removed.
func (c *SurfaceCache) InvalidateRegion(addr GPUVAddr, size uint64) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	removed := 0
	for key, bucket := range c.entries {
		kept := bucket[:0]
		for _, entry := range bucket {
			if entry.GpuAddr < addr+GPUVAddr(size) && addr < entry.GpuAddr+GPUVAddr(entry.SizeBytes) {
				entry.IsRegistered = false
				removed++
				continue
			}
			kept = append(kept, entry)
		}
		if len(kept) == 0 {
			delete(c.entries, key)
		} else {
			c.entries[key] = kept
		}
	}
	return removed
}

// Len returns the number of cached surfaces.
func (c *SurfaceCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	total := 0
	for _, bucket := range c.entries {
		total += len(bucket)
	}
	return total
}

// Stats returns cumulative hit and miss counts.
func (c *SurfaceCache) Stats() (hits, misses uint64) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.hits, c.misses
}
