package fuzzy

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/npillmayer/fuzzy/levelcut"
)

// DefaultGridCacheSize is the number of grids a GridCache holds if not
// configured otherwise.
const DefaultGridCacheSize = 16

// GridCache holds recently used uniform alpha grids. Clients computing many
// operations at the same resolution may share a cache through Config.Grids.
// A GridCache is safe for concurrent use.
//
// Cached grids are shared and must not be modified.
type GridCache struct {
	grids *lru.Cache
}

// NewGridCache creates a cache for up to size grids. A size <= 0 selects
// DefaultGridCacheSize.
func NewGridCache(size int) *GridCache {
	if size <= 0 {
		size = DefaultGridCacheSize
	}
	c, err := lru.New(size)
	if err != nil { // only for size <= 0
		panic(err)
	}
	return &GridCache{grids: c}
}

// Uniform returns the uniform grid with n levels.
func (gc *GridCache) Uniform(n int) levelcut.Grid {
	if gc == nil || gc.grids == nil {
		return levelcut.Uniform(n)
	}
	if g, ok := gc.grids.Get(n); ok {
		return g.(levelcut.Grid)
	}
	g := levelcut.Uniform(n)
	gc.grids.Add(n, g)
	T().Debugf("grid cache: created uniform grid with %d levels", n)
	return g
}

// Len returns the number of cached grids.
func (gc *GridCache) Len() int {
	if gc == nil || gc.grids == nil {
		return 0
	}
	return gc.grids.Len()
}
