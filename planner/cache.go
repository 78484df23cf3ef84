package planner

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/katalvlaran/routeplanner/route"
)

type pairKey struct {
	from, to string
}

// pathCache memoises successful shortest-path results. A nil *pathCache is
// a valid, always-missing cache.
type pathCache struct {
	lru *lru.Cache
}

func newPathCache(size int) (*pathCache, error) {
	if size <= 0 {
		return nil, nil
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &pathCache{lru: c}, nil
}

// get returns an independent copy of the cached route.
func (c *pathCache) get(from, to string) (route.Route, bool) {
	if c == nil {
		return route.Route{}, false
	}
	v, ok := c.lru.Get(pairKey{from, to})
	if !ok {
		return route.Route{}, false
	}
	r := v.(route.Route)
	return route.New(r.Cities, r.Distance), true
}

func (c *pathCache) add(from, to string, r route.Route) {
	if c == nil {
		return
	}
	c.lru.Add(pairKey{from, to}, route.New(r.Cities, r.Distance))
}

func (c *pathCache) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
