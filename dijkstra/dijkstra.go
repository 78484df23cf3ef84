package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/routeplanner/core"
)

// Dijkstra computes shortest distances from Options.Source to every city
// reachable in g.
//
// Returns:
//
//   - dist: city → minimum distance (math.MaxInt64 if unreachable or not
//     settled before Target/MaxDistance stopped the search).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest walk to v arrives from u.
//     For the source and for unreachable v, prev[v] == "".
//   - err:  ErrEmptySource, ErrNilGraph or a *VertexError.
//
// Validation order:
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, &VertexError{ID: cfg.Source, Role: "source"}
	}

	r := newRunner(g, cfg)
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // read-only within Dijkstra
	options Options           // Source, Target, thresholds
	dist    map[string]int64  // city → best-known distance from Source
	prev    map[string]string // city → predecessor on the best-known walk
	pq      nodePQ            // lazy min-heap
}

func newRunner(g *core.Graph, cfg Options) *runner {
	V := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		pq:      make(nodePQ, 0, V),
	}
}

// init sets every distance to +∞ except the source, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the main loop. It terminates when the heap is empty, when the
// smallest tentative distance exceeds MaxDistance, or when Target is popped.
func (r *runner) process() {
	var (
		u string
		d int64
	)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d = item.id, item.dist

		// A city re-pushed with a better distance leaves its older entry behind.
		if d != r.dist[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		if u == r.options.Target {
			break
		}

		r.relax(u)
	}
}

// relax examines every road out of u and records strictly improving distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) {
	du := r.dist[u]

	var (
		w       int64
		newDist int64
	)
	for _, v := range r.g.Neighbors(u) {
		w = r.g.Distance(u, v)
		if w < 0 || w >= r.options.InfEdgeThreshold {
			continue // missing (raced) or impassable road
		}
		if w > math.MaxInt64-du {
			continue // would overflow; treat as unreachable via u
		}

		newDist = du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" so equal-cost alternatives never displace the first walk found.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a (city, tentative distance) entry in the priority queue.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id for
// deterministic tie-breaking. Outdated entries stay in the heap and are
// skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then lexicographically by city.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop has already swapped the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
