package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/routeplanner/core"
)

// queueItem pairs a city with its hop count.
type queueItem struct {
	id   string
	hops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS explores g outward from start, one road at a time, ignoring road
// lengths. Neighbors are expanded in lexicographic order, so the visit
// order is reproducible.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context's error on cancellation, or a wrapped OnVisit error. On error the
// partial Result is still returned.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")
	return w.res, w.loop()
}

func (w *walker) enqueue(id string, hops int, parent string) {
	w.visited[id] = true
	w.res.Hops[id] = hops
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, hops: hops})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.hops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		next := item.hops + 1
		if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.id) {
			if w.visited[nbr] || !w.opts.FilterRoad(item.id, nbr) {
				continue
			}
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}

// Components partitions the cities of g into connected components. Each
// component is sorted, and components are ordered by their first city.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	// Vertices is sorted, so each component is discovered from its smallest city.
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, c := range comp {
			seen[c] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}
