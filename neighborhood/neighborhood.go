// Package neighborhood performs anchor-rooted breadth-first extraction
// over a symmetric edge map, with optional target-edge removal.
package neighborhood

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/locograph/core"
)

// queueItem pairs a node with its BFS depth from the anchor.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable extraction state.
type walker struct {
	opts    Options
	adj     map[int][]int
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// Extract returns the set of nodes reachable from anchor in the graph
// encoded by q, applying any number of functional Options.
//
// With target removal on (the default), every edge touching a target
// feature is skipped while building adjacency; nodes are never removed,
// so the anchor is always part of the result — as an isolated singleton
// when all of its edges were dropped. Nodes that are unreachable or
// beyond the radius are simply absent. A nil or empty edge map is valid
// and yields {anchor}.
func Extract(q core.EdgeMap, anchor core.Ref, targets []int, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Resolve the anchor to a canonical index.
	start, err := anchor.Resolve(o.Lookup)
	if err != nil {
		return nil, err
	}

	targetSet := make(map[int]struct{}, len(targets))
	for _, t := range targets {
		targetSet[t] = struct{}{}
	}

	w := &walker{
		opts:    o,
		adj:     buildAdjacency(q, targetSet, o.KeepTargets),
		visited: make(map[int]bool),
		res: &Result{
			Order: make([]int, 0),
			Depth: make(map[int]int),
		},
	}

	// Seed the frontier with the anchor at depth 0.
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// buildAdjacency converts q's keys into per-node sorted neighbor lists.
// Each key is treated as an undirected edge regardless of whether its
// mirror is present. When removal is active, an edge with either
// endpoint in targets is skipped entirely — only that edge, never the
// nodes behind it.
func buildAdjacency(q core.EdgeMap, targets map[int]struct{}, keep bool) map[int][]int {
	sets := make(map[int]map[int]struct{})
	add := func(u, v int) {
		s, ok := sets[u]
		if !ok {
			s = make(map[int]struct{})
			sets[u] = s
		}
		s[v] = struct{}{}
	}

	for e := range q {
		if !keep {
			if _, hit := targets[e.U]; hit {
				continue
			}
			if _, hit := targets[e.V]; hit {
				continue
			}
		}
		add(e.U, e.V)
		add(e.V, e.U)
	}

	adj := make(map[int][]int, len(sets))
	for u, s := range sets {
		neighbors := make([]int, 0, len(s))
		for v := range s {
			neighbors = append(neighbors, v)
		}
		sort.Ints(neighbors)
		adj[u] = neighbors
	}
	return adj
}

// enqueue marks node visited at depth d, records its depth, and adds it
// to the FIFO queue. Marking at enqueue time prevents duplicate entries.
func (w *walker) enqueue(node, d int) {
	w.visited[node] = true
	w.res.Depth[node] = d
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		w.expand(item)
	}
	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("neighborhood: OnVisit error at %d: %w", item.node, err)
	}
	return nil
}

// expand enqueues every unvisited neighbor at depth+1, unless the
// current depth has reached the radius bound.
func (w *walker) expand(item queueItem) {
	if w.opts.MaxRadius >= 0 && item.depth >= w.opts.MaxRadius {
		return // node included, frontier pruned
	}
	for _, nbr := range w.adj[item.node] {
		if !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1)
		}
	}
}
