// Package restrict computes multi-source shortest-hop labelings over a
// binary adjacency matrix and emits radius-bounded symmetric edge maps.
package restrict

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/locograph/core"
)

// labeler encapsulates the mutable state of one multi-source BFS pass.
type labeler struct {
	adj    mat.Matrix
	p      int
	radius int
	opts   Options
	queue  []int
	dist   map[int]int
}

// RestrictToLocalGraph restricts A to the local graph within maxRadius
// hops of the target features.
//
// The returned edge map contains every edge of A whose endpoints both
// received a distance label, except edges with both endpoints exactly at
// maxRadius; each kept edge is stored under both orientations with
// weight 1. Targets with no neighbors are labeled but contribute no
// edges, and an empty target set yields an empty map.
func RestrictToLocalGraph(A mat.Matrix, targets []int, maxRadius int, opts ...Option) (core.EdgeMap, error) {
	l, err := newLabeler(A, targets, maxRadius, opts)
	if err != nil {
		return nil, err
	}
	if err = l.run(); err != nil {
		return nil, err
	}
	return l.edgeMap(), nil
}

// RestrictAround is RestrictToLocalGraph for a single target feature.
func RestrictAround(A mat.Matrix, target int, maxRadius int, opts ...Option) (core.EdgeMap, error) {
	return RestrictToLocalGraph(A, []int{target}, maxRadius, opts...)
}

// DistanceLabels returns the minimum hop count from the nearest target
// for every node reachable within maxRadius. Nodes beyond the radius are
// absent from the result; targets map to 0.
func DistanceLabels(A mat.Matrix, targets []int, maxRadius int, opts ...Option) (map[int]int, error) {
	l, err := newLabeler(A, targets, maxRadius, opts)
	if err != nil {
		return nil, err
	}
	if err = l.run(); err != nil {
		return nil, err
	}
	return l.dist, nil
}

// newLabeler validates inputs, applies options, and seeds the frontier
// with every target at distance 0.
func newLabeler(A mat.Matrix, targets []int, maxRadius int, opts []Option) (*labeler, error) {
	if A == nil {
		return nil, ErrNilMatrix
	}
	r, c := A.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: got %d×%d", ErrNonSquare, r, c)
	}
	if maxRadius < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeRadius, maxRadius)
	}
	for _, t := range targets {
		if t < 0 || t >= r {
			return nil, fmt.Errorf("%w: target %d, %d features", core.ErrIndexOutOfRange, t, r)
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &labeler{
		adj:    A,
		p:      r,
		radius: maxRadius,
		opts:   o,
		queue:  make([]int, 0, len(targets)),
		dist:   make(map[int]int, len(targets)),
	}
	// All sources share distance 0; duplicates collapse on first seeding.
	for _, t := range targets {
		if _, seen := l.dist[t]; seen {
			continue
		}
		l.dist[t] = 0
		l.opts.OnLabel(t, 0)
		l.queue = append(l.queue, t)
	}
	return l, nil
}

// run drains the FIFO frontier. A node's distance is fixed on first
// discovery and never revisited, which is correct for uniform-cost BFS
// with simultaneous sources. Nodes popped at distance == radius keep
// their label but are not expanded.
func (l *labeler) run() error {
	for qi := 0; qi < len(l.queue); qi++ {
		select {
		case <-l.opts.Ctx.Done():
			return l.opts.Ctx.Err()
		default:
		}

		u := l.queue[qi]
		du := l.dist[u]
		if du >= l.radius {
			continue // labeled, frontier pruned
		}
		for v := 0; v < l.p; v++ {
			if l.adj.At(u, v) == 0 {
				continue
			}
			if _, seen := l.dist[v]; seen {
				continue
			}
			l.dist[v] = du + 1
			l.opts.OnLabel(v, du+1)
			l.queue = append(l.queue, v)
		}
	}
	return nil
}

// edgeMap scans unordered pairs i<j of A and keeps an edge when both
// endpoints are labeled and not both at the outer shell.
func (l *labeler) edgeMap() core.EdgeMap {
	q := make(core.EdgeMap, 2*len(l.dist))
	for i := 0; i < l.p; i++ {
		di, ok := l.dist[i]
		if !ok {
			continue
		}
		for j := i + 1; j < l.p; j++ {
			if l.adj.At(i, j) == 0 {
				continue
			}
			dj, ok := l.dist[j]
			if !ok {
				continue
			}
			if di == l.radius && dj == l.radius {
				continue // both endpoints on the rim
			}
			q.Insert(i, j, 1)
		}
	}
	return q
}
