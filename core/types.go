// This file declares Edge, EdgeMap, and the sentinel errors shared by
// the locograph algorithm packages.
package core

import (
	"errors"
	"sort"
)

// Sentinel errors for feature resolution and index validation.
var (
	// ErrNoLookup indicates a by-name reference was resolved without a name table.
	ErrNoLookup = errors.New("core: no name lookup supplied")

	// ErrNameNotFound indicates a feature name is absent from the Lookup.
	ErrNameNotFound = errors.New("core: feature name not found")

	// ErrIndexOutOfRange indicates a feature index outside [0, p).
	ErrIndexOutOfRange = errors.New("core: feature index out of range")
)

// Edge is an ordered pair of feature indices.
//
// In an EdgeMap an undirected edge between u and v appears as both
// Edge{u, v} and Edge{v, u}.
type Edge struct {
	// U is the first endpoint.
	U int

	// V is the second endpoint.
	V int
}

// EdgeMap maps ordered endpoint pairs to an edge weight ("q-value").
//
// Invariant: maps produced by this library store every undirected edge
// under both orientations with equal weight. Hand-built maps should
// preserve the same invariant, most easily via Insert.
type EdgeMap map[Edge]float64

// Insert records an undirected edge between u and v with weight w,
// writing both orientations. Inserting an existing edge overwrites it.
func (q EdgeMap) Insert(u, v int, w float64) {
	q[Edge{u, v}] = w
	q[Edge{v, u}] = w
}

// Has reports whether the directed pair (u, v) is present.
func (q EdgeMap) Has(u, v int) bool {
	_, ok := q[Edge{u, v}]
	return ok
}

// Weight returns the weight stored under (u, v) and whether it exists.
func (q EdgeMap) Weight(u, v int) (float64, bool) {
	w, ok := q[Edge{u, v}]
	return w, ok
}

// Len returns the number of stored keys. For a well-formed map this is
// twice the number of undirected edges.
func (q EdgeMap) Len() int { return len(q) }

// Nodes returns the distinct endpoints appearing in any key, ascending.
func (q EdgeMap) Nodes() []int {
	seen := make(map[int]struct{}, len(q))
	for e := range q {
		seen[e.U] = struct{}{}
		seen[e.V] = struct{}{}
	}
	nodes := make([]int, 0, len(seen))
	for v := range seen {
		nodes = append(nodes, v)
	}
	sort.Ints(nodes)
	return nodes
}

// Edges returns every key sorted by (U, V). The result includes both
// orientations of each undirected edge; it exists so consumers can
// iterate deterministically instead of ranging over the map.
func (q EdgeMap) Edges() []Edge {
	edges := make([]Edge, 0, len(q))
	for e := range q {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].U != edges[b].U {
			return edges[a].U < edges[b].U
		}
		return edges[a].V < edges[b].V
	})
	return edges
}
