// Package restrict builds a radius-restricted edge map around a set of
// target features from a full p×p binary adjacency matrix.
//
// What
//
//   - RestrictToLocalGraph(A, targets, maxRadius): multi-source BFS
//     labeling from all targets at once, then a pair scan that keeps an
//     edge (i, j) of A iff both endpoints were labeled and they are not
//     both sitting exactly on the outer shell (dist == maxRadius).
//     Kept edges are written symmetrically with weight 1.
//   - RestrictAround(A, target, maxRadius): single-target convenience.
//   - DistanceLabels(A, targets, maxRadius): the labeling on its own —
//     minimum hop count from the nearest target, for every node reached
//     within maxRadius.
//
// Semantics
//
//	Distances are true unweighted shortest-path distances: all targets
//	enter the FIFO frontier at distance 0, a node's distance is fixed on
//	first discovery, and a node popped at distance maxRadius is labeled
//	but never expanded. Any nonzero entry of A counts as an edge; row u
//	is read during expansion and entry (i, j) with i<j during the pair
//	scan, so A need not be explicitly symmetrized.
//
//	The outer-shell exclusion is a boundary policy, not an accident:
//	an edge whose endpoints both lie at the maximum radius cannot carry
//	information beyond the boundary. In particular maxRadius == 0 labels
//	only the targets themselves and emits no edges at all.
//
// Complexity (p features, m nonzero entries)
//
//   - Time:   O(p²) — each BFS expansion and the pair scan read a full
//     matrix row; dense adjacency dominates m.
//   - Memory: O(p) for the frontier and labels, O(m) for the edge map.
//
// Usage
//
//	Q, err := restrict.RestrictToLocalGraph(A, []int{3, 17}, 2)
//	if err != nil {
//	    // ErrNilMatrix, ErrNonSquare, ErrNegativeRadius,
//	    // core.ErrIndexOutOfRange, or a context error
//	}
//
// Options
//
//   - WithContext(ctx):  poll ctx for cancellation once per frontier pop.
//   - WithOnLabel(fn):   hook fired when a node first receives a distance.
//
// Errors
//
//   - ErrNilMatrix            if A is nil.
//   - ErrNonSquare            if A is not p×p.
//   - ErrNegativeRadius       if maxRadius < 0.
//   - core.ErrIndexOutOfRange if a target index falls outside [0, p).
package restrict
