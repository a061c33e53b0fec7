// Package neighborhood extracts the set of features reachable from an
// anchor node inside an edge map, optionally after removing every edge
// that touches a target feature, and optionally bounded by a radius.
//
// What
//
//   - Extract(Q, anchor, targets): breadth-first traversal from the
//     anchor over the undirected graph encoded by Q's keys, returning a
//     Result with the visit Order and per-node Depth.
//   - Target removal (the default) drops edges, never nodes: an anchor
//     whose edges all touch targets comes back as an isolated singleton,
//     not an error. WithKeepTargets retains every edge and yields the
//     full radius-bounded neighborhood including the targets.
//   - The anchor may be a feature index (core.ByIndex) or a name
//     (core.ByName) resolved through a WithLookup table.
//
// Why
//
//	After restrict has produced a local edge map, the interesting
//	question is usually "what hangs together around this one variable
//	once the targets themselves are cut out" — the anchor's connected
//	component in the target-pruned graph.
//
// Determinism
//
//	Adjacency is assembled with sorted neighbor lists, so the visit
//	order is reproducible for identical inputs; set membership never
//	depends on traversal order either way.
//
// Complexity (k nodes, m keys in Q)
//
//   - Time:   O(m log m) to assemble adjacency, O(k + m) to traverse.
//   - Memory: O(k + m).
//
// Usage
//
//	res, err := neighborhood.Extract(q, core.ByName("geneA"), targets,
//	    neighborhood.WithLookup(names),
//	    neighborhood.WithMaxRadius(2),
//	)
//	if err != nil {
//	    // core.ErrNoLookup, core.ErrNameNotFound, ErrOptionViolation,
//	    // a context error, or an OnVisit hook error
//	}
//	members := res.Members()
//
// Options
//
//   - WithMaxRadius(r):  include nodes at most r hops from the anchor;
//     absent means unbounded, r < 0 is a violation.
//   - WithKeepTargets(): keep target nodes and their edges.
//   - WithLookup(lk):    name table for by-name anchors.
//   - WithContext(ctx):  poll ctx for cancellation once per dequeue.
//   - WithOnVisit(fn):   hook at visit time; returning an error aborts.
//
// Errors
//
//   - ErrOptionViolation   for a negative radius.
//   - core.ErrNoLookup     for a by-name anchor without a Lookup.
//   - core.ErrNameNotFound for an unmapped anchor name.
//   - Wrapped user-supplied hook errors from OnVisit.
package neighborhood
