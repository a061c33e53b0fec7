// Package locograph extracts radius-bounded local subgraphs around a set
// of target features from a larger estimated feature graph, and screens
// candidate neighbors by linear association strength.
//
// 🚀 What is locograph?
//
//	A small library of read-only primitives for workflows where the full
//	feature graph (from a graphical-model or conditional-independence
//	estimator) is too large or too noisy to inspect globally, and only
//	the structure local to a few variables of interest matters:
//		• Correlation screening: per-feature maximum absolute correlation
//		• Local restriction: multi-source BFS labeling + radius-bounded edge map
//		• Neighborhood extraction: anchor-rooted components, with or without targets
//
// ✨ Why choose locograph?
//
//   - Pure functions – every call only reads its inputs, safe for
//     concurrent use over the same matrices and edge maps
//   - Deterministic – explicit FIFO frontiers and sorted edge iteration,
//     never incidental map order
//   - Extensible – hooks (OnLabel, OnVisit…) and context cancellation in
//     the traversal loops
//
// Everything is organized under four subpackages:
//
//	core/         — Edge, EdgeMap, feature Ref and name↔index Lookup
//	screen/       — max-|correlation| screening over a data matrix
//	restrict/     — radius-restricted edge maps around target features
//	neighborhood/ — reachable-component extraction from an edge map
//
// Typical pipeline:
//
//	A (p×p adjacency)
//	     │ restrict.RestrictToLocalGraph(A, targets, r)
//	     ▼
//	Q (symmetric edge map)
//	     │ neighborhood.Extract(Q, anchor, targets)
//	     ▼
//	local neighborhood set
//
// while screen.MaxAbsCorrelation ranks candidate features independently
// over the same feature universe.
//
//	go get github.com/katalvlaran/locograph
package locograph
