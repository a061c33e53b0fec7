// Package core provides the shared domain types of locograph: integer
// feature indices, the symmetric pair-keyed EdgeMap, and the Ref/Lookup
// pair for referring to features by index or by name.
//
// What
//
//   - Edge: an ordered (U, V) endpoint pair of feature indices.
//   - EdgeMap: a sparse map from Edge to a weight ("q-value"). A genuine
//     undirected edge is stored under both orientations — (i,j) and
//     (j,i) carry the same weight. This doubling is a structural
//     invariant of the representation, giving O(1) lookup for either
//     direction without a separate symmetrization step.
//   - Ref: a tagged feature reference, either ByIndex(i) or ByName(s).
//   - Lookup: a bidirectional name↔index table, built from a positional
//     name list (NameList) or an associative name→index map (NameIndex).
//
// Why
//
//	The restrict and neighborhood packages exchange restricted graphs as
//	EdgeMaps, and neighborhood anchors may arrive as human-readable
//	feature names. Keeping these types in one leaf package lets every
//	algorithm package share them without import cycles.
//
// Determinism
//
//	EdgeMap is a plain Go map; its iteration order is unspecified.
//	Consumers that need a reproducible order must use Edges() or
//	Nodes(), which return sorted results.
//
// Errors
//
//   - ErrNoLookup        if a ByName Ref is resolved without a Lookup.
//   - ErrNameNotFound    if a name is absent from the Lookup.
//   - ErrIndexOutOfRange if a feature index falls outside [0, p).
package core
