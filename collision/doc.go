// Package collision implements the Collision detector of spec.md §4.2: given
// a MoveSet over a configuration, it classifies every conflict into one of
// four kinds — SameTarget, Swap, Chain, and SlideInterference — and returns
// the (possibly empty) list of Records. A MoveSet is collision-free iff
// Detect returns no records.
//
// The Chain check reuses the white/gray/black DFS cycle-detection state
// machine used for topological sorting: the "position → target" functional
// graph restricted to moving modules is walked exactly like a directed
// graph's cycle search.
//
// Open question (spec.md §9, deliberately unresolved in the source): whether
// cycles of moving modules (rotations) should be admissible, since they are
// collision-free and connectivity-preserving by construction. This package
// matches the conservative source behavior — cycles are rejected — unless
// WithAllowCycles is supplied.
package collision
