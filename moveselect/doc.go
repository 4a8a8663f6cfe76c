// Package moveselect implements the Move selector of spec.md §4.4: given a
// dictionary of proposed moves, it selects a maximal collision-free,
// connectivity-preserving subset with deterministic tie-breaks.
//
// Algorithm:
//
//  1. Build a conflict graph on the proposed moves (collision.Detect groups
//     moves into SameTarget/Swap/Chain/SlideInterference records; any two
//     moves sharing a record conflict).
//  2. Repeatedly pick, from the remaining (undecided) candidates, the one
//     with the fewest remaining conflicts, ties broken by ascending module
//     id — implemented with a container/heap priority queue and lazy
//     invalidation, the same growth strategy prim_kruskal.Prim uses for MST
//     construction.
//  3. Tentatively accept it if the cumulative occupied set (current
//     occupancy, minus the sources of everything selected so far and of this
//     candidate, plus all their targets) remains 4-connected; if so,
//     commit it and drop every conflicting candidate from the pool, else
//     just drop this one candidate and keep the pool otherwise unchanged.
//  4. If the resulting selection is empty, fall back to a single-module
//     scan in ascending module-id order, returning the first move that is
//     connectivity-safe in isolation; otherwise the caller must stall or
//     re-plan.
//
// Determinism: Select returns the same subset on every call for identical
// input, since every tie-break is by ascending ModuleID and every heap
// comparison uses (conflictCount, id).
package moveselect
