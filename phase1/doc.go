// Package phase1 builds the exoskeleton target shape of spec.md §4.5 and
// drives the ensemble onto it: a thin spanning skeleton of the current
// configuration, thickened by one cell into an outer shell, trimmed or
// extended to match the module count, with its geometric center left empty.
//
// The skeleton construction is grounded on skeleton.py's spine-selection
// approach (spanning tree over the occupied cells, thinned to every other
// x-column plus isolated survivors, reconnected along tree paths); the
// exoskeleton step adds the one-cell neighbor shell the same way
// compute_exoskeleton does. Connectivity repair after trimming is a
// Manhattan-path bridge between components, the same idea gridgraph.ExpandIsland
// applies to grid islands, simplified here to a straight bridging walk since
// exoskeleton components are small relative to a full grid search.
//
// assign.go's greedy assign/propose/select/apply loop is shared with
// package phase2, which targets a different cell set but drives the same way.
package phase1
