// Package phase2 builds the canonical sweep-line scaffolding of spec.md §4.6:
// a three-column band anchored on the east side of the (height-extended)
// bounding box, with a dotted middle column that leaves a center hole for
// Phase 3's cleaning operations. It drives the ensemble onto that
// scaffolding with the same greedy assign/propose/select/apply loop phase1
// uses, reusing phase1.AssignTargets and phase1.ProposeMoves directly.
package phase2
