// Package slidesquares implements the core of a parallel reconfiguration
// planner for a two-dimensional modular robotic ensemble (the "sliding
// squares" model): a finite set of unit-square modules, always forming a
// single 4-connected component, that slide cardinally or diagonally, one
// cell per step, to transform a start configuration into a goal
// configuration of equal size.
//
// What:
//
//   - geom          — cells, the nine-delta Move enumeration, and MoveSet.
//   - environment   — Module/Environment, the occupancy index, the atomic
//     step executor, and the ASCII grid load/render contract.
//   - connectivity  — BFS-based whole-ensemble and backbone connectivity checks.
//   - collision     — same-target, swap, chain, and slide-interference detection.
//   - moveselect    — deterministic, connectivity-aware maximal move selection.
//   - phase1        — exoskeleton construction (skeleton + outer shell).
//   - phase2        — canonical east-aligned scaffolding.
//   - phase3        — the metamodule sweep line and the resulting histogram.
//   - phase4        — snake-based compaction of surplus modules onto the goal.
//   - planner       — the phase controller and the top-level Planner API.
//
// Why:
//
//   - Reconfiguration planning for programmable matter and modular robots
//     needs a deterministic, step-by-step schedule that never violates
//     kinematic, collision, or connectivity constraints — this module is
//     that planner's core, independent of any UI, benchmarking harness, or
//     input format beyond the grid contract in package environment.
//
// Non-goals (see SPEC_FULL.md for the full rationale):
//
//   - Schedule optimality, more than the nine named deltas, free-flying
//     modules, obstacle cells, heterogeneous module types, and any external
//     demonstrator UI, benchmarking harness, plotting, or file I/O.
//
// See SPEC_FULL.md and DESIGN.md for the full design and grounding ledger.
package slidesquares
