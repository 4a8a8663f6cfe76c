// Package environment implements the Configuration / Environment data model
// and the Step executor: the Module table, the Cell→ModuleID occupancy
// index, the atomic apply(MoveSet) operation, and the ASCII grid load/render
// contract.
//
// An Environment is the single mutable resource every phase plans against.
// It owns the module table and the occupancy index exclusively; every other
// package (connectivity, collision, moveselect, the phaseN packages) holds
// only weak references — ModuleIDs or captured Cells — and re-resolves them
// from the Environment on every tick.
//
// Errors:
//
//	ErrInvalidConfig   - malformed grid text, or a non-connected configuration.
//	ErrCellOccupied    - attempted placement onto an already-occupied cell.
//	ErrOutOfBounds     - a strict Apply saw a target outside the bounds policy.
//	ErrUnknownModule   - a MoveSet referenced a module id the Environment does not have.
//
// Concurrency: Environment embeds a sync.RWMutex (muState) guarding the
// module table and occupancy index, following the same locking discipline
// the rest of this module's ancestry uses for shared mutable state. Planning
// itself is single-threaded and tick-driven (see package planner); the lock
// exists so a caller may safely read Snapshot/Bounds from one goroutine
// while another is mid-tick.
package environment
