// Package telemetry wraps go.uber.org/zap for the structured diagnostics
// spec.md §7 asks the planner and its phases to emit on stall and rejection:
// which phase, which tick, which module ids were involved, and why a step
// could not be committed. It is internal because no exported API outside
// this module should depend on the specific logging backend.
package telemetry
