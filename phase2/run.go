package phase2

import (
	"github.com/katalvlaran/slidesquares/environment"
	"github.com/katalvlaran/slidesquares/geom"
	"github.com/katalvlaran/slidesquares/internal/telemetry"
	"github.com/katalvlaran/slidesquares/phase1"
)

// Run computes the scaffolding band for env's current module count, anchored
// at eastX one column east of the current bounding box's maxX, and drives
// the ensemble onto it with phase1's shared assign/propose/select/apply
// loop.
func Run(env *environment.Environment, iterationCap int, log *telemetry.Logger) (bool, error) {
	_, maxX, minY, maxY, ok := env.Bounds()
	if !ok {
		return true, nil // empty environment: nothing to scaffold
	}
	eastX := maxX + 1
	target := BuildScaffolding(eastX, minY, maxY, env.Len())
	return phase1.Run(env, target, iterationCap, log, "phase2")
}

// Tick runs a single assign/propose/select/apply iteration toward env's
// scaffolding target, for callers (the phase controller) that advance one
// phase at a time and need single-tick granularity rather than Run's
// to-completion loop.
func Tick(env *environment.Environment, log *telemetry.Logger) (done bool, progressed bool, err error) {
	return phase1.Tick(env, Target(env), log, "phase2")
}

// Target exposes BuildScaffolding's result for env's current bounds and
// module count, useful for callers that want to inspect the scaffolding
// before driving the ensemble onto it (e.g. Phase 3's sweep-line setup).
func Target(env *environment.Environment) geom.CellSet {
	_, maxX, minY, maxY, ok := env.Bounds()
	if !ok {
		return geom.NewCellSet()
	}
	return BuildScaffolding(maxX+1, minY, maxY, env.Len())
}
