package phase1

import (
	"github.com/katalvlaran/slidesquares/environment"
	"github.com/katalvlaran/slidesquares/geom"
	"github.com/katalvlaran/slidesquares/internal/telemetry"
	"github.com/katalvlaran/slidesquares/moveselect"
)

// Tick runs one greedy iteration of the assign/propose/select/apply planner
// against env: assign modules to target cells, propose reducing moves,
// filter through the move selector, and apply the accepted subset. It
// returns done=true once every module occupies its assigned cell, and
// progressed=false if the selector accepted nothing (a stall candidate —
// the caller should count consecutive stalls against the phase's iteration
// cap from spec.md §5). phaseName only labels log output; phase2 calls this
// with its own name to reuse the same loop for the scaffolding drive.
func Tick(env *environment.Environment, target geom.CellSet, log *telemetry.Logger, phaseName string) (done bool, progressed bool, err error) {
	if log == nil {
		log = telemetry.Nop()
	}
	positions := env.Positions()
	assignment := AssignTargets(positions, target)

	before := TotalDistance(positions, assignment)
	if before == 0 {
		return true, false, nil
	}

	proposed := ProposeMoves(positions, assignment)
	if len(proposed) == 0 {
		return false, false, nil
	}

	occupied := env.Snapshot()
	selected := moveselect.Select(positions, occupied, proposed)
	if len(selected) == 0 {
		return false, false, nil
	}

	if err := env.Apply(selected); err != nil {
		log.Debugf("%s: apply rejected: %v", phaseName, err)
		return false, false, nil
	}

	after := TotalDistance(env.Positions(), assignment)
	return after == 0, after < before, nil
}

// Run drives Tick to completion: it returns true once the ensemble reaches
// target, or false if iterationCap ticks pass without reaching it (a stall,
// per spec.md §4.5's "stall: no proposals reduce distance").
func Run(env *environment.Environment, target geom.CellSet, iterationCap int, log *telemetry.Logger, phaseName string) (bool, error) {
	if log == nil {
		log = telemetry.Nop()
	}
	for i := 0; i < iterationCap; i++ {
		done, progressed, err := Tick(env, target, log, phaseName)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
		if !progressed {
			log.Stall(phaseName, i, "no admissible move reduced assignment distance")
		}
	}
	return false, nil
}
