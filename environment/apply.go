package environment

import (
	"fmt"

	"github.com/katalvlaran/slidesquares/collision"
	"github.com/katalvlaran/slidesquares/connectivity"
	"github.com/katalvlaran/slidesquares/geom"
)

// Apply is the Step executor's atomic apply(MoveSet) from spec.md §4.1: it
// validates ms in full — collision-freedom, bounds, the resulting
// occupancy's whole-ensemble 4-connectivity, and the stationary backbone's
// own 4-connectivity — before mutating any module, and commits all moves
// together or none at all. Modules absent from ms stay put.
func (env *Environment) Apply(ms geom.MoveSet, opts ...collision.Option) error {
	env.muState.Lock()
	defer env.muState.Unlock()

	for id := range ms {
		if _, ok := env.modules[id]; !ok {
			return fmt.Errorf("environment: %w: module %d", ErrUnknownModule, id)
		}
	}

	positions := make(map[geom.ModuleID]geom.Cell, len(env.modules))
	for id, m := range env.modules {
		positions[id] = m.Position
	}

	if recs := collision.Detect(positions, fillStay(ms, positions), opts...); len(recs) > 0 {
		return fmt.Errorf("environment: %w: %v", ErrCollision, recs)
	}

	next := make(map[geom.Cell]geom.ModuleID, len(env.occupancy))
	for id, m := range env.modules {
		target := m.Position
		if mv, ok := ms[id]; ok {
			target = m.Position.Add(mv.Delta())
		}
		if err := env.checkBounds(target); err != nil {
			return err
		}
		next[target] = id
	}

	nextCells := make(geom.CellSet, len(next))
	for c := range next {
		nextCells[c] = struct{}{}
	}
	if !connectivity.IsConnected(nextCells) {
		return fmt.Errorf("environment: %w", ErrConnectivityBreak)
	}

	nonMoving := make(geom.CellSet, len(env.modules))
	for id, m := range env.modules {
		if mv, ok := ms[id]; ok && mv != geom.Stay {
			continue
		}
		nonMoving[m.Position] = struct{}{}
	}
	if !connectivity.BackboneConnected(nonMoving) {
		return fmt.Errorf("environment: %w", ErrConnectivityBreak)
	}

	for id, m := range env.modules {
		if mv, ok := ms[id]; ok {
			m.Position = m.Position.Add(mv.Delta())
		}
	}
	env.occupancy = next

	return nil
}

func (env *Environment) checkBounds(c geom.Cell) error {
	switch env.cfg.policy {
	case Strict:
		if c.X < env.cfg.minX || c.X > env.cfg.maxX || c.Y < env.cfg.minY || c.Y > env.cfg.maxY {
			return fmt.Errorf("environment: %w: %s", ErrOutOfBounds, c)
		}
	case Clamp:
		// Clamp never rejects; callers wanting a clamped target must compute
		// it before building the MoveSet. Nothing to validate here.
	case Unbounded:
		// no bounds to enforce
	}
	return nil
}

// fillStay returns a copy of ms with an explicit geom.Stay entry for every
// module in positions that ms does not mention, so collision.Detect sees the
// full set of participants when computing SameTarget and SlideInterference.
func fillStay(ms geom.MoveSet, positions map[geom.ModuleID]geom.Cell) geom.MoveSet {
	out := make(geom.MoveSet, len(positions))
	for id := range positions {
		if mv, ok := ms[id]; ok {
			out[id] = mv
		} else {
			out[id] = geom.Stay
		}
	}
	return out
}
