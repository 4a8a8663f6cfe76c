package phase4

import (
	"sort"

	"github.com/katalvlaran/slidesquares/environment"
	"github.com/katalvlaran/slidesquares/geom"
	"github.com/katalvlaran/slidesquares/internal/telemetry"
	"github.com/katalvlaran/slidesquares/moveselect"
)

// Surplus returns the modules occupying a cell outside goal — the ones
// Phase 4 must organize into snakes and walk into place, per spec.md §4.9's
// "modules not at goal positions are surplus".
func Surplus(positions map[geom.ModuleID]geom.Cell, goal geom.CellSet) map[geom.ModuleID]geom.Cell {
	out := map[geom.ModuleID]geom.Cell{}
	for id, c := range positions {
		if !goal.Has(c) {
			out[id] = c
		}
	}
	return out
}

// BuildSnakes partitions surplus modules into one snake per three-row band,
// per spec.md §4.9's "per triple of rows, the eastmost column of surplus
// cells forms a head + tail traveling westward". Within a band, modules are
// ordered east to west (descending x, then descending y) so the snake's
// head starts at the leading edge of the reservoir.
func BuildSnakes(surplus map[geom.ModuleID]geom.Cell, facing geom.Move) []*Snake {
	bands := map[int][]geom.ModuleID{}
	for id, c := range surplus {
		band := floorDiv(c.Y, 3)
		bands[band] = append(bands[band], id)
	}

	bandKeys := make([]int, 0, len(bands))
	for b := range bands {
		bandKeys = append(bandKeys, b)
	}
	sort.Ints(bandKeys)

	var snakes []*Snake
	for _, b := range bandKeys {
		ids := bands[b]
		sort.Slice(ids, func(i, j int) bool {
			ci, cj := surplus[ids[i]], surplus[ids[j]]
			if ci.X != cj.X {
				return ci.X > cj.X
			}
			return ci.Y > cj.Y
		})
		snakes = append(snakes, NewSnake(ids[0], facing, ids[1:]))
	}
	return snakes
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Tick advances every active snake by one movement, merges their proposals
// through the shared move selector, and applies the accepted subset. Snakes
// that report ReachedEnd are dropped; snakes that report RemakeSnake are
// promoted in place (head becomes the next segment) and retried within the
// same tick. It returns allDone=true once no snakes remain.
func Tick(env *environment.Environment, snakes []*Snake, inBounds func(geom.Cell) bool, log *telemetry.Logger) (remaining []*Snake, allDone bool, err error) {
	if log == nil {
		log = telemetry.Nop()
	}

	occupied := env.Snapshot()
	positions := env.Positions()
	pos := func(id geom.ModuleID) geom.Cell { return positions[id] }

	proposed := geom.MoveSet{}
	remaining = make([]*Snake, 0, len(snakes))
	for _, s := range snakes {
		for {
			ms, done, remake := s.MovementDict(occupied, pos, inBounds)
			if done {
				log.Debugf("phase4: snake led by module %d reached the bounding box end", s.Head.ModuleID)
				break
			}
			if remake {
				if !s.PromoteNextSegment() {
					break
				}
				continue
			}
			for id, m := range ms {
				if _, taken := proposed[id]; !taken {
					proposed[id] = m
				}
			}
			remaining = append(remaining, s)
			break
		}
	}

	if len(remaining) == 0 {
		return remaining, true, nil
	}
	if len(proposed) == 0 {
		return remaining, false, nil
	}

	selected := moveselect.Select(positions, occupied, proposed)
	if len(selected) == 0 {
		return remaining, false, nil
	}
	if err := env.Apply(selected); err != nil {
		log.Debugf("phase4: apply rejected: %v", err)
		return remaining, false, nil
	}
	return remaining, false, nil
}

// Run drives Tick to completion against env's current surplus modules
// relative to goal, or until iterationCap ticks pass (spec.md §5's ~20000
// cap, expressed here as a caller-supplied value so tests can use a small
// one).
func Run(env *environment.Environment, goal geom.CellSet, facing geom.Move, iterationCap int, log *telemetry.Logger) error {
	if log == nil {
		log = telemetry.Nop()
	}
	_, maxX, _, maxY, ok := geom.BoundingBox(goal)
	if !ok {
		return nil
	}
	inBounds := func(c geom.Cell) bool {
		return c.X >= -1 && c.X <= maxX+1 && c.Y >= -1 && c.Y <= maxY+1
	}

	surplus := Surplus(env.Positions(), goal)
	snakes := BuildSnakes(surplus, facing)

	for i := 0; i < iterationCap; i++ {
		next, done, err := Tick(env, snakes, inBounds, log)
		if err != nil {
			return err
		}
		snakes = next
		if done {
			return nil
		}
	}
	log.Stall("phase4", iterationCap, "snakes did not finish settling within the iteration cap")
	return nil
}
