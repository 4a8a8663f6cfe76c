package phase3

import (
	"github.com/katalvlaran/slidesquares/environment"
	"github.com/katalvlaran/slidesquares/geom"
	"github.com/katalvlaran/slidesquares/internal/telemetry"
	"github.com/katalvlaran/slidesquares/moveselect"
)

// Histogram is a row-major view of the ensemble's occupied cells, bucketed
// by y, used to find and close west-facing gaps. It snapshots the
// environment at construction and must be rebuilt after every Apply, the
// same weak-reference discipline MetaModule follows.
type Histogram struct {
	rows map[int][]int // y -> sorted occupied x values, ascending
	minX int
}

// NewHistogram builds a Histogram from occupied, grounded on
// structures/histogram.py's setup_from_env row bucketing.
func NewHistogram(occupied geom.CellSet) Histogram {
	h := Histogram{rows: map[int][]int{}}
	minX, _, _, _, ok := geom.BoundingBox(occupied)
	if !ok {
		return h
	}
	h.minX = minX
	for c := range occupied {
		h.rows[c.Y] = append(h.rows[c.Y], c.X)
	}
	for y := range h.rows {
		xs := h.rows[y]
		for i := 1; i < len(xs); i++ {
			for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
				xs[j-1], xs[j] = xs[j], xs[j-1]
			}
		}
	}
	return h
}

// CompactToLeft proposes a West move for every module that sits east of a
// gap in its row, per structures/histogram.py's compact_to_left: scan each
// row west to east, and once an empty cell is seen, every further module in
// that row is a candidate to slide one step toward it. idOf resolves a cell
// to its occupying module id. done is true once no row has a west-facing
// gap left to close.
func (h Histogram) CompactToLeft(occupied geom.CellSet, idOf func(geom.Cell) (geom.ModuleID, bool)) (ms geom.MoveSet, done bool) {
	ms = geom.MoveSet{}
	for y, xs := range h.rows {
		if len(xs) == 0 {
			continue
		}
		rowMinX := xs[0]
		sawHole := false
		for x := rowMinX; x <= xs[len(xs)-1]; x++ {
			c := geom.Cell{X: x, Y: y}
			occupiedHere := occupied.Has(c)
			if !occupiedHere {
				sawHole = true
				continue
			}
			if sawHole {
				if id, ok := idOf(c); ok {
					ms[id] = geom.W
				}
			}
		}
	}
	if len(ms) == 0 {
		return nil, true
	}
	return ms, false
}

// IdealColumns reports the packing structures/histogram.py's
// calculate_ideal_shape computes: how many full 3-row-high, 3-module-wide
// metamodule columns the ensemble's module count fills, how many whole
// metamodules are left over for a partial column, and how many loose
// modules remain after that (fewer than 9, destined for a partial
// metamodule a Snake organizes in Phase 4).
func IdealColumns(moduleCount, rowCount int) (fullColumns, leftoverMetamodules, strayModules int) {
	if rowCount < 3 {
		return 0, 0, moduleCount
	}
	metamoduleHeight := rowCount / 3
	strayModules = moduleCount % 9
	potentialMetamodules := (moduleCount - strayModules) / 9
	if metamoduleHeight == 0 {
		return 0, 0, moduleCount
	}
	leftoverMetamodules = potentialMetamodules % metamoduleHeight
	fullColumns = (potentialMetamodules - leftoverMetamodules) / metamoduleHeight
	return fullColumns, leftoverMetamodules, strayModules
}

// HistogramTick runs a single CompactToLeft iteration against env, for
// callers that advance one tick per phase-controller step rather than
// driving the loop to completion in one call.
func HistogramTick(env *environment.Environment, log *telemetry.Logger) (done bool, err error) {
	if log == nil {
		log = telemetry.Nop()
	}
	occupied := env.Snapshot()
	h := NewHistogram(occupied)
	proposed, done := h.CompactToLeft(occupied, env.FindAt)
	if done {
		return true, nil
	}
	positions := env.Positions()
	selected := moveselect.Select(positions, occupied, proposed)
	if len(selected) == 0 {
		return false, nil
	}
	if err := env.Apply(selected); err != nil {
		log.Debugf("phase3: histogram apply rejected: %v", err)
		return false, nil
	}
	return false, nil
}

// RunCompaction drives HistogramTick to completion against env.
func RunCompaction(env *environment.Environment, iterationCap int, log *telemetry.Logger) error {
	if log == nil {
		log = telemetry.Nop()
	}
	for i := 0; i < iterationCap; i++ {
		done, err := HistogramTick(env, log)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	log.Stall("phase3-histogram", iterationCap, "compaction did not finish within the iteration cap")
	return nil
}
