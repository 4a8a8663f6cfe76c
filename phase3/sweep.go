package phase3

import (
	"github.com/katalvlaran/slidesquares/environment"
	"github.com/katalvlaran/slidesquares/geom"
	"github.com/katalvlaran/slidesquares/internal/telemetry"
	"github.com/katalvlaran/slidesquares/moveselect"
)

// columnCenters returns the candidate metamodule centers for a sweep over
// env's current occupied set: one per (column, row) where column runs west
// to east from two cells in from the western edge (so W1/W2/W3 always have
// room to exist) to one cell in from the eastern edge, and row is every y
// with cy-1, cy, cy+1 all inside bounds. Centers are ordered by row, then
// within a row leading (closer to the scaffolding's west edge) first, per
// the "leading before trailing" rule of spec.md §4.7.
func columnCenters(occupied geom.CellSet) []geom.Cell {
	minX, maxX, minY, maxY, ok := geom.BoundingBox(occupied)
	if !ok {
		return nil
	}
	var centers []geom.Cell
	for y := minY + 1; y <= maxY-1; y++ {
		for x := minX + 2; x <= maxX-1; x++ {
			centers = append(centers, geom.Cell{X: x, Y: y})
		}
	}
	return centers
}

// Tick runs one sweep-line iteration over env: every candidate metamodule
// column, leading (smallest x) first, attempts Clean if dirty or Advance if
// already clean, and the accumulated proposals from the whole sweep are
// filtered through the move selector and applied together. It returns
// progressed=false once a full pass proposes nothing, which the caller
// should treat as the sweep having finished compacting this band.
func Tick(env *environment.Environment, log *telemetry.Logger) (progressed bool, err error) {
	if log == nil {
		log = telemetry.Nop()
	}

	occupied := env.Snapshot()
	positions := env.Positions()
	proposed := geom.MoveSet{}

	for _, c := range columnCenters(occupied) {
		mm := NewMetaModule(occupied, c)
		if !mm.Valid() {
			continue
		}
		if mm.Clean() {
			w1 := occupied.Has(geom.Cell{X: c.X - 2, Y: c.Y + 1})
			w2 := occupied.Has(geom.Cell{X: c.X - 2, Y: c.Y})
			w3 := occupied.Has(geom.Cell{X: c.X - 2, Y: c.Y - 1})
			for id, m := range Advance(mm, w1, w2, w3, env.FindAt) {
				if _, taken := proposed[id]; !taken {
					proposed[id] = m
				}
			}
			continue
		}
		ms, done := Clean(occupied, mm, env.FindAt)
		if done {
			continue
		}
		for id, m := range ms {
			if _, taken := proposed[id]; !taken {
				proposed[id] = m
			}
		}
	}

	if len(proposed) == 0 {
		return false, nil
	}

	selected := moveselect.Select(positions, occupied, proposed)
	if len(selected) == 0 {
		return false, nil
	}
	if err := env.Apply(selected); err != nil {
		log.Debugf("phase3: sweep apply rejected: %v", err)
		return false, nil
	}
	return true, nil
}

// Run drives Tick until a pass makes no progress or iterationCap is reached.
func Run(env *environment.Environment, iterationCap int, log *telemetry.Logger) error {
	if log == nil {
		log = telemetry.Nop()
	}
	for i := 0; i < iterationCap; i++ {
		progressed, err := Tick(env, log)
		if err != nil {
			return err
		}
		if !progressed {
			log.Stall("phase3-sweep", i, "no metamodule proposed a clean or advance move")
			return nil
		}
	}
	return nil
}
