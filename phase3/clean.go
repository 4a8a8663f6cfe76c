package phase3

import "github.com/katalvlaran/slidesquares/geom"

// westStripRun counts how many consecutive occupied cells extend west from
// (cx-2, y), stopping at the first empty cell.
func westStripRun(occupied geom.CellSet, cx, y int) int {
	n := 0
	for x := cx - 2; ; x-- {
		if !occupied.Has(geom.Cell{X: x, Y: y}) {
			break
		}
		n++
	}
	return n
}

// Clean proposes the move script that empties mm's center cell, per
// spec.md §4.7. idOf resolves a cell to its occupying module id. done is
// true if the center is already empty (nothing to clean) or the west strip
// offers no room to slide into (the sweep has reached the leftmost column).
func Clean(occupied geom.CellSet, mm MetaModule, idOf func(geom.Cell) (geom.ModuleID, bool)) (ms geom.MoveSet, done bool) {
	if !mm.At(0, 0) {
		return nil, true // already clean
	}

	cx, cy := mm.Center.X, mm.Center.Y
	rowNorth := westStripRun(occupied, cx, cy+1)
	rowMid := westStripRun(occupied, cx, cy)
	rowSouth := westStripRun(occupied, cx, cy-1)

	if cx-2 < 0 {
		return nil, true // leftmost column reached
	}

	ms = geom.MoveSet{}
	move := func(c geom.Cell, m geom.Move) {
		if id, ok := idOf(c); ok {
			ms[id] = m
		}
	}

	switch {
	case rowNorth > rowMid && rowMid <= rowSouth:
		// Trivial case: push the middle strip, the center, and the
		// west-of-center cell one step west.
		for x := cx - 2; x >= cx-2-rowMid+1; x-- {
			move(geom.Cell{X: x, Y: cy}, geom.W)
		}
		move(mm.Center, geom.W)
		move(geom.Cell{X: cx - 1, Y: cy}, geom.W)
	default:
		// North or south row is the shortest (or ties north): pull that
		// row's nearest cell diagonally into the gap left by the center,
		// and backfill the vacated middle strip the same as the trivial
		// case. This generalizes the shortest-row selection to whichever
		// of the three rows is shortest.
		shortestRow := cy + 1
		if rowSouth < rowNorth {
			shortestRow = cy - 1
		}
		diag := geom.NE
		if shortestRow == cy-1 {
			diag = geom.SE
		}
		move(geom.Cell{X: cx - 1, Y: shortestRow}, diag)
		move(mm.Center, geom.W)
		for x := cx - 2; x >= cx-2-rowMid+1; x-- {
			move(geom.Cell{X: x, Y: cy}, geom.W)
		}
	}

	if len(ms) == 0 {
		return nil, true
	}
	return ms, false
}
