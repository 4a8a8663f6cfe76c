package phase3

import "github.com/katalvlaran/slidesquares/geom"

// MetaModule is the 3×3 window of spec.md §4.7, anchored at its center cell.
// It caches which of the nine cells are occupied, snapshotted from the
// environment at construction time; callers must rebuild it whenever the
// environment mutates (the "weak reference" discipline spec.md §9 requires
// of every Phase 3/4 structure).
type MetaModule struct {
	Center geom.Cell
	cells  [3][3]bool // [row][col], row 0 = north (cy+1), col 0 = west (cx-1)
}

// NewMetaModule snapshots the 3×3 window centered at c from occupied.
func NewMetaModule(occupied geom.CellSet, c geom.Cell) MetaModule {
	var mm MetaModule
	mm.Center = c
	for row := 0; row < 3; row++ {
		y := c.Y + (1 - row) // row 0 -> cy+1, row 1 -> cy, row 2 -> cy-1
		for col := 0; col < 3; col++ {
			x := c.X + (col - 1) // col 0 -> cx-1, col 1 -> cx, col 2 -> cx+1
			mm.cells[row][col] = occupied.Has(geom.Cell{X: x, Y: y})
		}
	}
	return mm
}

// Solid reports whether all nine cells are occupied.
func (mm MetaModule) Solid() bool {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if !mm.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Clean reports whether every cell but the center is occupied and the center
// is empty.
func (mm MetaModule) Clean() bool {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row == 1 && col == 1 {
				if mm.cells[row][col] {
					return false
				}
				continue
			}
			if !mm.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Valid reports whether mm is Solid or Clean.
func (mm MetaModule) Valid() bool {
	return mm.Solid() || mm.Clean()
}

// Separator reports whether the strip east of mm (same three rows, every
// column from cx+2 to the ensemble's eastern bound) has at most one
// contiguous empty run per row — the property the sweep relies on to pull
// modules west without stranding a hole it can no longer reach.
func (mm MetaModule) Separator(occupied geom.CellSet, eastBound int) bool {
	for row := 0; row < 3; row++ {
		y := mm.Center.Y + (1 - row)
		runs := 0
		inRun := false
		for x := mm.Center.X + 2; x <= eastBound; x++ {
			empty := !occupied.Has(geom.Cell{X: x, Y: y})
			if empty && !inRun {
				runs++
				inRun = true
			} else if !empty {
				inRun = false
			}
		}
		if runs > 1 {
			return false
		}
	}
	return true
}

// At returns whether the cell at (colOffset, rowOffset) — each in {-1,0,1}
// relative to the center — is occupied in this snapshot.
func (mm MetaModule) At(colOffset, rowOffset int) bool {
	return mm.cells[1-rowOffset][colOffset+1]
}
