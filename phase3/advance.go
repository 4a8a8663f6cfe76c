package phase3

import "github.com/katalvlaran/slidesquares/geom"

// AdvanceCase packs which of W1 (north-west), W2 (west), W3 (south-west) are
// already occupied into the 3-bit index spec.md §4.7 keys its eight advance
// scripts by: bit 2 = W1, bit 1 = W2, bit 0 = W3.
type AdvanceCase int

// AdvanceCaseOf computes the case index for a given W1/W2/W3 occupancy.
func AdvanceCaseOf(w1, w2, w3 bool) AdvanceCase {
	c := AdvanceCase(0)
	if w1 {
		c |= 4
	}
	if w2 {
		c |= 2
	}
	if w3 {
		c |= 1
	}
	return c
}

// advanceStep is one row of an advance script: which window row (relative to
// the center, -1 = south, 0 = mid, 1 = north) moves and by which delta.
type advanceStep struct {
	row  int
	move geom.Move
}

// advanceScripts is the eight-case table spec.md §4.7 describes: for each
// AdvanceCase, the moves applied to the window's west column (cx-1, cy+row)
// to shift the valid window one column west. The north row moves NW, or SW
// when W1 is occupied; the south row moves SW, or NW when W3 is occupied;
// the mid row always moves W, whether or not W2 is occupied. This table is
// an original design — structures/metamodule.py's advance() is an
// unimplemented stub with no move logic to port (see DESIGN.md).
var advanceScripts = map[AdvanceCase][]advanceStep{
	AdvanceCaseOf(false, false, false): {{1, geom.NW}, {0, geom.W}, {-1, geom.SW}},
	AdvanceCaseOf(true, false, false):  {{1, geom.SW}, {0, geom.W}, {-1, geom.SW}},
	AdvanceCaseOf(false, false, true):  {{1, geom.NW}, {0, geom.W}, {-1, geom.NW}},
	AdvanceCaseOf(true, false, true):   {{1, geom.SW}, {0, geom.W}, {-1, geom.NW}},
	AdvanceCaseOf(false, true, false):  {{1, geom.NW}, {0, geom.W}, {-1, geom.SW}},
	AdvanceCaseOf(true, true, false):   {{1, geom.SW}, {0, geom.W}, {-1, geom.SW}},
	AdvanceCaseOf(false, true, true):   {{1, geom.NW}, {0, geom.W}, {-1, geom.NW}},
	AdvanceCaseOf(true, true, true):    {{1, geom.SW}, {0, geom.W}, {-1, geom.NW}},
}

// Advance proposes the move script that shifts a clean metamodule's window
// one column west, per spec.md §4.7. w1, w2, w3 report whether the cells at
// (cx-2, cy+1), (cx-2, cy), (cx-2, cy-1) are already occupied by the
// exterior west strip. idOf resolves a cell to its occupying module id. mm
// must be Clean.
func Advance(mm MetaModule, w1, w2, w3 bool, idOf func(geom.Cell) (geom.ModuleID, bool)) geom.MoveSet {
	script := advanceScripts[AdvanceCaseOf(w1, w2, w3)]
	ms := geom.MoveSet{}
	cx, cy := mm.Center.X, mm.Center.Y
	for _, step := range script {
		c := geom.Cell{X: cx - 1, Y: cy + step.row}
		if id, ok := idOf(c); ok {
			ms[id] = step.move
		}
	}
	return ms
}
