package geom

import (
	"fmt"
	"sort"
)

// Cell is an integer grid coordinate. The zero value is the origin.
type Cell struct {
	X, Y int
}

// String renders a Cell as "(x,y)", used throughout logging and test output.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell obtained by translating c by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Manhattan returns the L1 distance between c and o.
func (c Cell) Manhattan(o Cell) int {
	return absInt(c.X-o.X) + absInt(c.Y-o.Y)
}

// Chebyshev returns the L∞ distance between c and o (the minimum number of
// king-move steps between them).
func (c Cell) Chebyshev(o Cell) int {
	dx, dy := absInt(c.X-o.X), absInt(c.Y-o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Adjacent4 reports whether c and o are 4-neighbors (share an edge).
func (c Cell) Adjacent4(o Cell) bool {
	return c.Manhattan(o) == 1
}

// Adjacent8 reports whether c and o are 8-neighbors (share an edge or corner).
func (c Cell) Adjacent8(o Cell) bool {
	return c != o && c.Chebyshev(o) == 1
}

// Neighbors4 returns the four cardinal neighbors of c, in N, E, S, W order.
func (c Cell) Neighbors4() [4]Cell {
	return [4]Cell{
		c.Add(Cell{0, 1}),
		c.Add(Cell{1, 0}),
		c.Add(Cell{0, -1}),
		c.Add(Cell{-1, 0}),
	}
}

// Neighbors8 returns all eight neighbors of c, in the same order as the
// AllMoves table (N, S, E, W, NE, NW, SE, SW).
func (c Cell) Neighbors8() [8]Cell {
	var out [8]Cell
	for i, m := range AllMoves {
		out[i] = c.Add(m.Delta())
	}
	return out
}

// CellSet is a set of occupied cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a CellSet from a slice of cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Clone returns a shallow copy of s.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Has reports whether c is a member of s.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Slice returns the cells of s as a slice, ordered lexicographically by
// (Y, X) to keep iteration deterministic across calls.
func (s CellSet) Slice() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// BoundingBox computes the inclusive (minX, maxX, minY, maxY) bounds of a
// non-empty cell set. The second return value is false for an empty set.
func BoundingBox(cells CellSet) (minX, maxX, minY, maxY int, ok bool) {
	if len(cells) == 0 {
		return 0, 0, 0, 0, false
	}
	first := true
	for c := range cells {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return minX, maxX, minY, maxY, true
}
