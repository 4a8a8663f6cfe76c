package phase1

import (
	"slices"
	"sort"

	"github.com/katalvlaran/slidesquares/geom"
)

// centerOfMass returns the rounded-down centroid of cells; cells must be
// non-empty.
func centerOfMass(cells geom.CellSet) geom.Cell {
	var sumX, sumY int
	for c := range cells {
		sumX += c.X
		sumY += c.Y
	}
	n := len(cells)
	return geom.Cell{X: sumX / n, Y: sumY / n}
}

// BuildTarget computes the exoskeleton target cell set for count modules:
// the exoskeleton is trimmed (dropping the cells farthest from the center of
// mass) or extended (adding the nearest empty neighbor cells) to approximately
// count cells, the center-of-mass cell itself is always excluded (the
// cross-cutting "center is a hole" invariant spec.md §9 calls out), and the
// result is reconnected by Manhattan bridging if trimming disconnected it
// (bridgeComponents describes the one layout it leaves unbridged) —
// bridging may add a handful of cells beyond count to preserve I1, which is
// harmless since AssignTargets only ever claims as many target cells as
// there are modules.
func BuildTarget(occupied geom.CellSet, count int) geom.CellSet {
	if len(occupied) == 0 {
		return geom.NewCellSet()
	}
	center := centerOfMass(occupied)
	skeleton := ComputeSkeleton(occupied)
	exo := ComputeExoskeleton(occupied, skeleton)
	delete(exo, center)

	cells := exo.Slice()
	sort.Slice(cells, func(i, j int) bool {
		di, dj := cells[i].Manhattan(center), cells[j].Manhattan(center)
		if di != dj {
			return di < dj
		}
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	target := geom.NewCellSet()
	for _, c := range cells {
		if len(target) >= count {
			break
		}
		target[c] = struct{}{}
	}

	// Extend outward from the shell if the exoskeleton was smaller than
	// count, growing ring by ring from whatever is already in target.
	for len(target) < count {
		grown := false
		frontier := target.Slice()
		for _, c := range frontier {
			for _, n := range c.Neighbors4() {
				if n == center || target.Has(n) {
					continue
				}
				target[n] = struct{}{}
				grown = true
				if len(target) >= count {
					break
				}
			}
			if len(target) >= count {
				break
			}
		}
		if !grown {
			break // nothing reachable to grow into; caller will stall
		}
	}

	return bridgeComponents(target, center)
}

// bridgeComponents reconnects a possibly-disconnected cell set by adding a
// Manhattan L-path between the nearest pair of cells across the two largest
// components, repeated until one component remains or no progress can be
// made. Of the two L-paths between a pair, the horizontal-first one is used
// unless it runs through center; no progress can be made when both do (the
// pair lies in one row or column on opposite sides of center), and the set
// is then returned still disconnected. center is never added to the bridge.
func bridgeComponents(cells geom.CellSet, center geom.Cell) geom.CellSet {
	for {
		comps := components(cells)
		if len(comps) <= 1 {
			return cells
		}
		a, b := nearestPair(comps[0], comps[1])
		path := manhattanPath(a, b)
		if slices.Contains(path, center) {
			path = manhattanPath(b, a) // vertical-first from a's side
		}
		if slices.Contains(path, center) {
			return cells
		}
		for _, c := range path {
			cells[c] = struct{}{}
		}
		// Re-derive components on the next pass; large inputs merge one
		// pair of components per pass until a single component remains.
	}
}

func components(cells geom.CellSet) []geom.CellSet {
	remaining := cells.Clone()
	var comps []geom.CellSet
	for len(remaining) > 0 {
		ordered := remaining.Slice()
		start := ordered[0]
		comp := geom.NewCellSet(start)
		queue := []geom.Cell{start}
		delete(remaining, start)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, n := range cur.Neighbors4() {
				if !remaining.Has(n) {
					continue
				}
				comp[n] = struct{}{}
				delete(remaining, n)
				queue = append(queue, n)
			}
		}
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })
	return comps
}

func nearestPair(a, b geom.CellSet) (geom.Cell, geom.Cell) {
	var bestA, bestB geom.Cell
	best := -1
	for ca := range a {
		for cb := range b {
			d := ca.Manhattan(cb)
			if best == -1 || d < best {
				best, bestA, bestB = d, ca, cb
			}
		}
	}
	return bestA, bestB
}

// manhattanPath returns the cells of an L-shaped path from a to b, moving
// horizontally then vertically.
func manhattanPath(a, b geom.Cell) []geom.Cell {
	var path []geom.Cell
	cur := a
	stepX := 1
	if b.X < a.X {
		stepX = -1
	}
	for cur.X != b.X {
		cur.X += stepX
		path = append(path, cur)
	}
	stepY := 1
	if b.Y < a.Y {
		stepY = -1
	}
	for cur.Y != b.Y {
		cur.Y += stepY
		path = append(path, cur)
	}
	return path
}

// centerReachable reports whether center is 4-adjacent to at least one cell
// of target and is itself not a member (the "empty and reachable" half of
// the center-hole invariant).
func centerReachable(target geom.CellSet, center geom.Cell) bool {
	if target.Has(center) {
		return false
	}
	for _, n := range center.Neighbors4() {
		if target.Has(n) {
			return true
		}
	}
	return false
}
