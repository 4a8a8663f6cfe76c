package environment

import "github.com/katalvlaran/slidesquares/geom"

// Snapshot returns the current occupied cell set. The returned CellSet is a
// fresh copy; mutating it has no effect on env.
func (env *Environment) Snapshot() geom.CellSet {
	env.muState.RLock()
	defer env.muState.RUnlock()

	out := make(geom.CellSet, len(env.occupancy))
	for c := range env.occupancy {
		out[c] = struct{}{}
	}
	return out
}

// Bounds returns the inclusive bounding box of the occupied cells. ok is
// false for an empty Environment.
func (env *Environment) Bounds() (minX, maxX, minY, maxY int, ok bool) {
	env.muState.RLock()
	defer env.muState.RUnlock()

	cells := make(geom.CellSet, len(env.occupancy))
	for c := range env.occupancy {
		cells[c] = struct{}{}
	}
	return geom.BoundingBox(cells)
}

// Matrix renders the current occupancy as a dense row-major boolean grid over
// the bounding box, row 0 at the minimum Y. Matrix[y-minY][x-minX] is true
// iff (x,y) is occupied. Returns an empty slice for an empty Environment.
func (env *Environment) Matrix() [][]bool {
	minX, maxX, minY, maxY, ok := env.Bounds()
	if !ok {
		return nil
	}

	env.muState.RLock()
	defer env.muState.RUnlock()

	height := maxY - minY + 1
	width := maxX - minX + 1
	out := make([][]bool, height)
	for row := range out {
		out[row] = make([]bool, width)
	}
	for c := range env.occupancy {
		out[c.Y-minY][c.X-minX] = true
	}
	return out
}

// FindAt returns the module occupying c, if any.
func (env *Environment) FindAt(c geom.Cell) (geom.ModuleID, bool) {
	env.muState.RLock()
	defer env.muState.RUnlock()

	id, ok := env.occupancy[c]
	return id, ok
}

// Position returns the current cell of module id.
func (env *Environment) Position(id geom.ModuleID) (geom.Cell, bool) {
	env.muState.RLock()
	defer env.muState.RUnlock()

	m, ok := env.modules[id]
	if !ok {
		return geom.Cell{}, false
	}
	return m.Position, true
}

// Positions returns a copy of every module's current position, keyed by id.
func (env *Environment) Positions() map[geom.ModuleID]geom.Cell {
	env.muState.RLock()
	defer env.muState.RUnlock()

	out := make(map[geom.ModuleID]geom.Cell, len(env.modules))
	for id, m := range env.modules {
		out[id] = m.Position
	}
	return out
}

// Len returns the number of modules in env.
func (env *Environment) Len() int {
	env.muState.RLock()
	defer env.muState.RUnlock()

	return len(env.modules)
}

// IsConnected reports whether the current occupancy is 4-connected (I1).
func (env *Environment) IsConnected() bool {
	env.muState.RLock()
	defer env.muState.RUnlock()

	return env.isConnectedLocked()
}
