package environment

import "github.com/katalvlaran/slidesquares/geom"

// Clone returns an independent deep copy of env: a new module table and
// occupancy index with the same ids and positions, sharing no memory with
// the original. No package of this module calls it: the phases check
// candidate moves on geom.CellSet copies of the occupancy instead.
func (env *Environment) Clone() *Environment {
	env.muState.RLock()
	defer env.muState.RUnlock()

	out := &Environment{
		modules:   make(map[geom.ModuleID]*Module, len(env.modules)),
		occupancy: make(map[geom.Cell]geom.ModuleID, len(env.occupancy)),
		nextID:    env.nextID,
		cfg:       env.cfg,
	}
	for id, m := range env.modules {
		copied := *m
		out.modules[id] = &copied
	}
	for c, id := range env.occupancy {
		out.occupancy[c] = id
	}
	return out
}
