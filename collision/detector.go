package collision

import (
	"sort"

	"github.com/katalvlaran/slidesquares/geom"
)

// Record describes one detected collision.
type Record struct {
	Kind    Kind
	Modules []geom.ModuleID
	Cell    geom.Cell // the contested cell, set for SameTarget records only
}

// cycleState marks a module's position in the white/gray/black DFS walk used
// by the Chain check, mirroring the classic topological-sort cycle detector.
type cycleState int

const (
	white cycleState = iota
	gray
	black
)

// Detect classifies every collision in ms given the current position of
// every participating module. positions must contain an entry for every
// module id that appears in ms; modules with no entry in ms are treated as
// Stay (their target equals their current position).
//
// Complexity: O(n) for SameTarget, O(n) for cycle detection (DFS over the
// functional graph), O(n²) worst case for SlideInterference (all pairs of
// moving modules) — acceptable since n is the module count of one tick's
// MoveSet, not the whole ensemble's history.
func Detect(positions map[geom.ModuleID]geom.Cell, ms geom.MoveSet, opts ...Option) []Record {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}

	ids := sortedIDs(positions)
	target := make(map[geom.ModuleID]geom.Cell, len(ids))
	for _, id := range ids {
		target[id] = positions[id].Add(ms[id].Delta())
	}

	var records []Record
	records = append(records, detectSameTarget(ids, target)...)
	if !cfg.allowCycles {
		records = append(records, detectCycles(ids, positions, target, ms)...)
	}
	records = append(records, detectSlideInterference(ids, positions, target, ms)...)
	return records
}

func detectSameTarget(ids []geom.ModuleID, target map[geom.ModuleID]geom.Cell) []Record {
	byCell := make(map[geom.Cell][]geom.ModuleID)
	for _, id := range ids {
		c := target[id]
		byCell[c] = append(byCell[c], id)
	}
	var out []Record
	for _, id := range ids {
		c := target[id]
		group := byCell[c]
		if len(group) > 1 && group[0] == id {
			out = append(out, Record{Kind: SameTarget, Modules: append([]geom.ModuleID{}, group...), Cell: c})
		}
	}
	return out
}

// detectCycles walks the position→target functional graph restricted to
// moving modules, reporting each cycle as Swap (length 2) or Chain (length ≥3).
func detectCycles(ids []geom.ModuleID, positions, target map[geom.ModuleID]geom.Cell, ms geom.MoveSet) []Record {
	// byPosition maps a currently-occupied cell to the module sitting there,
	// so we can follow target→(module at that cell) edges.
	byPosition := make(map[geom.Cell]geom.ModuleID, len(ids))
	for id, pos := range positions {
		byPosition[pos] = id
	}

	moving := func(id geom.ModuleID) bool { return ms[id] != geom.Stay }

	state := make(map[geom.ModuleID]cycleState, len(ids))
	var out []Record

	var visit func(id geom.ModuleID, path []geom.ModuleID)
	visit = func(id geom.ModuleID, path []geom.ModuleID) {
		state[id] = gray
		path = append(path, id)

		if moving(id) {
			if next, ok := byPosition[target[id]]; ok && moving(next) {
				switch state[next] {
				case white:
					visit(next, path)
				case gray:
					out = append(out, buildCycleRecord(path, next))
				case black:
					// already fully explored via another entry point; no new cycle
				}
			}
		}
		state[id] = black
	}

	for _, id := range ids {
		if state[id] == white {
			visit(id, nil)
		}
	}
	return out
}

// buildCycleRecord extracts the cycle suffix of path starting at the first
// occurrence of cycleStart, and classifies it Swap (length 2) or Chain.
func buildCycleRecord(path []geom.ModuleID, cycleStart geom.ModuleID) Record {
	start := 0
	for i, id := range path {
		if id == cycleStart {
			start = i
			break
		}
	}
	cycle := append([]geom.ModuleID{}, path[start:]...)
	kind := Chain
	if len(cycle) == 2 {
		kind = Swap
	}
	return Record{Kind: kind, Modules: cycle}
}

// detectSlideInterference flags pairs of moving, 8-adjacent modules whose
// moves are the two crossing diagonals of a shared 2×2 block: each module's
// target is 4-adjacent to the other's source. This is the conservative
// 1-cell Manhattan heuristic spec.md §9 calls out as an open question — it
// never admits a colliding pair, but may reject some moves a full sub-step
// simulation would allow.
func detectSlideInterference(ids []geom.ModuleID, positions, target map[geom.ModuleID]geom.Cell, ms geom.MoveSet) []Record {
	var out []Record
	for i := 0; i < len(ids); i++ {
		a := ids[i]
		if ms[a] == geom.Stay {
			continue
		}
		for j := i + 1; j < len(ids); j++ {
			b := ids[j]
			if ms[b] == geom.Stay {
				continue
			}
			if !positions[a].Adjacent8(positions[b]) {
				continue
			}
			if target[a].Adjacent4(positions[b]) && target[b].Adjacent4(positions[a]) {
				out = append(out, Record{Kind: SlideInterference, Modules: []geom.ModuleID{a, b}})
			}
		}
	}
	return out
}

func sortedIDs(positions map[geom.ModuleID]geom.Cell) []geom.ModuleID {
	out := make([]geom.ModuleID, 0, len(positions))
	for id := range positions {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
