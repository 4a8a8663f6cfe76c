package connectivity

import (
	"github.com/katalvlaran/slidesquares/geom"
)

// IsConnected reports whether cells forms a single 4-connected component.
// An empty set is vacuously connected. Complexity: O(n).
func IsConnected(cells geom.CellSet) bool {
	if len(cells) <= 1 {
		return true
	}
	visited := make(geom.CellSet, len(cells))
	var start geom.Cell
	for c := range cells {
		start = c
		break
	}
	queue := []geom.Cell{start}
	visited[start] = struct{}{}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors4() {
			if !cells.Has(n) || visited.Has(n) {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(visited) == len(cells)
}

// CanMoveCell reports whether a single module may tentatively slide from
// "from" to "to" within occupied: from must be occupied, to must be empty
// and 8-adjacent to from (the nine Move deltas admit diagonals), and the
// resulting cell set (occupied with "from" replaced by "to") must remain
// 4-connected.
func CanMoveCell(occupied geom.CellSet, from, to geom.Cell) bool {
	if !occupied.Has(from) || occupied.Has(to) {
		return false
	}
	if from != to && !from.Adjacent8(to) {
		return false
	}
	trial := occupied.Clone()
	delete(trial, from)
	trial[to] = struct{}{}
	return IsConnected(trial)
}

// Candidate is a single-module move proposal, used by GetSafeMoves.
type Candidate struct {
	ID   geom.ModuleID
	From geom.Cell
	To   geom.Cell
}

// GetSafeMoves filters candidates down to those individually admissible
// under CanMoveCell, evaluated against the unmodified occupied set (not
// cumulatively against each other) — per spec.md §4.3, this is a pure
// per-candidate filter, not a sequential planner.
func GetSafeMoves(occupied geom.CellSet, candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if CanMoveCell(occupied, cand.From, cand.To) {
			out = append(out, cand)
		}
	}
	return out
}

// BackboneConnected reports whether nonMoving — the cells of modules that do
// not move in the step under consideration — forms a single 4-connected
// component, unless nonMoving is empty (every module moved), in which case
// the backbone constraint is vacuously satisfied.
func BackboneConnected(nonMoving geom.CellSet) bool {
	if len(nonMoving) == 0 {
		return true
	}
	return IsConnected(nonMoving)
}
