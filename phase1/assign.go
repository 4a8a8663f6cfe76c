package phase1

import (
	"sort"

	"github.com/katalvlaran/slidesquares/geom"
)

// AssignTargets pairs each module id in positions with the unassigned cell
// of target closest to it by Manhattan distance, breaking ties by ascending
// module id and then by (Y, X) of the candidate cell. This is the greedy
// bipartite assignment spec.md §4.5 and §4.6 both specify ("assign each
// module to its nearest target cell, sorted by ascending module id").
func AssignTargets(positions map[geom.ModuleID]geom.Cell, target geom.CellSet) map[geom.ModuleID]geom.Cell {
	ids := make([]geom.ModuleID, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	remaining := target.Clone()
	assignment := make(map[geom.ModuleID]geom.Cell, len(ids))
	for _, id := range ids {
		if len(remaining) == 0 {
			break
		}
		best, bestDist := geom.Cell{}, -1
		for _, c := range remaining.Slice() {
			d := positions[id].Manhattan(c)
			if bestDist == -1 || d < bestDist {
				best, bestDist = c, d
			}
		}
		assignment[id] = best
		delete(remaining, best)
	}
	return assignment
}

// ProposeMoves builds a MoveSet proposing, for every module with a strictly
// shorter cardinal step toward its assignment, the single cardinal or
// diagonal move that most reduces its Manhattan distance to target. Modules
// already at their assigned cell, or with no move that helps, are omitted
// (equivalent to an implicit Stay).
func ProposeMoves(positions map[geom.ModuleID]geom.Cell, assignment map[geom.ModuleID]geom.Cell) geom.MoveSet {
	ms := make(geom.MoveSet)
	for id, target := range assignment {
		cur := positions[id]
		if cur == target {
			continue
		}
		bestMove, bestDist := geom.Stay, cur.Manhattan(target)
		for _, m := range geom.AllMoves {
			next := cur.Add(m.Delta())
			if d := next.Manhattan(target); d < bestDist {
				bestMove, bestDist = m, d
			}
		}
		if bestMove != geom.Stay {
			ms[id] = bestMove
		}
	}
	return ms
}

// TotalDistance sums the Manhattan distance from every module's current
// position to its assigned target cell, the Progress metric spec.md §8
// requires to strictly decrease on every accepted step.
func TotalDistance(positions map[geom.ModuleID]geom.Cell, assignment map[geom.ModuleID]geom.Cell) int {
	total := 0
	for id, target := range assignment {
		total += positions[id].Manhattan(target)
	}
	return total
}
