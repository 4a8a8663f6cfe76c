package moveselect

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/slidesquares/collision"
	"github.com/katalvlaran/slidesquares/connectivity"
	"github.com/katalvlaran/slidesquares/geom"
)

// Select implements spec.md §4.4's Move selector: from proposed, a maximal
// collision-free, connectivity-preserving MoveSet is chosen deterministically.
//
// positions must hold the current cell of every module id appearing in
// proposed; occupied must be the current occupied cell set of the whole
// ensemble (not just the proposing modules). opts are forwarded to
// collision.Detect, so callers may pass collision.WithAllowCycles().
func Select(positions map[geom.ModuleID]geom.Cell, occupied geom.CellSet, proposed geom.MoveSet, opts ...collision.Option) geom.MoveSet {
	candidateIDs := nonStayIDs(proposed)
	if len(candidateIDs) == 0 {
		return geom.MoveSet{}
	}

	conflicts := buildConflictGraph(positions, proposed, opts...)

	remaining := make(map[geom.ModuleID]bool, len(candidateIDs))
	conflictCount := make(map[geom.ModuleID]int, len(candidateIDs))
	for _, id := range candidateIDs {
		remaining[id] = true
		conflictCount[id] = len(conflicts[id])
	}

	pq := make(candidatePQ, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		pq = append(pq, candidateItem{id: id, conflictCount: conflictCount[id]})
	}
	heap.Init(&pq)

	selected := geom.MoveSet{}
	current := occupied.Clone()

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(candidateItem)
		if !remaining[item.id] {
			continue // already decided
		}
		if item.conflictCount != conflictCount[item.id] {
			continue // stale entry; a fresher one is already queued
		}

		id := item.id
		src := positions[id]
		tgt := src.Add(proposed[id].Delta())
		trial := current.Clone()
		delete(trial, src)
		trial[tgt] = struct{}{}

		if connectivity.IsConnected(trial) {
			selected[id] = proposed[id]
			current = trial
			delete(remaining, id)
			for other := range conflicts[id] {
				delete(remaining, other) // excluded: conflicts with an accepted move
			}
			continue
		}

		// Rejected: drop id, and lighten the load on its still-remaining
		// conflict partners so they get a fair shot lower in the heap.
		delete(remaining, id)
		for other := range conflicts[id] {
			if !remaining[other] {
				continue
			}
			conflictCount[other]--
			heap.Push(&pq, candidateItem{id: other, conflictCount: conflictCount[other]})
		}
	}

	if len(selected) > 0 {
		return selected
	}

	// Fallback: single-module scan in ascending module-id order.
	sort.Slice(candidateIDs, func(i, j int) bool { return candidateIDs[i] < candidateIDs[j] })
	for _, id := range candidateIDs {
		src := positions[id]
		tgt := src.Add(proposed[id].Delta())
		if connectivity.CanMoveCell(occupied, src, tgt) {
			return geom.MoveSet{id: proposed[id]}
		}
	}
	return geom.MoveSet{}
}

func nonStayIDs(ms geom.MoveSet) []geom.ModuleID {
	out := make([]geom.ModuleID, 0, len(ms))
	for id, m := range ms {
		if m != geom.Stay {
			out = append(out, id)
		}
	}
	return out
}

// buildConflictGraph converts collision.Detect's records into an undirected
// adjacency map over proposed's moving module ids.
func buildConflictGraph(positions map[geom.ModuleID]geom.Cell, proposed geom.MoveSet, opts ...collision.Option) map[geom.ModuleID]map[geom.ModuleID]bool {
	records := collision.Detect(positions, proposed, opts...)
	adj := make(map[geom.ModuleID]map[geom.ModuleID]bool)
	addEdge := func(a, b geom.ModuleID) {
		if a == b {
			return
		}
		if adj[a] == nil {
			adj[a] = make(map[geom.ModuleID]bool)
		}
		if adj[b] == nil {
			adj[b] = make(map[geom.ModuleID]bool)
		}
		adj[a][b] = true
		adj[b][a] = true
	}
	for _, rec := range records {
		for i := 0; i < len(rec.Modules); i++ {
			for j := i + 1; j < len(rec.Modules); j++ {
				addEdge(rec.Modules[i], rec.Modules[j])
			}
		}
	}
	return adj
}
