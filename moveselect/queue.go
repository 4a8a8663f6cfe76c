package moveselect

import "github.com/katalvlaran/slidesquares/geom"

// candidateItem is one entry in the priority queue: a module id awaiting a
// decision, ordered by (conflictCount, id) so the heap always pops the
// candidate with the fewest remaining conflicts, ties broken by ascending
// module id.
type candidateItem struct {
	id            geom.ModuleID
	conflictCount int
}

// candidatePQ implements heap.Interface over candidateItem, mirroring the
// edgePQ min-heap used by prim_kruskal.Prim. Entries may be stale (their
// conflictCount superseded by a later update); callers must re-validate a
// popped item against the authoritative conflictCount map before using it.
type candidatePQ []candidateItem

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].conflictCount != pq[j].conflictCount {
		return pq[i].conflictCount < pq[j].conflictCount
	}
	return pq[i].id < pq[j].id
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidateItem)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
