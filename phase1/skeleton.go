package phase1

import "github.com/katalvlaran/slidesquares/geom"

// ComputeSkeleton returns a thin, connected subset of occupied that still
// touches every occupied cell's neighborhood: a BFS spanning tree over
// occupied, thinned to cells on every other x-column plus cells with no
// east/west neighbor in occupied, plus the tree's root, reconnected along the
// spanning tree's root paths so the result stays one piece.
func ComputeSkeleton(occupied geom.CellSet) geom.CellSet {
	if len(occupied) == 0 {
		return geom.NewCellSet()
	}

	parent := spanningTree(occupied)

	// The root (lowest (Y,X), see spanningTree) has no parent entry; keep it
	// so every root-path walk below ends on a spine cell.
	spine := geom.NewCellSet(occupied.Slice()[0])
	for c := range parent {
		if c.X%2 == 0 {
			spine[c] = struct{}{}
		}
	}
	for c := range parent {
		if spine.Has(c) {
			continue
		}
		east, west := geom.Cell{X: c.X + 1, Y: c.Y}, geom.Cell{X: c.X - 1, Y: c.Y}
		if !occupied.Has(east) && !occupied.Has(west) {
			spine[c] = struct{}{}
		}
	}

	skeleton := spine.Clone()
	for c := range spine {
		walker := c
		for {
			p, ok := parent[walker]
			if !ok {
				break
			}
			skeleton[walker] = struct{}{}
			if spine.Has(p) {
				break
			}
			walker = p
		}
	}
	return skeleton
}

// ComputeExoskeleton thickens skeleton by one 4-neighbor cell in every
// direction. Every such neighbor is added whether it is occupied or empty;
// the occupied argument is not consulted.
func ComputeExoskeleton(occupied, skeleton geom.CellSet) geom.CellSet {
	exo := skeleton.Clone()
	for c := range skeleton {
		for _, n := range c.Neighbors4() {
			exo[n] = struct{}{}
		}
	}
	return exo
}

// spanningTree returns a parent map of a BFS spanning tree over occupied
// rooted at an arbitrary (but deterministic, lowest-(Y,X)) cell.
func spanningTree(occupied geom.CellSet) map[geom.Cell]geom.Cell {
	ordered := occupied.Slice()
	root := ordered[0]

	parent := map[geom.Cell]geom.Cell{}
	visited := geom.NewCellSet(root)
	queue := []geom.Cell{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors4() {
			if !occupied.Has(n) || visited.Has(n) {
				continue
			}
			visited[n] = struct{}{}
			parent[n] = cur
			queue = append(queue, n)
		}
	}
	return parent
}
