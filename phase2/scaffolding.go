package phase2

import (
	"sort"

	"github.com/katalvlaran/slidesquares/geom"
)

// BuildScaffolding computes the three-column sweep-line skeleton for count
// modules, east-anchored at eastX: the rightmost column (eastX) fully
// occupied; the middle column (eastX-1) occupied everywhere except the
// separator rows where (y-minY)%3 == 1; the column west of middle (eastX-2)
// fully occupied. minY and maxY bound the band, with height extended up to
// the next multiple of 3. If the band holds fewer than count cells, whole
// columns are added westward (eastX-3, eastX-4, ...); if it holds more, the
// westernmost added columns are trimmed first.
func BuildScaffolding(eastX, minY, maxY, count int) geom.CellSet {
	height := maxY - minY + 1
	if rem := height % 3; rem != 0 {
		height += 3 - rem
	}
	maxY = minY + height - 1

	var columns [][]geom.Cell
	// Rightmost column: every row.
	var right []geom.Cell
	for y := minY; y <= maxY; y++ {
		right = append(right, geom.Cell{X: eastX, Y: y})
	}
	columns = append(columns, right)

	// Middle column: every row except separator rows.
	var middle []geom.Cell
	for y := minY; y <= maxY; y++ {
		if (y-minY)%3 == 1 {
			continue
		}
		middle = append(middle, geom.Cell{X: eastX - 1, Y: y})
	}
	columns = append(columns, middle)

	// Column west of middle: every row.
	var west []geom.Cell
	for y := minY; y <= maxY; y++ {
		west = append(west, geom.Cell{X: eastX - 2, Y: y})
	}
	columns = append(columns, west)

	total := len(right) + len(middle) + len(west)
	nextX := eastX - 3
	for total < count {
		var col []geom.Cell
		for y := minY; y <= maxY; y++ {
			col = append(col, geom.Cell{X: nextX, Y: y})
		}
		columns = append(columns, col)
		total += len(col)
		nextX--
	}

	target := geom.NewCellSet()
	// Add columns from east to west until count is reached, trimming the
	// last (westernmost) partially-needed column.
	added := 0
	for _, col := range columns {
		if added >= count {
			break
		}
		room := count - added
		if room >= len(col) {
			for _, c := range col {
				target[c] = struct{}{}
			}
			added += len(col)
			continue
		}
		// Trim this column: keep the cells closest to the vertical center,
		// preserving a contiguous run so the band stays connected.
		sorted := append([]geom.Cell(nil), col...)
		sort.Slice(sorted, func(i, j int) bool {
			ci := abs(sorted[i].Y - (minY+maxY)/2)
			cj := abs(sorted[j].Y - (minY+maxY)/2)
			return ci < cj
		})
		for i := 0; i < room; i++ {
			target[sorted[i]] = struct{}{}
		}
		added += room
	}

	return target
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
