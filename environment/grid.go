package environment

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/slidesquares/geom"
)

// ParseGrid reads the ASCII grid configuration format from spec.md §6: one
// line per row, top-to-bottom, '0' for empty and '1' for an occupied cell.
// Blank lines are skipped wherever they appear. File row file_y maps to grid coordinate
// y = rows-1-file_y (the grid is mathematical, y increasing upward); column
// x maps directly to file column. Any other character, an empty grid, or a
// non-4-connected configuration fails with ErrInvalidConfig.
func ParseGrid(r io.Reader, opts ...Option) (*Environment, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("environment: %w: %v", ErrInvalidConfig, err)
	}
	if len(rows) == 0 {
		return nil, ErrInvalidConfig
	}

	var cells []geom.Cell
	numRows := len(rows)
	for fileY, row := range rows {
		y := numRows - 1 - fileY
		for x, ch := range row {
			switch ch {
			case '1':
				cells = append(cells, geom.Cell{X: x, Y: y})
			case '0':
				// empty cell, no module
			default:
				return nil, fmt.Errorf("environment: %w: unexpected character %q", ErrInvalidConfig, ch)
			}
		}
	}

	return FromCells(cells, opts...)
}

// RenderGrid writes env's current occupancy in the same ASCII grid format
// ParseGrid reads, using the tightest bounding box around the occupied
// cells. An empty Environment renders as a single blank line.
func RenderGrid(w io.Writer, env *Environment) error {
	_, _, minY, maxY, ok := env.Bounds()
	if !ok {
		_, err := io.WriteString(w, "\n")
		return err
	}

	matrix := env.Matrix()
	height := len(matrix)
	bw := bufio.NewWriter(w)
	for fileY := 0; fileY < height; fileY++ {
		y := maxY - fileY // file row 0 is the top, grid y = maxY
		row := matrix[y-minY]
		line := make([]byte, len(row))
		for i, occ := range row {
			if occ {
				line[i] = '1'
			} else {
				line[i] = '0'
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
