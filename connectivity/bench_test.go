package connectivity_test

import (
	"testing"

	"github.com/katalvlaran/slidesquares/connectivity"
	"github.com/katalvlaran/slidesquares/geom"
)

// buildBlock builds a w x h fully occupied rectangle, the shape moveselect
// and every phase package repeatedly re-checks for connectivity per tick.
func buildBlock(w, h int) geom.CellSet {
	cs := make(geom.CellSet, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			cs[geom.Cell{X: x, Y: y}] = struct{}{}
		}
	}
	return cs
}

// BenchmarkIsConnectedBlock measures the BFS walk's cost on a 20x20 solid
// block, the scale a Phase 3 sweep line checks against many times per tick.
func BenchmarkIsConnectedBlock(b *testing.B) {
	cells := buildBlock(20, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = connectivity.IsConnected(cells)
	}
}

// BenchmarkBackboneConnectedBlock measures the same walk via the
// non-moving-backbone entry point environment.Apply calls on every step.
func BenchmarkBackboneConnectedBlock(b *testing.B) {
	cells := buildBlock(20, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = connectivity.BackboneConnected(cells)
	}
}
