package geom

import "testing"

func TestCellAdjacency(t *testing.T) {
	c := Cell{0, 0}
	if !c.Adjacent4(Cell{1, 0}) {
		t.Errorf("(1,0) should be 4-adjacent to origin")
	}
	if c.Adjacent4(Cell{1, 1}) {
		t.Errorf("(1,1) should not be 4-adjacent to origin")
	}
	if !c.Adjacent8(Cell{1, 1}) {
		t.Errorf("(1,1) should be 8-adjacent to origin")
	}
	if c.Adjacent8(c) {
		t.Errorf("a cell should not be 8-adjacent to itself")
	}
}

func TestBoundingBox(t *testing.T) {
	cells := NewCellSet(Cell{1, 1}, Cell{3, 5}, Cell{-2, 0})
	minX, maxX, minY, maxY, ok := BoundingBox(cells)
	if !ok {
		t.Fatalf("expected ok=true for non-empty set")
	}
	if minX != -2 || maxX != 3 || minY != 0 || maxY != 5 {
		t.Errorf("BoundingBox = (%d,%d,%d,%d); want (-2,3,0,5)", minX, maxX, minY, maxY)
	}
	if _, _, _, _, ok := BoundingBox(CellSet{}); ok {
		t.Errorf("expected ok=false for empty set")
	}
}

func TestCellSetSliceDeterministic(t *testing.T) {
	s := NewCellSet(Cell{2, 0}, Cell{0, 0}, Cell{1, 0}, Cell{0, 1})
	got := s.Slice()
	want := []Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}}
	if len(got) != len(want) {
		t.Fatalf("Slice() length = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}
