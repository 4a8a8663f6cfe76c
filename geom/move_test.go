package geom

import "testing"

func TestMoveDelta(t *testing.T) {
	cases := []struct {
		m    Move
		want Cell
	}{
		{Stay, Cell{0, 0}},
		{N, Cell{0, 1}},
		{S, Cell{0, -1}},
		{E, Cell{1, 0}},
		{W, Cell{-1, 0}},
		{NE, Cell{1, 1}},
		{NW, Cell{-1, 1}},
		{SE, Cell{1, -1}},
		{SW, Cell{-1, -1}},
	}
	for _, tc := range cases {
		if got := tc.m.Delta(); got != tc.want {
			t.Errorf("%v.Delta() = %v; want %v", tc.m, got, tc.want)
		}
	}
}

func TestMoveOpposite(t *testing.T) {
	for _, m := range AllMoves {
		opp := m.Opposite()
		if opp.Opposite() != m {
			t.Errorf("%v.Opposite().Opposite() = %v; want %v", m, opp.Opposite(), m)
		}
		sum := m.Delta().Add(opp.Delta())
		if sum != (Cell{0, 0}) {
			t.Errorf("%v + %v did not cancel: %v", m, opp, sum)
		}
	}
}

func TestMoveFromDelta(t *testing.T) {
	for _, m := range append([]Move{Stay}, AllMoves[:]...) {
		got, ok := MoveFromDelta(m.Delta())
		if !ok || got != m {
			t.Errorf("MoveFromDelta(%v) = %v, %v; want %v, true", m.Delta(), got, ok, m)
		}
	}
	if _, ok := MoveFromDelta(Cell{2, 2}); ok {
		t.Errorf("MoveFromDelta({2,2}) should fail")
	}
}

func TestMoveCardinalDiagonal(t *testing.T) {
	for _, m := range CardinalMoves {
		if !m.IsCardinal() || m.IsDiagonal() {
			t.Errorf("%v should be cardinal, not diagonal", m)
		}
	}
	for _, m := range DiagonalMoves {
		if !m.IsDiagonal() || m.IsCardinal() {
			t.Errorf("%v should be diagonal, not cardinal", m)
		}
	}
	if Stay.IsCardinal() || Stay.IsDiagonal() {
		t.Errorf("STAY should be neither cardinal nor diagonal")
	}
}

func TestMoveSetIDsDeterministic(t *testing.T) {
	ms := MoveSet{5: N, 1: S, 3: E}
	got := ms.IDs()
	want := []ModuleID{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("IDs() length = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %d; want %d", i, got[i], want[i])
		}
	}
}
