package environment_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/slidesquares/environment"
	"github.com/katalvlaran/slidesquares/geom"
)

func TestFromCellsRejectsEmpty(t *testing.T) {
	if _, err := environment.FromCells(nil); err != environment.ErrInvalidConfig {
		t.Fatalf("FromCells(nil) error = %v; want ErrInvalidConfig", err)
	}
}

func TestFromCellsRejectsDisconnected(t *testing.T) {
	cells := []geom.Cell{{0, 0}, {5, 5}}
	if _, err := environment.FromCells(cells); err != environment.ErrInvalidConfig {
		t.Fatalf("FromCells(disconnected) error = %v; want ErrInvalidConfig", err)
	}
}

func TestFromCellsInvariants(t *testing.T) {
	cells := []geom.Cell{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	env, err := environment.FromCells(cells)
	if err != nil {
		t.Fatalf("FromCells() error = %v", err)
	}
	if !env.IsConnected() {
		t.Fatalf("IsConnected() = false; want true (I1)")
	}
	if env.Len() != len(cells) {
		t.Fatalf("Len() = %d; want %d (I3)", env.Len(), len(cells))
	}
	snap := env.Snapshot()
	if len(snap) != len(cells) {
		t.Fatalf("Snapshot() has %d cells; want %d (I2: no shared cell)", len(snap), len(cells))
	}
	for _, c := range cells {
		if !snap.Has(c) {
			t.Fatalf("Snapshot() missing cell %s", c)
		}
	}
}

func TestApplyCommitsAllOrNothing(t *testing.T) {
	// A 1x3 column: moving the top two modules east leaves the bottom one
	// detached. That MoveSet must be rejected in full, leaving the
	// environment untouched.
	cells := []geom.Cell{{0, 0}, {0, 1}, {0, 2}}
	env, err := environment.FromCells(cells)
	if err != nil {
		t.Fatalf("FromCells() error = %v", err)
	}
	before := env.Snapshot()

	ids := sortedIDs(env)
	ms := geom.MoveSet{ids[2]: geom.E, ids[1]: geom.E}
	if err := env.Apply(ms); err == nil {
		t.Fatalf("Apply() = nil error; want rejection of a connectivity-breaking combined move")
	}

	after := env.Snapshot()
	if len(before) != len(after) {
		t.Fatalf("Apply() mutated occupancy on a rejected step")
	}
	for c := range before {
		if !after.Has(c) {
			t.Fatalf("Apply() mutated occupancy on a rejected step: missing %s", c)
		}
	}
}

func TestApplyMovesAllParticipants(t *testing.T) {
	cells := []geom.Cell{{0, 0}, {0, 1}, {0, 2}}
	env, err := environment.FromCells(cells)
	if err != nil {
		t.Fatalf("FromCells() error = %v", err)
	}
	ids := sortedIDs(env)
	ms := geom.MoveSet{ids[0]: geom.E, ids[1]: geom.E, ids[2]: geom.E}
	if err := env.Apply(ms); err != nil {
		t.Fatalf("Apply() error = %v; want success for a uniform slide", err)
	}
	want := geom.NewCellSet(geom.Cell{1, 0}, geom.Cell{1, 1}, geom.Cell{1, 2})
	got := env.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("Snapshot() = %v; want %v", got, want)
	}
	for c := range want {
		if !got.Has(c) {
			t.Fatalf("Snapshot() = %v; want %v", got, want)
		}
	}
}

func TestApplyRejectsBackboneSplitEvenWhenWholeSetStaysConnected(t *testing.T) {
	// X . X      a bridging module at (1,0) holds two otherwise-separate
	// X X X  ->  columns together. Sliding it north to (1,1) keeps the
	//            whole five-cell set connected (through its new position),
	// but splits the four stationary modules into two disconnected pairs.
	cells := []geom.Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}}
	env, err := environment.FromCells(cells)
	if err != nil {
		t.Fatalf("FromCells() error = %v", err)
	}
	before := env.Snapshot()

	var bridge geom.ModuleID
	for id, c := range env.Positions() {
		if c == (geom.Cell{X: 1, Y: 0}) {
			bridge = id
		}
	}
	ms := geom.MoveSet{bridge: geom.N}
	if err := env.Apply(ms); err == nil {
		t.Fatalf("Apply() = nil error; want rejection for a backbone-splitting move")
	}

	after := env.Snapshot()
	if len(before) != len(after) {
		t.Fatalf("Apply() mutated occupancy on a rejected step")
	}
	for c := range before {
		if !after.Has(c) {
			t.Fatalf("Apply() mutated occupancy on a rejected step: missing %s", c)
		}
	}
}

// sortedIDs returns env's module ids sorted ascending, useful for tests that
// need a stable handle on "the first/second/third module".
func sortedIDs(env *environment.Environment) []geom.ModuleID {
	positions := env.Positions()
	ids := make([]geom.ModuleID, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
