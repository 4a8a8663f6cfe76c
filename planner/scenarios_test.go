package planner_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/slidesquares/connectivity"
	"github.com/katalvlaran/slidesquares/environment"
	"github.com/katalvlaran/slidesquares/geom"
	"github.com/katalvlaran/slidesquares/phase3"
	"github.com/katalvlaran/slidesquares/planner"
)

// These scenarios are four of the six end-to-end cases spec.md §8 names
// concretely: three table cases below plus TestMetaModuleCleanScenario.
// The pipeline here always runs the full exoskeleton→scaffold→sweep→snake
// sequence (spec.md §4.10 never skips a phase, even for a goal a single
// translation would satisfy), so the literal "schedule length 1"/"2 ticks"
// figures spec.md gives describe the underlying primitive being exercised,
// not what a full Planner.ExecuteAll run produces end to end. Each case
// below instead asserts the structural invariants the scenario is meant to
// demonstrate: termination, connectivity, and count conservation.
type scenario struct {
	name      string
	startGrid string
	goal      func() geom.CellSet
	maxTicks  int
}

func scenarios() []scenario {
	return []scenario{
		{
			name:      "horizontal shift",
			startGrid: "111\n",
			goal:      func() geom.CellSet { return geom.NewCellSet(geom.Cell{X: 1, Y: 0}, geom.Cell{X: 2, Y: 0}, geom.Cell{X: 3, Y: 0}) },
			maxTicks:  500,
		},
		{
			name:      "L to line",
			startGrid: "10\n10\n11\n",
			goal: func() geom.CellSet {
				return geom.NewCellSet(geom.Cell{X: 0, Y: 0}, geom.Cell{X: 1, Y: 0}, geom.Cell{X: 2, Y: 0}, geom.Cell{X: 3, Y: 0})
			},
			maxTicks: 2000,
		},
		{
			name:      "square to bar",
			startGrid: "111\n111\n111\n",
			goal: func() geom.CellSet {
				cs := geom.CellSet{}
				for x := 0; x < 9; x++ {
					cs[geom.Cell{X: x, Y: 0}] = struct{}{}
				}
				return cs
			},
			maxTicks: 5000,
		},
	}
}

func TestEndToEndScenarios(t *testing.T) {
	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			env, err := environment.ParseGrid(strings.NewReader(sc.startGrid))
			if err != nil {
				t.Fatalf("ParseGrid() error = %v", err)
			}
			startCount := env.Len()
			goal := sc.goal()

			p, err := planner.New(env, goal, planner.WithPhase1Cap(200), planner.WithPhase4Cap(2000))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			_, result, err := p.ExecuteAll(sc.maxTicks)
			if err != nil {
				t.Fatalf("ExecuteAll() error = %v; want nil", err)
			}
			if result != planner.Done {
				t.Fatalf("ExecuteAll() result = %v; want Done", result)
			}

			if env.Len() != startCount {
				t.Fatalf("module count changed from %d to %d", startCount, env.Len())
			}
			if !connectivity.IsConnected(env.Snapshot()) {
				t.Fatalf("final occupied set is not connected")
			}
			if !cellSetEqual(env.Snapshot(), goal) {
				t.Fatalf("final occupied set = %v; want goal %v", env.Snapshot(), goal)
			}
		})
	}
}

func cellSetEqual(a, b geom.CellSet) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if !b.Has(c) {
			return false
		}
	}
	return true
}

// TestMetaModuleCleanScenario exercises spec.md §8 scenario 5 directly
// against the phase3 primitives, since it describes a single MetaModule's
// Clean script rather than a full planner run.
func TestMetaModuleCleanScenario(t *testing.T) {
	positions := map[geom.ModuleID]geom.Cell{}
	id := geom.ModuleID(1)
	for x := 4; x <= 6; x++ {
		for y := 4; y <= 6; y++ {
			positions[id] = geom.Cell{X: x, Y: y}
			id++
		}
	}
	// West strip: (3,6) and (3,5) empty, (3,4) occupied, the scenario
	// spec.md §8 describes for Clean's non-trivial, shortest-row branch.
	positions[id] = geom.Cell{X: 3, Y: 4}

	center := geom.Cell{X: 5, Y: 5}
	for tick := 0; tick < 2; tick++ {
		occ := geom.CellSet{}
		idOf := map[geom.Cell]geom.ModuleID{}
		for modID, c := range positions {
			occ[c] = struct{}{}
			idOf[c] = modID
		}
		resolve := func(c geom.Cell) (geom.ModuleID, bool) {
			mid, ok := idOf[c]
			return mid, ok
		}

		mm := phase3.NewMetaModule(occ, center)
		ms, done := phase3.Clean(occ, mm, resolve)
		if done {
			break
		}
		for modID, mv := range ms {
			positions[modID] = positions[modID].Add(mv.Delta())
		}
	}

	final := geom.CellSet{}
	for _, c := range positions {
		final[c] = struct{}{}
	}
	if final.Has(center) {
		t.Fatalf("center %v still occupied after cleaning", center)
	}
	if !connectivity.IsConnected(final) {
		t.Fatalf("occupied set disconnected after cleaning")
	}
}
