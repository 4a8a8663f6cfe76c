package phase4_test

import (
	"testing"

	"github.com/katalvlaran/slidesquares/geom"
	"github.com/katalvlaran/slidesquares/phase4"
)

func TestSurplusExcludesGoalCells(t *testing.T) {
	goal := geom.CellSet{{X: 0, Y: 0}: {}}
	positions := map[geom.ModuleID]geom.Cell{1: {X: 0, Y: 0}, 2: {X: 5, Y: 5}}
	surplus := phase4.Surplus(positions, goal)
	if _, ok := surplus[1]; ok {
		t.Fatalf("module 1 at a goal cell should not be surplus")
	}
	if _, ok := surplus[2]; !ok {
		t.Fatalf("module 2 off the goal set should be surplus")
	}
}

func TestBuildSnakesGroupsByBand(t *testing.T) {
	surplus := map[geom.ModuleID]geom.Cell{
		1: {X: 5, Y: 0}, 2: {X: 4, Y: 1}, 3: {X: 3, Y: 2}, // band 0 (y 0-2)
		4: {X: 5, Y: 3}, // band 1 (y 3-5)
	}
	snakes := phase4.BuildSnakes(surplus, geom.S)
	if len(snakes) != 2 {
		t.Fatalf("BuildSnakes() produced %d snakes; want 2", len(snakes))
	}
	total := 0
	for _, s := range snakes {
		total += 1 + len(s.Segments)
	}
	if total != 4 {
		t.Fatalf("total modules across snakes = %d; want 4", total)
	}
}

func TestBuildSnakesHeadIsEastmost(t *testing.T) {
	surplus := map[geom.ModuleID]geom.Cell{
		1: {X: 3, Y: 0}, 2: {X: 7, Y: 1}, 3: {X: 5, Y: 0},
	}
	snakes := phase4.BuildSnakes(surplus, geom.S)
	if len(snakes) != 1 {
		t.Fatalf("BuildSnakes() produced %d snakes; want 1", len(snakes))
	}
	if snakes[0].Head.ModuleID != 2 {
		t.Fatalf("head id = %d; want 2 (the eastmost cell)", snakes[0].Head.ModuleID)
	}
}
