package connectivity_test

import (
	"testing"

	"github.com/katalvlaran/slidesquares/connectivity"
	"github.com/katalvlaran/slidesquares/geom"
)

func TestIsConnected(t *testing.T) {
	line := geom.NewCellSet(geom.Cell{0, 0}, geom.Cell{1, 0}, geom.Cell{2, 0})
	if !connectivity.IsConnected(line) {
		t.Errorf("horizontal line should be connected")
	}
	split := geom.NewCellSet(geom.Cell{0, 0}, geom.Cell{5, 5})
	if connectivity.IsConnected(split) {
		t.Errorf("two far-apart cells should not be connected")
	}
	if !connectivity.IsConnected(geom.CellSet{}) {
		t.Errorf("empty set should be vacuously connected")
	}
	if !connectivity.IsConnected(geom.NewCellSet(geom.Cell{3, 3})) {
		t.Errorf("single cell should be connected")
	}
}

func TestCanMoveCell(t *testing.T) {
	occ := geom.NewCellSet(geom.Cell{0, 0}, geom.Cell{1, 0}, geom.Cell{2, 0})
	// Moving the end cell (2,0) diagonally to (1,1) keeps it 4-adjacent to (1,0).
	if !connectivity.CanMoveCell(occ, geom.Cell{2, 0}, geom.Cell{1, 1}) {
		t.Errorf("expected end cell to be movable to (1,1)")
	}
	// Moving the middle cell away would disconnect the two ends.
	if connectivity.CanMoveCell(occ, geom.Cell{1, 0}, geom.Cell{1, 5}) {
		t.Errorf("moving the bridging cell far away should disconnect the shape")
	}
	// Source must be occupied.
	if connectivity.CanMoveCell(occ, geom.Cell{9, 9}, geom.Cell{9, 10}) {
		t.Errorf("moving an unoccupied cell should fail")
	}
	// Target must be empty.
	if connectivity.CanMoveCell(occ, geom.Cell{0, 0}, geom.Cell{1, 0}) {
		t.Errorf("moving onto an occupied cell should fail")
	}
}

func TestGetSafeMoves(t *testing.T) {
	occ := geom.NewCellSet(geom.Cell{0, 0}, geom.Cell{1, 0}, geom.Cell{2, 0})
	cands := []connectivity.Candidate{
		{ID: 1, From: geom.Cell{2, 0}, To: geom.Cell{1, 1}},
		{ID: 2, From: geom.Cell{1, 0}, To: geom.Cell{1, 5}},
	}
	safe := connectivity.GetSafeMoves(occ, cands)
	if len(safe) != 1 || safe[0].ID != 1 {
		t.Errorf("GetSafeMoves = %+v; want only candidate 1", safe)
	}
}

func TestBackboneConnected(t *testing.T) {
	if !connectivity.BackboneConnected(geom.CellSet{}) {
		t.Errorf("empty backbone (all modules moved) should be vacuously connected")
	}
	backbone := geom.NewCellSet(geom.Cell{0, 0}, geom.Cell{5, 5})
	if connectivity.BackboneConnected(backbone) {
		t.Errorf("disconnected backbone should fail")
	}
}
