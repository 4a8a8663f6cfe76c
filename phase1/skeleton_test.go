package phase1_test

import (
	"testing"

	"github.com/katalvlaran/slidesquares/connectivity"
	"github.com/katalvlaran/slidesquares/geom"
	"github.com/katalvlaran/slidesquares/phase1"
)

func TestComputeSkeletonConnected(t *testing.T) {
	occupied := geom.NewCellSet(
		geom.Cell{0, 0}, geom.Cell{1, 0}, geom.Cell{2, 0},
		geom.Cell{0, 1}, geom.Cell{1, 1}, geom.Cell{2, 1},
	)
	skeleton := phase1.ComputeSkeleton(occupied)
	if !connectivity.IsConnected(skeleton) {
		t.Fatalf("ComputeSkeleton() = %v; want a connected skeleton", skeleton)
	}
	for c := range skeleton {
		if !occupied.Has(c) {
			t.Fatalf("ComputeSkeleton() included cell %s not in occupied", c)
		}
	}
}

func TestComputeExoskeletonSuperset(t *testing.T) {
	occupied := geom.NewCellSet(geom.Cell{0, 0}, geom.Cell{1, 0})
	skeleton := phase1.ComputeSkeleton(occupied)
	exo := phase1.ComputeExoskeleton(occupied, skeleton)
	for c := range skeleton {
		if !exo.Has(c) {
			t.Fatalf("ComputeExoskeleton() dropped skeleton cell %s", c)
		}
	}
	if len(exo) <= len(skeleton) {
		t.Fatalf("ComputeExoskeleton() = %d cells; want strictly more than skeleton's %d", len(exo), len(skeleton))
	}
}

func TestBuildTargetMatchesCount(t *testing.T) {
	occupied := geom.NewCellSet(
		geom.Cell{0, 0}, geom.Cell{1, 0}, geom.Cell{2, 0},
		geom.Cell{0, 1}, geom.Cell{1, 1}, geom.Cell{2, 1},
	)
	target := phase1.BuildTarget(occupied, len(occupied))
	if len(target) < len(occupied) {
		t.Fatalf("BuildTarget() = %d cells; want at least %d", len(target), len(occupied))
	}
	if !connectivity.IsConnected(target) {
		t.Fatalf("BuildTarget() = %v; want a connected target", target)
	}
}
