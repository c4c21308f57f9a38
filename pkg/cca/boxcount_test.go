package cca

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func fullLattice(t *testing.T, l int) *Engine {
	t.Helper()
	e := mustEngine(t, l, l*l)
	points := make([]Point, 0, l*l)
	for y := 0; y < l; y++ {
		for x := 0; x < l; x++ {
			points = append(points, Point{x, y})
		}
	}
	mustInitializeAt(t, e, points...)
	return e
}

func TestBoxCountFullLattice(t *testing.T) {
	e := fullLattice(t, 8)
	counts := e.BoxCount()

	if got := counts.Sizes(); !slices.Equal(got, []int{1, 2, 4}) {
		t.Fatalf("expected sizes [1 2 4], got %v", got)
	}
	if counts[1] != 64 {
		t.Fatalf("size 1: expected 64 occupied tiles, got %d", counts[1])
	}
	if counts[2] != 16 {
		t.Fatalf("size 2: expected 16 occupied tiles, got %d", counts[2])
	}
	if counts[4] != 4 {
		t.Fatalf("size L/2: expected 4 occupied tiles, got %d", counts[4])
	}

	dim, err := FractalDimension(counts)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(dim-2) > 1e-9 {
		t.Fatalf("a filled plane has dimension 2, got %f", dim)
	}
}

func TestBoxCountSkipsRaggedEdge(t *testing.T) {
	e := mustEngine(t, 6, 2)
	mustInitializeAt(t, e, Point{5, 5}, Point{1, 1})
	counts := e.BoxCount()

	if got := counts.Sizes(); !slices.Equal(got, []int{1, 2, 4}) {
		t.Fatalf("expected sizes [1 2 4], got %v", got)
	}
	if counts[1] != 2 {
		t.Fatalf("size 1: expected 2, got %d", counts[1])
	}
	// (5,5) lies outside the single whole 4x4 tile.
	if counts[4] != 1 {
		t.Fatalf("size 4: expected 1, got %d", counts[4])
	}
}

func TestOccupiedTilesMatchBoxCount(t *testing.T) {
	e, err := NewWithConfig(Config{Size: 16, Particles: 30, Seed: 8})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	counts := e.BoxCount()
	for _, s := range counts.Sizes() {
		if got := len(e.OccupiedTiles(s)); got != counts[s] {
			t.Fatalf("size %d: %d tiles listed, BoxCount says %d", s, got, counts[s])
		}
	}
	if e.OccupiedTiles(0) != nil || e.OccupiedTiles(17) != nil {
		t.Fatal("out-of-range tile sizes should yield nil")
	}

	single := mustEngine(t, 8, 1)
	mustInitializeAt(t, single, Point{5, 2})
	if got := single.OccupiedTiles(4); !slices.Equal(got, []Point{{4, 0}}) {
		t.Fatalf("expected tile origin (4,0), got %v", got)
	}
}

func TestBoxCountSingleParticle(t *testing.T) {
	e := mustEngine(t, 16, 1)
	mustInitializeAt(t, e, Point{3, 9})
	counts := e.BoxCount()
	for _, s := range counts.Sizes() {
		if counts[s] != 1 {
			t.Fatalf("size %d: expected 1 tile, got %d", s, counts[s])
		}
	}
	dim, err := FractalDimension(counts)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(dim) > 1e-9 {
		t.Fatalf("a point has dimension 0, got %f", dim)
	}
}

func TestBoxCountIsReadOnly(t *testing.T) {
	e, err := NewWithConfig(Config{Size: 16, Particles: 40, Seed: 4})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	before := e.Snapshot()
	e.BoxCount()
	after := e.Snapshot()
	if !slices.Equal(before.Sites, after.Sites) || before.Clusters != after.Clusters {
		t.Fatal("BoxCount mutated engine state")
	}
}

func TestFractalDimensionNeedsTwoSizes(t *testing.T) {
	if _, err := FractalDimension(BoxCounts{1: 5}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	if _, err := FractalDimension(BoxCounts{1: 5, 2: 0}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("empty sizes must be ignored, got %v", err)
	}
	e := mustEngine(t, 1, 1)
	mustInitializeAt(t, e, Point{0, 0})
	if counts := e.BoxCount(); len(counts) != 0 {
		t.Fatalf("a 1x1 lattice has no box sizes below L, got %v", counts)
	}
}
