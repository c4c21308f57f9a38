package cca

import (
	"errors"
	"testing"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name string
		l, n int
		want error
	}{
		{"over capacity", 3, 10, ErrCapacity},
		{"zero size", 0, 1, ErrInvalidSize},
		{"no particles", 4, 0, ErrInvalidParticles},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := New(tc.l, tc.n)
			if !errors.Is(err, tc.want) {
				t.Fatalf("New(%d, %d) error = %v, expected %v", tc.l, tc.n, err, tc.want)
			}
			if e != nil {
				t.Fatal("expected nil engine on error")
			}
		})
	}

	if _, err := NewWithConfig(Config{Size: 4, Particles: 2, PlacementAttempts: -1}); !errors.Is(err, ErrInvalidAttempts) {
		t.Fatalf("expected ErrInvalidAttempts, got %v", err)
	}
}

func TestNewAcceptsFullLattice(t *testing.T) {
	e, err := New(4, 16)
	if err != nil {
		t.Fatalf("a full lattice is within capacity: %v", err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if e.Clusters() != 1 {
		t.Fatalf("a full lattice must fuse into one cluster, got %d", e.Clusters())
	}
	if err := e.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestInitializePlacesEveryParticle(t *testing.T) {
	e, err := NewWithConfig(Config{Size: 30, Particles: 200, Seed: 21})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	if !e.Ready() {
		t.Fatal("engine should be ready after Initialize")
	}
	if err := e.Verify(); err != nil {
		t.Fatal(err)
	}
	if e.Particles()-e.Merges() != e.Clusters() {
		t.Fatalf("each placement merge removes one cluster: particles=%d merges=%d clusters=%d",
			e.Particles(), e.Merges(), e.Clusters())
	}
	for i := 0; i < e.Particles(); i++ {
		x, y := e.Position(i)
		if x < 0 || x >= 30 || y < 0 || y >= 30 {
			t.Fatalf("particle %d at (%d,%d) outside lattice", i, x, y)
		}
		if e.Occupant(x, y) == Empty {
			t.Fatalf("particle %d cell (%d,%d) reads empty", i, x, y)
		}
	}
}

func TestInitializeAtValidation(t *testing.T) {
	e := mustEngine(t, 4, 2)

	if err := e.InitializeAt([]Point{{0, 0}}); !errors.Is(err, ErrPointCount) {
		t.Fatalf("expected ErrPointCount, got %v", err)
	}
	if err := e.InitializeAt([]Point{{0, 0}, {4, 0}}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := e.InitializeAt([]Point{{1, 1}, {1, 1}}); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	if e.Ready() {
		t.Fatal("failed InitializeAt must leave the engine unready")
	}

	mustInitializeAt(t, e, Point{0, 0}, Point{2, 2})
	if e.Clusters() != 2 {
		t.Fatalf("expected 2 clusters, got %d", e.Clusters())
	}
	if err := e.InitializeAt([]Point{{0, 0}, {-1, 0}}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if e.Clusters() != 2 || e.Occupant(2, 2) != 1 {
		t.Fatal("rejected InitializeAt must not disturb the existing state")
	}
}

func TestInitializeAtMergesAcrossBoundary(t *testing.T) {
	e := mustEngine(t, 5, 2)
	mustInitializeAt(t, e, Point{0, 2}, Point{4, 2})
	if e.Clusters() != 1 {
		t.Fatalf("cells on opposite edges are periodic neighbours, got %d clusters", e.Clusters())
	}
}

func TestOccupantWraps(t *testing.T) {
	e := mustEngine(t, 6, 1)
	mustInitializeAt(t, e, Point{5, 5})
	if got := e.Occupant(-1, -1); got != 0 {
		t.Fatalf("Occupant(-1,-1) = %d, expected 0", got)
	}
	if got := e.Occupant(11, 17); got != 0 {
		t.Fatalf("Occupant(11,17) = %d, expected 0", got)
	}
	if got := e.Occupant(0, 0); got != Empty {
		t.Fatalf("Occupant(0,0) = %d, expected Empty", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := mustEngine(t, 4, 1)
	mustInitializeAt(t, e, Point{1, 2})
	snap := e.Snapshot()
	if snap.At(1, 2) != 0 {
		t.Fatalf("snapshot cell (1,2) = %d, expected 0", snap.At(1, 2))
	}
	snap.Sites[snap.Size*2+1] = 7
	snap.X[0] = 3
	if e.Occupant(1, 2) != 0 {
		t.Fatal("mutating the snapshot changed the lattice")
	}
	if x, _ := e.Position(0); x != 1 {
		t.Fatal("mutating the snapshot changed particle positions")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"l": "64", "n": "900", "seed": "-4", "attempts": "10", "bogus": "1"})
	if c.Size != 64 || c.Particles != 900 || c.Seed != -4 || c.PlacementAttempts != 10 {
		t.Fatalf("unexpected config %+v", c)
	}
	d := FromMap(map[string]string{"l": "zero", "n": "-3"})
	if d != DefaultConfig() {
		t.Fatalf("invalid values must keep defaults, got %+v", d)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield defaults")
	}
}
