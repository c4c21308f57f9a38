package core

import (
	"testing"
	"time"
)

func TestLabelGridWrapAndOccupancy(t *testing.T) {
	g := NewLabelGrid(4, 3)
	if got := g.Occupied(); got != 0 {
		t.Fatalf("new grid should be empty, %d cells occupied", got)
	}
	g.Set(-1, -1, 7)
	if got := g.At(3, 2); got != 7 {
		t.Fatalf("Set(-1,-1) should land on (3,2), got %d", got)
	}
	if got := g.Cells()[g.Index(3, 2)]; got != 7 {
		t.Fatalf("row-major index mismatch, got %d", got)
	}
	g.Set(4, 3, 2)
	if got := g.At(0, 0); got != 2 {
		t.Fatalf("Set(4,3) should land on (0,0), got %d", got)
	}
	if got := g.Occupied(); got != 2 {
		t.Fatalf("expected 2 occupied cells, got %d", got)
	}
	g.Clear()
	if g.At(0, 0) != Empty || g.Occupied() != 0 {
		t.Fatal("Clear should reset every cell to Empty")
	}
}

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if got := fs.Due(); got != 1 {
		t.Fatalf("first call should release one tick, got %d", got)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := fs.Due(); got != 0 {
		t.Fatalf("half a tick elapsed, got %d", got)
	}
	clock = clock.Add(260 * time.Millisecond)
	if got := fs.Due(); got != 3 {
		t.Fatalf("310ms at 10 TPS should release 3 ticks, got %d", got)
	}

	fs.SetTPS(1_000_000)
	clock = clock.Add(time.Hour)
	if got := fs.Due(); got != MaxCatchUp {
		t.Fatalf("expected catch-up cap %d, got %d", MaxCatchUp, got)
	}
	if fs.TPS() != 1_000_000 {
		t.Fatalf("TPS = %d", fs.TPS())
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 10, Max: 100}
	if got := c.Clamp(5); got != 10 {
		t.Fatalf("Clamp(5) = %d", got)
	}
	if got := c.Clamp(500); got != 100 {
		t.Fatalf("Clamp(500) = %d", got)
	}
	if got := c.Clamp(50); got != 50 {
		t.Fatalf("Clamp(50) = %d", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "l", Value: "50"}}},
		{Name: "B", Params: []Parameter{{Key: "n", Value: "500"}}},
	}}
	p, ok := s.Lookup("n")
	if !ok || p.Value != "500" {
		t.Fatalf("Lookup(n) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("Lookup of a missing key should fail")
	}
}
