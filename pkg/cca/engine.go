// Package cca implements Cluster-Cluster Aggregation on a periodic square
// lattice. Particles random-walk as rigid clusters and fuse irreversibly on
// von Neumann contact until a single fractal aggregate remains.
//
// An Engine is single-threaded: callers drive it with Step and read state
// through the accessors between ticks.
package cca

import (
	"fmt"

	icore "mad-cca/internal/core"
	"mad-cca/pkg/core"
)

// Empty is returned by Occupant for cells without a particle.
const Empty = int(icore.Empty)

// none terminates particle lists and marks "no moving cluster".
const none = -1

// von Neumann offsets: +x, +y, -x, -y.
var (
	nnx = [4]int{1, 0, -1, 0}
	nny = [4]int{0, 1, 0, -1}
)

// Point is a lattice coordinate.
type Point struct {
	X, Y int
}

// Engine owns the lattice, the particle arena and the cluster table.
type Engine struct {
	cfg Config
	l   int
	n   int
	rng *core.RNG

	site *icore.LabelGrid

	// per particle
	x, y []int
	next []int

	// per cluster, live in [0, clusters)
	first, last, mass []int
	clusters          int

	// moving tracks the id of the cluster being translated by Step; merges
	// and top-cluster relabels update it.
	moving int

	ready  bool
	merges int
	steps  int
}

// New returns an engine for an l*l lattice holding n particles, using the
// default seed. The engine must be initialized before stepping.
func New(l, n int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Size = l
	cfg.Particles = n
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine configured from cfg.
func NewWithConfig(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l, n := cfg.Size, cfg.Particles
	e := &Engine{
		cfg:    cfg,
		l:      l,
		n:      n,
		rng:    core.NewRNG(cfg.Seed),
		site:   icore.NewLabelGrid(l, l),
		x:      make([]int, n),
		y:      make([]int, n),
		next:   make([]int, n),
		first:  make([]int, n),
		last:   make([]int, n),
		mass:   make([]int, n),
		moving: none,
	}
	e.reset()
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Size returns the linear lattice dimension L.
func (e *Engine) Size() int { return e.l }

// Particles returns the particle count.
func (e *Engine) Particles() int { return e.n }

// Clusters returns the number of live clusters.
func (e *Engine) Clusters() int { return e.clusters }

// Ready reports whether the engine holds a fully initialized state.
func (e *Engine) Ready() bool { return e.ready }

// Merges returns the number of merges since the last initialization,
// including merges formed during placement.
func (e *Engine) Merges() int { return e.merges }

// Steps returns the number of Step calls since the last initialization.
func (e *Engine) Steps() int { return e.steps }

// Mass returns the particle count of cluster c. It panics if c is not a live
// cluster id.
func (e *Engine) Mass(c int) int {
	e.mustCluster(c)
	return e.mass[c]
}

// Largest returns the mass of the heaviest live cluster.
func (e *Engine) Largest() int {
	best := 0
	for c := 0; c < e.clusters; c++ {
		if e.mass[c] > best {
			best = e.mass[c]
		}
	}
	return best
}

// Members returns the particles of cluster c in list order.
func (e *Engine) Members(c int) []int {
	e.mustCluster(c)
	out := make([]int, 0, e.mass[c])
	for p := e.first[c]; p != none; p = e.next[p] {
		out = append(out, p)
	}
	return out
}

// Position returns the lattice coordinates of particle i.
func (e *Engine) Position(i int) (int, int) {
	return e.x[i], e.y[i]
}

// Occupant returns the cluster id at (x, y), or Empty. Coordinates wrap.
func (e *Engine) Occupant(x, y int) int {
	return int(e.site.At(x, y))
}

// Snapshot is a deep copy of engine state for renderers and reports.
type Snapshot struct {
	Size     int
	Clusters int
	// Sites holds cluster ids (or Empty) in row-major order, index y*Size+x.
	Sites []int32
	X, Y  []int
}

// At returns the occupant of (x, y) in the snapshot without wrapping.
func (s Snapshot) At(x, y int) int { return int(s.Sites[y*s.Size+x]) }

// Snapshot copies the current lattice and particle positions.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Size:     e.l,
		Clusters: e.clusters,
		Sites:    append([]int32(nil), e.site.Cells()...),
		X:        append([]int(nil), e.x...),
		Y:        append([]int(nil), e.y...),
	}
}

func (e *Engine) mustCluster(c int) {
	if c < 0 || c >= e.clusters {
		panic(fmt.Sprintf("cca: cluster %d outside live range [0, %d)", c, e.clusters))
	}
}
