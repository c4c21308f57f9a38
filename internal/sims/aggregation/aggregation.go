package aggregation

import (
	"image"

	"mad-cca/internal/core"
	"mad-cca/pkg/cca"
)

// Sim exposes a cca.Engine to the viewer. It stops advancing once every
// particle belongs to one cluster.
type Sim struct {
	cfg     cca.Config
	engine  *cca.Engine
	display []uint8
	err     error

	dimSteps int
	dim      float64
	dimErr   error
}

// New returns a Sim for the provided configuration. The particle count is
// clamped to the lattice capacity. The engine is initialized from cfg.Seed.
func New(cfg cca.Config) (*Sim, error) {
	cfg = clampConfig(cfg)
	engine, err := cca.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg, engine: engine, display: make([]uint8, cfg.Size*cfg.Size), dimSteps: -1}
	s.Reset(cfg.Seed)
	return s, s.err
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "cca" }

// Size reports the lattice dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Cells exposes the current display buffer.
func (s *Sim) Cells() []uint8 { return s.display }

// Engine exposes the underlying engine for read-only inspection.
func (s *Sim) Engine() *cca.Engine { return s.engine }

// Err returns the error from the last Reset, if any.
func (s *Sim) Err() error { return s.err }

// Done reports whether aggregation has finished or the engine failed to
// initialize.
func (s *Sim) Done() bool {
	return !s.engine.Ready() || s.engine.Clusters() <= 1
}

// Reset re-initializes the lattice with fresh random placement.
func (s *Sim) Reset(seed int64) {
	s.cfg.Seed = seed
	s.err = s.engine.Reset(seed)
	s.dimSteps = -1
	s.rebuildDisplay()
}

// Step advances one random-walk tick unless aggregation is complete.
func (s *Sim) Step() {
	if s.Done() {
		return
	}
	s.engine.Step()
	s.rebuildDisplay()
}

// BoxSizes lists the tile sizes the box-counting overlay can show.
func (s *Sim) BoxSizes() []int {
	var sizes []int
	for size := 1; size < s.cfg.Size; size *= 2 {
		sizes = append(sizes, size)
	}
	return sizes
}

// BoxTiles returns the occupied size*size tiles in lattice coordinates.
func (s *Sim) BoxTiles(size int) []image.Rectangle {
	if !s.engine.Ready() {
		return nil
	}
	origins := s.engine.OccupiedTiles(size)
	rects := make([]image.Rectangle, len(origins))
	for i, p := range origins {
		rects[i] = image.Rect(p.X, p.Y, p.X+size, p.Y+size)
	}
	return rects
}

// Dimension returns the box-counting estimate for the current lattice,
// cached until the next step.
func (s *Sim) Dimension() (float64, error) {
	if s.dimSteps == s.engine.Steps() {
		return s.dim, s.dimErr
	}
	s.dim, s.dimErr = cca.FractalDimension(s.engine.BoxCount())
	s.dimSteps = s.engine.Steps()
	return s.dim, s.dimErr
}

// reconfigure swaps in a new engine, keeping the seed.
func (s *Sim) reconfigure(cfg cca.Config) bool {
	cfg = clampConfig(cfg)
	engine, err := cca.NewWithConfig(cfg)
	if err != nil {
		return false
	}
	s.cfg = cfg
	s.engine = engine
	s.display = make([]uint8, cfg.Size*cfg.Size)
	s.Reset(cfg.Seed)
	return true
}

func init() {
	core.Register("cca", func(cfg map[string]string) core.Sim {
		s, err := New(FromMap(cfg))
		if s == nil {
			// the clamped defaults always validate
			s, _ = New(cca.DefaultConfig())
			s.err = err
		}
		return s
	})
}
