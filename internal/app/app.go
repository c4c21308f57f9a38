//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"mad-cca/internal/core"
	"mad-cca/internal/render"
	"mad-cca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FixedStep

	onColor  color.Color
	offColor color.Color
	mono     bool

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		clock:    core.NewFixedStep(cfg.TPS),
		onColor:  color.White,
		offColor: color.RGBA{R: 12, G: 12, B: 16, A: 255},
		mono:     cfg.Mono,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.mono = !g.mono
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.clock.SetTPS(nextTPS(g.clock.TPS(), 1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.clock.SetTPS(nextTPS(g.clock.TPS(), -1))
	}

	g.overlay.Update()
	if g.hud.Update(g.sim.Size().W * g.scale) {
		g.resize()
	}

	due := g.clock.Due()
	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		for i := 0; i < due && !g.finished(); i++ {
			g.sim.Step()
		}
	}
	g.hud.SetStatus(g.status())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var palette []color.RGBA
	if p, ok := g.sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.mono, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

// resize follows a HUD-driven lattice rebuild.
func (g *Game) resize() {
	size := g.sim.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
		ebiten.SetWindowSize(size.W*g.scale+g.hudWidth, size.H*g.scale)
	}
	g.overlay.SetSim(g.sim)
}

func (g *Game) finished() bool {
	f, ok := g.sim.(core.Finisher)
	return ok && f.Done()
}

func (g *Game) status() string {
	if f, ok := g.sim.(core.Failer); ok && f.Err() != nil {
		return f.Err().Error()
	}
	parts := fmt.Sprintf("%d tps", g.clock.TPS())
	if g.paused {
		parts += ", paused"
	}
	if g.finished() {
		parts += ", done"
	}
	if label := g.overlay.Label(); label != "" {
		parts += ", " + label
	}
	return parts
}
