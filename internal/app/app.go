//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/gamecubate/cellular-landscaper/internal/render"
	"github.com/gamecubate/cellular-landscaper/internal/ui"
	"github.com/gamecubate/cellular-landscaper/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type levelProvider interface {
	MaxLevel() int
}

var speedKeys = [len(StepIntervals)]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, interval time.Duration) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	if lp, ok := sim.(levelProvider); ok {
		gp.UsePalette(render.TerrainPalette(lp.MaxLevel()))
	}
	return &Game{
		sim:      sim,
		painter:  gp,
		hud:      ui.NewHUD(sim),
		overlay:  ui.NewOverlay(sim, scale),
		timer:    core.NewFixedStep(interval),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation when the step
// timer fires.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range speedKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.timer.SetInterval(StepIntervals[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.timer.Pause()
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
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.Reset(time.Now().UnixNano())
		g.paused = false
		g.timer.Pause()
	}

	g.hud.Update()
	g.overlay.Update()

	if g.tickOnce || (!g.paused && g.timer.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.paused, g.timer.Interval())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
