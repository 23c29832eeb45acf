//go:build ebiten

package ui

import (
	"image/color"

	"github.com/gamecubate/cellular-landscaper/pkg/core"
	"github.com/gamecubate/cellular-landscaper/pkg/sims/landscape"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type birthProvider interface {
	LastBirths() []landscape.Point
}

// Overlay highlights the cells born in the latest generation. B toggles it.
type Overlay struct {
	births birthProvider
	scale  int
	show   bool
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance. Sims that do not report
// births get an overlay that never draws.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{scale: scale}
	o.births, _ = sim.(birthProvider)
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.RGBA{R: 0x7c, G: 0xd6, B: 0x5a, A: 0xc0})
	return o
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.show = !o.show
	}
}

// Draw paints a marker over every newborn cell.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.births == nil {
		return
	}
	s := float64(o.scale)
	for _, p := range o.births.LastBirths() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(float64(p.Col)*s, float64(p.Row)*s)
		screen.DrawImage(o.pixel, op)
	}
}
