//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/gamecubate/cellular-landscaper/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const helpLine = "MOUSE: RESET     1-5: SPEED     SPACE: PAUSE/PLAY"

const lineHeight = 14

// HUD draws the key help and, when toggled with H, the sim's parameters.
type HUD struct {
	sim      core.Sim
	showInfo bool
	panel    *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	h.panel = ebiten.NewImage(1, 1)
	h.panel.Fill(color.RGBA{A: 0xb0})
	return h
}

// Update handles HUD key toggles.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showInfo = !h.showInfo
	}
}

// Draw renders the help line centered at the top and the optional panel.
func (h *HUD) Draw(screen *ebiten.Image, paused bool, interval time.Duration) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	w := screen.Bounds().Dx()
	help := helpLine
	if w < len(help)*7 {
		help = "CLICK/1-5/SPACE"
	}
	x := (w - len(help)*7) / 2
	text.Draw(screen, help, face, x+1, 13, color.Black)
	text.Draw(screen, help, face, x, 12, color.White)

	if !h.showInfo {
		return
	}
	lines := h.infoLines(paused, interval)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(len(lines)*lineHeight+8))
	op.GeoM.Translate(0, 18)
	screen.DrawImage(h.panel, op)
	for i, line := range lines {
		text.Draw(screen, line, face, 6, 34+i*lineHeight, color.White)
	}
}

func (h *HUD) infoLines(paused bool, interval time.Duration) []string {
	state := "playing"
	if paused {
		state = "paused"
	}
	lines := []string{fmt.Sprintf("%s  %s  every %s", h.sim.Name(), state, interval)}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return lines
	}
	for _, group := range provider.Parameters().Groups {
		parts := make([]string, 0, len(group.Params))
		for _, p := range group.Params {
			parts = append(parts, p.Label+"="+p.Value)
		}
		lines = append(lines, group.Name+": "+strings.Join(parts, " "))
	}
	return lines
}
