//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from cell data.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	mode    Mode
	palette []color.RGBA
}

// NewGridPainter allocates a binary painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// UsePalette switches the painter to palette mode.
func (gp *GridPainter) UsePalette(palette []color.RGBA) {
	gp.mode = ModePalette
	gp.palette = palette
}

// Blit uploads the provided cells into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	switch gp.mode {
	case ModePalette:
		fillPaletteRGBA(gp.buf, cells, gp.palette)
	default:
		fillBinaryRGBA(gp.buf, cells, on, off)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
