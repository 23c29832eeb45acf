package render

import "image/color"

// Mode selects how cell values are turned into pixels.
type Mode int

const (
	// ModeBinary paints zero as off and anything else as on.
	ModeBinary Mode = iota
	// ModePalette indexes a palette with the cell value.
	ModePalette
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onRGBA := toRGBA(on)
	offRGBA := toRGBA(off)
	for i, c := range cells {
		col := offRGBA
		if c != 0 {
			col = onRGBA
		}
		putRGBA(buf[i*4:], col)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last entry; an empty palette clears buf
// to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		putRGBA(buf[i*4:], palette[min(int(c), last)])
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func putRGBA(dst []byte, c color.RGBA) {
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
	dst[3] = c.A
}

// TerrainPalette returns levels+1 colors ramping from bare ground to peak.
func TerrainPalette(levels int) []color.RGBA {
	if levels < 0 {
		levels = 0
	}
	low := color.RGBA{R: 0x2b, G: 0x24, B: 0x1c, A: 0xff}
	high := color.RGBA{R: 0xf2, G: 0xe6, B: 0xc8, A: 0xff}
	out := make([]color.RGBA, levels+1)
	for i := range out {
		t := 1.0
		if levels > 0 {
			t = float64(i) / float64(levels)
		}
		out[i] = color.RGBA{
			R: lerp(low.R, high.R, t),
			G: lerp(low.G, high.G, t),
			B: lerp(low.B, high.B, t),
			A: 0xff,
		}
	}
	return out
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
