package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = RGB{255, 0, 0}
	blue = RGB{0, 0, 255}
)

func countColor(r *Raster, c RGB) int {
	w, h := r.Size()
	n := 0
	for y := range h {
		for x := range w {
			if r.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestRasterFillRect(t *testing.T) {
	r := NewRaster(10, 10)
	r.FillRect(2, 3, 4, 2, Solid(red))

	assert.Equal(t, 8, countColor(r, red))
	assert.Equal(t, red, r.Pixel(2, 3))
	assert.Equal(t, red, r.Pixel(5, 4))
	assert.Equal(t, RGBBlack, r.Pixel(6, 4))

	// Clipped at the edges
	r.FillRect(-5, -5, 100, 1, Solid(blue))
	assert.Equal(t, 0, countColor(r, blue))
	r.FillRect(-5, 0, 100, 1, Solid(blue))
	assert.Equal(t, 10, countColor(r, blue))
}

func TestRasterAlphaBlend(t *testing.T) {
	r := NewRaster(1, 1)
	r.FillRect(0, 0, 1, 1, SolidAlpha(RGB{200, 100, 0}, 0.5))
	assert.Equal(t, RGB{100, 50, 0}, r.Pixel(0, 0))

	r.FillRect(0, 0, 1, 1, SolidAlpha(RGBWhite, 0))
	assert.Equal(t, RGB{100, 50, 0}, r.Pixel(0, 0))
}

func TestRasterTranslateSaveRestore(t *testing.T) {
	r := NewRaster(10, 10)
	r.Save()
	r.Translate(3, 4)
	r.FillRect(0, 0, 1, 1, Solid(red))
	r.Restore()
	r.FillRect(0, 0, 1, 1, Solid(blue))

	assert.Equal(t, red, r.Pixel(3, 4))
	assert.Equal(t, blue, r.Pixel(0, 0))

	// Unbalanced restore is harmless
	r.Restore()
}

func TestRasterFillPolygon(t *testing.T) {
	r := NewRaster(10, 10)
	// Right triangle covering the lower-left half
	r.FillPolygon([]Point{{0, 0}, {10, 10}, {0, 10}}, Solid(red))

	assert.Equal(t, red, r.Pixel(0, 9))
	assert.Equal(t, RGBBlack, r.Pixel(9, 0))
	n := countColor(r, red)
	assert.InDelta(t, 50, n, 6)

	// Degenerate input is ignored
	r.FillPolygon([]Point{{0, 0}, {5, 5}}, Solid(blue))
	assert.Zero(t, countColor(r, blue))
}

func TestRasterFillEllipse(t *testing.T) {
	r := NewRaster(20, 20)
	r.FillEllipse(10, 10, 5, 5, Solid(red))

	assert.Equal(t, red, r.Pixel(10, 10))
	assert.Equal(t, RGBBlack, r.Pixel(0, 0))
	assert.Equal(t, RGBBlack, r.Pixel(15, 15))
	assert.InDelta(t, 78.5, float64(countColor(r, red)), 8)
}

func TestRasterStroke(t *testing.T) {
	r := NewRaster(10, 10)
	r.StrokePolyline([]Point{{0, 5}, {10, 5}}, false, 2, Solid(red))
	assert.Equal(t, 20, countColor(r, red))
}

func TestRasterText(t *testing.T) {
	r := NewRaster(20, 6)
	r.FillRect(0, 0, 20, 6, Solid(blue))
	r.FillText(10, 2, "AB", TextStyle{Align: AlignCenter, Bold: true}, Solid(RGBWhite))

	require.Equal(t, 3, r.Rows())
	g := r.Glyph(9, 1)
	assert.Equal(t, 'A', g.Rune)
	assert.Equal(t, RGBWhite, g.Fg)
	assert.True(t, g.Bold)
	assert.Equal(t, 'B', r.Glyph(10, 1).Rune)

	r.FillText(19, 4, "X全", TextStyle{Align: AlignRight}, Solid(red))
	assert.Equal(t, 'X', r.Glyph(16, 2).Rune)
	assert.Equal(t, '全', r.Glyph(17, 2).Rune)
	assert.True(t, r.Glyph(18, 2).Cont)

	r.Clear(RGBBlack)
	assert.Zero(t, r.Glyph(9, 1).Rune)
}

func TestRasterResizeReuses(t *testing.T) {
	r := NewRaster(40, 40)
	r.FillRect(0, 0, 40, 40, Solid(red))
	r.Resize(10, 8)

	w, h := r.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 8, h)
	assert.Zero(t, countColor(r, red))
	assert.Equal(t, 4, r.Rows())
}

func TestGradient(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0,
		Stop{Offset: 0, Color: red, Alpha: 1},
		Stop{Offset: 1, Color: blue, Alpha: 0},
	)
	c, a := g.At(0, 0)
	assert.Equal(t, red, c)
	assert.Equal(t, 1.0, a)

	c, a = g.At(100, 50)
	assert.Equal(t, blue, c)
	assert.Zero(t, a)

	// Clamped beyond the ends
	c, _ = g.At(-50, 0)
	assert.Equal(t, red, c)

	_, a = g.At(50, 0)
	assert.InDelta(t, 0.5, a, 0.01)

	radial := NewRadialGradient(0, 0, 10, 20,
		Stop{Offset: 0, Color: red, Alpha: 1},
		Stop{Offset: 1, Color: blue, Alpha: 1},
	)
	c, _ = radial.At(3, 4)
	assert.Equal(t, red, c)
	c, _ = radial.At(0, 25)
	assert.Equal(t, blue, c)
}

func TestColorHelpers(t *testing.T) {
	assert.Equal(t, RGB{0xff, 0x00, 0x6e}, Hex("#ff006e"))
	assert.Panics(t, func() { Hex("nope") })

	assert.Equal(t, red, Blend(blue, red, 1))
	assert.Equal(t, blue, Blend(blue, red, 0))
	assert.Equal(t, RGB{255, 0, 255}, Add(red, blue, 1))
	assert.Equal(t, RGBWhite, Screen(RGBWhite, red, 1))

	bright := blue.Brighten(0.5)
	assert.Greater(t, int(bright.R)+int(bright.G), 0)
	assert.Equal(t, blue, blue.Brighten(0))

	assert.Equal(t, 5, TextWidth("SPEED"))
	assert.Equal(t, 4, TextWidth("全角"))
}
