package render

import (
	"math"
	"slices"

	"github.com/mattn/go-runewidth"
)

// Glyph is one text cell; a terminal row covers two raster pixel rows
type Glyph struct {
	Rune rune
	Fg   RGB
	Bold bool
	Cont bool // Second cell of a wide rune
}

type rasterState struct {
	dx, dy float64
}

// Raster is a software RGB surface with a cell-resolution text layer
type Raster struct {
	width  int
	height int
	pix    []RGB
	glyphs []Glyph

	cur   rasterState
	stack []rasterState

	// Scratch buffers reused across primitives
	xs   []float64
	quad [4]Point
}

// NewRaster creates a raster of width x height pixels
func NewRaster(width, height int) *Raster {
	r := &Raster{
		stack: make([]rasterState, 0, 4),
		xs:    make([]float64, 0, 16),
	}
	r.Resize(width, height)
	return r
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (r *Raster) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	cells := width * r.rowsFor(height)
	if cap(r.pix) < size {
		r.pix = make([]RGB, size)
	} else {
		r.pix = r.pix[:size]
	}
	if cap(r.glyphs) < cells {
		r.glyphs = make([]Glyph, cells)
	} else {
		r.glyphs = r.glyphs[:cells]
	}
	r.width, r.height = width, height
	r.Clear(RGBBlack)
}

func (r *Raster) rowsFor(height int) int {
	return (height + 1) / 2
}

// Clear fills all pixels with c, drops text and resets the transform
func (r *Raster) Clear(c RGB) {
	if len(r.pix) > 0 {
		r.pix[0] = c
		// Exponential copy
		for filled := 1; filled < len(r.pix); filled *= 2 {
			copy(r.pix[filled:], r.pix[:filled])
		}
	}
	clear(r.glyphs)
	r.cur = rasterState{}
	r.stack = r.stack[:0]
}

// Size returns pixel dimensions
func (r *Raster) Size() (int, int) {
	return r.width, r.height
}

// Rows returns the number of text rows
func (r *Raster) Rows() int {
	return r.rowsFor(r.height)
}

// Pixel returns the color at (x, y), black outside bounds
func (r *Raster) Pixel(x, y int) RGB {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return RGBBlack
	}
	return r.pix[y*r.width+x]
}

// Glyph returns the text cell at (col, row); Rune is 0 where no text was drawn
func (r *Raster) Glyph(col, row int) Glyph {
	if col < 0 || col >= r.width || row < 0 || row >= r.Rows() {
		return Glyph{}
	}
	return r.glyphs[row*r.width+col]
}

// Save pushes the current transform
func (r *Raster) Save() {
	r.stack = append(r.stack, r.cur)
}

// Restore pops the last saved transform, no-op on an empty stack
func (r *Raster) Restore() {
	if n := len(r.stack); n > 0 {
		r.cur = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

// Translate offsets subsequent drawing
func (r *Raster) Translate(dx, dy float64) {
	r.cur.dx += dx
	r.cur.dy += dy
}

// plot composites paint p onto pixel (x, y) in device space
func (r *Raster) plot(x, y int, p Paint) {
	c, a := p.At(float64(x)+0.5-r.cur.dx, float64(y)+0.5-r.cur.dy)
	if a <= 0 {
		return
	}
	idx := y*r.width + x
	r.pix[idx] = Blend(r.pix[idx], c, a)
}

// span fills pixel centers in [x0, x1) on row y, device space
func (r *Raster) span(y int, x0, x1 float64, p Paint) {
	if y < 0 || y >= r.height {
		return
	}
	start := max(int(math.Ceil(x0-0.5)), 0)
	end := min(int(math.Ceil(x1-0.5)), r.width)
	for x := start; x < end; x++ {
		r.plot(x, y, p)
	}
}

// rowRange returns device rows whose centers lie in [y0, y1)
func (r *Raster) rowRange(y0, y1 float64) (int, int) {
	return max(int(math.Ceil(y0-0.5)), 0), min(int(math.Ceil(y1-0.5)), r.height)
}

// FillRect fills an axis-aligned rectangle; negative sizes extend left or up
func (r *Raster) FillRect(x, y, w, h float64, p Paint) {
	if !p.Visible() {
		return
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	x += r.cur.dx
	y += r.cur.dy
	y0, y1 := r.rowRange(y, y+h)
	for row := y0; row < y1; row++ {
		r.span(row, x, x+w, p)
	}
}

// FillPolygon fills a simple or self-intersecting polygon with the even-odd rule
func (r *Raster) FillPolygon(pts []Point, p Paint) {
	if len(pts) < 3 || !p.Visible() {
		return
	}
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, pt := range pts {
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	dx, dy := r.cur.dx, r.cur.dy
	y0, y1 := r.rowRange(minY+dy, maxY+dy)

	for row := y0; row < y1; row++ {
		sy := float64(row) + 0.5 - dy
		r.xs = r.xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= sy && sy < b.Y) || (b.Y <= sy && sy < a.Y) {
				r.xs = append(r.xs, a.X+(sy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		slices.Sort(r.xs)
		for i := 0; i+1 < len(r.xs); i += 2 {
			r.span(row, r.xs[i]+dx, r.xs[i+1]+dx, p)
		}
	}
}

// StrokePolyline strokes connected segments with butt caps
func (r *Raster) StrokePolyline(pts []Point, closed bool, width float64, p Paint) {
	if len(pts) < 2 || width <= 0 || !p.Visible() {
		return
	}
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		r.strokeSegment(pts[i], pts[(i+1)%len(pts)], width, p)
	}
}

func (r *Raster) strokeSegment(a, b Point, width float64, p Paint) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	r.quad = [4]Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
	r.FillPolygon(r.quad[:], p)
}

// FillEllipse fills an axis-aligned ellipse
func (r *Raster) FillEllipse(cx, cy, rx, ry float64, p Paint) {
	if rx <= 0 || ry <= 0 || !p.Visible() {
		return
	}
	cx += r.cur.dx
	cy += r.cur.dy
	y0, y1 := r.rowRange(cy-ry, cy+ry)
	for row := y0; row < y1; row++ {
		t := (float64(row) + 0.5 - cy) / ry
		if t <= -1 || t >= 1 {
			continue
		}
		half := rx * math.Sqrt(1-t*t)
		r.span(row, cx-half, cx+half, p)
	}
}

// FillText writes text into the cell layer; one pixel column is one cell column
// The glyph color is composited over the average of the two pixels behind the cell
func (r *Raster) FillText(x, y float64, text string, style TextStyle, p Paint) {
	if text == "" || !p.Visible() {
		return
	}
	row := int(math.Floor((y + r.cur.dy) / 2))
	if row < 0 || row >= r.Rows() {
		return
	}
	col := int(math.Floor(alignStart(x+r.cur.dx, TextWidth(text), style.Align) + 0.5))

	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= r.width {
			c, a := p.At(float64(col)+0.5-r.cur.dx, y)
			behind := Blend(r.Pixel(col, row*2), r.Pixel(col, row*2+1), 0.5)
			r.glyphs[row*r.width+col] = Glyph{Rune: ch, Fg: Blend(behind, c, a), Bold: style.Bold}
			if w == 2 {
				r.glyphs[row*r.width+col+1] = Glyph{Cont: true}
			}
		}
		col += w
	}
}
