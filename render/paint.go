package render

import "math"

// gradientSteps is the resolution of a gradient lookup table
const gradientSteps = 256

// Stop is one gradient color stop
type Stop struct {
	Offset float64 // Position in [0, 1]
	Color  RGB
	Alpha  float64
}

// GradientKind selects the gradient geometry
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// Gradient is a linear or radial color ramp in surface coordinates
// Stops are resolved once into a lookup table at construction
type Gradient struct {
	Kind   GradientKind
	X0, Y0 float64 // Linear start, radial center
	X1, Y1 float64 // Linear end
	R0, R1 float64 // Radial inner and outer radius

	lut [gradientSteps]struct {
		c RGB
		a float64
	}
}

// NewLinearGradient creates a gradient along (x0,y0) -> (x1,y1)
func NewLinearGradient(x0, y0, x1, y1 float64, stops ...Stop) *Gradient {
	g := &Gradient{Kind: GradientLinear, X0: x0, Y0: y0, X1: x1, Y1: y1}
	g.build(stops)
	return g
}

// NewRadialGradient creates a concentric gradient between radii r0 and r1 around (cx, cy)
func NewRadialGradient(cx, cy, r0, r1 float64, stops ...Stop) *Gradient {
	g := &Gradient{Kind: GradientRadial, X0: cx, Y0: cy, R0: r0, R1: r1}
	g.build(stops)
	return g
}

// Along repositions a linear gradient keeping its stops
func (g *Gradient) Along(x0, y0, x1, y1 float64) *Gradient {
	g.X0, g.Y0, g.X1, g.Y1 = x0, y0, x1, y1
	return g
}

// build interpolates stops in RGB space, matching canvas gradient semantics
func (g *Gradient) build(stops []Stop) {
	if len(stops) == 0 {
		return
	}
	for i := range g.lut {
		t := float64(i) / (gradientSteps - 1)

		lo, hi := stops[0], stops[len(stops)-1]
		for j := 1; j < len(stops); j++ {
			if t <= stops[j].Offset {
				lo, hi = stops[j-1], stops[j]
				break
			}
		}

		var f float64
		switch {
		case t <= lo.Offset:
			f = 0
		case t >= hi.Offset:
			f = 1
		case hi.Offset > lo.Offset:
			f = (t - lo.Offset) / (hi.Offset - lo.Offset)
		}

		c := lo.Color.Colorful().BlendRgb(hi.Color.Colorful(), f)
		g.lut[i].c = FromColorful(c)
		g.lut[i].a = lo.Alpha + (hi.Alpha-lo.Alpha)*f
	}
}

// position returns the normalized ramp position of a point
func (g *Gradient) position(x, y float64) float64 {
	switch g.Kind {
	case GradientRadial:
		d := math.Hypot(x-g.X0, y-g.Y0)
		if g.R1 <= g.R0 {
			return 1
		}
		return (d - g.R0) / (g.R1 - g.R0)
	default:
		dx, dy := g.X1-g.X0, g.Y1-g.Y0
		l2 := dx*dx + dy*dy
		if l2 == 0 {
			return 0
		}
		return ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	}
}

// At samples color and alpha at a surface point; positions outside the ramp clamp to the end stops
func (g *Gradient) At(x, y float64) (RGB, float64) {
	t := g.position(x, y)
	idx := int(t*(gradientSteps-1) + 0.5)
	idx = max(0, min(gradientSteps-1, idx))
	e := g.lut[idx]
	return e.c, e.a
}

// Paint is a fill or stroke source: a solid color or a gradient, with an overall opacity
type Paint struct {
	Color    RGB
	Gradient *Gradient // Overrides Color when set
	Alpha    float64
}

// Solid returns an opaque color paint
func Solid(c RGB) Paint {
	return Paint{Color: c, Alpha: 1}
}

// SolidAlpha returns a translucent color paint
func SolidAlpha(c RGB, alpha float64) Paint {
	return Paint{Color: c, Alpha: alpha}
}

// Fill returns an opaque gradient paint
func Fill(g *Gradient) Paint {
	return Paint{Gradient: g, Alpha: 1}
}

// WithAlpha returns p with its opacity multiplied by a
func (p Paint) WithAlpha(a float64) Paint {
	p.Alpha *= a
	return p
}

// At resolves the paint at a surface point
func (p Paint) At(x, y float64) (RGB, float64) {
	if p.Gradient == nil {
		return p.Color, p.Alpha
	}
	c, a := p.Gradient.At(x, y)
	return c, a * p.Alpha
}

// Visible reports whether the paint can change a pixel
func (p Paint) Visible() bool {
	return p.Alpha > 0
}

// Mix blends two colors in Lab space, used for text gradients where perceptual evenness matters
func Mix(a, b RGB, t float64) RGB {
	return FromColorful(a.Colorful().BlendLab(b.Colorful(), clampUnit(t)))
}

func clampUnit(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

