package render

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/neon-highway/parameter"
)

// skyRenderer fills the viewport with the vertical sky gradient
type skyRenderer struct {
	gradient *Gradient
	height   float64
}

func (r *skyRenderer) Render(ctx Context, s Surface) {
	if r.gradient == nil || r.height != ctx.Height {
		r.gradient = NewLinearGradient(0, 0, 0, ctx.Height*parameter.SkyGradientRatio,
			Stop{Offset: 0, Color: SkyStops[0], Alpha: 1},
			Stop{Offset: 0.3, Color: SkyStops[1], Alpha: 1},
			Stop{Offset: 0.6, Color: SkyStops[2], Alpha: 1},
			Stop{Offset: 1, Color: SkyStops[3], Alpha: 1},
		)
		r.height = ctx.Height
	}
	s.FillRect(0, 0, ctx.Width, ctx.Height, Fill(r.gradient))
}

type star struct {
	x, y  float64
	phase float64
}

// starRenderer draws a twinkling starfield above the horizon
// Positions come from a seeded hash of the star index so the field is stable per viewport size
type starRenderer struct {
	stars         []star
	width, height float64
	buf           [8]byte
}

// hashUnit maps (index, salt) to [0, 1)
func (r *starRenderer) hashUnit(i int, salt uint64) float64 {
	binary.LittleEndian.PutUint64(r.buf[:], uint64(i)<<8|salt)
	return float64(xxhash.Sum64(r.buf[:])>>11) / (1 << 53)
}

func (r *starRenderer) layout(w, h float64) {
	if r.stars != nil && r.width == w && r.height == h {
		return
	}
	r.width, r.height = w, h
	r.stars = r.stars[:0]
	for i := range parameter.StarCount {
		r.stars = append(r.stars, star{
			x:     math.Floor(r.hashUnit(i, 1) * w),
			y:     math.Floor(r.hashUnit(i, 2) * h * parameter.StarFieldRatio),
			phase: float64(i),
		})
	}
}

func (r *starRenderer) Render(ctx Context, s Surface) {
	r.layout(ctx.Width, ctx.Height)
	size := ctx.Px(2, 1)
	for _, st := range r.stars {
		twinkle := math.Sin(ctx.Time+st.phase)*0.5 + 0.5
		s.FillRect(st.x, st.y, size, size, SolidAlpha(RGBWhite, twinkle*0.8))
	}
}

// sunRenderer draws the radial sun glow and its white core
type sunRenderer struct {
	glow          *Gradient
	width, height float64
}

func (r *sunRenderer) Render(ctx Context, s Surface) {
	cx := ctx.Width / 2
	cy := ctx.Height * parameter.SunHeightRatio
	radius := ctx.Height * parameter.SunRadiusRatio

	if r.glow == nil || r.width != ctx.Width || r.height != ctx.Height {
		r.glow = NewRadialGradient(cx, cy, radius*0.3, radius*1.5,
			Stop{Offset: 0, Color: SunInner, Alpha: 1},
			Stop{Offset: 0.4, Color: SunMid, Alpha: 1},
			Stop{Offset: 0.7, Color: SunInner, Alpha: 0.3},
			Stop{Offset: 1, Color: SunInner, Alpha: 0},
		)
		r.width, r.height = ctx.Width, ctx.Height
	}

	s.FillEllipse(cx, cy, radius*1.5, radius*1.5, Fill(r.glow))
	s.FillEllipse(cx, cy, radius*0.55, radius*0.55, SolidAlpha(SunInner, 0.5))
	s.FillEllipse(cx, cy, radius*0.4, radius*0.4, Solid(SunCore))
}
