package render

import (
	"github.com/lixenwraith/neon-highway/parameter"
)

// propRenderer draws roadside palm trees, far to near
type propRenderer struct {
	frond [2]Point
}

func (r *propRenderer) Render(ctx Context, s Surface) {
	for _, p := range ctx.Frame.Props {
		if p.Opacity <= 0 {
			continue
		}
		h := parameter.PropHeight * p.P.Scale
		w := max(parameter.PropWidth*p.P.Scale, 1)
		top := p.P.Y - h
		s.FillRect(p.P.X-w/2, top, w, h, SolidAlpha(PalmTrunk, p.Opacity))

		reach := h * 40 / 150
		if p.Left {
			reach = -reach
		}
		frond := SolidAlpha(PalmFrond, p.Opacity)
		for j := range 5 {
			fj := float64(j)
			r.frond[0] = Point{p.P.X, top + fj*h*20/150}
			r.frond[1] = Point{p.P.X + reach, top + (fj*20+30)*h/150}
			s.StrokePolyline(r.frond[:], false, max(w/3, 1), frond)
		}
	}
}

// roadRenderer fills the visible road quads with lane markers and edge glow
type roadRenderer struct {
	quad [4]Point
	edge [2]Point
}

func (r *roadRenderer) Render(ctx Context, s Surface) {
	glowWidth := ctx.Px(4, 1)
	overlap := ctx.Px(5, 0)

	for i := range ctx.Frame.Quads {
		q := &ctx.Frame.Quads[i]

		r.quad = [4]Point{
			{q.Near.LeftX, q.Near.Y},
			{q.Far.LeftX, q.Far.Y},
			{q.Far.RightX, q.Far.Y},
			{q.Near.RightX, q.Near.Y},
		}
		s.FillPolygon(r.quad[:], Solid(RoadColors[int(q.Color)%len(RoadColors)]))

		if q.MarkerAlpha > 0 {
			marker := SolidAlpha(LaneMarker, q.MarkerAlpha)
			for _, m := range q.Markers {
				s.FillRect(m.X, m.Y, m.W, m.H+overlap, marker)
			}
		}

		if q.GlowAlpha > 0 {
			glow := SolidAlpha(EdgeGlow, q.GlowAlpha)
			r.edge = [2]Point{{q.Near.LeftX, q.Near.Y}, {q.Far.LeftX, q.Far.Y}}
			s.StrokePolyline(r.edge[:], false, glowWidth, glow)
			r.edge = [2]Point{{q.Near.RightX, q.Near.Y}, {q.Far.RightX, q.Far.Y}}
			s.StrokePolyline(r.edge[:], false, glowWidth, glow)
		}
	}
}
