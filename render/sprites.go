package render

import (
	"math"

	"github.com/lixenwraith/neon-highway/engine"
	"github.com/lixenwraith/neon-highway/parameter"
)

// circleSegments is the polygon resolution of stroked circles
const circleSegments = 20

// outline holds reusable point buffers for stroked shapes
type outline struct {
	circle [circleSegments]Point
	poly   [6]Point
	line   [2]Point
}

// ring returns circle points around (cx, cy)
func (o *outline) ring(cx, cy, radius float64) []Point {
	for i := range o.circle {
		a := float64(i) / circleSegments * 2 * math.Pi
		o.circle[i] = Point{cx + radius*math.Cos(a), cy + radius*math.Sin(a)}
	}
	return o.circle[:]
}

// pulse returns a sine oscillation in [0.4, 1.0] at rate radians per second
func pulse(t, rate float64) float64 {
	return math.Sin(t*rate)*0.3 + 0.7
}

// spriteRenderer draws obstacles and pickups, far to near, only inside the vertical viewport
type spriteRenderer struct {
	outline
	body *Gradient
}

func (r *spriteRenderer) Render(ctx Context, s Surface) {
	for i := range ctx.Frame.Sprites {
		sp := &ctx.Frame.Sprites[i]
		if !ctx.InViewportY(sp.P.Y) {
			continue
		}
		switch sp.Kind {
		case engine.KindPothole:
			r.pothole(s, sp)
		case engine.KindDebris:
			r.debris(ctx, s, sp)
		case engine.KindCar, engine.KindSlowCar:
			r.car(s, sp)
		case engine.KindShield:
			r.shield(ctx, s, sp)
		}
	}
}

func (r *spriteRenderer) pothole(s Surface, sp *engine.Sprite) {
	size := max(parameter.ObstacleSize*sp.P.Scale, 1)
	rim := max(size*0.1, 0.5)
	s.FillEllipse(sp.P.X, sp.P.Y, size*0.8+rim, size*0.4+rim, Solid(PotholeStroke))
	s.FillEllipse(sp.P.X, sp.P.Y, size*0.8, size*0.4, Solid(PotholeFill))
}

func (r *spriteRenderer) debris(ctx Context, s Surface, sp *engine.Sprite) {
	size := max(parameter.ObstacleSize*sp.P.Scale, 1)
	angle := ctx.Frame.Camera.TrackDepth * 0.01
	sin, cos := math.Sincos(angle)
	half := size / 2
	corners := [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}}
	for i, c := range corners {
		r.poly[i] = Point{sp.P.X + c[0]*cos - c[1]*sin, sp.P.Y + c[0]*sin + c[1]*cos}
	}
	sq := r.poly[:4]
	s.FillPolygon(sq, Solid(DebrisFill))
	if w := size * 0.1; w >= 0.5 {
		s.StrokePolyline(sq, true, w, Solid(DebrisStroke))
	}
}

func (r *spriteRenderer) car(s Surface, sp *engine.Sprite) {
	size := max(parameter.ObstacleSize*sp.P.Scale, 1)
	w, h := size*0.6, size*1.2
	x, y := sp.P.X, sp.P.Y

	if r.body == nil {
		r.body = NewLinearGradient(0, 0, 1, 0,
			Stop{Offset: 0, Color: CarEdge, Alpha: 1},
			Stop{Offset: 0.5, Color: CarCenter, Alpha: 1},
			Stop{Offset: 1, Color: CarEdge, Alpha: 1},
		)
	}
	s.FillRect(x-w/2, y-h/2, w, h, Fill(r.body.Along(x-w/2, y, x+w/2, y)))
	s.FillRect(x-w*0.35, y-h*0.3, w*0.7, h*0.25, Solid(CarWindow))
	s.FillRect(x-w*0.4, y+h*0.3, w*0.2, h*0.1, Solid(TailLight))
	s.FillRect(x+w*0.2, y+h*0.3, w*0.2, h*0.1, Solid(TailLight))
}

func (r *spriteRenderer) shield(ctx Context, s Surface, sp *engine.Sprite) {
	size := max(parameter.PickupSize*sp.P.Scale, 1)
	p := pulse(ctx.Time, 5)
	x, y := sp.P.X, sp.P.Y

	s.FillEllipse(x, y, size, size, SolidAlpha(ShieldCyan, 0.2*p))
	s.StrokePolyline(r.ring(x, y, size), true, max(size*0.12, 0.5), SolidAlpha(ShieldCyan, p))

	r.poly = [6]Point{
		{x, y - size*0.6},
		{x - size*0.5, y},
		{x - size*0.3, y + size*0.5},
		{x, y + size*0.6},
		{x + size*0.3, y + size*0.5},
		{x + size*0.5, y},
	}
	s.StrokePolyline(r.poly[:], true, max(size*0.08, 0.5), SolidAlpha(RGBWhite, p))
}

// playerRenderer draws the player car with shield and oversteer overlays
type playerRenderer struct {
	outline
	beam [4]Point
	body *Gradient
}

func (r *playerRenderer) Render(ctx Context, s Surface) {
	f := ctx.Frame
	if f.State == engine.StateMenu {
		return
	}
	pl := &f.Player
	x, y := pl.P.X, pl.P.Y
	w := max(parameter.PlayerCarWidth*pl.P.Scale, 2)
	h := max(parameter.PlayerCarHeight*pl.P.Scale, 3)

	if pl.Shield {
		p := pulse(ctx.Time, 10)
		s.FillEllipse(x, y, w*1.2, w*1.2, SolidAlpha(ShieldCyan, 0.1*p))
		s.StrokePolyline(r.ring(x, y, w*1.2), true, ctx.Px(5, 1), SolidAlpha(ShieldCyan, p))
	}

	if pl.Oversteer {
		mark := SolidAlpha(RGBWhite, 0.4)
		drift := pl.Velocity * 2 * ctx.Scale
		length := parameter.TireMarkLength * ctx.Scale
		for _, side := range [2]float64{-1, 1} {
			wx := x + side*w/2
			r.line = [2]Point{{wx, y + h/2}, {wx - drift, y + h/2 + length}}
			s.StrokePolyline(r.line[:], false, ctx.Px(5, 1), mark)
		}
	}

	if r.body == nil {
		r.body = NewLinearGradient(0, 0, 1, 0,
			Stop{Offset: 0, Color: PlayerEdge, Alpha: 1},
			Stop{Offset: 0.5, Color: PlayerCenter, Alpha: 1},
			Stop{Offset: 1, Color: PlayerEdge, Alpha: 1},
		)
	}
	s.FillRect(x-w/2, y-h/2, w, h, Fill(r.body.Along(x-w/2, y, x+w/2, y)))
	s.FillRect(x-w*0.4, y-h*0.35, w*0.8, h*0.3, Solid(Windshield))
	s.FillRect(x-w*0.4, y-h*0.48, w*0.25, h*0.08, Solid(Headlight))
	s.FillRect(x+w*0.15, y-h*0.48, w*0.25, h*0.08, Solid(Headlight))

	r.beam = [4]Point{
		{x - w*0.25, y - h*0.48},
		{x - w*0.5, y - ctx.Height},
		{x + w*0.5, y - ctx.Height},
		{x + w*0.25, y - h*0.48},
	}
	s.FillPolygon(r.beam[:], SolidAlpha(RGBWhite, parameter.HeadlightBeamAlpha))
}
