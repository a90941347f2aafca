package render

import (
	"strconv"
	"sync/atomic"

	"github.com/lixenwraith/neon-highway/engine"
	"github.com/lixenwraith/neon-highway/parameter"
	"github.com/lixenwraith/neon-highway/vmath"
)

// Text rows are two pixels tall
const rowPx = 2

// rowY returns the pixel y of a text row
func rowY(row int) float64 {
	return float64(row * rowPx)
}

// hudRenderer draws score, distance, shield and speed; screen-fixed, never shaken
type hudRenderer struct {
	buf []byte
}

func (r *hudRenderer) Render(ctx Context, s Surface) {
	f := ctx.Frame
	if f.State != engine.StatePlaying {
		return
	}
	right := ctx.Width - parameter.HUDMarginX
	row := parameter.HUDMarginY

	r.buf = strconv.AppendInt(r.buf[:0], f.HUD.Score, 10)
	s.FillText(right, rowY(row), string(r.buf), TextStyle{Align: AlignRight, Bold: true}, Solid(HUDText))

	r.buf = strconv.AppendInt(r.buf[:0], vmath.FloorInt64(f.HUD.Distance), 10)
	r.buf = append(r.buf, 'm')
	s.FillText(right, rowY(row+1), string(r.buf), TextStyle{Align: AlignRight}, Solid(HUDText))

	if f.HUD.Shield {
		s.FillText(right, rowY(row+2), "🛡 SHIELD", TextStyle{Align: AlignRight, Bold: true}, Solid(HUDShield))
	}

	r.buf = append(r.buf[:0], "SPEED: "...)
	r.buf = strconv.AppendInt(r.buf, vmath.FloorInt64(f.HUD.Speed), 10)
	bottom := int(ctx.Height)/rowPx - 1 - parameter.HUDMarginY
	s.FillText(parameter.HUDMarginX, rowY(bottom), string(r.buf), TextStyle{}, Solid(HUDSpeed))

	if f.Paused {
		mid := int(ctx.Height) / rowPx / 2
		s.FillText(ctx.Width/2, rowY(mid), "PAUSED", TextStyle{Align: AlignCenter, Bold: true}, Solid(Cyan))
		s.FillText(ctx.Width/2, rowY(mid+1), "P to resume", TextStyle{Align: AlignCenter}, Solid(HUDMuted))
	}
}

// debugRenderer lists registry metrics in the top-left corner
// Visibility may be toggled from any goroutine
type debugRenderer struct {
	visible atomic.Bool
	buf     []byte
}

func (r *debugRenderer) IsVisible() bool {
	return r.visible.Load()
}

func (r *debugRenderer) Render(ctx Context, s Surface) {
	row := parameter.HUDMarginY
	r.buf = append(r.buf[:0], "frame "...)
	r.buf = strconv.AppendUint(r.buf, ctx.Frame.Number, 10)
	r.buf = append(r.buf, " state "...)
	r.buf = append(r.buf, ctx.Frame.State.String()...)
	s.FillText(parameter.HUDMarginX, rowY(row), string(r.buf), TextStyle{}, Solid(HUDMuted))

	if ctx.Registry == nil {
		return
	}
	for _, sample := range ctx.Registry.Samples() {
		row++
		r.buf = append(r.buf[:0], sample.Key...)
		r.buf = append(r.buf, ' ')
		r.buf = strconv.AppendFloat(r.buf, sample.Value, 'f', -1, 64)
		s.FillText(parameter.HUDMarginX, rowY(row), string(r.buf), TextStyle{}, Solid(HUDMuted))
	}
}
