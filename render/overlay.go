package render

import (
	"strconv"

	"github.com/lixenwraith/neon-highway/engine"
)

var menuInstructions = [...]string{
	"MOVE MOUSE or ←/→ to STEER",
	"⚠ FAST MOVEMENTS = OVERSTEER",
	"🛡 COLLECT SHIELDS for PROTECTION",
	"CENTER OVER POTHOLES to AVOID DAMAGE",
	"ONE HIT = GAME OVER",
}

// screenRenderer draws the menu and crash screens; only active outside Playing
type screenRenderer struct {
	backdrop *Gradient
	title    *Gradient
	button   *Gradient
	height   float64
}

func (r *screenRenderer) Render(ctx Context, s Surface) {
	switch ctx.Frame.State {
	case engine.StateMenu:
		r.menu(ctx, s)
	case engine.StateGameOver:
		r.crash(ctx, s)
	}
}

// spaced inserts a space between letters for a wide title
func spaced(s string) string {
	out := make([]rune, 0, len(s)*2)
	for i, ch := range s {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, ch)
	}
	return string(out)
}

func (r *screenRenderer) menu(ctx Context, s Surface) {
	if r.backdrop == nil || r.height != ctx.Height {
		r.backdrop = NewLinearGradient(0, 0, 0, ctx.Height,
			Stop{Offset: 0, Color: MenuTop, Alpha: 1},
			Stop{Offset: 1, Color: MenuBottom, Alpha: 1},
		)
		r.height = ctx.Height
	}
	s.FillRect(0, 0, ctx.Width, ctx.Height, Fill(r.backdrop))

	cx := ctx.Width / 2
	rows := int(ctx.Height) / rowPx
	row := max(rows/2-8, 0)

	title := spaced("NEON HIGHWAY")
	tw := float64(TextWidth(title))
	if r.title == nil {
		r.title = NewLinearGradient(0, 0, 1, 0,
			Stop{Offset: 0, Color: Magenta, Alpha: 1},
			Stop{Offset: 0.5, Color: Cyan, Alpha: 1},
			Stop{Offset: 1, Color: Magenta, Alpha: 1},
		)
	}
	s.FillText(cx, rowY(row), title, TextStyle{Align: AlignCenter, Bold: true}, Fill(r.title.Along(cx-tw/2, 0, cx+tw/2, 0)))
	s.FillText(cx, rowY(row+2), "OUTRUN THE NIGHT", TextStyle{Align: AlignCenter}, Solid(Magenta))

	row += 5
	for i, line := range menuInstructions {
		s.FillText(cx, rowY(row+i), line, TextStyle{Align: AlignCenter}, Solid(Cyan))
	}
	row += len(menuInstructions) + 2

	r.drawButton(ctx, s, row, "START GAME")
	s.FillText(cx, rowY(row+4), "ENTER or CLICK to start · Q to quit", TextStyle{Align: AlignCenter}, Solid(HUDMuted))
}

func (r *screenRenderer) crash(ctx Context, s Surface) {
	s.FillRect(0, 0, ctx.Width, ctx.Height, SolidAlpha(RGBBlack, 0.9))

	cx := ctx.Width / 2
	rows := int(ctx.Height) / rowPx
	row := max(rows/2-4, 0)

	s.FillText(cx, rowY(row), spaced("CRASHED"), TextStyle{Align: AlignCenter, Bold: true}, Solid(CrashTitle))
	score := "SCORE: " + strconv.FormatInt(ctx.Frame.HUD.Score, 10)
	s.FillText(cx, rowY(row+2), score, TextStyle{Align: AlignCenter, Bold: true}, Solid(Cyan))

	r.drawButton(ctx, s, row+4, "TRY AGAIN")
	s.FillText(cx, rowY(row+8), "ENTER retry · M menu · Q quit", TextStyle{Align: AlignCenter}, Solid(HUDMuted))
}

// drawButton draws a bordered gradient box three rows tall with a centered label
func (r *screenRenderer) drawButton(ctx Context, s Surface, row int, label string) {
	cx := ctx.Width / 2
	w := float64(TextWidth(label) + 8)
	x := cx - w/2
	y := rowY(row)
	h := float64(3 * rowPx)

	if r.button == nil {
		r.button = NewLinearGradient(0, 0, 1, 0,
			Stop{Offset: 0, Color: Magenta, Alpha: 1},
			Stop{Offset: 1, Color: ButtonEnd, Alpha: 1},
		)
	}
	s.FillRect(x-1, y-1, w+2, h+2, Solid(Cyan))
	s.FillRect(x, y, w, h, Fill(r.button.Along(x, 0, x+w, 0)))
	s.FillText(cx, rowY(row+1), label, TextStyle{Align: AlignCenter, Bold: true}, Solid(RGBWhite))
}
