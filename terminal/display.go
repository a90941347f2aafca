package terminal

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/neon-highway/engine"
	"github.com/lixenwraith/neon-highway/render"
	"github.com/lixenwraith/neon-highway/status"
)

// upperHalf shows the top pixel as foreground and the bottom pixel as background
const upperHalf = '▀'

// Drawer renders a frame onto a surface
type Drawer interface {
	Draw(s render.Surface, f *engine.Frame)
}

// Display presents frames on a tcell screen at two raster pixels per cell
// Present runs on the loop goroutine; Init and Fini on the main goroutine
type Display struct {
	screen tcell.Screen
	drawer Drawer
	raster *render.Raster
	mode   ColorMode
	log    zerolog.Logger

	statFrames *atomic.Int64
}

// NewDisplay wraps screen; call Init before the first Present
func NewDisplay(screen tcell.Screen, drawer Drawer, mode ColorMode, reg *status.Registry, log zerolog.Logger) *Display {
	return &Display{
		screen:     screen,
		drawer:     drawer,
		raster:     render.NewRaster(0, 0),
		mode:       mode,
		log:        log.With().Str("component", "display").Logger(),
		statFrames: reg.Counters.Get("display.frames"),
	}
}

// Init enters the alternate screen with mouse motion reporting
func (d *Display) Init() error {
	if err := d.screen.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}
	if d.mode == ColorModeAuto {
		d.mode = DetectColorMode()
	}
	d.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	d.screen.HideCursor()
	d.screen.EnableMouse(tcell.MouseMotionEvents)
	d.screen.Clear()

	cols, rows := d.screen.Size()
	d.log.Info().Int("cols", cols).Int("rows", rows).Stringer("color_mode", d.mode).Msg("terminal ready")
	return nil
}

// Fini restores the terminal; safe to call more than once
func (d *Display) Fini() {
	d.screen.Fini()
}

// Screen returns the underlying tcell screen
func (d *Display) Screen() tcell.Screen {
	return d.screen
}

// ColorMode returns the resolved color mode
func (d *Display) ColorMode() ColorMode {
	return d.mode
}

// ViewSize returns the raster size matching the current terminal: one pixel per column, two per row
func (d *Display) ViewSize() (int, int) {
	cols, rows := d.screen.Size()
	return cols, rows * 2
}

// Present renders f and flushes it to the screen
func (d *Display) Present(f *engine.Frame) {
	if w, h := d.raster.Size(); w != f.ViewWidth || h != f.ViewHeight {
		d.raster.Resize(f.ViewWidth, f.ViewHeight)
	}
	d.raster.Clear(render.RGBBlack)
	d.drawer.Draw(d.raster, f)
	d.blit()
	d.screen.Show()
	d.statFrames.Add(1)
}

// blit copies the raster into screen cells; text glyphs replace the half-block
func (d *Display) blit() {
	cols, rows := d.screen.Size()
	w, _ := d.raster.Size()
	cols = min(cols, w)
	rows = min(rows, d.raster.Rows())

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := d.raster.Pixel(col, row*2)
			bottom := d.raster.Pixel(col, row*2+1)

			g := d.raster.Glyph(col, row)
			switch {
			case g.Cont:
				// Covered by the wide rune to the left
			case g.Rune != 0:
				bg := render.Blend(top, bottom, 0.5)
				style := tcell.StyleDefault.
					Foreground(d.mode.Color(g.Fg)).
					Background(d.mode.Color(bg)).
					Bold(g.Bold)
				d.screen.SetContent(col, row, g.Rune, nil, style)
			case top == bottom:
				d.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(d.mode.Color(top)))
			default:
				style := tcell.StyleDefault.
					Foreground(d.mode.Color(top)).
					Background(d.mode.Color(bottom))
				d.screen.SetContent(col, row, upperHalf, nil, style)
			}
		}
	}
}
