package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/neon-highway/engine"
	"github.com/lixenwraith/neon-highway/parameter"
)

// Controller is the game surface input drives; engine.Runner satisfies it
type Controller interface {
	SetPointer(x float64)
	NudgePointer(dx float64)
	Resize(width, height int)
	StartSession()
	TogglePause()
	ReturnToMenu()
	Snapshot() engine.Snapshot
}

// DebugToggle shows or hides the metrics overlay
type DebugToggle interface {
	SetDebug(on bool)
	Debug() bool
}

// Input translates terminal events into controller calls
type Input struct {
	display *Display
	ctrl    Controller
	debug   DebugToggle
	log     zerolog.Logger

	buttons tcell.ButtonMask
}

// NewInput binds display events to ctrl; debug may be nil
func NewInput(display *Display, ctrl Controller, debug DebugToggle, log zerolog.Logger) *Input {
	return &Input{
		display: display,
		ctrl:    ctrl,
		debug:   debug,
		log:     log.With().Str("component", "input").Logger(),
	}
}

// Run polls the screen until quit is requested, ctx ends or the screen is finalized
func (in *Input) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen := in.display.Screen()
	events := make(chan tcell.Event, parameter.InputQueueSize)

	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || !in.HandleEvent(ev) {
				return
			}
		}
	}
}

// HandleEvent applies one event, returning false when the user asked to quit
func (in *Input) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.handleKey(ev)
	case *tcell.EventMouse:
		in.handleMouse(ev)
	case *tcell.EventResize:
		in.display.Screen().Sync()
		w, h := in.display.ViewSize()
		in.log.Debug().Int("width", w).Int("height", h).Msg("resize")
		in.ctrl.Resize(w, h)
	}
	return true
}

func (in *Input) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		in.ctrl.NudgePointer(-parameter.PointerNudge)
	case tcell.KeyRight:
		in.ctrl.NudgePointer(parameter.PointerNudge)
	case tcell.KeyEnter:
		in.start()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			in.start()
		case 'p', 'P':
			in.ctrl.TogglePause()
		case 'm', 'M':
			in.ctrl.ReturnToMenu()
		case 'd', 'D':
			if in.debug != nil {
				in.debug.SetDebug(!in.debug.Debug())
			}
		case 'h':
			in.ctrl.NudgePointer(-parameter.PointerNudge)
		case 'l':
			in.ctrl.NudgePointer(parameter.PointerNudge)
		}
	}
	return true
}

// handleMouse maps the column to [-1, 1]; a primary press starts a session outside Playing
func (in *Input) handleMouse(ev *tcell.EventMouse) {
	x, _ := ev.Position()
	cols, _ := in.display.Screen().Size()
	if cols > 0 {
		in.ctrl.SetPointer((float64(x)+0.5)/float64(cols)*2 - 1)
	}

	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && in.buttons&tcell.Button1 == 0
	in.buttons = buttons
	if pressed {
		in.start()
	}
}

// start begins a session from the menu or crash screen; ignored while Playing
func (in *Input) start() {
	if in.ctrl.Snapshot().State == engine.StatePlaying {
		return
	}
	in.ctrl.StartSession()
}
