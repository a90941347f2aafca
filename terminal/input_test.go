package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/neon-highway/engine"
	"github.com/lixenwraith/neon-highway/parameter"
)

// fakeController records calls; state drives start gating
type fakeController struct {
	state   engine.SessionState
	pointer float64
	nudges  []float64
	resizes [][2]int
	starts  int
	pauses  int
	menus   int
}

func (c *fakeController) SetPointer(x float64)    { c.pointer = x }
func (c *fakeController) NudgePointer(dx float64) { c.nudges = append(c.nudges, dx) }
func (c *fakeController) Resize(w, h int)         { c.resizes = append(c.resizes, [2]int{w, h}) }
func (c *fakeController) StartSession()           { c.starts++ }
func (c *fakeController) TogglePause()            { c.pauses++ }
func (c *fakeController) ReturnToMenu()           { c.menus++ }
func (c *fakeController) Snapshot() engine.Snapshot {
	return engine.Snapshot{State: c.state}
}

type fakeDebug struct{ on bool }

func (d *fakeDebug) SetDebug(on bool) { d.on = on }
func (d *fakeDebug) Debug() bool      { return d.on }

func newTestInput(t *testing.T) (*Input, *fakeController, *fakeDebug, tcell.SimulationScreen) {
	t.Helper()
	d, screen, _ := newTestDisplay(t, &stripeDrawer{}, ColorModeTrueColor)
	ctrl := &fakeController{}
	debug := &fakeDebug{}
	return NewInput(d, ctrl, debug, zerolog.Nop()), ctrl, debug, screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInputQuitKeys(t *testing.T) {
	in, _, _, _ := newTestInput(t)

	assert.False(t, in.HandleEvent(key(tcell.KeyEscape)))
	assert.False(t, in.HandleEvent(key(tcell.KeyCtrlC)))
	assert.False(t, in.HandleEvent(char('q')))
	assert.True(t, in.HandleEvent(char('x')), "unbound keys are ignored")
}

func TestInputStartGating(t *testing.T) {
	in, ctrl, _, _ := newTestInput(t)

	in.HandleEvent(key(tcell.KeyEnter))
	in.HandleEvent(char(' '))
	assert.Equal(t, 2, ctrl.starts, "menu accepts start")

	ctrl.state = engine.StatePlaying
	in.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, 2, ctrl.starts, "no restart while playing")

	ctrl.state = engine.StateGameOver
	in.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, 3, ctrl.starts, "retry from crash screen")
}

func TestInputCommands(t *testing.T) {
	in, ctrl, debug, _ := newTestInput(t)

	in.HandleEvent(char('p'))
	in.HandleEvent(char('m'))
	assert.Equal(t, 1, ctrl.pauses)
	assert.Equal(t, 1, ctrl.menus)

	in.HandleEvent(char('d'))
	assert.True(t, debug.on)
	in.HandleEvent(char('d'))
	assert.False(t, debug.on)
}

func TestInputSteeringKeys(t *testing.T) {
	in, ctrl, _, _ := newTestInput(t)

	in.HandleEvent(key(tcell.KeyLeft))
	in.HandleEvent(key(tcell.KeyRight))
	in.HandleEvent(char('h'))
	in.HandleEvent(char('l'))

	n := parameter.PointerNudge
	assert.Equal(t, []float64{-n, n, -n, n}, ctrl.nudges)
}

func TestInputMousePointer(t *testing.T) {
	in, ctrl, _, _ := newTestInput(t)

	tests := []struct {
		col  int
		want float64
	}{
		{0, -1 + 1.0/40},
		{20, 1.0 / 40},
		{39, 1 - 1.0/40},
	}
	for _, tt := range tests {
		in.HandleEvent(tcell.NewEventMouse(tt.col, 3, tcell.ButtonNone, tcell.ModNone))
		assert.InDelta(t, tt.want, ctrl.pointer, 1e-9, "col %d", tt.col)
	}
	assert.Zero(t, ctrl.starts, "motion alone does not start")
}

func TestInputMouseClickStartsOnce(t *testing.T) {
	in, ctrl, _, _ := newTestInput(t)

	in.HandleEvent(tcell.NewEventMouse(10, 3, tcell.Button1, tcell.ModNone))
	in.HandleEvent(tcell.NewEventMouse(12, 3, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 1, ctrl.starts, "drag is not a second press")

	in.HandleEvent(tcell.NewEventMouse(12, 3, tcell.ButtonNone, tcell.ModNone))
	in.HandleEvent(tcell.NewEventMouse(12, 3, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 2, ctrl.starts)
}

func TestInputResize(t *testing.T) {
	in, ctrl, _, screen := newTestInput(t)

	screen.SetSize(60, 20)
	in.HandleEvent(tcell.NewEventResize(60, 20))
	require.Len(t, ctrl.resizes, 1)
	assert.Equal(t, [2]int{60, 40}, ctrl.resizes[0])
}

func TestInputRunStopsOnQuit(t *testing.T) {
	in, ctrl, _, screen := newTestInput(t)

	done := make(chan struct{})
	go func() {
		in.Run(context.Background())
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}
	assert.Equal(t, 1, ctrl.pauses)
}

func TestInputRunStopsOnCancel(t *testing.T) {
	in, _, _, _ := newTestInput(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		in.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
