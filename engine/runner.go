package engine

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/neon-highway/parameter"
	"github.com/lixenwraith/neon-highway/status"
	"github.com/lixenwraith/neon-highway/vmath"
)

// Presenter draws a frame; called on the loop goroutine, must not retain f past the call
type Presenter interface {
	Present(f *Frame)
}

// Listener receives tick events, e.g. audio cues
type Listener interface {
	OnEvent(ev Event)
}

// Runner drives a Simulation from a FrameLoop and exposes thread-safe input and state access
// Input writers (pointer, resize) are last-writer-wins mailboxes sampled at tick start
// Commands (start, pause, menu) are posted to the loop goroutine and run between ticks
type Runner struct {
	sim       *Simulation
	loop      *FrameLoop
	clock     *PausableClock
	presenter Presenter
	listeners []Listener
	log       zerolog.Logger
	limiter   *rate.Limiter

	// Mailbox
	pointer    status.AtomicFloat
	viewWidth  atomic.Int32
	viewHeight atomic.Int32

	// Published snapshot
	state    atomic.Uint32
	score    atomic.Int64
	distance status.AtomicFloat
	shield   atomic.Bool

	// Loop goroutine owned
	handle    FrameHandle
	paused    bool
	lastState SessionState
	statFrom  time.Time
	statTicks uint64

	// Cached metric pointers
	statTicksTotal *atomic.Int64
	statCrashes    *atomic.Int64
	statShields    *atomic.Int64
	statAbsorbed   *atomic.Int64
	statSessions   *atomic.Int64
	statEntities   *status.AtomicFloat
	statFPS        *status.AtomicFloat
	statPaused     *atomic.Bool
}

// NewRunner wires a simulation to a loop and presenter
func NewRunner(sim *Simulation, loop *FrameLoop, clock *PausableClock, presenter Presenter, reg *status.Registry, log zerolog.Logger) *Runner {
	r := &Runner{
		sim:       sim,
		loop:      loop,
		clock:     clock,
		presenter: presenter,
		log:       log.With().Str("component", "runner").Logger(),
		limiter:   rate.NewLimiter(rate.Every(parameter.FrameStatsLogInterval), 1),
		lastState: sim.State(),

		statTicksTotal: reg.Counters.Get("engine.ticks"),
		statCrashes:    reg.Counters.Get("session.crashes"),
		statShields:    reg.Counters.Get("session.shields_collected"),
		statAbsorbed:   reg.Counters.Get("session.hits_absorbed"),
		statSessions:   reg.Counters.Get("session.started"),
		statEntities:   reg.Gauges.Get("engine.entities"),
		statFPS:        reg.Gauges.Get("engine.fps"),
		statPaused:     reg.Flags.Get("engine.paused"),
	}
	r.viewWidth.Store(int32(sim.Frame().ViewWidth))
	r.viewHeight.Store(int32(sim.Frame().ViewHeight))
	r.publish()
	return r
}

// AddListener registers an event listener, must be called before Start()
func (r *Runner) AddListener(l Listener) {
	r.listeners = append(r.listeners, l)
}

// Start launches the loop and presents the initial menu
func (r *Runner) Start() {
	r.loop.Start()
	r.loop.Post(r.presentIdle)
}

// Stop cancels the pending frame and halts the loop
func (r *Runner) Stop() {
	r.loop.Stop()
}

// SetPointer stores the latest normalized pointer sample
func (r *Runner) SetPointer(x float64) {
	r.pointer.Set(vmath.Clamp(x, -1, 1))
}

// NudgePointer shifts the pointer sample by dx, clamped to [-1, 1]
func (r *Runner) NudgePointer(dx float64) {
	r.SetPointer(r.pointer.Get() + dx)
}

// Pointer returns the latest pointer sample
func (r *Runner) Pointer() float64 {
	return r.pointer.Get()
}

// Resize stores a new viewport size; applied at the next tick boundary or redrawn when idle
func (r *Runner) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.viewWidth.Store(int32(width))
	r.viewHeight.Store(int32(height))
	r.loop.Post(func() {
		if !r.loop.Pending() {
			r.sim.Resize(width, height)
			r.presentIdle()
		}
	})
}

// StartSession requests a reset into Playing
func (r *Runner) StartSession() {
	r.loop.Post(r.reset)
}

// TogglePause suspends or resumes a running session
func (r *Runner) TogglePause() {
	r.loop.Post(r.togglePause)
}

// ReturnToMenu abandons the session for the menu
func (r *Runner) ReturnToMenu() {
	r.loop.Post(r.menu)
}

// Snapshot returns the last published session summary, safe from any goroutine
func (r *Runner) Snapshot() Snapshot {
	return Snapshot{
		State:    SessionState(r.state.Load()),
		Score:    r.score.Load(),
		Distance: r.distance.Get(),
		Shield:   r.shield.Load(),
	}
}

// Paused reports the pause flag; loop goroutine only
func (r *Runner) Paused() bool {
	return r.paused
}

// reset cancels any in-flight frame before reinitializing so no stale tick lands on the new session
func (r *Runner) reset() {
	r.loop.CancelFrame(r.handle)
	r.clock.Resume()
	r.paused = false
	r.statPaused.Store(false)

	if err := r.sim.Reset(r.clock.Now()); err != nil {
		r.log.Error().Err(err).Msg("session reset rejected")
		return
	}
	r.sim.Resize(int(r.viewWidth.Load()), int(r.viewHeight.Load()))
	r.statSessions.Add(1)
	r.statFrom = r.clock.Now()
	r.statTicks = 0
	r.transition()
	r.dispatch(Event{Type: EventSessionStart})
	r.publish()
	r.handle = r.loop.RequestFrame(r.frame)
}

func (r *Runner) togglePause() {
	if r.sim.State() != StatePlaying {
		return
	}
	r.paused = !r.paused
	r.statPaused.Store(r.paused)
	if r.paused {
		r.loop.CancelFrame(r.handle)
		r.clock.Pause()
		r.log.Info().Msg("paused")
		r.presentIdle()
		return
	}
	r.clock.Resume()
	r.log.Info().Msg("resumed")
	r.handle = r.loop.RequestFrame(r.frame)
}

func (r *Runner) menu() {
	r.loop.CancelFrame(r.handle)
	r.clock.Resume()
	r.paused = false
	r.statPaused.Store(false)
	if err := r.sim.ReturnToMenu(); err != nil {
		r.log.Debug().Err(err).Msg("menu request ignored")
		return
	}
	r.transition()
	r.publish()
	r.presentIdle()
}

// frame is the tick callback; it reschedules itself only while Playing and not paused
func (r *Runner) frame(time.Time) {
	in := TickInput{
		Now:        r.clock.Now(),
		Pointer:    r.pointer.Get(),
		ViewWidth:  int(r.viewWidth.Load()),
		ViewHeight: int(r.viewHeight.Load()),
	}
	f := r.sim.Tick(in)
	f.Paused = r.paused

	r.statTicksTotal.Add(1)
	r.statEntities.Set(float64(f.Entities))
	r.statTicks++
	for _, ev := range f.Events {
		r.count(ev)
		r.dispatch(ev)
	}
	r.publish()
	r.presenter.Present(f)
	r.logStats(in.Now)

	if r.sim.State() != r.lastState {
		r.transition()
	}
	if r.sim.State() == StatePlaying && !r.paused {
		r.handle = r.loop.RequestFrame(r.frame)
	}
}

func (r *Runner) presentIdle() {
	f := r.sim.Frame()
	f.Paused = r.paused
	r.presenter.Present(f)
}

func (r *Runner) publish() {
	s := r.sim.Snapshot()
	r.state.Store(uint32(s.State))
	r.score.Store(s.Score)
	r.distance.Set(s.Distance)
	r.shield.Store(s.Shield)
}

func (r *Runner) transition() {
	s := r.sim.Snapshot()
	r.log.Info().
		Stringer("from", r.lastState).
		Stringer("to", s.State).
		Int64("score", s.Score).
		Float64("distance", s.Distance).
		Msg("session transition")
	r.lastState = s.State
}

func (r *Runner) count(ev Event) {
	switch ev.Type {
	case EventCrash:
		r.statCrashes.Add(1)
		r.log.Debug().Stringer("kind", ev.Kind).Msg("crash")
	case EventShieldCollected:
		r.statShields.Add(1)
		r.log.Debug().Msg("shield collected")
	case EventShieldConsumed:
		r.statAbsorbed.Add(1)
		r.log.Debug().Stringer("kind", ev.Kind).Msg("shield absorbed hit")
	}
}

func (r *Runner) dispatch(ev Event) {
	for _, l := range r.listeners {
		l.OnEvent(ev)
	}
}

// logStats emits throttled frame statistics at debug level
func (r *Runner) logStats(now time.Time) {
	elapsed := now.Sub(r.statFrom)
	if elapsed <= 0 || !r.limiter.Allow() {
		return
	}
	fps := float64(r.statTicks) / elapsed.Seconds()
	r.statFPS.Set(fps)
	r.statFrom = now
	r.statTicks = 0

	if e := r.log.Debug(); e.Enabled() {
		s := r.sim.Snapshot()
		e.Float64("fps", fps).
			Int64("score", s.Score).
			Float64("speed", r.sim.Frame().HUD.Speed).
			Float64("entities", r.statEntities.Get()).
			Msg("frame stats")
	}
}
