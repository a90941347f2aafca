package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameFunc is a frame callback, invoked on the loop goroutine
type FrameFunc func(now time.Time)

// FrameHandle identifies one pending frame request
type FrameHandle uint64

// FrameLoop is a cooperative per-frame callback scheduler
// At most one frame request is pending; a callback re-requests to keep running
// All callbacks and posted commands run on one goroutine, never concurrently
type FrameLoop struct {
	clock    TimeProvider
	interval time.Duration

	// Loop goroutine owned
	pending   FrameFunc
	pendingID FrameHandle
	nextID    FrameHandle

	commands chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool

	frames       atomic.Uint64
	crashHandler func(any)
}

// NewFrameLoop creates a stopped loop firing at most once per interval
func NewFrameLoop(clock TimeProvider, interval time.Duration, queueSize int) *FrameLoop {
	return &FrameLoop{
		clock:    clock,
		interval: interval,
		commands: make(chan func(), queueSize),
		stopChan: make(chan struct{}),
	}
}

// SetCrashHandler installs a handler for panics on the loop goroutine, must be called before Start()
func (l *FrameLoop) SetCrashHandler(h func(any)) {
	l.crashHandler = h
}

// RequestFrame schedules fn for the next frame, replacing any pending request
// Loop goroutine only: call from a frame callback or a posted command
func (l *FrameLoop) RequestFrame(fn FrameFunc) FrameHandle {
	l.nextID++
	l.pending = fn
	l.pendingID = l.nextID
	return l.pendingID
}

// CancelFrame drops the pending request if h still identifies it
func (l *FrameLoop) CancelFrame(h FrameHandle) bool {
	if l.pending == nil || l.pendingID != h {
		return false
	}
	l.pending = nil
	l.pendingID = 0
	return true
}

// Pending reports whether a frame request is waiting
func (l *FrameLoop) Pending() bool {
	return l.pending != nil
}

// Frames returns the number of frame callbacks fired
func (l *FrameLoop) Frames() uint64 {
	return l.frames.Load()
}

// Post queues cmd to run on the loop goroutine between frames
// Safe from any goroutine; returns false once the loop is stopped
func (l *FrameLoop) Post(cmd func()) bool {
	if l.stopped.Load() {
		return false
	}
	select {
	case l.commands <- cmd:
		return true
	case <-l.stopChan:
		return false
	}
}

// RunCommands executes queued commands without blocking, returns the count
func (l *FrameLoop) RunCommands() int {
	n := 0
	for {
		select {
		case cmd := <-l.commands:
			cmd()
			n++
		default:
			return n
		}
	}
}

// Frame fires the pending callback, if any, and reports whether one ran
// The request is cleared before invocation so the callback may re-request
func (l *FrameLoop) Frame(now time.Time) bool {
	fn := l.pending
	if fn == nil {
		return false
	}
	l.pending = nil
	l.pendingID = 0
	l.frames.Add(1)
	fn(now)
	return true
}

// Start begins the loop goroutine
func (l *FrameLoop) Start() {
	if l.stopped.Load() {
		return
	}
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		go l.run()
	}
}

// Stop halts the loop and drops the pending request; no callback fires afterward
func (l *FrameLoop) Stop() {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		close(l.stopChan)
		if l.running.CompareAndSwap(true, false) {
			l.wg.Wait()
		}
		l.pending = nil
		l.pendingID = 0
	})
}

func (l *FrameLoop) run() {
	defer l.wg.Done()
	if l.crashHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				l.crashHandler(r)
			}
		}()
	}

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	armed := false
	deadline := l.clock.Now()

	for {
		// Timer is armed only while a frame is pending, a suspended loop sleeps on channels
		if l.pending != nil && !armed {
			now := l.clock.Now()
			if deadline.Before(now) {
				deadline = now
			}
			timer.Reset(deadline.Sub(now))
			armed = true
		}

		select {
		case <-l.stopChan:
			return

		case cmd := <-l.commands:
			cmd()

		case <-timer.C:
			armed = false
			now := l.clock.Now()
			l.Frame(now)

			deadline = deadline.Add(l.interval)
			// Drop missed frames instead of bursting to catch up
			if now.Sub(deadline) > l.interval*2 {
				deadline = now.Add(l.interval)
			}
		}
	}
}
