package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/neon-highway/engine"
	"github.com/lixenwraith/neon-highway/parameter"
	"github.com/lixenwraith/neon-highway/status"
)

// CuePlayer turns simulation events into one-shot sounds
// Every method is safe to call when the device is unavailable; playback degrades to a no-op
type CuePlayer struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	clock       engine.TimeProvider
	log         zerolog.Logger
	initialized bool
	lastPlayed  [cueCount]time.Time

	// output receives finished streamers; nil until Initialize succeeds
	output func(beep.Streamer)

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewCuePlayer creates a player; call Initialize to open the device
func NewCuePlayer(cfg Config, clock engine.TimeProvider, reg *status.Registry, log zerolog.Logger) *CuePlayer {
	return &CuePlayer{
		cfg:         cfg,
		rate:        beep.SampleRate(cfg.SampleRate),
		clock:       clock,
		log:         log.With().Str("component", "audio").Logger(),
		statPlayed:  reg.Counters.Get("audio.cues_played"),
		statDropped: reg.Counters.Get("audio.cues_dropped"),
	}
}

// Initialize opens the speaker; disabled configs succeed without touching the device
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	p.output = func(s beep.Streamer) { speaker.Play(s) }
	p.initialized = true
	p.log.Info().Int("sample_rate", int(p.rate)).Float64("volume", p.cfg.Volume).Msg("audio ready")
	return nil
}

// Cleanup silences pending cues and releases the device
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.output = nil
	p.initialized = false
}

// OnEvent plays the cue mapped to ev
func (p *CuePlayer) OnEvent(ev engine.Event) {
	p.Play(CueFor(ev))
}

// Play queues c unless the same cue fired within MinCueGap
func (p *CuePlayer) Play(c Cue) {
	if c == CueNone || c >= cueCount {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.output == nil {
		return
	}

	now := p.clock.Now()
	if last := p.lastPlayed[c]; !last.IsZero() && now.Sub(last) < parameter.MinCueGap {
		p.statDropped.Add(1)
		return
	}

	s := GetCueSound(c, p.rate, p.cfg.Volume)
	if s == nil {
		p.statDropped.Add(1)
		p.log.Debug().Stringer("cue", c).Msg("cue not representable at sample rate")
		return
	}
	p.lastPlayed[c] = now
	p.output(s)
	p.statPlayed.Add(1)
}
