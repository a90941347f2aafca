package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length, trading latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master volume in [0, 1]
	AudioDefaultVolume = 0.6

	// MinCueGap suppresses re-triggering the same cue faster than this
	MinCueGap = 80 * time.Millisecond
)

// Start Cue: two rising square notes
const (
	StartCueNote1Freq     = 440.0 // A4
	StartCueNote2Freq     = 659.25
	StartCueNote1Duration = 90 * time.Millisecond
	StartCueNote2Duration = 240 * time.Millisecond
	StartCueAttack        = 5 * time.Millisecond
	StartCueRelease       = 60 * time.Millisecond
)

// Shield Pickup Cue: bell with octave overtone
const (
	ShieldCueFreq             = 880.0
	ShieldCueDuration         = 500 * time.Millisecond
	ShieldCueAttack           = 5 * time.Millisecond
	ShieldCueFundamentalDecay = 450 * time.Millisecond
	ShieldCueOvertoneDecay    = 180 * time.Millisecond
)

// Shield Break Cue: falling sweep
const (
	ShieldBreakDuration  = 160 * time.Millisecond
	ShieldBreakAttack    = 2 * time.Millisecond
	ShieldBreakRelease   = 120 * time.Millisecond
	ShieldBreakStartFreq = 320.0
	ShieldBreakEndFreq   = 60.0
)

// Crash Cue: noise burst over low rumble
const (
	CrashCueDuration   = 600 * time.Millisecond
	CrashCueDecayRate  = 6.0 // exp(-t*rate)
	CrashCueRumbleFreq = 55.0
	CrashCueNoiseMix   = 0.5
)

// Skid Cue: short filtered noise on oversteer onset
const (
	SkidCueDuration = 180 * time.Millisecond
	SkidCueAttack   = 20 * time.Millisecond
	SkidCueRelease  = 120 * time.Millisecond
	SkidCueVolume   = 0.35
)
