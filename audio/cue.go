package audio

import "github.com/lixenwraith/neon-highway/engine"

// Cue identifies a one-shot sound
type Cue uint8

const (
	CueNone Cue = iota
	CueStart
	CueShield
	CueShieldBreak
	CueCrash
	CueSkid

	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueShield:
		return "shield"
	case CueShieldBreak:
		return "shield_break"
	case CueCrash:
		return "crash"
	case CueSkid:
		return "skid"
	default:
		return "none"
	}
}

// CueFor maps a simulation event to its cue
func CueFor(ev engine.Event) Cue {
	switch ev.Type {
	case engine.EventSessionStart:
		return CueStart
	case engine.EventShieldCollected:
		return CueShield
	case engine.EventShieldConsumed:
		return CueShieldBreak
	case engine.EventCrash:
		return CueCrash
	case engine.EventOversteer:
		return CueSkid
	default:
		return CueNone
	}
}
