package engine

import (
	"math"

	"github.com/lixenwraith/neon-highway/parameter"
)

// Outcome is the result of testing one entity against the player
type Outcome uint8

const (
	OutcomeNone      Outcome = iota // Outside the window
	OutcomeStraddle                 // Pothole passed between the wheels
	OutcomeShieldHit                // Shield absorbed the hit
	OutcomeFatal                    // Unshielded hit, session over
	OutcomePickup                   // Pickup collected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeStraddle:
		return "straddle"
	case OutcomeShieldHit:
		return "shield_hit"
	case OutcomeFatal:
		return "fatal"
	case OutcomePickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Collider tests entities against the player; it flags entities but never removes them
type Collider struct {
	tuning *parameter.Tuning
}

// NewCollider creates a collider over the tuning window
func NewCollider(tuning *parameter.Tuning) *Collider {
	return &Collider{tuning: tuning}
}

// Candidate reports whether e is inside the collision window and returns the lateral gap
func (c *Collider) Candidate(e *Entity, playerX, cameraDepth float64) (bool, float64) {
	ahead := e.Z - cameraDepth
	gap := math.Abs(e.X - playerX)
	return ahead < c.tuning.CollisionWindow && gap < c.tuning.CollisionLateralTolerance, gap
}

// ResolveObstacle applies the obstacle priority: straddled pothole, then shield, then fatal
// Consumed is set on e for shield and fatal outcomes
func (c *Collider) ResolveObstacle(e *Entity, playerX, cameraDepth float64, shield bool) Outcome {
	hit, gap := c.Candidate(e, playerX, cameraDepth)
	if !hit {
		return OutcomeNone
	}
	if e.Kind == KindPothole && gap < c.tuning.PotholeSafeTolerance {
		return OutcomeStraddle
	}
	e.Consumed = true
	if shield {
		return OutcomeShieldHit
	}
	return OutcomeFatal
}

// ResolvePickup collects e when inside the window
func (c *Collider) ResolvePickup(e *Entity, playerX, cameraDepth float64) Outcome {
	if hit, _ := c.Candidate(e, playerX, cameraDepth); !hit {
		return OutcomeNone
	}
	e.Consumed = true
	return OutcomePickup
}
