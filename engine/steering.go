package engine

import (
	"math"

	"github.com/lixenwraith/neon-highway/parameter"
	"github.com/lixenwraith/neon-highway/vmath"
)

// Steering pursues a pointer-derived lateral target with first-order damping
type Steering struct {
	tuning *parameter.Tuning

	Position  float64
	Velocity  float64 // Recomputed every update, never integrated on its own
	Oversteer bool
}

// NewSteering creates a centered controller
func NewSteering(tuning *parameter.Tuning) *Steering {
	return &Steering{tuning: tuning}
}

// Reset recenters the controller
func (s *Steering) Reset() {
	s.Position = 0
	s.Velocity = 0
	s.Oversteer = false
}

// Target maps a normalized pointer sample to a lateral position
func (s *Steering) Target(input float64) float64 {
	return vmath.Clamp(input, -1, 1) * s.tuning.RoadWidth * s.tuning.SteeringRangeRatio
}

// Update advances one tick toward the target for input
func (s *Steering) Update(input float64) {
	s.Velocity = (s.Target(input) - s.Position) * s.tuning.SteeringDamping
	s.Position += s.Velocity
	s.Oversteer = IsOversteer(s.Velocity, s.tuning.OversteerThreshold)
}

// IsOversteer reports whether a lateral velocity exceeds threshold in magnitude
func IsOversteer(velocity, threshold float64) bool {
	return math.Abs(velocity) > threshold
}
