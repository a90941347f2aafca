package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/neon-highway/parameter"
)

// Spawner gates obstacle and pickup creation on two independent game-time timers
type Spawner struct {
	tuning *parameter.Tuning
	rng    *rand.Rand

	lastObstacle time.Time
	lastPickup   time.Time
	nextID       uint64
}

// NewSpawner creates a spawner drawing kinds and offsets from rng
func NewSpawner(tuning *parameter.Tuning, rng *rand.Rand) *Spawner {
	return &Spawner{tuning: tuning, rng: rng}
}

// Reset expires both timers so a new session spawns on its first tick
func (s *Spawner) Reset() {
	s.lastObstacle = time.Time{}
	s.lastPickup = time.Time{}
}

// ObstacleInterval returns the obstacle cadence for a score
// Shrinks by one millisecond per point up to the cap, never below the configured minimum
func (s *Spawner) ObstacleInterval(score int64) time.Duration {
	reduction := min(score, int64(s.tuning.ObstacleScoreCap))
	if reduction < 0 {
		reduction = 0
	}
	interval := s.tuning.ObstacleBaseInterval - time.Duration(reduction)*time.Millisecond
	return max(interval, s.tuning.MinObstacleInterval, time.Millisecond)
}

// SpawnDepth returns the look-ahead depth for entities created at cameraDepth
func (s *Spawner) SpawnDepth(cameraDepth float64) float64 {
	return cameraDepth + s.tuning.DrawDistance()*s.tuning.SpawnLookAheadRatio
}

// lateral returns a uniform offset within +/- SpawnLateralRatio * RoadWidth
func (s *Spawner) lateral() float64 {
	return (s.rng.Float64() - 0.5) * 2 * s.tuning.SpawnLateralRatio * s.tuning.RoadWidth
}

// Update injects due entities into the arenas and reports what was spawned
func (s *Spawner) Update(now time.Time, score int64, shield bool, cameraDepth float64, obstacles, pickups *Arena) (obstacle, pickup bool) {
	if s.lastObstacle.IsZero() || now.Sub(s.lastObstacle) > s.ObstacleInterval(score) {
		kind := obstacleKinds[s.rng.IntN(len(obstacleKinds))]
		var speed float64
		if kind == KindSlowCar {
			speed = s.tuning.SlowCarClosingSpeed
		}
		s.nextID++
		obstacles.Add(Entity{
			ID:    s.nextID,
			Kind:  kind,
			X:     s.lateral(),
			Z:     s.SpawnDepth(cameraDepth),
			Speed: speed,
		})
		s.lastObstacle = now
		obstacle = true
	}

	if !shield && (s.lastPickup.IsZero() || now.Sub(s.lastPickup) > s.tuning.PickupInterval) {
		s.nextID++
		pickups.Add(Entity{
			ID:   s.nextID,
			Kind: KindShield,
			X:    s.lateral(),
			Z:    s.SpawnDepth(cameraDepth),
		})
		s.lastPickup = now
		pickup = true
	}

	return obstacle, pickup
}
