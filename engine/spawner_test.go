package engine

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/neon-highway/parameter"
)

func newTestSpawner(t *testing.T) (*Spawner, *Arena, *Arena) {
	t.Helper()
	tuning := parameter.DefaultTuning()
	rng := rand.New(rand.NewPCG(1, 2))
	return NewSpawner(&tuning, rng), NewArena(8), NewArena(8)
}

func TestObstacleInterval(t *testing.T) {
	s, _, _ := newTestSpawner(t)

	tests := []struct {
		score int64
		want  time.Duration
	}{
		{0, 1500 * time.Millisecond},
		{500, 1000 * time.Millisecond},
		{999, 501 * time.Millisecond},
		{1000, 500 * time.Millisecond},
		{5000, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.ObstacleInterval(tt.score), "score %d", tt.score)
	}
}

func TestObstacleIntervalNeverNonPositive(t *testing.T) {
	tuning := parameter.DefaultTuning()
	tuning.MinObstacleInterval = 0
	tuning.ObstacleScoreCap = 10000
	s := NewSpawner(&tuning, rand.New(rand.NewPCG(1, 2)))

	assert.Greater(t, s.ObstacleInterval(9000), time.Duration(0))
}

func TestSpawnerFirstTickSpawnsBoth(t *testing.T) {
	s, obstacles, pickups := newTestSpawner(t)

	obstacle, pickup := s.Update(testEpoch, 0, false, 200, obstacles, pickups)
	assert.True(t, obstacle)
	assert.True(t, pickup)
	assert.Equal(t, 1, obstacles.Len())
	assert.Equal(t, 1, pickups.Len())
}

func TestSpawnerObstacleCadence(t *testing.T) {
	s, obstacles, pickups := newTestSpawner(t)
	s.Update(testEpoch, 0, false, 0, obstacles, pickups)

	obstacle, pickup := s.Update(testEpoch.Add(1000*time.Millisecond), 0, false, 0, obstacles, pickups)
	assert.False(t, obstacle)
	assert.False(t, pickup)

	obstacle, pickup = s.Update(testEpoch.Add(1501*time.Millisecond), 0, false, 0, obstacles, pickups)
	assert.True(t, obstacle)
	assert.False(t, pickup)
	assert.Equal(t, 2, obstacles.Len())
}

func TestSpawnerPickupSuppressedByShield(t *testing.T) {
	s, obstacles, pickups := newTestSpawner(t)

	_, pickup := s.Update(testEpoch, 0, true, 0, obstacles, pickups)
	assert.False(t, pickup)
	assert.Zero(t, pickups.Len())

	_, pickup = s.Update(testEpoch.Add(11*time.Second), 0, false, 0, obstacles, pickups)
	assert.True(t, pickup)
}

func TestSpawnerResetExpiresTimers(t *testing.T) {
	s, obstacles, pickups := newTestSpawner(t)
	s.Update(testEpoch, 0, false, 0, obstacles, pickups)

	s.Reset()
	obstacle, pickup := s.Update(testEpoch.Add(time.Millisecond), 0, false, 0, obstacles, pickups)
	assert.True(t, obstacle)
	assert.True(t, pickup)
}

func TestSpawnerPlacement(t *testing.T) {
	s, obstacles, pickups := newTestSpawner(t)
	tuning := parameter.DefaultTuning()
	limit := tuning.SpawnLateralRatio * tuning.RoadWidth

	now := testEpoch
	camera := 12345.0
	for range 200 {
		s.Update(now, 0, false, camera, obstacles, pickups)
		now = now.Add(11 * time.Second)
	}
	require.Equal(t, 200, obstacles.Len())

	seen := make(map[Kind]int)
	ids := make(map[uint64]bool)
	check := func(e *Entity) {
		assert.LessOrEqual(t, e.X, limit)
		assert.GreaterOrEqual(t, e.X, -limit)
		assert.Greater(t, e.Z, camera)
		assert.InDelta(t, camera+tuning.DrawDistance()*tuning.SpawnLookAheadRatio, e.Z, 1e-9)
		assert.False(t, ids[e.ID], "duplicate id %d", e.ID)
		ids[e.ID] = true
	}
	obstacles.Each(func(e *Entity) {
		check(e)
		seen[e.Kind]++
		assert.False(t, e.Kind.IsPickup())
		if e.Kind == KindSlowCar {
			assert.Equal(t, tuning.SlowCarClosingSpeed, e.Speed)
		} else {
			assert.Zero(t, e.Speed)
		}
	})
	pickups.Each(func(e *Entity) {
		check(e)
		assert.Equal(t, KindShield, e.Kind)
	})

	for _, k := range obstacleKinds {
		assert.Positive(t, seen[k], "kind %s never spawned", k)
	}
}
