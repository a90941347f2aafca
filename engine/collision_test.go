package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/neon-highway/parameter"
)

func TestResolveObstacle(t *testing.T) {
	tuning := parameter.DefaultTuning()
	c := NewCollider(&tuning)
	const camera = 10000.0

	tests := []struct {
		name         string
		kind         Kind
		x, ahead     float64
		shield       bool
		want         Outcome
		wantConsumed bool
	}{
		{"pothole gap 50 at 400 ahead", KindPothole, 50, 400, false, OutcomeStraddle, false},
		{"debris gap 50 at 400 ahead", KindDebris, 50, 400, false, OutcomeFatal, true},
		{"pothole straddled", KindPothole, 50, 300, false, OutcomeStraddle, false},
		{"pothole straddled with shield", KindPothole, -99, 300, true, OutcomeStraddle, false},
		{"pothole off center", KindPothole, 150, 300, false, OutcomeFatal, true},
		{"debris center", KindDebris, 50, 300, false, OutcomeFatal, true},
		{"car with shield", KindCar, 0, 300, true, OutcomeShieldHit, true},
		{"slowcar with shield", KindSlowCar, 120, 10, true, OutcomeShieldHit, true},
		{"too far ahead", KindDebris, 0, 600, false, OutcomeNone, false},
		{"window edge", KindDebris, 0, 500, false, OutcomeNone, false},
		{"too wide", KindCar, 250, 300, false, OutcomeNone, false},
		{"lateral edge", KindCar, 200, 300, false, OutcomeNone, false},
		{"behind camera", KindCar, 0, -100, false, OutcomeFatal, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entity{Kind: tt.kind, X: tt.x, Z: camera + tt.ahead}
			got := c.ResolveObstacle(e, 0, camera, tt.shield)
			assert.Equal(t, tt.want, got, "got %s", got)
			assert.Equal(t, tt.wantConsumed, e.Consumed)
		})
	}
}

func TestResolveObstacleRelativeToPlayer(t *testing.T) {
	tuning := parameter.DefaultTuning()
	c := NewCollider(&tuning)

	e := &Entity{Kind: KindDebris, X: 600, Z: 400}
	assert.Equal(t, OutcomeNone, c.ResolveObstacle(e, 0, 0, false))
	assert.Equal(t, OutcomeFatal, c.ResolveObstacle(e, 550, 0, false))
}

func TestResolvePickup(t *testing.T) {
	tuning := parameter.DefaultTuning()
	c := NewCollider(&tuning)

	e := &Entity{Kind: KindShield, X: 100, Z: 300}
	assert.Equal(t, OutcomePickup, c.ResolvePickup(e, 0, 0))
	assert.True(t, e.Consumed)

	far := &Entity{Kind: KindShield, X: 0, Z: 900}
	assert.Equal(t, OutcomeNone, c.ResolvePickup(far, 0, 0))
	assert.False(t, far.Consumed)
}
