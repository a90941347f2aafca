package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	assert.True(t, t2.After(t1), "t1=%v t2=%v", t1, t2)
	assert.GreaterOrEqual(t, t2.Sub(t1), 5*time.Millisecond)
}

func TestMockTimeProviderAdvance(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	require.True(t, mock.Now().Equal(testEpoch))

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)
	assert.True(t, mock.Now().Equal(testEpoch.Add(90*time.Minute)))
}

func TestPausableClockExcludesPausedSpan(t *testing.T) {
	base := NewMockTimeProvider(testEpoch)
	clock := NewPausableClock(base)

	base.Advance(time.Second)
	assert.Equal(t, time.Second, clock.Now().Sub(testEpoch))

	clock.Pause()
	require.True(t, clock.IsPaused())
	frozen := clock.Now()

	base.Advance(5 * time.Second)
	assert.True(t, clock.Now().Equal(frozen), "game time frozen during pause")
	assert.Equal(t, 5*time.Second, clock.TotalPauseDuration())

	clock.Resume()
	base.Advance(2 * time.Second)
	assert.Equal(t, 3*time.Second, clock.Now().Sub(testEpoch))
	assert.Equal(t, 5*time.Second, clock.TotalPauseDuration())
}

func TestPausableClockIdempotentTransitions(t *testing.T) {
	base := NewMockTimeProvider(testEpoch)
	clock := NewPausableClock(base)

	clock.Resume()
	assert.False(t, clock.IsPaused())

	clock.Pause()
	base.Advance(time.Second)
	clock.Pause()
	base.Advance(time.Second)
	clock.Resume()
	assert.Equal(t, 2*time.Second, clock.TotalPauseDuration())
}
