package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricMapGetIsStable(t *testing.T) {
	r := NewRegistry()
	a := r.Counters.Get("engine.ticks")
	b := r.Counters.Get("engine.ticks")
	require.Same(t, a, b)

	a.Add(3)
	assert.Equal(t, int64(3), b.Load())
	assert.Equal(t, 1, r.TotalCount())
}

func TestSamplesSortedByType(t *testing.T) {
	r := NewRegistry()
	r.Gauges.Get("fps").Set(59.5)
	r.Counters.Get("spawn.obstacles").Add(4)
	r.Counters.Get("hits.shield").Add(1)
	r.Flags.Get("paused").Store(true)

	got := r.Samples()
	require.Len(t, got, 4)
	assert.Equal(t, []Sample{
		{Key: "hits.shield", Value: 1},
		{Key: "spawn.obstacles", Value: 4},
		{Key: "fps", Value: 59.5},
		{Key: "paused", Value: 1},
	}, got)
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	assert.InDelta(t, 4000.0, f.Get(), 1e-9)
}
