package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaRetainCompactsInPlace(t *testing.T) {
	a := NewArena(8)
	for i := range 6 {
		a.Add(Entity{ID: uint64(i + 1), Z: float64(i)})
	}

	visits := 0
	a.Retain(func(e *Entity) bool {
		visits++
		e.Z += 100
		return e.ID%2 == 0
	})
	assert.Equal(t, 6, visits)
	require.Equal(t, 3, a.Len())

	var ids []uint64
	a.Each(func(e *Entity) {
		ids = append(ids, e.ID)
		assert.GreaterOrEqual(t, e.Z, 100.0, "mutation kept")
	})
	assert.Equal(t, []uint64{2, 4, 6}, ids)

	// Tail slots are zeroed
	tail := a.slots[:6]
	for _, e := range tail[3:] {
		assert.Zero(t, e)
	}
}

func TestArenaNoAllocation(t *testing.T) {
	a := NewArena(16)
	allocs := testing.AllocsPerRun(20, func() {
		for i := range 16 {
			a.Add(Entity{ID: uint64(i)})
		}
		a.Retain(func(e *Entity) bool { return e.ID < 8 })
		a.Clear()
	})
	assert.Zero(t, allocs)
}

func TestArenaClear(t *testing.T) {
	a := NewArena(2)
	a.Add(Entity{ID: 1})
	a.Add(Entity{ID: 2})
	a.Add(Entity{ID: 3})
	a.Clear()
	assert.Zero(t, a.Len())
}
