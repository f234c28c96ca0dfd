package arena_test

import (
	"fmt"
	"testing"

	"github.com/plus3/hunters/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y float64
}

func TestHandleEncoding(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("generation=%d,index=%d", tt.generation, tt.index), func(t *testing.T) {
			h := arena.NewHandle(tt.generation, tt.index)
			assert.Equal(t, tt.generation, h.Generation())
			assert.Equal(t, tt.index, h.Index())
		})
	}

	assert.True(t, arena.Nil.IsNil())
}

func TestInsertAndGet(t *testing.T) {
	store := arena.NewStore[point](0)

	h := store.Insert(point{X: 3, Y: 4})
	assert.False(t, h.IsNil())
	assert.Equal(t, 1, store.Len())

	p := store.Get(h)
	require.NotNil(t, p)
	assert.Equal(t, point{X: 3, Y: 4}, *p)

	p.X = 10
	assert.Equal(t, 10.0, store.Get(h).X)
}

func TestGetUnknownHandle(t *testing.T) {
	store := arena.NewStore[point](0)

	assert.Nil(t, store.Get(arena.Nil))
	assert.Nil(t, store.Get(arena.NewHandle(1, 42)))
	assert.False(t, store.Alive(arena.NewHandle(1, 0)))
}

func TestRemoveMakesHandleStale(t *testing.T) {
	store := arena.NewStore[point](0)

	h := store.Insert(point{X: 1})
	require.True(t, store.Remove(h))

	assert.Nil(t, store.Get(h))
	assert.False(t, store.Alive(h))
	assert.Equal(t, 0, store.Len())
	assert.False(t, store.Remove(h))
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	store := arena.NewStore[point](0)

	first := store.Insert(point{X: 1})
	store.Remove(first)
	second := store.Insert(point{X: 2})

	assert.Equal(t, first.Index(), second.Index())
	assert.NotEqual(t, first.Generation(), second.Generation())
	assert.Nil(t, store.Get(first))
	assert.Equal(t, 2.0, store.Get(second).X)
}

func TestPointersStableAcrossGrowth(t *testing.T) {
	store := arena.NewStore[point](0)

	h := store.Insert(point{X: 7})
	p := store.Get(h)

	for i := 0; i < 500; i++ {
		store.Insert(point{X: float64(i)})
	}

	assert.Same(t, p, store.Get(h))
	assert.Equal(t, 7.0, p.X)

	// Writes through the old pointer land in the stored slot.
	p.X = 9
	assert.Equal(t, 9.0, store.Get(h).X)
}

func TestIterSlotOrder(t *testing.T) {
	store := arena.NewStore[point](0)

	a := store.Insert(point{X: 1})
	b := store.Insert(point{X: 2})
	c := store.Insert(point{X: 3})
	store.Remove(b)

	var seen []arena.Handle
	for h, p := range store.Iter() {
		seen = append(seen, h)
		assert.NotNil(t, p)
	}

	assert.Equal(t, []arena.Handle{a, c}, seen)
}

func TestIterEarlyExit(t *testing.T) {
	store := arena.NewStore[point](0)
	for i := 0; i < 10; i++ {
		store.Insert(point{X: float64(i)})
	}

	count := 0
	for range store.Iter() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}
