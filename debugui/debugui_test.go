package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/hunters/arena"
	"github.com/plus3/hunters/sim"
)

func browserWith(t *testing.T) (*EntityBrowser, *sim.Registry, []sim.Handle) {
	t.Helper()

	r := sim.NewRegistry()
	player, err := r.Spawn(sim.PlayerSpec(sim.Vec2{X: 300, Y: 300}))
	require.NoError(t, err)
	near, err := r.Spawn(sim.EnemySpec(sim.Vec2{X: 100, Y: 0}, 12, player))
	require.NoError(t, err)
	far, err := r.Spawn(sim.EnemySpec(sim.Vec2{X: 0, Y: 500}, 8, player))
	require.NoError(t, err)

	eb := NewEntityBrowser(10)
	eb.rebuildCache(r)
	return eb, r, []sim.Handle{player, near, far}
}

func handlesOf(views []sim.View) []sim.Handle {
	out := make([]sim.Handle, len(views))
	for i, v := range views {
		out[i] = v.Handle
	}
	return out
}

func TestEntityBrowserSort(t *testing.T) {
	eb, _, h := browserWith(t)
	player, near, far := h[0], h[1], h[2]

	eb.sortEntities()
	assert.Equal(t, []sim.Handle{player, near, far}, handlesOf(eb.cache.entities))

	eb.cache.sortColumn = 3
	eb.sortEntities()
	assert.Equal(t, []sim.Handle{far, near, player}, handlesOf(eb.cache.entities))

	eb.cache.sortAscending = false
	eb.sortEntities()
	assert.Equal(t, []sim.Handle{player, near, far}, handlesOf(eb.cache.entities))

	eb.cache.sortColumn = 2
	eb.cache.sortAscending = true
	eb.sortEntities()
	assert.Equal(t, []sim.Handle{far, near, player}, handlesOf(eb.cache.entities))
}

func TestEntityBrowserFilter(t *testing.T) {
	eb, r, h := browserWith(t)

	assert.Len(t, eb.filteredEntities(), 3)

	eb.filterText = "ENEMY"
	assert.Equal(t, []sim.Handle{h[1], h[2]}, handlesOf(eb.filteredEntities()))

	eb.filterText = formatHandle(h[0])
	assert.Equal(t, []sim.Handle{h[0]}, handlesOf(eb.filteredEntities()))

	eb.filterText = "nothing"
	assert.Empty(t, eb.filteredEntities())

	r.Despawn(h[1])
	eb.rebuildCache(r)
	eb.filterText = "enemy"
	assert.Equal(t, []sim.Handle{h[2]}, handlesOf(eb.filteredEntities()))
}

func TestFormatHandle(t *testing.T) {
	assert.Equal(t, "7:3", formatHandle(arena.NewHandle(3, 7)))
	assert.Equal(t, "0:0", formatHandle(arena.Nil))
}

func TestPerformanceStatsRecord(t *testing.T) {
	ps := NewPerformanceStats(4)

	assert.InDelta(t, 2.5, ps.record(0.010), 1e-4)
	assert.InDelta(t, 7.5, ps.record(0.020), 1e-4)
	ps.record(0.010)
	assert.InDelta(t, 12.5, ps.record(0.010), 1e-4)

	// The oldest frame is overwritten once the history wraps.
	assert.InDelta(t, 15, ps.record(0.020), 1e-4)
	assert.Equal(t, 1, ps.frameIndex)
}

func TestImguiSystemAdd(t *testing.T) {
	var calls int
	system := &ImguiSystem{}
	system.Add(func() { calls++ })
	system.Add(func() { calls += 10 })

	require.Len(t, system.Items, 2)
	system.Items[0].Render()
	system.Items[1].Render()
	assert.Equal(t, 11, calls)
}
