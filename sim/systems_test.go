package sim_test

import (
	"testing"

	"github.com/plus3/hunters/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSystem(t *testing.T) {
	r := sim.NewRegistry()
	player := mustSpawn(t, r, sim.PlayerSpec(sim.Vec2{X: 0, Y: 0}))
	mustSpawn(t, r, circle(100, 0, 10))

	sys := &sim.PlayerSystem{Player: player}
	s := sim.NewScheduler(r)
	s.Register(sys)

	require.NoError(t, s.Once(0.1, sim.Input{PlayerTarget: sim.Vec2{X: 0, Y: 50}, HasTarget: true}))
	assert.Equal(t, sim.MoveCommitted, sys.LastMove)

	// Snapping onto the obstacle's centre gets pushed back out.
	_, err := r.SetPosition(player, sim.Vec2{X: 60, Y: 0}, true)
	require.NoError(t, err)
	require.NoError(t, s.Once(1, sim.Input{PlayerTarget: sim.Vec2{X: 100, Y: 0}, HasTarget: true}))
	assert.NotEqual(t, sim.MoveCommitted, sys.LastMove)
	assert.Empty(t, r.TestCollision(player))

	// Without a target the player stays put and the last outcome is kept.
	last := sys.LastMove
	before := mustPosition(t, r, player)
	require.NoError(t, s.Once(1, sim.Input{}))
	assert.Equal(t, before, mustPosition(t, r, player))
	assert.Equal(t, last, sys.LastMove)

	r.Despawn(player)
	assert.NoError(t, s.Once(1, sim.Input{PlayerTarget: sim.Vec2{X: 5, Y: 5}, HasTarget: true}))
}
