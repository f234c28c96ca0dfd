package sim_test

import (
	"image/color"
	"testing"

	"github.com/plus3/hunters/sim"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	Center sim.Vec2
	Radius float64
	Color  color.RGBA
}

type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) FillCircle(center sim.Vec2, radius float64, c color.RGBA) {
	s.calls = append(s.calls, drawCall{Center: center, Radius: radius, Color: c})
}

func circle(x, y, radius float64) sim.Spec {
	return sim.GenericSpec(sim.Vec2{X: x, Y: y}, radius)
}

func mustSpawn(t *testing.T, r *sim.Registry, spec sim.Spec) sim.Handle {
	t.Helper()
	h, err := r.Spawn(spec)
	require.NoError(t, err)
	return h
}

func mustPosition(t *testing.T, r *sim.Registry, h sim.Handle) sim.Vec2 {
	t.Helper()
	pos, ok := r.Position(h)
	require.True(t, ok)
	return pos
}
