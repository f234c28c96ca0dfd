package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/hunters/config"
	"github.com/plus3/hunters/sim"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = "report"
	game, err := sim.NewGame(cfg)
	require.NoError(t, err)
	require.NoError(t, game.Bootstrap())
	for range 5 {
		require.NoError(t, game.AdvanceFrame(1.0/60.0, sim.Vec2{X: 100, Y: 100}))
	}

	report := &Report{
		Duration:     time.Second,
		Enemies:      cfg.Enemies.Count,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		TotalUpdates: 5,
		Collisions:   sim.CounterSnapshot{Collisions: 4, Resolved: 3, Unresolved: 1},
		Scheduler:    game.Scheduler().GetStats(),
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Enemies:** 16")
	assert.Contains(t, out, "**Playfield:** 1280x720")
	assert.Contains(t, out, "PlayerSystem")
	assert.Contains(t, out, "PursuitSystem")
	assert.Contains(t, out, "Resolve rate:   75.0%")
	assert.NotContains(t, out, "GC Pause Durations")
}
