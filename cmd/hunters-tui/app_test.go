package main

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/plus3/hunters/audio"
	"github.com/plus3/hunters/config"
	"github.com/plus3/hunters/sim"
)

func newTestApp(t *testing.T) *app {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(128, 36)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Seed = "tui"
	game, err := sim.NewGame(cfg)
	require.NoError(t, err)
	require.NoError(t, game.Bootstrap())

	return newApp(screen, game, audio.NewBlipper(), zaptest.NewLogger(t))
}

func TestAppMouseSteersPlayer(t *testing.T) {
	a := newTestApp(t)
	start, ok := a.game.Registry().Position(a.game.Player())
	require.True(t, ok)

	a.events <- tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)
	input := a.sample()
	require.True(t, input.HasTarget)
	assert.True(t, input.PlayerTarget.Eq(sim.Vec2{X: 5, Y: 10}, 1e-9), "target %v", input.PlayerTarget)

	require.NoError(t, a.game.Scheduler().Once(0.05, input))

	pos, ok := a.game.Registry().Position(a.game.Player())
	require.True(t, ok)
	assert.Less(t, pos.Sub(a.input.PlayerTarget).Len(), start.Sub(a.input.PlayerTarget).Len())
}

func TestAppWithoutInputKeepsPlayer(t *testing.T) {
	a := newTestApp(t)
	start, _ := a.game.Registry().Position(a.game.Player())

	require.NoError(t, a.game.Scheduler().Once(0.02, a.sample()))

	pos, _ := a.game.Registry().Position(a.game.Player())
	assert.Equal(t, start, pos)
}

func TestAppDrawsPlayerAndStatus(t *testing.T) {
	a := newTestApp(t)
	a.draw()

	screen := a.screen.(tcell.SimulationScreen)
	cells, width, _ := screen.GetContents()

	// The player sits in the middle of the playfield.
	centre := cells[18*width+64]
	_, bg, _ := centre.Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bg)

	var status []rune
	for _, c := range cells[:width] {
		if len(c.Runes) > 0 {
			status = append(status, c.Runes[0])
		}
	}
	assert.Contains(t, string(status), a.game.Title())
}

func TestAppResize(t *testing.T) {
	a := newTestApp(t)
	screen := a.screen.(tcell.SimulationScreen)

	screen.SetSize(64, 18)
	assert.True(t, a.handleEvent(tcell.NewEventResize(64, 18)))

	a.handleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	assert.True(t, a.input.PlayerTarget.Eq(sim.Vec2{X: 10, Y: 20}, 1e-9), "target %v", a.input.PlayerTarget)
}

func TestAppFramePresents(t *testing.T) {
	a := newTestApp(t)
	screen := a.screen.(tcell.SimulationScreen)

	require.NoError(t, a.game.Scheduler().Once(0.02, a.sample()))

	cells, width, _ := screen.GetContents()
	var status []rune
	for _, c := range cells[:width] {
		if len(c.Runes) > 0 {
			status = append(status, c.Runes[0])
		}
	}
	assert.Contains(t, string(status), "enemies 16")
}

func TestAppSampleQuits(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	a.quit = cancel

	a.events <- tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)
	a.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	input := a.sample()

	assert.True(t, input.HasTarget)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
