package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/hunters/audio"
	"github.com/plus3/hunters/render/term"
	"github.com/plus3/hunters/sim"
)

// presentSystem queues the screen update after the frame's other commands.
type presentSystem struct {
	app *app
}

func (s *presentSystem) Execute(frame *sim.UpdateFrame) {
	frame.Commands.Defer(s.app.present)
}

type app struct {
	screen     tcell.Screen
	game       *sim.Game
	surface    *term.Surface
	background color.RGBA
	blipper    *audio.Blipper
	log        *zap.Logger

	input          sim.Input
	lastCollisions int64

	events chan tcell.Event
	quit   context.CancelFunc
}

func newApp(screen tcell.Screen, game *sim.Game, blipper *audio.Blipper, log *zap.Logger) *app {
	cfg := game.Config()
	bg := cfg.Window.Background
	a := &app{
		screen:     screen,
		game:       game,
		surface:    term.New(screen, float64(cfg.Window.Width), float64(cfg.Window.Height)),
		background: color.RGBA{R: bg[0], G: bg[1], B: bg[2], A: 255},
		blipper:    blipper,
		log:        log,
		events:     make(chan tcell.Event, 100),
	}
	game.Scheduler().Register(&presentSystem{app: a})
	return a
}

// handleEvent applies one terminal event and reports whether the game keeps
// running.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		a.input = sim.Input{PlayerTarget: a.surface.ToWorld(col, row), HasTarget: true}

	case *tcell.EventResize:
		a.surface.Resize()
		a.screen.Sync()
	}

	return true
}

// present plays a blip if new collisions happened and redraws the screen.
func (a *app) present() {
	collisions := a.game.Counters().Snapshot().Collisions
	if collisions > a.lastCollisions {
		a.blipper.PlayCollision()
	}
	a.lastCollisions = collisions

	a.draw()
}

func (a *app) draw() {
	a.surface.Clear(a.background)
	a.game.DrawAll(a.surface)

	stats := a.game.Registry().CollectStats()
	status := fmt.Sprintf(" %s | enemies %d | collisions %d ",
		a.game.Title(), stats.KindCounts[sim.KindEnemy], a.lastCollisions)
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	for i, r := range status {
		a.screen.SetContent(i, 0, r, nil, style)
	}

	a.screen.Show()
}

// sample drains pending terminal events and returns the input for the next
// frame. A quit event cancels the run.
func (a *app) sample() sim.Input {
	for {
		select {
		case ev := <-a.events:
			if !a.handleEvent(ev) && a.quit != nil {
				a.quit()
			}
		default:
			return a.input
		}
	}
}

// run drives the scheduler at the configured frame rate until the player
// quits or a frame fails.
func (a *app) run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.quit = cancel

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case a.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	err := a.game.Scheduler().Run(ctx, a.game.Config().FrameInterval(), a.sample)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
