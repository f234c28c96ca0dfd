// Command hunters runs the pursuit simulation in an ebiten window. The player
// follows the mouse cursor and the enemies hunt the player.
package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/hunters/config"
	"github.com/plus3/hunters/debugui"
	debugui_ebiten "github.com/plus3/hunters/debugui/ebiten"
	"github.com/plus3/hunters/logging"
	"github.com/plus3/hunters/render/screen"
	"github.com/plus3/hunters/sim"
)

// maxFrameDelta caps the simulated time of a single frame after a stall, such
// as a window drag.
const maxFrameDelta = 100 * time.Millisecond

type Game struct {
	game       *sim.Game
	surface    *screen.Surface
	background color.RGBA
	log        *zap.Logger

	overlay *debugui.ImguiSystem
	backend *debugui_ebiten.ImguiBackend

	lastFrame time.Time
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults are used when empty.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	antialias := flag.Bool("antialias", true, "Antialias circle edges.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	game, err := sim.NewGame(cfg, sim.WithGameObserver(sim.NewLogObserver(logger)))
	if err != nil {
		logger.Fatal("create game", zap.Error(err))
	}
	if err := game.Bootstrap(); err != nil {
		logger.Fatal("bootstrap", zap.Error(err))
	}
	logger.Info("game started",
		zap.String("title", game.Title()),
		zap.Int("enemies", game.Population().Len()),
		zap.Bool("debug", *debug),
	)

	bg := cfg.Window.Background
	g := &Game{
		game:       game,
		surface:    screen.New(*antialias),
		background: color.RGBA{R: bg[0], G: bg[1], B: bg[2], A: 255},
		log:        logger,
		lastFrame:  time.Now(),
	}

	if *debug {
		g.backend = debugui_ebiten.NewImguiBackend(game.Title(), cfg.Window.Width, cfg.Window.Height)
		g.overlay = debugui.Install(game)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(game.Title())
	if cfg.Window.FramerateLimit > 0 {
		ebiten.SetTPS(cfg.Window.FramerateLimit)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}

	counters := game.Counters().Snapshot()
	logger.Info("game stopped",
		zap.Int64("collisions", counters.Collisions),
		zap.Int64("resolved", counters.Resolved),
		zap.Int64("reverted", counters.Unresolved),
	)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := min(now.Sub(g.lastFrame), maxFrameDelta)
	g.lastFrame = now

	if g.backend != nil {
		g.backend.BeginFrame()
		defer g.backend.EndFrame()
	}

	input := sim.Input{}
	if g.overlay == nil || !g.overlay.InputState.WantCaptureMouse {
		x, y := ebiten.CursorPosition()
		input = sim.Input{PlayerTarget: sim.Vec2{X: float64(x), Y: float64(y)}, HasTarget: true}
	}

	if err := g.game.Scheduler().Once(dt.Seconds(), input); err != nil {
		g.log.Error("frame", zap.Error(err))
	}
	return nil
}

func (g *Game) Draw(img *ebiten.Image) {
	g.surface.Target(img)
	g.surface.Clear(g.background)
	g.game.DrawAll(g.surface)

	if g.backend != nil {
		g.backend.Draw(img)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
