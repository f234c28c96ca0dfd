package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/hunters/config"
	"github.com/plus3/hunters/debugui"
	debugui_ebiten "github.com/plus3/hunters/debugui/ebiten"
	"github.com/plus3/hunters/sim"
)

// Game implements ebiten.Game and draws the debug overlay over the simulation.
type Game struct {
	game    *sim.Game
	overlay *debugui.ImguiSystem
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.backend.BeginFrame()

	input := sim.Input{}
	if !g.overlay.InputState.WantCaptureMouse {
		x, y := ebiten.CursorPosition()
		input = sim.Input{PlayerTarget: sim.Vec2{X: float64(x), Y: float64(y)}, HasTarget: true}
	}
	err := g.game.Scheduler().Once(1.0/60.0, input)

	// End ImGui frame after systems complete
	g.backend.EndFrame()

	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	cfg := config.Default()
	backend := debugui_ebiten.NewImguiBackend("Hunters ImGui Example", cfg.Window.Width, cfg.Window.Height)

	game, err := sim.NewGame(cfg)
	if err != nil {
		panic(err)
	}
	if err := game.Bootstrap(); err != nil {
		panic(err)
	}

	if err := ebiten.RunGame(&Game{
		game:    game,
		overlay: debugui.Install(game),
		backend: backend,
	}); err != nil {
		panic(err)
	}
}
