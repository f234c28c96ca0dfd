package debugui

import "github.com/plus3/hunters/sim"

// Install builds the debug windows for game and registers the overlay system
// on its scheduler. The returned system exposes the input capture state.
func Install(game *sim.Game) *ImguiSystem {
	browser := NewEntityBrowser(100)
	inspector := NewEntityInspector()
	perf := NewPerformanceStats(120)
	timer := NewFrameTimer()

	system := &ImguiSystem{}
	system.Add(func() {
		browser.Render(game.Registry())
	})
	system.Add(func() {
		inspector.Render(game.Registry(), browser.Selected())
	})
	system.Add(func() {
		perf.Render(game, timer.GetDeltaTime())
	})

	game.Scheduler().Register(system)
	return system
}
