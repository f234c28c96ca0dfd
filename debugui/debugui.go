// Package debugui provides a Dear ImGui debug overlay for the simulation.
// Windows are queued as deferred commands by ImguiSystem, so they render after
// every system of the frame ran and may safely spawn or despawn entities.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hunters/sim"
)

// ImguiItem holds a Dear ImGui render function that runs once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming input. Frame drivers
// check it before steering the player with the mouse.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every item and refreshes the
// input capture state.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Add appends a render function to the overlay.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

func (i *ImguiSystem) Execute(frame *sim.UpdateFrame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}
