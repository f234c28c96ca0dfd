package sim

// System is one step of a frame. Systems run in registration order and may
// keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// Input is what the frame driver sampled before the frame.
type Input struct {
	// PlayerTarget is the point the player steers toward, usually the cursor.
	PlayerTarget Vec2
	HasTarget    bool
}

type UpdateFrame struct {
	DeltaTime float64
	Input     Input
	Commands  *Commands
	Registry  *Registry
}

func newUpdateFrame(dt float64, input Input, registry *Registry) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Input:     input,
		Commands:  newCommands(),
		Registry:  registry,
	}
}
