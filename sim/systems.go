package sim

import "fmt"

// PlayerSystem steers the player toward the sampled input target.
type PlayerSystem struct {
	Player Handle

	// LastMove is the outcome of the player's most recent move.
	LastMove MoveResult
}

func (s *PlayerSystem) Execute(frame *UpdateFrame) {
	if !frame.Input.HasTarget || !frame.Registry.Alive(s.Player) {
		return
	}
	result, err := frame.Registry.MoveTowards(s.Player, frame.Input.PlayerTarget, frame.DeltaTime)
	if err != nil {
		frame.Commands.Fail(fmt.Errorf("player: %w", err))
		return
	}
	s.LastMove = result
}

// PursuitSystem moves every enemy of a population toward its target.
type PursuitSystem struct {
	Population *Population

	// Touching is the number of enemies touching their target after the last frame.
	Touching int
}

func (s *PursuitSystem) Execute(frame *UpdateFrame) {
	s.Touching = s.Population.MoveEnemies(frame.DeltaTime)
}
