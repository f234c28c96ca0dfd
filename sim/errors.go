package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrPlacementConflict is returned when a spawned entity overlaps an existing member.
	ErrPlacementConflict = errors.New("spawned entity collides with an existing entity")
	// ErrSpawnExhausted is returned when no free spawn position was found within the retry bound.
	ErrSpawnExhausted = errors.New("unable to find a spawn position without overlap")
	// ErrInvalidSpec is returned for entity specs with a non-positive radius or negative speed.
	ErrInvalidSpec = errors.New("invalid entity spec")
	// ErrUnknownEntity is returned when a handle does not name a live entity.
	ErrUnknownEntity = errors.New("unknown entity")
)

// PlacementError describes a rejected spawn.
type PlacementError struct {
	Position Vec2
	Radius   float64
	// Conflict is the first existing member the new entity overlapped.
	Conflict Handle
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("spawn at (%.2f, %.2f) radius %.2f: %v", e.Position.X, e.Position.Y, e.Radius, ErrPlacementConflict)
}

func (e *PlacementError) Unwrap() error {
	return ErrPlacementConflict
}

// SpawnError describes an exhausted spawn-position search.
type SpawnError struct {
	Attempts int
	Radius   float64
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%v after %d retries (radius %.2f)", ErrSpawnExhausted, e.Attempts, e.Radius)
}

func (e *SpawnError) Unwrap() error {
	return ErrSpawnExhausted
}
