package sim

import (
	"image/color"

	"github.com/plus3/hunters/arena"
)

// Handle identifies an entity owned by a Registry.
type Handle = arena.Handle

// Defaults for the built-in entity classes.
const (
	DefaultMaxSpeed = 128.0

	PlayerRadius    = 16.0
	PlayerMaxSpeed  = 256.0
	PlayerMaxHealth = 100.0

	EnemyRadius   = 8.0
	EnemyMaxSpeed = DefaultMaxSpeed
)

// Kind tags what role an entity plays. It carries no behavior of its own;
// behavior comes from the optional components attached to the entity.
type Kind uint8

const (
	KindGeneric Kind = iota
	KindPlayer
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "generic"
	}
}

// Targeting is the optional pursuit capability. The target is held through
// a weak arena reference and is never owned by the pursuer.
type Targeting struct {
	target *arena.Ref
}

// Health is carried by player-class entities.
type Health struct {
	Current float64
	Max     float64
}

// Entity is the record stored in the registry arena. Radius and max speed
// are fixed at construction; position only changes through the registry's
// movement operations.
type Entity struct {
	kind      Kind
	position  Vec2
	radius    float64
	maxSpeed  float64
	color     color.RGBA
	targeting *Targeting
	health    *Health
}

// overlapsAt reports whether e, if centred at pos, overlaps other.
func (e *Entity) overlapsAt(pos Vec2, other *Entity) bool {
	reach := e.radius + other.radius
	return pos.DistSq(other.position) <= reach*reach
}

// draw is the per-entity draw hook.
func (e *Entity) draw(surface Surface) {
	surface.FillCircle(e.position, e.radius, e.color)
}

// Spec describes an entity to construct.
type Spec struct {
	Kind     Kind
	Position Vec2
	Radius   float64
	MaxSpeed float64
	Color    color.RGBA

	// Target attaches the targeting capability when not Nil.
	Target Handle
	// Targeting attaches the capability even without an initial target.
	Targeting bool

	Health *Health

	// IgnoreCollision skips the spawn overlap check.
	IgnoreCollision bool
}

// PlayerSpec returns the spec of the cursor-driven player entity.
func PlayerSpec(pos Vec2) Spec {
	return Spec{
		Kind:     KindPlayer,
		Position: pos,
		Radius:   PlayerRadius,
		MaxSpeed: PlayerMaxSpeed,
		Color:    color.RGBA{R: 255, A: 255},
		Health:   &Health{Current: PlayerMaxHealth, Max: PlayerMaxHealth},
	}
}

// EnemySpec returns the spec of a pursuing enemy. target may be Nil.
func EnemySpec(pos Vec2, radius float64, target Handle) Spec {
	return Spec{
		Kind:      KindEnemy,
		Position:  pos,
		Radius:    radius,
		MaxSpeed:  EnemyMaxSpeed,
		Color:     color.RGBA{R: 200, A: 255},
		Target:    target,
		Targeting: true,
	}
}

// GenericSpec returns the spec of a plain circle with no behaviors.
func GenericSpec(pos Vec2, radius float64) Spec {
	return Spec{
		Kind:     KindGeneric,
		Position: pos,
		Radius:   radius,
		MaxSpeed: DefaultMaxSpeed,
		Color:    color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

// View is a read-only snapshot of an entity.
type View struct {
	Handle   Handle
	Kind     Kind
	Position Vec2
	Radius   float64
	MaxSpeed float64
	Color    color.RGBA
	// Target is Nil when the entity has no live target.
	Target Handle
	// Health is a copy of the entity's health, nil when it has none.
	Health *Health
}
