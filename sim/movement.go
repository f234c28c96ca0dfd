package sim

import "fmt"

// MoveResult reports how a position change was settled.
type MoveResult uint8

const (
	// MoveCommitted means the requested position was taken as is.
	MoveCommitted MoveResult = iota
	// MoveResolved means an overlap was pushed out and the adjusted position was kept.
	MoveResolved
	// MoveReverted means the push-out failed and the entity stayed where it was.
	MoveReverted
)

func (m MoveResult) String() string {
	switch m {
	case MoveCommitted:
		return "committed"
	case MoveResolved:
		return "resolved"
	case MoveReverted:
		return "reverted"
	default:
		return fmt.Sprintf("MoveResult(%d)", uint8(m))
	}
}

// MoveTowards moves h in a straight line toward target by at most
// maxSpeed*dt. When the remaining distance fits in one step the entity snaps
// exactly onto target. A negative dt is treated as zero.
func (r *Registry) MoveTowards(h Handle, target Vec2, dt float64) (MoveResult, error) {
	e := r.store.Get(h)
	if e == nil {
		return MoveCommitted, fmt.Errorf("move %d: %w", h, ErrUnknownEntity)
	}

	delta := target.Sub(e.position)
	dist := delta.Len()
	step := max(0, e.maxSpeed*dt)

	if dist <= step {
		return r.SetPosition(h, target, false)
	}
	return r.SetPosition(h, e.position.Add(delta.Scale(step/dist)), false)
}

// SetPosition moves h to p. Unless ignoreCollision is set, an overlap with
// other members is pushed out once; if the pushed position still overlaps,
// the move is reverted and h keeps its original position.
func (r *Registry) SetPosition(h Handle, p Vec2, ignoreCollision bool) (MoveResult, error) {
	e := r.store.Get(h)
	if e == nil {
		return MoveCommitted, fmt.Errorf("set position %d: %w", h, ErrUnknownEntity)
	}

	original := e.position
	e.position = p
	if ignoreCollision {
		return MoveCommitted, nil
	}

	colliding := r.TestCollision(h)
	if len(colliding) == 0 {
		return MoveCommitted, nil
	}

	r.observer.CollisionDetected(h, colliding)
	if _, ok := r.resolve(h, e, original, p, colliding); !ok {
		return MoveReverted, nil
	}
	return MoveResolved, nil
}

// ResolveCollision pushes h out of every entity in colliding, starting from
// attempted. The result is committed when it clears all overlaps; otherwise h
// is put back at original. The committed position is returned.
func (r *Registry) ResolveCollision(h Handle, original, attempted Vec2, colliding []Handle) Vec2 {
	e := r.store.Get(h)
	if e == nil {
		return original
	}
	pos, _ := r.resolve(h, e, original, attempted, colliding)
	return pos
}

func (r *Registry) resolve(h Handle, e *Entity, original, attempted Vec2, colliding []Handle) (Vec2, bool) {
	var push Vec2
	for _, c := range colliding {
		other := r.store.Get(c)
		if other == nil {
			continue
		}

		away := attempted.Sub(other.position)
		dist := away.Len()
		dir := away.Normalized()
		if dist == 0 {
			dir = Vec2{X: 1}
		}

		depth := max(0, e.radius+other.radius-dist)
		push = push.Add(dir.Scale(depth))
	}

	adjusted := attempted.Add(push).Add(push.Scale(r.epsilon))
	e.position = adjusted

	if len(r.TestCollision(h)) > 0 {
		e.position = original
		r.observer.CollisionUnresolved(h, attempted, original)
		return original, false
	}

	r.observer.CollisionResolved(h, attempted, adjusted)
	return adjusted, true
}

// IsColliding reports whether a and b overlap. A missing entity never collides.
func (r *Registry) IsColliding(a, b Handle) bool {
	ea, eb := r.store.Get(a), r.store.Get(b)
	if ea == nil || eb == nil {
		return false
	}
	return ea.overlapsAt(ea.position, eb)
}
