package sim

import (
	"fmt"

	"github.com/plus3/hunters/arena"
)

// SetTarget makes h pursue target, attaching the targeting capability to h
// if it does not have one yet. Many entities may share a target.
func (r *Registry) SetTarget(h, target Handle) error {
	e := r.store.Get(h)
	if e == nil {
		return fmt.Errorf("set target on %d: %w", h, ErrUnknownEntity)
	}
	ref := r.store.Ref(target)
	if ref == nil {
		return fmt.Errorf("set target %d: %w", target, ErrUnknownEntity)
	}

	if e.targeting == nil {
		e.targeting = &Targeting{}
	}
	e.targeting.target = ref
	return nil
}

// ClearTarget unbinds the target of h. The capability itself stays attached.
func (r *Registry) ClearTarget(h Handle) {
	if e := r.store.Get(h); e != nil && e.targeting != nil {
		e.targeting.target = nil
	}
}

// Target returns the live target of h.
func (r *Registry) Target(h Handle) (Handle, bool) {
	e := r.store.Get(h)
	if e == nil {
		return arena.Nil, false
	}
	return r.resolveTarget(e)
}

func (r *Registry) resolveTarget(e *Entity) (Handle, bool) {
	if e.targeting == nil {
		return arena.Nil, false
	}
	return r.store.Resolve(e.targeting.target)
}

// MoveTowardsTarget moves h one step toward the current position of its
// target and reports whether h touches the target afterwards. Entities
// without a live target do not move.
func (r *Registry) MoveTowardsTarget(h Handle, dt float64) bool {
	e := r.store.Get(h)
	if e == nil {
		return false
	}
	target, ok := r.resolveTarget(e)
	if !ok {
		return false
	}

	pos, _ := r.Position(target)
	if _, err := r.MoveTowards(h, pos, dt); err != nil {
		return false
	}
	return r.IsColliding(h, target)
}

// IsCollidingTarget reports whether h overlaps its live target.
func (r *Registry) IsCollidingTarget(h Handle) bool {
	target, ok := r.Target(h)
	if !ok {
		return false
	}
	return r.IsColliding(h, target)
}
