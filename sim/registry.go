// Package sim is the simulation core: circle entities, their registry,
// collision-aware movement, pursuit and enemy population control.
//
// The core is single threaded. A Registry and everything bound to it must be
// driven from one goroutine; drivers that read input elsewhere hand it over
// through a channel before the frame runs.
package sim

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/plus3/hunters/arena"
)

// DefaultResolveEpsilon scales the extra push applied after a collision push-out.
const DefaultResolveEpsilon = 0.01

// Registry owns every live entity. It answers overlap queries, performs
// collision-aware movement and dispatches drawing in insertion order.
type Registry struct {
	store *arena.Store[Entity]
	order []Handle

	observer     Observer
	epsilon      float64
	despawnHooks []func(Handle)
}

// Option configures a Registry.
type Option func(*Registry)

// WithObserver routes collision and spawn events to o.
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithResolveEpsilon sets the push-out buffer scale used by ResolveCollision.
func WithResolveEpsilon(epsilon float64) Option {
	return func(r *Registry) {
		r.epsilon = epsilon
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		store:    arena.NewStore[Entity](64),
		observer: NopObserver{},
		epsilon:  DefaultResolveEpsilon,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Observer returns the observer events are delivered to.
func (r *Registry) Observer() Observer {
	return r.observer
}

// Spawn constructs an entity from spec and adds it to the registry.
//
// Unless spec.IgnoreCollision is set, the new entity is checked against every
// existing member and rejected with a *PlacementError on the first overlap.
// A rejected entity is discarded and never becomes a member.
func (r *Registry) Spawn(spec Spec) (Handle, error) {
	if err := validateSpec(spec); err != nil {
		return arena.Nil, err
	}

	e := Entity{
		kind:     spec.Kind,
		position: spec.Position,
		radius:   spec.Radius,
		maxSpeed: spec.MaxSpeed,
		color:    spec.Color,
	}
	if spec.Health != nil {
		health := *spec.Health
		e.health = &health
	}

	if !spec.IgnoreCollision {
		for _, h := range r.order {
			if e.overlapsAt(e.position, r.store.Get(h)) {
				r.observer.SpawnRejected(spec, h)
				return arena.Nil, &PlacementError{Position: spec.Position, Radius: spec.Radius, Conflict: h}
			}
		}
	}

	if spec.Targeting || !spec.Target.IsNil() {
		e.targeting = &Targeting{target: r.store.Ref(spec.Target)}
	}

	h := r.store.Insert(e)
	r.order = append(r.order, h)
	return h, nil
}

func validateSpec(spec Spec) error {
	if !(spec.Radius > 0) || math.IsInf(spec.Radius, 0) {
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidSpec, spec.Radius)
	}
	if !(spec.MaxSpeed >= 0) {
		return fmt.Errorf("%w: max speed %v must not be negative", ErrInvalidSpec, spec.MaxSpeed)
	}
	return nil
}

// TestCollision returns every other member that overlaps h at its current
// position, in insertion order. An unknown handle yields nil.
func (r *Registry) TestCollision(h Handle) []Handle {
	e := r.store.Get(h)
	if e == nil {
		return nil
	}

	var colliding []Handle
	for _, other := range r.order {
		if other == h {
			continue
		}
		if e.overlapsAt(e.position, r.store.Get(other)) {
			colliding = append(colliding, other)
		}
	}
	return colliding
}

// Draw renders every member onto surface in insertion order.
func (r *Registry) Draw(surface Surface) {
	for _, h := range r.order {
		r.store.Get(h).draw(surface)
	}
}

// Despawn removes h immediately. Weak target references to it stop
// resolving and despawn hooks run. Returns false if h was not a member.
//
// Systems must not call Despawn while a frame is running; they queue the
// removal on UpdateFrame.Commands instead.
func (r *Registry) Despawn(h Handle) bool {
	if !r.store.Remove(h) {
		return false
	}
	if i := slices.Index(r.order, h); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	for _, hook := range r.despawnHooks {
		hook(h)
	}
	return true
}

// OnDespawn registers fn to run after each successful Despawn.
func (r *Registry) OnDespawn(fn func(Handle)) {
	r.despawnHooks = append(r.despawnHooks, fn)
}

// Alive reports whether h names a current member.
func (r *Registry) Alive(h Handle) bool {
	return r.store.Alive(h)
}

// Len returns the number of members.
func (r *Registry) Len() int {
	return len(r.order)
}

// Handles returns a copy of the member handles in insertion order.
func (r *Registry) Handles() []Handle {
	return slices.Clone(r.order)
}

// Position returns the current position of h.
func (r *Registry) Position(h Handle) (Vec2, bool) {
	e := r.store.Get(h)
	if e == nil {
		return Vec2{}, false
	}
	return e.position, true
}

// Entity returns a snapshot of h.
func (r *Registry) Entity(h Handle) (View, bool) {
	e := r.store.Get(h)
	if e == nil {
		return View{}, false
	}
	return r.view(h, e), true
}

// Views iterates snapshots of every member in insertion order.
func (r *Registry) Views() iter.Seq[View] {
	return func(yield func(View) bool) {
		for _, h := range r.order {
			if !yield(r.view(h, r.store.Get(h))) {
				return
			}
		}
	}
}

func (r *Registry) view(h Handle, e *Entity) View {
	v := View{
		Handle:   h,
		Kind:     e.kind,
		Position: e.position,
		Radius:   e.radius,
		MaxSpeed: e.maxSpeed,
		Color:    e.color,
	}
	if target, ok := r.resolveTarget(e); ok {
		v.Target = target
	}
	if e.health != nil {
		health := *e.health
		v.Health = &health
	}
	return v
}
