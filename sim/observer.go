package sim

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Observer receives collision and spawn events. Events are informational;
// an observer cannot change the outcome of the operation that raised them.
type Observer interface {
	// CollisionDetected fires when a requested position overlaps other entities.
	CollisionDetected(h Handle, colliding []Handle)
	// CollisionResolved fires when the push-out cleared every overlap.
	CollisionResolved(h Handle, attempted, resolved Vec2)
	// CollisionUnresolved fires when the move was rejected and reverted.
	CollisionUnresolved(h Handle, attempted, reverted Vec2)
	// SpawnRejected fires when a spawn overlapped an existing member.
	SpawnRejected(spec Spec, conflict Handle)
	// SpawnExhausted fires when the spawn-position search ran out of attempts.
	SpawnExhausted(attempts int, radius float64)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) CollisionDetected(Handle, []Handle) {}
func (NopObserver) CollisionResolved(Handle, Vec2, Vec2) {}
func (NopObserver) CollisionUnresolved(Handle, Vec2, Vec2) {}
func (NopObserver) SpawnRejected(Spec, Handle) {}
func (NopObserver) SpawnExhausted(int, float64) {}

// CounterSnapshot is a point-in-time copy of Counters.
type CounterSnapshot struct {
	Collisions       int64
	Resolved         int64
	Unresolved       int64
	SpawnRejections  int64
	SpawnExhaustions int64
}

// Counters tallies observer events.
type Counters struct {
	collisions       atomic.Int64
	resolved         atomic.Int64
	unresolved       atomic.Int64
	spawnRejections  atomic.Int64
	spawnExhaustions atomic.Int64
}

func (c *Counters) CollisionDetected(Handle, []Handle) { c.collisions.Add(1) }
func (c *Counters) CollisionResolved(Handle, Vec2, Vec2) { c.resolved.Add(1) }
func (c *Counters) CollisionUnresolved(Handle, Vec2, Vec2) { c.unresolved.Add(1) }
func (c *Counters) SpawnRejected(Spec, Handle) { c.spawnRejections.Add(1) }
func (c *Counters) SpawnExhausted(int, float64) { c.spawnExhaustions.Add(1) }

// Snapshot returns the current counts.
func (c *Counters) Snapshot() CounterSnapshot {
	return CounterSnapshot{
		Collisions:       c.collisions.Load(),
		Resolved:         c.resolved.Load(),
		Unresolved:       c.unresolved.Load(),
		SpawnRejections:  c.spawnRejections.Load(),
		SpawnExhaustions: c.spawnExhaustions.Load(),
	}
}

// LogObserver writes events to a zap logger. Collisions happen every frame,
// so they are logged at debug level; spawn failures are warnings or errors.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an observer that logs to log.
func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log.Named("sim")}
}

func (o *LogObserver) CollisionDetected(h Handle, colliding []Handle) {
	o.log.Debug("collision detected",
		zap.Uint64("entity", uint64(h)),
		zap.Int("colliding", len(colliding)))
}

func (o *LogObserver) CollisionResolved(h Handle, attempted, resolved Vec2) {
	o.log.Debug("collision resolved",
		zap.Uint64("entity", uint64(h)),
		zap.Float64("attempted_x", attempted.X),
		zap.Float64("attempted_y", attempted.Y),
		zap.Float64("x", resolved.X),
		zap.Float64("y", resolved.Y))
}

func (o *LogObserver) CollisionUnresolved(h Handle, attempted, reverted Vec2) {
	o.log.Debug("collision unresolved, move reverted",
		zap.Uint64("entity", uint64(h)),
		zap.Float64("attempted_x", attempted.X),
		zap.Float64("attempted_y", attempted.Y),
		zap.Float64("x", reverted.X),
		zap.Float64("y", reverted.Y))
}

func (o *LogObserver) SpawnRejected(spec Spec, conflict Handle) {
	o.log.Warn("spawn rejected",
		zap.Stringer("kind", spec.Kind),
		zap.Float64("x", spec.Position.X),
		zap.Float64("y", spec.Position.Y),
		zap.Float64("radius", spec.Radius),
		zap.Uint64("conflict", uint64(conflict)))
}

func (o *LogObserver) SpawnExhausted(attempts int, radius float64) {
	o.log.Error("spawn exhausted",
		zap.Int("attempts", attempts),
		zap.Float64("radius", radius))
}

// MultiObserver fans every event out to each observer in order.
type MultiObserver []Observer

func (m MultiObserver) CollisionDetected(h Handle, colliding []Handle) {
	for _, o := range m {
		o.CollisionDetected(h, colliding)
	}
}

func (m MultiObserver) CollisionResolved(h Handle, attempted, resolved Vec2) {
	for _, o := range m {
		o.CollisionResolved(h, attempted, resolved)
	}
}

func (m MultiObserver) CollisionUnresolved(h Handle, attempted, reverted Vec2) {
	for _, o := range m {
		o.CollisionUnresolved(h, attempted, reverted)
	}
}

func (m MultiObserver) SpawnRejected(spec Spec, conflict Handle) {
	for _, o := range m {
		o.SpawnRejected(spec, conflict)
	}
}

func (m MultiObserver) SpawnExhausted(attempts int, radius float64) {
	for _, o := range m {
		o.SpawnExhausted(attempts, radius)
	}
}
