package sim

import "errors"

// Commands buffers structural changes made while a frame runs. They are
// applied after every system has executed, so no system ever iterates a
// registry that is being modified under it.
type Commands struct {
	spawns   []Spec
	despawns []Handle
	defers   []func()
	failures []error
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn.
func (c *Commands) Spawn(spec Spec) {
	c.spawns = append(c.spawns, spec)
}

// Despawn queues an entity removal.
func (c *Commands) Despawn(h Handle) {
	c.despawns = append(c.despawns, h)
}

// Fail records an error raised by a system. It is returned from the flush.
func (c *Commands) Fail(err error) {
	if err != nil {
		c.failures = append(c.failures, err)
	}
}

// Defer queues a function to run after spawns and removals were applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies every queued command to registry and resets the buffer.
// Removals run first, then spawns, then deferred functions. Failed spawns
// do not stop the flush; their errors are joined into the result together
// with any failure a system recorded.
func (c *Commands) Flush(registry *Registry) error {
	errs := c.failures

	for _, h := range c.despawns {
		registry.Despawn(h)
	}

	for _, spec := range c.spawns {
		if _, err := registry.Spawn(spec); err != nil {
			errs = append(errs, err)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	c.defers = c.defers[:0]
	c.failures = nil

	return errors.Join(errs...)
}
