package sim_test

import (
	"errors"
	"fmt"

	"github.com/plus3/hunters/sim"
)

// ExampleRegistry_MoveTowards shows a capped step followed by a snap onto
// the target once it is within reach.
func ExampleRegistry_MoveTowards() {
	r := sim.NewRegistry()

	spec := sim.GenericSpec(sim.Vec2{X: 0, Y: 0}, 10)
	spec.MaxSpeed = 50
	h, _ := r.Spawn(spec)

	target := sim.Vec2{X: 80, Y: 0}
	for range 2 {
		r.MoveTowards(h, target, 1)
		pos, _ := r.Position(h)
		fmt.Printf("(%.0f, %.0f)\n", pos.X, pos.Y)
	}

	// Output:
	// (50, 0)
	// (80, 0)
}

// ExampleRegistry_Spawn shows a spawn rejected because it overlaps an
// existing member.
func ExampleRegistry_Spawn() {
	r := sim.NewRegistry()
	r.Spawn(sim.GenericSpec(sim.Vec2{X: 0, Y: 0}, 10))

	_, err := r.Spawn(sim.GenericSpec(sim.Vec2{X: 5, Y: 0}, 10))
	fmt.Println(errors.Is(err, sim.ErrPlacementConflict))
	fmt.Println(r.Len())

	// Output:
	// true
	// 1
}

// ExampleRegistry_MoveTowardsTarget shows pursuit stopping once the target
// is gone.
func ExampleRegistry_MoveTowardsTarget() {
	r := sim.NewRegistry()

	player, _ := r.Spawn(sim.PlayerSpec(sim.Vec2{X: 300, Y: 0}))
	enemy, _ := r.Spawn(sim.EnemySpec(sim.Vec2{X: 0, Y: 0}, sim.EnemyRadius, player))

	r.MoveTowardsTarget(enemy, 1)
	pos, _ := r.Position(enemy)
	fmt.Printf("chasing: (%.0f, %.0f)\n", pos.X, pos.Y)

	r.Despawn(player)
	r.MoveTowardsTarget(enemy, 1)
	pos, _ = r.Position(enemy)
	_, hasTarget := r.Target(enemy)
	fmt.Printf("target gone: (%.0f, %.0f) %v\n", pos.X, pos.Y, hasTarget)

	// Output:
	// chasing: (128, 0)
	// target gone: (128, 0) false
}
