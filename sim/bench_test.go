package sim_test

import (
	"testing"

	"github.com/plus3/hunters/arena"
	"github.com/plus3/hunters/config"
	"github.com/plus3/hunters/sim"
)

func BenchmarkSpawnIgnoringCollision(b *testing.B) {
	r := sim.NewRegistry()
	spec := circle(0, 0, 8)
	spec.IgnoreCollision = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Spawn(spec)
	}
}

func BenchmarkTestCollision(b *testing.B) {
	r := sim.NewRegistry()
	p := sim.NewPopulation(r, sim.PopulationConfigFrom(config.Default()), seeded(1))
	for range 60 {
		if _, err := p.SpawnEnemy(arena.Nil); err != nil {
			b.Fatal(err)
		}
	}
	h := p.Members()[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.TestCollision(h)
	}
}

func BenchmarkAdvanceFrame(b *testing.B) {
	cfg := config.Default()
	cfg.Seed = "bench"
	cfg.Enemies.Count = 60

	game, err := sim.NewGame(cfg)
	if err != nil {
		b.Fatal(err)
	}
	if err := game.Bootstrap(); err != nil {
		b.Fatal(err)
	}
	target := sim.Vec2{X: 100, Y: 100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := game.AdvanceFrame(1.0/120.0, target); err != nil {
			b.Fatal(err)
		}
	}
}
