package sim

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"slices"

	"github.com/plus3/hunters/arena"
	"github.com/plus3/hunters/config"
)

// PopulationConfig controls where and how enemies are spawned.
type PopulationConfig struct {
	Width        float64
	Height       float64
	// Placement is config.PlacementEdge or config.PlacementUniform.
	Placement    string
	Radius       float64
	MaxSpeed     float64
	MaxRetries   int
	ColourMinRed uint8
	ColourMaxRed uint8
}

// PopulationConfigFrom builds a PopulationConfig from run configuration.
func PopulationConfigFrom(cfg config.Config) PopulationConfig {
	return PopulationConfig{
		Width:        float64(cfg.Window.Width),
		Height:       float64(cfg.Window.Height),
		Placement:    cfg.Enemies.Placement,
		Radius:       cfg.Enemies.Radius,
		MaxSpeed:     cfg.Enemies.MaxSpeed,
		MaxRetries:   cfg.Enemies.MaxRetries,
		ColourMinRed: cfg.Enemies.ColourMinRed,
		ColourMaxRed: cfg.Enemies.ColourMaxRed,
	}
}

// Population spawns enemies at free positions and drives their pursuit.
// It tracks enemy handles only; the registry owns the entities.
type Population struct {
	registry *Registry
	cfg      PopulationConfig
	rng      *rand.Rand
	members  []Handle
}

// NewPopulation creates a population that spawns into registry.
func NewPopulation(registry *Registry, cfg PopulationConfig, rng *rand.Rand) *Population {
	if registry == nil {
		panic("sim: NewPopulation with nil registry")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}

	p := &Population{
		registry: registry,
		cfg:      cfg,
		rng:      rng,
	}
	registry.OnDespawn(p.forget)
	return p
}

func (p *Population) forget(h Handle) {
	if i := slices.Index(p.members, h); i >= 0 {
		p.members = slices.Delete(p.members, i, i+1)
	}
}

// SpawnEnemy finds a position clear of every tracked enemy, spawns an enemy
// there pursuing target and starts tracking it. A candidate the registry
// rejects, for example because it overlaps the player, uses up an attempt.
// The search gives up after MaxRetries attempts with a *SpawnError.
func (p *Population) SpawnEnemy(target Handle) (Handle, error) {
	for range p.cfg.MaxRetries {
		pos := p.candidate()
		if !p.isClear(pos) {
			continue
		}

		spec := EnemySpec(pos, p.cfg.Radius, target)
		spec.MaxSpeed = p.cfg.MaxSpeed
		spec.Color = p.colour()

		h, err := p.registry.Spawn(spec)
		if errors.Is(err, ErrPlacementConflict) {
			continue
		}
		if err != nil {
			return arena.Nil, err
		}
		p.members = append(p.members, h)
		return h, nil
	}

	p.registry.observer.SpawnExhausted(p.cfg.MaxRetries, p.cfg.Radius)
	return arena.Nil, &SpawnError{Attempts: p.cfg.MaxRetries, Radius: p.cfg.Radius}
}

func (p *Population) isClear(pos Vec2) bool {
	for _, h := range p.members {
		other, ok := p.registry.Entity(h)
		if !ok {
			continue
		}
		reach := p.cfg.Radius + other.Radius
		if pos.DistSq(other.Position) <= reach*reach {
			return false
		}
	}
	return true
}

func (p *Population) candidate() Vec2 {
	w, h := p.cfg.Width, p.cfg.Height
	if p.cfg.Placement == config.PlacementUniform {
		return Vec2{X: p.rng.Float64() * w, Y: p.rng.Float64() * h}
	}

	switch p.rng.IntN(4) {
	case 0:
		return Vec2{X: p.intIn(w), Y: 0}
	case 1:
		return Vec2{X: p.intIn(w), Y: h}
	case 2:
		return Vec2{X: 0, Y: p.intIn(h)}
	default:
		return Vec2{X: w, Y: p.intIn(h)}
	}
}

// intIn returns an integer coordinate in [0, limit].
func (p *Population) intIn(limit float64) float64 {
	n := int(limit)
	if n <= 0 {
		return 0
	}
	return float64(p.rng.IntN(n + 1))
}

func (p *Population) colour() color.RGBA {
	lo, hi := int(p.cfg.ColourMinRed), int(p.cfg.ColourMaxRed)
	if hi < lo {
		lo, hi = hi, lo
	}
	return color.RGBA{R: uint8(lo + p.rng.IntN(hi-lo+1)), A: 255}
}

// MoveEnemies steps every tracked enemy toward its target, in spawn order,
// and returns how many ended the step touching their target. Later enemies
// see the positions earlier enemies committed this frame.
func (p *Population) MoveEnemies(dt float64) int {
	touching := 0
	for _, h := range p.members {
		if p.registry.MoveTowardsTarget(h, dt) {
			touching++
		}
	}
	return touching
}

// Members returns a copy of the tracked enemy handles in spawn order.
func (p *Population) Members() []Handle {
	return slices.Clone(p.members)
}

// Len returns the number of tracked enemies.
func (p *Population) Len() int {
	return len(p.members)
}
