package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/hunters/arena"
	"github.com/plus3/hunters/config"
)

// Version is the game release the simulation reproduces.
const Version = "2.2.0"

// Game wires a registry, an enemy population and the frame systems that
// drive them. It is the surface frame drivers program against.
type Game struct {
	cfg        config.Config
	registry   *Registry
	population *Population
	scheduler  *Scheduler
	counters   *Counters

	player  *PlayerSystem
	pursuit *PursuitSystem
}

type gameOptions struct {
	observer Observer
	rng      *rand.Rand
}

// GameOption configures NewGame.
type GameOption func(*gameOptions)

// WithGameObserver adds o to the observers receiving collision and spawn events.
func WithGameObserver(o Observer) GameOption {
	return func(opts *gameOptions) {
		opts.observer = o
	}
}

// WithRand replaces the random source used for enemy placement. By default
// the source is seeded from the configuration.
func WithRand(rng *rand.Rand) GameOption {
	return func(opts *gameOptions) {
		opts.rng = rng
	}
}

// NewGame builds an empty game from cfg. Call Bootstrap to populate it.
func NewGame(cfg config.Config, opts ...GameOption) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}

	var o gameOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := cfg.RandSeed()
		o.rng = rand.New(rand.NewPCG(seed, seed))
	}

	counters := &Counters{}
	observers := MultiObserver{counters}
	if o.observer != nil {
		observers = append(observers, o.observer)
	}

	registry := NewRegistry(
		WithObserver(observers),
		WithResolveEpsilon(cfg.Collision.Epsilon),
	)

	g := &Game{
		cfg:        cfg,
		registry:   registry,
		population: NewPopulation(registry, PopulationConfigFrom(cfg), o.rng),
		scheduler:  NewScheduler(registry),
		counters:   counters,
		player:     &PlayerSystem{},
	}
	g.pursuit = &PursuitSystem{Population: g.population}

	g.scheduler.Register(g.player)
	g.scheduler.Register(g.pursuit)

	return g, nil
}

// SpawnPlayer spawns the player at pos and makes it the entity steered by
// frame input.
func (g *Game) SpawnPlayer(pos Vec2) (Handle, error) {
	spec := PlayerSpec(pos)
	spec.Radius = g.cfg.Player.Radius
	spec.MaxSpeed = g.cfg.Player.MaxSpeed

	h, err := g.registry.Spawn(spec)
	if err != nil {
		return arena.Nil, err
	}
	g.player.Player = h
	return h, nil
}

// SpawnEnemy spawns one enemy pursuing target.
func (g *Game) SpawnEnemy(target Handle) (Handle, error) {
	return g.population.SpawnEnemy(target)
}

// Bootstrap spawns the player at the centre of the playfield, then the
// configured number of enemies hunting it. It stops at the first failure.
func (g *Game) Bootstrap() error {
	centre := Vec2{X: float64(g.cfg.Window.Width) / 2, Y: float64(g.cfg.Window.Height) / 2}
	player, err := g.SpawnPlayer(centre)
	if err != nil {
		return fmt.Errorf("bootstrap player: %w", err)
	}

	for i := range g.cfg.Enemies.Count {
		if _, err := g.SpawnEnemy(player); err != nil {
			return fmt.Errorf("bootstrap enemy %d of %d: %w", i+1, g.cfg.Enemies.Count, err)
		}
	}
	return nil
}

// AdvanceFrame runs one frame: the player moves toward playerTarget, then
// every enemy moves toward its target.
func (g *Game) AdvanceFrame(dt float64, playerTarget Vec2) error {
	return g.scheduler.Once(dt, Input{PlayerTarget: playerTarget, HasTarget: true})
}

// DrawAll renders every entity onto surface.
func (g *Game) DrawAll(surface Surface) {
	g.registry.Draw(surface)
}

// Player returns the handle of the player, Nil before SpawnPlayer.
func (g *Game) Player() Handle {
	return g.player.Player
}

// Touching returns how many enemies touched their target in the last frame.
func (g *Game) Touching() int {
	return g.pursuit.Touching
}

func (g *Game) Config() config.Config {
	return g.cfg
}

func (g *Game) Registry() *Registry {
	return g.registry
}

func (g *Game) Population() *Population {
	return g.population
}

func (g *Game) Scheduler() *Scheduler {
	return g.scheduler
}

func (g *Game) Counters() *Counters {
	return g.counters
}

func (g *Game) Version() string {
	return Version
}

// Title is the window title, e.g. "Cursor Hunters V2.2.0".
func (g *Game) Title() string {
	return fmt.Sprintf("%s V%s", g.cfg.Window.Title, Version)
}
