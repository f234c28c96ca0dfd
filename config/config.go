// Package config loads simulation settings from YAML on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Placement names accepted for enemies.placement.
const (
	PlacementEdge    = "edge"
	PlacementUniform = "uniform"
)

// Config is the full set of tunables for a run.
type Config struct {
	Window    Window    `yaml:"window"`
	Player    Player    `yaml:"player"`
	Enemies   Enemies   `yaml:"enemies"`
	Collision Collision `yaml:"collision"`
	Logging   Logging   `yaml:"logging"`
	Seed      string    `yaml:"seed,omitempty"`
}

// Window doubles as the playfield: entities live in [0, Width] x [0, Height].
type Window struct {
	Width          int      `yaml:"width"`
	Height         int      `yaml:"height"`
	Title          string   `yaml:"title"`
	FramerateLimit int      `yaml:"framerate_limit"`
	Background     [3]uint8 `yaml:"background"`
}

type Player struct {
	Radius   float64 `yaml:"radius"`
	MaxSpeed float64 `yaml:"max_speed"`
}

type Enemies struct {
	Count        int     `yaml:"count"`
	Radius       float64 `yaml:"radius"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Placement    string  `yaml:"placement"`
	MaxRetries   int     `yaml:"max_retries"`
	ColourMinRed uint8   `yaml:"colour_min_red"`
	ColourMaxRed uint8   `yaml:"colour_max_red"`
}

// Collision tunes the overlap resolver.
type Collision struct {
	// Epsilon scales the extra push applied after the overlap push-out.
	Epsilon float64 `yaml:"epsilon"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// Output is a zap sink: "stderr", "stdout" or a file path.
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{
			Width:          1280,
			Height:         720,
			Title:          "Cursor Hunters",
			FramerateLimit: 120,
			Background:     [3]uint8{255, 255, 255},
		},
		Player: Player{
			Radius:   16.0,
			MaxSpeed: 256.0,
		},
		Enemies: Enemies{
			Count:        16,
			Radius:       8.0,
			MaxSpeed:     128.0,
			Placement:    PlacementEdge,
			MaxRetries:   100,
			ColourMinRed: 128,
			ColourMaxRed: 255,
		},
		Collision: Collision{
			Epsilon: 0.01,
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
	}
}

// Load reads a YAML file at path over the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable by the simulation.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Errorf("window size must be at least 1x1, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FramerateLimit < 0 {
		errs = append(errs, fmt.Errorf("window.framerate_limit must not be negative"))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player.radius must be positive"))
	}
	if c.Player.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("player.max_speed must not be negative"))
	}
	if c.Enemies.Count < 0 {
		errs = append(errs, fmt.Errorf("enemies.count must not be negative"))
	}
	if c.Enemies.Radius <= 0 {
		errs = append(errs, fmt.Errorf("enemies.radius must be positive"))
	}
	if c.Enemies.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("enemies.max_speed must not be negative"))
	}
	if c.Enemies.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("enemies.max_retries must be at least 1"))
	}
	if c.Enemies.Placement != PlacementEdge && c.Enemies.Placement != PlacementUniform {
		errs = append(errs, fmt.Errorf("enemies.placement %q is not one of %q, %q", c.Enemies.Placement, PlacementEdge, PlacementUniform))
	}
	if c.Enemies.ColourMinRed > c.Enemies.ColourMaxRed {
		errs = append(errs, fmt.Errorf("enemies.colour_min_red exceeds colour_max_red"))
	}
	if c.Collision.Epsilon < 0 {
		errs = append(errs, fmt.Errorf("collision.epsilon must not be negative"))
	}

	return errors.Join(errs...)
}

// RandSeed derives the random seed for the run. A named seed is hashed so the
// same name always replays the same spawns; an empty seed uses the clock.
func (c Config) RandSeed() uint64 {
	if c.Seed == "" {
		return uint64(time.Now().UnixNano())
	}
	return xxhash.Sum64String(c.Seed)
}

// FrameInterval is the minimum time between frames, zero when uncapped.
func (c Config) FrameInterval() time.Duration {
	if c.Window.FramerateLimit <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Window.FramerateLimit)
}
