// Package config provides configuration loading and access for the arena.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all arena configuration parameters.
type Config struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Observation ObservationConfig `yaml:"observation"`
	Reward      RewardConfig      `yaml:"reward"`
	Player      ShipConfig        `yaml:"player"`
	Enemy       ShipConfig        `yaml:"enemy"`
	Missile     MissileConfig     `yaml:"missile"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Display     DisplayConfig     `yaml:"display"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ArenaConfig holds the playfield dimensions and enemy spawning rules.
type ArenaConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between enemy pair spawns
	EnemyMargin   float64 `yaml:"enemy_margin"`   // Spawn distance from the side walls
	EnemySpeed    float64 `yaml:"enemy_speed"`
}

// ObservationConfig holds the resolution of the grayscale observation.
type ObservationConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RewardConfig holds the reward policy.
type RewardConfig struct {
	Survival float64 `yaml:"survival"` // Paid on every non-terminal tick
	Penalty  float64 `yaml:"penalty"`  // Paid once on the terminating tick
}

// ShipConfig describes one ship class.
type ShipConfig struct {
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	Acceleration    float64 `yaml:"acceleration"`     // Speed change per accelerate/decelerate
	TurningRate     float64 `yaml:"turning_rate"`     // Degrees per tick
	HitPoints       int     `yaml:"hit_points"`
	MissileCooldown int     `yaml:"missile_cooldown"` // Ticks that must pass before the next shot
	IconWidth       int     `yaml:"icon_width"`
	IconHeight      int     `yaml:"icon_height"`
}

// MissileConfig describes missiles.
type MissileConfig struct {
	Speed          float64 `yaml:"speed"`
	HitPoints      int     `yaml:"hit_points"`
	SpawnClearance float64 `yaml:"spawn_clearance"`
	IconWidth      int     `yaml:"icon_width"`
	IconHeight     int     `yaml:"icon_height"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogEvery int `yaml:"log_every"`
}

// DisplayConfig holds manual-play window parameters.
type DisplayConfig struct {
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WidthF  float64 // Arena.Width as float64
	HeightF float64 // Arena.Height as float64
	CenterX float64
	CenterY float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena size %dx%d", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Arena.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval %d", ErrInvalid, c.Arena.SpawnInterval)
	case c.Observation.Width <= 0 || c.Observation.Height <= 0:
		return fmt.Errorf("%w: observation size %dx%d", ErrInvalid, c.Observation.Width, c.Observation.Height)
	}
	for name, s := range map[string]ShipConfig{"player": c.Player, "enemy": c.Enemy} {
		if s.MinSpeed > s.MaxSpeed {
			return fmt.Errorf("%w: %s speed bounds [%v, %v]", ErrInvalid, name, s.MinSpeed, s.MaxSpeed)
		}
		if s.IconWidth <= 0 || s.IconHeight <= 0 {
			return fmt.Errorf("%w: %s icon %dx%d", ErrInvalid, name, s.IconWidth, s.IconHeight)
		}
	}
	if c.Missile.IconWidth <= 0 || c.Missile.IconHeight <= 0 {
		return fmt.Errorf("%w: missile icon %dx%d", ErrInvalid, c.Missile.IconWidth, c.Missile.IconHeight)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.WidthF = float64(c.Arena.Width)
	c.Derived.HeightF = float64(c.Arena.Height)
	// Integer halves keep the player start on a pixel boundary.
	c.Derived.CenterX = float64(c.Arena.Width / 2)
	c.Derived.CenterY = float64(c.Arena.Height / 2)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
