package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	World      WorldConfig      `toml:"world"`
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
}

type WorldConfig struct {
	InitialCapacity int `toml:"initial_capacity"` // entities and column slots to pre-size
}

type SimulationConfig struct {
	Entities int     `toml:"entities"` // extra moving entities on top of the two seeded ones
	Steps    int     `toml:"steps"`
	DT       float64 `toml:"dt"` // seconds per step
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the TOML file at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.World.InitialCapacity < 0 {
		return fmt.Errorf("world.initial_capacity must not be negative, got %d", c.World.InitialCapacity)
	}
	if c.Simulation.Entities < 0 {
		return fmt.Errorf("simulation.entities must not be negative, got %d", c.Simulation.Entities)
	}
	if c.Simulation.Steps < 0 {
		return fmt.Errorf("simulation.steps must not be negative, got %d", c.Simulation.Steps)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		World: WorldConfig{
			InitialCapacity: 64,
		},
		Simulation: SimulationConfig{
			Entities: 0,
			Steps:    1,
			DT:       5.0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
