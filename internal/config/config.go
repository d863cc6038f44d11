// Package config provides YAML-based configuration loading for Forest Escape.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/forest-escape/internal/forest"
)

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Levels  LevelsConfig  `yaml:"levels"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig holds the simulation tunables and the tick cadence.
type GameConfig struct {
	TickInterval       time.Duration `yaml:"tick_interval"`
	MaxLives           int           `yaml:"max_lives"`
	StartLives         int           `yaml:"start_lives"`
	PowerUpDuration    int           `yaml:"powerup_duration"`     // in ticks
	WolfInterval       int           `yaml:"wolf_interval"`        // in ticks
	SlowedWolfInterval int           `yaml:"slowed_wolf_interval"` // in ticks, while speed is active
	VisionRadius       int           `yaml:"vision_radius"`
}

// StorageConfig locates the scores database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LevelsConfig locates extra level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// ServerConfig configures `forest serve`.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	HostKey     string        `yaml:"host_key"` // generated under ~/.forest when empty
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	rules := forest.DefaultRules()
	return Config{
		Game: GameConfig{
			TickInterval:       time.Second,
			MaxLives:           rules.MaxLives,
			StartLives:         rules.StartLives,
			PowerUpDuration:    rules.PowerUpDuration,
			WolfInterval:       rules.WolfInterval,
			SlowedWolfInterval: rules.SlowedWolfInterval,
			VisionRadius:       rules.VisionRadius,
		},
		Storage: StorageConfig{DBPath: "~/.forest/scores.db"},
		Levels:  LevelsConfig{Dir: "~/.forest/levels"},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Rules converts the game section into simulation rules.
func (c Config) Rules() forest.Rules {
	return forest.Rules{
		MaxLives:           c.Game.MaxLives,
		StartLives:         c.Game.StartLives,
		PowerUpDuration:    c.Game.PowerUpDuration,
		WolfInterval:       c.Game.WolfInterval,
		SlowedWolfInterval: c.Game.SlowedWolfInterval,
		VisionRadius:       c.Game.VisionRadius,
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	g := c.Game

	if g.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("game.tick_interval must be positive, got %s", g.TickInterval))
	}
	positive := []struct {
		name  string
		value int
	}{
		{"game.max_lives", g.MaxLives},
		{"game.powerup_duration", g.PowerUpDuration},
		{"game.wolf_interval", g.WolfInterval},
		{"game.slowed_wolf_interval", g.SlowedWolfInterval},
		{"game.vision_radius", g.VisionRadius},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.value))
		}
	}
	if g.StartLives < 1 || g.StartLives > g.MaxLives {
		errs = append(errs, fmt.Errorf("game.start_lives must be in [1, %d], got %d", g.MaxLives, g.StartLives))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
