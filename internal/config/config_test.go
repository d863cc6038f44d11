package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/forest-escape/internal/forest"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// isolate points the home directory and working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestDefaultRules(t *testing.T) {
	assert.Equal(t, forest.DefaultRules(), Default().Rules())
	assert.NoError(t, Default().Validate())
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "custom.yaml", `
game:
  tick_interval: 250ms
  start_lives: 2
server:
  address: ":2222"
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Game.TickInterval)
	assert.Equal(t, 2, cfg.Game.StartLives)
	assert.Equal(t, 5, cfg.Game.MaxLives, "unset keys keep defaults")
	assert.Equal(t, ":2222", cfg.Server.Address)
	assert.Equal(t, 30*time.Minute, cfg.Server.IdleTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"malformed", writeConfig(t, dir, "bad.yaml", "game: [unclosed")},
		{"invalid values", writeConfig(t, dir, "invalid.yaml", "game:\n  start_lives: 9\n")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			assert.Error(t, err)
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "embedded default when nothing else exists")

	writeConfig(t, work, filepath.Join("configs", FileName), "log:\n  level: warn\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level, "local configs directory")

	writeConfig(t, home, filepath.Join(".forest", "config.yaml"), "log:\n  level: error\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level, "user config wins over local")
}

func TestLoadSkipsUnparsableSearchFiles(t *testing.T) {
	home, _ := isolate(t)
	writeConfig(t, home, filepath.Join(".forest", "config.yaml"), "{{{")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"start equals max", func(c *Config) { c.Game.StartLives = c.Game.MaxLives }, true},
		{"zero tick", func(c *Config) { c.Game.TickInterval = 0 }, false},
		{"zero start lives", func(c *Config) { c.Game.StartLives = 0 }, false},
		{"start above max", func(c *Config) { c.Game.StartLives = 6 }, false},
		{"negative duration", func(c *Config) { c.Game.PowerUpDuration = -1 }, false},
		{"zero wolf interval", func(c *Config) { c.Game.WolfInterval = 0 }, false},
		{"zero vision", func(c *Config) { c.Game.VisionRadius = 0 }, false},
		{"negative idle", func(c *Config) { c.Server.IdleTimeout = -time.Second }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := isolate(t)

	assert.Equal(t, filepath.Join(home, ".forest", "scores.db"), ExpandHome("~/.forest/scores.db"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/tmp/x.db", ExpandHome("/tmp/x.db"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}
