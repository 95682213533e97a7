package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultAsteroidsYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseLayersOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte("ship:\n  max_speed: 12\ngameplay:\n  lives: 2\n"))
	require.NoError(t, err)

	want := Default()
	want.Ship.MaxSpeed = 12
	want.Gameplay.Lives = 2
	assert.Equal(t, want, cfg)
}

func TestParseReplacesSpriteTable(t *testing.T) {
	cfg, err := Parse([]byte("sprites:\n  ship:\n    glyph: \"^\"\n    width: 10\n    height: 10\n"))
	require.NoError(t, err)

	assert.Len(t, cfg.Sprites, 1)
	assert.Equal(t, SpriteConfig{Glyph: "^", Width: 10, Height: 10}, cfg.Sprites["ship"])

	var cerr *core.ConfigurationError
	require.True(t, errors.As(cfg.Validate(), &cerr))
	assert.Equal(t, "sprites.laser", cerr.Name)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("ship: [1, 2"))
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("laser:\n  max_alive: 6\n"), 0o644))

	cfg, source, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 6, cfg.Laser.MaxAlive)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("gameplay:\n  lives: 0\n"), 0o644))
	_, _, err = Load(bad)
	var cerr *core.ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "gameplay.lives", cerr.Name)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, source, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "embedded", source)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", FileName), []byte("laser:\n  speed: 40\n"), 0o644))
	cfg, source, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", FileName), source)
	assert.Equal(t, 40.0, cfg.Laser.Speed)

	userDir := filepath.Join(home, ".asteroids")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, FileName), []byte("laser:\n  speed: 50\n"), 0o644))
	cfg, source, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userDir, FileName), source)
	assert.Equal(t, 50.0, cfg.Laser.Speed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AsteroidsConfig)
		field  string
	}{
		{"world", func(c *AsteroidsConfig) { c.World.Width = 0 }, "world"},
		{"missing sprite", func(c *AsteroidsConfig) { delete(c.Sprites, "smoke") }, "sprites.smoke"},
		{"sprite color", func(c *AsteroidsConfig) {
			s := c.Sprites["ship"]
			s.Color = "plaid"
			c.Sprites["ship"] = s
		}, "sprites.ship"},
		{"ship speed", func(c *AsteroidsConfig) { c.Ship.MaxSpeed = 0 }, "ship.max_speed"},
		{"drag", func(c *AsteroidsConfig) { c.Ship.Drag = 1 }, "ship.drag"},
		{"immortality", func(c *AsteroidsConfig) { c.Ship.ImmortalFrames = 0 }, "ship.immortal_frames"},
		{"lasers", func(c *AsteroidsConfig) { c.Laser.MaxAlive = 0 }, "laser.max_alive"},
		{"smoke color", func(c *AsteroidsConfig) { c.Smoke.To = "nope" }, "smoke"},
		{"lives", func(c *AsteroidsConfig) { c.Gameplay.Lives = 0 }, "gameplay.lives"},
		{"progression", func(c *AsteroidsConfig) { c.Difficulty.Progression.Type = "time" }, "difficulty.progression.type"},
		{"fragments", func(c *AsteroidsConfig) { c.Asteroids.MaxFragments = 1 }, "max_fragments"},
		{"sprite per level", func(c *AsteroidsConfig) { c.Asteroids.MaxLevel = 4 }, "sprites.asteroid_4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			var cerr *core.ConfigurationError
			require.True(t, errors.As(cfg.Validate(), &cerr))
			assert.Equal(t, tt.field, cerr.Name)
		})
	}
}

func TestSpriteNamesFollowMaxLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"ship", "laser", "smoke", "asteroid_1", "asteroid_2", "asteroid_3"}, cfg.SpriteNames())

	cfg.Asteroids.MaxLevel = 4
	cfg.Sprites[AsteroidSprite(4)] = SpriteConfig{Glyph: ".", Color: "white", Width: 15, Height: 15}
	assert.Contains(t, cfg.SpriteNames(), "asteroid_4")
	require.NoError(t, cfg.Validate())
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		lives   int
		initial float64
	}{
		{DifficultyEasy, true, 5, 0.0},
		{DifficultyNormal, true, 4, 0.3},
		{DifficultyHard, true, 2, 0.7},
		{DifficultyFixed, false, 4, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tt.preset)

			assert.Equal(t, tt.enabled, cfg.Difficulty.Enabled)
			assert.Equal(t, tt.lives, cfg.Gameplay.Lives)
			assert.Equal(t, tt.initial, cfg.Difficulty.InitialLevel)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	p, err = ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	_, err = ParsePreset("insane")
	var cerr *core.ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "insane", cerr.Name)
}

func TestMarshalIsParseable(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_speed: 10")
}
