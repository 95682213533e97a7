package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// FileName is the configuration file looked up in the search path.
const FileName = "asteroids.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.asteroids/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default.
// Files are layered over Default, so a partial file overrides only the keys it names.
// The result is validated.
func Load(customPath string) (AsteroidsConfig, string, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

func load(customPath string) (AsteroidsConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", FileName)
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, local, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultAsteroidsYAML)
	if err != nil {
		return Default(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (AsteroidsConfig, error) {
	cfg := Default()
	// Sprites replace the default table only when the document has one.
	cfg.Sprites = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if cfg.Sprites == nil {
		cfg.Sprites = Default().Sprites
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg AsteroidsConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", filename)
}

// ParsePreset converts a flag value into a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", &core.ConfigurationError{
			Op:   "config.preset",
			Name: name,
			Err:  errors.New("want one of easy, normal, hard, fixed"),
		}
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Asteroids.MaxFragments = 3
		cfg.Asteroids.MinSpeed = 1.5
		cfg.Asteroids.MaxSpeed = 2.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Asteroids.MaxFragments = 5
		cfg.Asteroids.MinSpeed = 3
		cfg.Asteroids.MaxSpeed = 4
	}
}
