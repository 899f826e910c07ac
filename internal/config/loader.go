package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "plinko.yaml"

// LoadPlinko loads the game configuration.
// Search order: customPath -> ~/.plinko/configs/plinko.yaml -> ./configs/plinko.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadPlinko(customPath string) (PlinkoConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPlinkoConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultPlinkoConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPlinkoYAML)
	if err != nil {
		return DefaultPlinkoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hard-coded defaults and validates the result.
func parse(data []byte) (PlinkoConfig, error) {
	cfg := DefaultPlinkoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c PlinkoConfig) Validate() error {
	switch {
	case c.Physics.Gravity < 0:
		return fmt.Errorf("physics.gravity must be >= 0, got %v", c.Physics.Gravity)
	case c.Physics.Damping <= 0 || c.Physics.Damping > 1:
		return fmt.Errorf("physics.damping must be in (0, 1], got %v", c.Physics.Damping)
	case c.Physics.MaxKick <= 0:
		return fmt.Errorf("physics.max_kick must be > 0, got %v", c.Physics.MaxKick)
	case c.Coin.Radius <= 0 || c.Coin.Radius > MaxCoinRadius:
		return fmt.Errorf("coin.radius must be in (0, %v], got %v", MaxCoinRadius, c.Coin.Radius)
	case c.Coin.StartY < 0:
		return fmt.Errorf("coin.start_y must be >= 0, got %v", c.Coin.StartY)
	case c.Session.Coins <= 0:
		return fmt.Errorf("session.coins must be > 0, got %d", c.Session.Coins)
	case c.Session.AimStep <= 0:
		return fmt.Errorf("session.aim_step must be > 0, got %v", c.Session.AimStep)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".plinko", "configs", filename)
}
