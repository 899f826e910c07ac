package config

import (
	_ "embed"
)

//go:embed defaults/plinko.yaml
var defaultPlinkoYAML []byte

// DefaultPlinkoConfig returns the built-in configuration.
func DefaultPlinkoConfig() PlinkoConfig {
	return PlinkoConfig{
		Physics: PlinkoPhysics{
			Gravity: 0.15,
			Damping: 0.7,
			MaxKick: 1.0,
		},
		Coin: PlinkoCoin{
			Radius: 12,
			StartY: 40,
		},
		Session: PlinkoSession{
			Coins:   10,
			Style:   "modern",
			AimStep: 10,
		},
		Audio: PlinkoAudio{
			Enabled: false,
			Volume:  0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML, suitable as a template
// for a user config file.
func GetDefaultYAML() []byte {
	return defaultPlinkoYAML
}
