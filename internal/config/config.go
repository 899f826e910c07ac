// Package config provides YAML-based configuration loading for the plinko
// game: physics constants, coin geometry, session inventory and audio.
package config

// PlinkoConfig contains all tunable configuration for the game.
// Board styles themselves are a closed set of presets and are not configurable.
type PlinkoConfig struct {
	Physics PlinkoPhysics `yaml:"physics"`
	Coin    PlinkoCoin    `yaml:"coin"`
	Session PlinkoSession `yaml:"session"`
	Audio   PlinkoAudio   `yaml:"audio"`
}

// PlinkoPhysics defines the simulation constants.
type PlinkoPhysics struct {
	Gravity float64 `yaml:"gravity"`  // Added to vy every tick
	Damping float64 `yaml:"damping"`  // Speed retained after a peg contact
	MaxKick float64 `yaml:"max_kick"` // Bound of the random initial vx on drop
}

// MaxCoinRadius is the largest coin every board style can hold. Peg
// push-out runs after the wall clamp, so a coin must fit between a side wall
// and the outermost lattice peg (modern: 30 - 6 = 2 * 12).
const MaxCoinRadius = 12.0

// PlinkoCoin defines the coin geometry.
type PlinkoCoin struct {
	Radius float64 `yaml:"radius"`
	StartY float64 `yaml:"start_y"` // Vertical position of a fresh coin
}

// PlinkoSession defines run parameters.
type PlinkoSession struct {
	Coins   int     `yaml:"coins"`    // Coin inventory at the start of a run
	Style   string  `yaml:"style"`    // Initial board style: "modern" or "classic"
	AimStep float64 `yaml:"aim_step"` // Board units moved per keyboard nudge
}

// PlinkoAudio defines sound effect settings.
type PlinkoAudio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}
