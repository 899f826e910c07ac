package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value to a preset. The empty string means
// no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPlinkoPreset modifies the config based on a difficulty preset.
// Easy runs get more coins and a gentler drop kick, hard runs fewer coins
// and a wilder kick. Physics constants are left alone.
func ApplyPlinkoPreset(cfg *PlinkoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Coins = 15
		cfg.Physics.MaxKick = 0.5
	case DifficultyNormal:
		cfg.Session.Coins = 10
		cfg.Physics.MaxKick = 1.0
	case DifficultyHard:
		cfg.Session.Coins = 5
		cfg.Physics.MaxKick = 1.5
	}
}
