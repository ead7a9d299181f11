package config

// DifficultyPreset selects one of the built-in difficulty profiles.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a textual preset name, returning false for
// unknown names.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// ApplyPreset adjusts a game configuration in place for the preset.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg *Game, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		cfg.Ball.Speed = 600
		cfg.Paddle.Width = 8
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Ball.Speed = 1000
		cfg.Paddle.Width = 4
		cfg.Rules.BrickHitPoints = 2
	}
}
