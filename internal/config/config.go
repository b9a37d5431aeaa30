// Package config provides YAML-based maze configuration loading and
// difficulty presets.
package config

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Density    DensityConfig    `yaml:"density"`
	Generation GenerationConfig `yaml:"generation"`
	StartLevel int              `yaml:"start_level"`
}

// GridConfig defines the board size, border included.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DensityConfig defines the wall density progression.
type DensityConfig struct {
	Base float64 `yaml:"base"` // Density at level 1
	Step float64 `yaml:"step"` // Added per level
	Cap  float64 `yaml:"cap"`  // Upper bound, must stay below 1
}

// GenerationConfig bounds the generate-and-validate loop.
type GenerationConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // 0 = unbounded
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}
