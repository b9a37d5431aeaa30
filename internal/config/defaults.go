package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in configuration: the classic 15x15
// board with the 0.35 / 0.02 / 0.55 density policy.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			Width:  15,
			Height: 15,
		},
		Density: DensityConfig{
			Base: 0.35,
			Step: 0.02,
			Cap:  0.55,
		},
		Generation: GenerationConfig{
			MaxAttempts: 0,
		},
		StartLevel: 1,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
