package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// ParsePreset accepts a preset name case-insensitively.
// The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// StartLevelForPreset returns the level a preset starts on for the given
// density policy. Hard starts where the density cap is first reached.
func StartLevelForPreset(preset DifficultyPreset, policy maze.DensityPolicy) int {
	switch preset {
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		if lvl := policy.LevelAtCap(); lvl > 0 {
			return lvl
		}
		return 10
	default:
		return 1
	}
}

// ApplyPreset sets the start level from a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *MazeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.StartLevel = StartLevelForPreset(preset, cfg.DensityPolicy())
}

// DensityPolicy converts the density section into the generator policy.
func (c MazeConfig) DensityPolicy() maze.DensityPolicy {
	return maze.DensityPolicy{
		Base: c.Density.Base,
		Step: c.Density.Step,
		Cap:  c.Density.Cap,
	}
}

// SessionConfig builds the session configuration. Non-zero width and height
// override the configured grid.
func (c MazeConfig) SessionConfig(width, height int) maze.SessionConfig {
	if width <= 0 {
		width = c.Grid.Width
	}
	if height <= 0 {
		height = c.Grid.Height
	}
	return maze.SessionConfig{
		Width:   width,
		Height:  height,
		Density: c.DensityPolicy(),
	}
}
