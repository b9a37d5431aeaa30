package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MinGridSize is the smallest board edge that leaves a corridor between
// the entry and exit cells.
const MinGridSize = 5

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	// Missing keys keep their defaults.
	cfg := DefaultMazeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	candidates := []string{userConfigPath("maze.yaml"), filepath.Join("configs", "maze.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultMazeConfig()
	if err := yaml.Unmarshal(defaultMazeYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so a broken user file never blocks play.
func tryLoad(path string) (MazeConfig, bool) {
	cfg := DefaultMazeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}

// Validate checks that the configuration can produce playable mazes.
func (c MazeConfig) Validate() error {
	var errs []error
	if c.Grid.Width < MinGridSize || c.Grid.Height < MinGridSize {
		errs = append(errs, fmt.Errorf("grid %dx%d is smaller than %dx%d",
			c.Grid.Width, c.Grid.Height, MinGridSize, MinGridSize))
	}
	if c.Density.Base < 0 {
		errs = append(errs, fmt.Errorf("density.base %v is negative", c.Density.Base))
	}
	if c.Density.Step < 0 {
		errs = append(errs, fmt.Errorf("density.step %v is negative", c.Density.Step))
	}
	if c.Density.Cap >= 1 {
		errs = append(errs, fmt.Errorf("density.cap %v must be below 1", c.Density.Cap))
	}
	if c.Density.Base > c.Density.Cap {
		errs = append(errs, fmt.Errorf("density.base %v exceeds density.cap %v", c.Density.Base, c.Density.Cap))
	}
	if c.Generation.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("generation.max_attempts %d is negative", c.Generation.MaxAttempts))
	}
	if c.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("start_level %d must be at least 1", c.StartLevel))
	}
	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c MazeConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
