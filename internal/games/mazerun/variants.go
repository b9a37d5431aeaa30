// Package mazerun is the maze game as seen by the platform: it owns a
// maze.Session, turns input frames into moves, advances levels after a win
// and draws the board.
package mazerun

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// Variant is a registered board size.
type Variant struct {
	ID     string
	Title  string
	Width  int // 0 = use the configured grid
	Height int
}

var (
	// Classic is the 15x15 board, or whatever grid the config file sets.
	Classic = Variant{ID: "maze", Title: "Maze"}

	// Large is a fixed 31x21 board for wide terminals.
	Large = Variant{ID: "maze_large", Title: "Maze (Large)", Width: 31, Height: 21}
)

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML config path. Empty uses the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the start level preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by games created afterwards.
// Nil restores the silent default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	for _, v := range []Variant{Classic, Large} {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
