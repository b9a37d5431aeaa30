package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board (default: maze).

Controls:
  Arrows/WASD/HJKL  - Move
  Enter/R           - Next level (after reaching the portal)
  R                 - New maze, same level
  P                 - Pause
  Esc/B, Q          - Quit

Difficulty options:
  easy    - Start at level 1
  normal  - Start at level 5
  hard    - Start where the wall density stops growing

Examples:
  maze play
  maze play maze_large
  maze play --difficulty hard
  maze play --config ./my-maze.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that shape new games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// configureGames validates the game flags and applies them to new games.
func configureGames() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadMaze(flagConfig); err != nil {
			return err
		}
	}
	mazerun.SetConfigPath(flagConfig)
	mazerun.SetDifficultyPreset(preset)
	return nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openHistory opens the run history. Play continues without it on error.
func openHistory() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := mazerun.Classic.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q, run 'maze list' to see available boards", gameID)
	}
	if err := configureGames(); err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	setupGames(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating board: %w", err)
	}

	store := openHistory()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
