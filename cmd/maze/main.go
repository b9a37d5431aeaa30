// maze is a terminal maze game: every level is a random, guaranteed-solvable
// maze with more walls than the last.
//
// Usage:
//
//	maze list              - List available boards
//	maze play [board]      - Play a board (default: maze)
//	maze menu              - Start menu to pick boards interactively
//	maze serve             - Start SSH server for remote play
//	maze scores [board]    - Show the best cleared levels
//	maze gen               - Print a generated maze
//	maze levels            - Print the wall density per level
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible mazes
//	--db <path>          - Set database path (default: ~/.maze/history.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file while the TUI is running
//
// Defaults for --db, --ssh and --log-level can also come from MAZE_DB,
// MAZE_SSH_ADDR and MAZE_LOG_LEVEL, set in the environment or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-maze/internal/games/mazerun"
)

const defaultDBPath = "~/.maze/history.db"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - reach the portal in your terminal",
	Long: `Maze generates a random maze for every level, checks that the portal
can be reached, and lets you walk it with the arrow keys. Each level adds
walls until the density cap is reached.

Available commands:
  list     - Show all boards
  play     - Play a board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View best cleared levels
  gen      - Print a generated maze
  levels   - Print wall density per level

Examples:
  maze play
  maze play maze_large --difficulty hard
  maze menu
  maze serve --ssh :2222
  maze gen --level 7 --seed 42`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnvDefaults,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the TUI is running")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(levelsCmd)
}

// applyEnvDefaults loads .env (if present) and fills flags the user did not
// set from MAZE_* variables.
func applyEnvDefaults(cmd *cobra.Command, _ []string) error {
	// A missing .env file is fine
	_ = godotenv.Load()

	envFlags := []struct {
		flag   string
		env    string
		target *string
	}{
		{"db", "MAZE_DB", &flagDBPath},
		{"log-level", "MAZE_LOG_LEVEL", &flagLogLevel},
		{"ssh", "MAZE_SSH_ADDR", &flagSSHAddr},
	}
	for _, ef := range envFlags {
		f := cmd.Flags().Lookup(ef.flag)
		if f == nil || f.Changed {
			continue
		}
		if v := os.Getenv(ef.env); v != "" {
			*ef.target = v
		}
	}
	return nil
}
