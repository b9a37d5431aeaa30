package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

var (
	flagGenLevel       int
	flagGenWidth       int
	flagGenHeight      int
	flagGenMaxAttempts int
	flagGenYAML        bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print a generated maze",
	Long: `Generate one solvable maze and print it, '#' for walls and '.' for paths.
The entry is the top-left interior cell and the portal the bottom-right one.

Examples:
  maze gen
  maze gen --level 9 --seed 42
  maze gen --width 31 --height 21 --yaml`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagGenLevel, "level", 1, "Level whose wall density is used")
	genCmd.Flags().IntVar(&flagGenWidth, "width", 0, "Board width (0 = config)")
	genCmd.Flags().IntVar(&flagGenHeight, "height", 0, "Board height (0 = config)")
	genCmd.Flags().IntVar(&flagGenMaxAttempts, "max-attempts", -1, "Attempt guard (-1 = config, 0 = unbounded)")
	genCmd.Flags().BoolVar(&flagGenYAML, "yaml", false, "Print as YAML with generation stats")
	genCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
}

// genOptions describes one maze to generate.
type genOptions struct {
	Config      config.MazeConfig
	Level       int
	Seed        int64
	Width       int // 0 = config
	Height      int // 0 = config
	MaxAttempts int // < 0 = config
}

// pointDump is a YAML-friendly maze.Point.
type pointDump struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// genResult is a generated maze with the data needed to reproduce it.
type genResult struct {
	Level    int       `yaml:"level"`
	Seed     int64     `yaml:"seed"`
	Width    int       `yaml:"width"`
	Height   int       `yaml:"height"`
	Density  float64   `yaml:"density"`
	Attempts int       `yaml:"attempts"`
	Start    pointDump `yaml:"start"`
	Goal     pointDump `yaml:"goal"`
	Rows     []string  `yaml:"rows"`

	grid *maze.Grid
}

// generate runs a session start for the requested level and returns the maze.
func generate(opts genOptions) (genResult, error) {
	maxAttempts := opts.MaxAttempts
	if maxAttempts < 0 {
		maxAttempts = opts.Config.Generation.MaxAttempts
	}

	gen := maze.NewGenerator(rand.New(rand.NewSource(opts.Seed)), maze.WithMaxAttempts(maxAttempts))
	session := maze.NewSession(gen, opts.Config.SessionConfig(opts.Width, opts.Height))

	snap, err := session.Start(opts.Level)
	stats := session.LastGeneration()
	if err != nil {
		return genResult{Attempts: stats.Attempts}, err
	}

	return genResult{
		Level:    snap.Level,
		Seed:     opts.Seed,
		Width:    snap.Grid.Width(),
		Height:   snap.Grid.Height(),
		Density:  snap.Density,
		Attempts: stats.Attempts,
		Start:    pointDump{snap.Position.X, snap.Position.Y},
		Goal:     pointDump{snap.Goal.X, snap.Goal.Y},
		Rows:     snap.Grid.Rows(),
		grid:     snap.Grid,
	}, nil
}

// writeGen prints a generated maze as plain text or YAML.
func writeGen(w io.Writer, res genResult, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding maze: %w", err)
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(w, res.grid.String())
	return err
}

func runGen(cmd *cobra.Command, _ []string) error {
	logger, err := stderrLogger()
	if err != nil {
		return err
	}

	mc, err := config.LoadMaze(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, err := generate(genOptions{
		Config:      mc,
		Level:       flagGenLevel,
		Seed:        seed,
		Width:       flagGenWidth,
		Height:      flagGenHeight,
		MaxAttempts: flagGenMaxAttempts,
	})
	if err != nil {
		logger.Error("generation failed", "level", flagGenLevel, "seed", seed, "attempts", res.Attempts)
		return err
	}

	logger.Info("maze generated",
		"level", res.Level,
		"seed", res.Seed,
		"density", fmt.Sprintf("%.2f", res.Density),
		"attempts", res.Attempts,
	)

	return writeGen(cmd.OutOrStdout(), res, flagGenYAML)
}
