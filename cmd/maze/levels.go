package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

var flagLevelsCount int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the wall density for each level",
	Long: `Print the wall density used for levels 1..N with the current config.
The density grows by a fixed step per level until it reaches the cap.

Examples:
  maze levels
  maze levels --count 20
  maze levels --config ./my-maze.yaml`,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelsCount, "count", 0, "Number of levels to print (0 = until two past the cap)")
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
}

// writeLevels prints the density table for levels 1..count.
func writeLevels(w io.Writer, policy maze.DensityPolicy, count int) {
	capLevel := policy.LevelAtCap()
	if count <= 0 {
		count = capLevel + 2
		if capLevel == 0 {
			count = 10
		}
	}

	fmt.Fprintln(w, "  Level  Walls")
	fmt.Fprintln(w, "  -----  -----")
	for level := 1; level <= count; level++ {
		line := fmt.Sprintf("  %-5d  %4.1f%%", level, policy.For(level)*100)
		if level == capLevel {
			line += "  cap reached"
		}
		fmt.Fprintln(w, line)
	}
}

func runLevels(cmd *cobra.Command, _ []string) error {
	mc, err := config.LoadMaze(flagConfig)
	if err != nil {
		return err
	}
	writeLevels(cmd.OutOrStdout(), mc.DensityPolicy(), flagLevelsCount)
	return nil
}
