package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/games/mazerun"
)

// newLogger builds a logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "maze",
	}), nil
}

// stderrLogger is used by commands that do not take over the terminal.
func stderrLogger() (*log.Logger, error) {
	return newLogger(os.Stderr, flagLogLevel)
}

// tuiLogger returns a logger that does not draw over the TUI: it writes to
// --log-file when given and discards output otherwise. The returned close
// function must be called when the TUI exits.
func tuiLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		l, err := newLogger(io.Discard, flagLogLevel)
		return l, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	l, err := newLogger(f, flagLogLevel)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, func() { f.Close() }, nil
}

// setupGames hands the logger to the registered games.
func setupGames(logger *log.Logger) {
	mazerun.SetLogger(logger)
}
