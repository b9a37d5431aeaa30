package mazerun

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Game adapts a maze.Session to registry.Game.
type Game struct {
	variant Variant
	cfg     config.MazeConfig
	session *maze.Session
	snap    maze.Snapshot
	log     *log.Logger
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	paused       bool
	tooSmall     bool
	genErr       error
	clearedLevel int // Level just completed, 0 while playing
}

// New creates a game for the given variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{
		variant: v,
		log:     logger.With("game", v.ID),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads the maze config (falling back to defaults on error), applies
// the difficulty preset and starts the configured start level.
func (g *Game) Reset(rc core.RuntimeConfig) {
	mc, err := config.LoadMaze(configPath)
	if err != nil {
		g.log.Warn("falling back to default maze config", "error", err)
		mc = config.DefaultMazeConfig()
	}
	config.ApplyPreset(&mc, difficultyPreset)
	g.ResetWith(rc, mc)
}

// ResetWith starts a new run using an explicit maze config.
func (g *Game) ResetWith(rc core.RuntimeConfig, mc config.MazeConfig) {
	g.cfg = mc
	g.tick = 0
	g.paused = false

	gen := maze.NewGenerator(
		rand.New(rand.NewSource(rc.Seed)),
		maze.WithMaxAttempts(mc.Generation.MaxAttempts),
	)
	g.session = maze.NewSession(gen, mc.SessionConfig(g.variant.Width, g.variant.Height))

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.startLevel(mc.StartLevel)
}

// startLevel generates a fresh maze for level.
func (g *Game) startLevel(level int) {
	snap, err := g.session.Start(level)
	stats := g.session.LastGeneration()
	g.snap = snap
	g.genErr = err
	g.clearedLevel = 0

	if err != nil {
		g.log.Error("maze generation failed",
			"level", level,
			"attempts", stats.Attempts,
			"error", err,
		)
		return
	}

	g.log.Info("level started",
		"level", snap.Level,
		"density", fmt.Sprintf("%.2f", snap.Density),
		"attempts", stats.Attempts,
	)
}

// Resize records the terminal size. The maze itself never changes size.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.session == nil {
		return
	}
	w, h := g.boardSize()
	g.tooSmall = width < core.Max(w, minHUDWidth) || height < h+hudRows+footerRows
}

// boardSize returns the board size in screen characters.
func (g *Game) boardSize() (int, int) {
	sc := g.session.Config()
	return sc.Width * cellWidth, sc.Height
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) && g.snap.Status == maze.StatusActive {
		g.paused = !g.paused
	}

	if g.tooSmall || g.paused {
		return core.StepResult{State: g.State()}
	}

	wantsNew := in.Has(core.ActionRestart) || in.Has(core.ActionConfirm)

	// Retry after a failed generation.
	if g.genErr != nil {
		if wantsNew {
			g.startLevel(g.snap.Level)
		}
		return core.StepResult{State: g.State()}
	}

	// Level complete: the session already advanced the level.
	if g.snap.Status == maze.StatusWon {
		if wantsNew {
			g.startLevel(g.snap.Level)
		}
		return core.StepResult{State: g.State()}
	}

	// New maze, same level.
	if in.Has(core.ActionRestart) {
		g.log.Debug("maze regenerated", "level", g.snap.Level, "moves", g.snap.Moves)
		g.startLevel(g.snap.Level)
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Moves {
		dir, ok := directionFor(a)
		if !ok {
			continue
		}
		snap, accepted := g.session.Move(dir)
		if !accepted {
			continue
		}
		g.snap = snap
		if snap.Status == maze.StatusWon {
			g.clearedLevel = snap.Level - 1
			g.log.Info("level cleared", "level", g.clearedLevel, "moves", snap.Moves)
			break
		}
	}

	return core.StepResult{State: g.State()}
}

// directionFor maps a movement action to a maze direction.
func directionFor(a core.Action) (maze.Direction, bool) {
	switch a {
	case core.ActionUp:
		return maze.DirUp, true
	case core.ActionDown:
		return maze.DirDown, true
	case core.ActionLeft:
		return maze.DirLeft, true
	case core.ActionRight:
		return maze.DirRight, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:        g.snap.Level,
		Moves:        g.snap.Moves,
		Cleared:      g.snap.Status == maze.StatusWon,
		ClearedLevel: g.clearedLevel,
		Paused:       g.paused || g.tooSmall,
	}
}

// Snapshot returns the underlying session snapshot.
func (g *Game) Snapshot() maze.Snapshot {
	return g.snap
}
