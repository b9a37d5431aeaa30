package mazerun

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// openConfig is a 5x5 board with zero wall density: the whole interior is
// open, entry (1,1), exit (3,3).
func openConfig() config.MazeConfig {
	cfg := config.DefaultMazeConfig()
	cfg.Grid = config.GridConfig{Width: 5, Height: 5}
	cfg.Density = config.DensityConfig{Base: 0, Step: 0, Cap: 0}
	return cfg
}

func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newOpenGame(t *testing.T) *Game {
	t.Helper()
	g := New(Classic)
	g.ResetWith(runtimeConfig(), openConfig())
	if g.Snapshot().Status != maze.StatusActive {
		t.Fatalf("game not active after reset: %+v", g.Snapshot())
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range []Variant{Classic, Large} {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q not registered", v.ID)
			continue
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", v.ID, err)
		}
		if g.Title() != v.Title {
			t.Errorf("Title() = %q, want %q", g.Title(), v.Title)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(Classic)
	a.ResetWith(runtimeConfig(), config.DefaultMazeConfig())
	b := New(Classic)
	b.ResetWith(runtimeConfig(), config.DefaultMazeConfig())

	if !a.Snapshot().Grid.Equal(b.Snapshot().Grid) {
		t.Error("same seed should produce the same maze")
	}
	if a.Snapshot().Grid.Width() != 15 {
		t.Errorf("Classic width = %d, want 15", a.Snapshot().Grid.Width())
	}
}

func TestLargeVariantSize(t *testing.T) {
	g := New(Large)
	rc := runtimeConfig()
	rc.ScreenW, rc.ScreenH = 120, 40
	g.ResetWith(rc, config.DefaultMazeConfig())

	grid := g.Snapshot().Grid
	if grid.Width() != 31 || grid.Height() != 21 {
		t.Errorf("Large grid = %dx%d, want 31x21", grid.Width(), grid.Height())
	}
	if g.Snapshot().Goal != (maze.Point{X: 29, Y: 19}) {
		t.Errorf("Goal = %v, want (29,19)", g.Snapshot().Goal)
	}
}

func TestStartLevelFromConfig(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.StartLevel = 5

	g := New(Classic)
	g.ResetWith(runtimeConfig(), cfg)

	if g.State().Level != 5 {
		t.Errorf("Level = %d, want 5", g.State().Level)
	}
	if d := g.Snapshot().Density; d < 0.4299 || d > 0.4301 {
		t.Errorf("Density = %v, want 0.43", d)
	}
}

func TestStepMoves(t *testing.T) {
	g := newOpenGame(t)

	res := g.Step(frame(core.ActionRight, core.ActionDown))
	if res.State.Moves != 2 {
		t.Errorf("Moves = %d, want 2", res.State.Moves)
	}
	if g.Snapshot().Position != (maze.Point{X: 2, Y: 2}) {
		t.Errorf("Position = %v, want (2,2)", g.Snapshot().Position)
	}

	// Into the border: ignored.
	g.Step(frame(core.ActionUp, core.ActionUp))
	if g.State().Moves != 3 {
		t.Errorf("Moves = %d, want 3 after one accepted and one rejected move", g.State().Moves)
	}
}

func TestStepWinAndContinue(t *testing.T) {
	g := newOpenGame(t)

	res := g.Step(frame(core.ActionRight, core.ActionRight, core.ActionDown, core.ActionDown))
	if !res.State.Cleared {
		t.Fatalf("expected level cleared, state %+v", res.State)
	}
	if res.State.ClearedLevel != 1 || res.State.Level != 2 {
		t.Errorf("ClearedLevel, Level = %d, %d, want 1, 2", res.State.ClearedLevel, res.State.Level)
	}
	if res.State.Moves != 4 {
		t.Errorf("Moves = %d, want 4", res.State.Moves)
	}

	// Moves after the win are ignored.
	res = g.Step(frame(core.ActionLeft))
	if res.State.Moves != 4 || !res.State.Cleared {
		t.Errorf("move after win changed state: %+v", res.State)
	}

	// Enter starts the next level.
	res = g.Step(frame(core.ActionConfirm))
	if res.State.Cleared || res.State.Level != 2 || res.State.Moves != 0 {
		t.Errorf("after confirm: %+v", res.State)
	}
	if g.Snapshot().Status != maze.StatusActive {
		t.Errorf("Status = %s, want active", g.Snapshot().Status)
	}
}

func TestStepPause(t *testing.T) {
	g := newOpenGame(t)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	res = g.Step(frame(core.ActionRight))
	if res.State.Moves != 0 {
		t.Error("moves should be ignored while paused")
	}
	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestStepRestartRegenerates(t *testing.T) {
	g := newOpenGame(t)
	g.Step(frame(core.ActionRight))

	res := g.Step(frame(core.ActionRestart))
	if res.State.Moves != 0 || res.State.Level != 1 {
		t.Errorf("after restart: %+v", res.State)
	}
	if g.Snapshot().Position != (maze.Point{X: 1, Y: 1}) {
		t.Errorf("Position = %v, want entry", g.Snapshot().Position)
	}
}

func TestGenerationFailure(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	cfg.Grid = config.GridConfig{Width: 9, Height: 9}
	cfg.Density = config.DensityConfig{Base: 0.99, Step: 0, Cap: 0.99}
	cfg.Generation.MaxAttempts = 1

	g := New(Classic)
	g.ResetWith(runtimeConfig(), cfg)

	if g.Snapshot().Status != maze.StatusIdle {
		t.Fatalf("Status = %s, want idle after failed generation", g.Snapshot().Status)
	}
	res := g.Step(frame(core.ActionRight))
	if res.State.Moves != 0 {
		t.Error("moves should be ignored without a maze")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GENERATION FAILED") {
		t.Errorf("expected failure overlay:\n%s", screen)
	}
}

func TestTooSmall(t *testing.T) {
	g := newOpenGame(t)
	g.Resize(20, 5)

	if !g.State().Paused {
		t.Error("tiny window should pause the game")
	}
	res := g.Step(frame(core.ActionRight))
	if res.State.Moves != 0 {
		t.Error("moves should be ignored in a tiny window")
	}

	screen := core.NewScreen(20, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected size warning:\n%s", screen)
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("restored window should unpause")
	}
}

func TestRender(t *testing.T) {
	g := newOpenGame(t)
	g.Step(frame(core.ActionRight))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"LEVEL 1", "MOVES 1", "@", "◎", "·", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// Same buffer, no manual clear: this is how the platform renders.
	g.Step(frame(core.ActionRight, core.ActionDown, core.ActionDown))
	g.Render(screen)
	if !strings.Contains(screen.String(), "TRANSFER COMPLETE!") {
		t.Errorf("expected win overlay:\n%s", screen)
	}
}

func TestRenderNextLevelDropsPreviousFrame(t *testing.T) {
	g := newOpenGame(t)
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionRight, core.ActionRight, core.ActionDown, core.ActionDown))
	g.Render(screen)
	if !strings.Contains(screen.String(), "TRANSFER COMPLETE!") {
		t.Fatalf("expected win overlay:\n%s", screen)
	}

	g.Step(frame(core.ActionConfirm))
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "LEVEL 2") {
		t.Fatalf("expected level 2 HUD:\n%s", out)
	}
	for _, stale := range []string{"TRANSFER COMPLETE", "Press Enter", "·"} {
		if strings.Contains(out, stale) {
			t.Errorf("level 2 frame still shows %q:\n%s", stale, out)
		}
	}
}

func TestRenderRestartDropsTrail(t *testing.T) {
	g := newOpenGame(t)
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionRight, core.ActionRight))
	g.Render(screen)
	if strings.Count(screen.String(), "·") != 2 {
		t.Fatalf("expected two trail dots:\n%s", screen)
	}

	g.Step(frame(core.ActionRestart))
	g.Render(screen)
	if n := strings.Count(screen.String(), "·"); n != 0 {
		t.Errorf("restarted maze shows %d trail dots:\n%s", n, screen)
	}
}
