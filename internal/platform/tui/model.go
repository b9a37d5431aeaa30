package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// GameModel is the Bubble Tea model for running a maze game.
// Each cleared level is written to the run history once.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	runID      string
	tickGen    uint64
	log        *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	recorded   bool // Current clear has been written to the store
	standalone bool // Back quits instead of returning to a menu
	embedded   bool // Driven by a parent model that watches BackToMenu
}

// NewGameModel creates a new game model. A nil logger discards output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runID := storage.NewRunID()
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		runID:      runID,
		tickGen:    nextTickGen(),
		log:        logger.With("game", game.ID(), "run", runID[:8]),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Debug("run started", "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.Cleared && !m.recorded:
		m.recordClear()
		m.recorded = true
	case !m.gameState.Cleared:
		m.recorded = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// recordClear writes the cleared level to the run history.
func (m *GameModel) recordClear() {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Level:  m.gameState.ClearedLevel,
		Moves:  m.gameState.Moves,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.log.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".maze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || (m.backToMenu && !m.embedded) {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// TickGen returns the ID of the tick loop this model drives.
func (m GameModel) TickGen() uint64 {
	return m.tickGen
}

// RunID returns the identifier under which clears are recorded.
func (m GameModel) RunID() string {
	return m.runID
}

// Run plays a single game until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// PlayResult holds the result of a game started from the menu.
type PlayResult struct {
	Config     core.RuntimeConfig
	BackToMenu bool
}

// RunFromMenu plays a game and reports whether the player went back to the menu.
func RunFromMenu(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (PlayResult, error) {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return PlayResult{Config: cfg}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return PlayResult{Config: cfg}, nil
	}
	return PlayResult{Config: m.config, BackToMenu: m.BackToMenu()}, nil
}
