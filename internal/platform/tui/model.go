package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/journey-arcade/journey/internal/core"
	"github.com/journey-arcade/journey/internal/game/journey"
	"github.com/journey-arcade/journey/internal/registry"
	"github.com/journey-arcade/journey/internal/storage"
)

// Model is the Bubble Tea model that drives a run in the terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time
	quitting   bool
	runSaved   bool // Whether the finished run has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveAbandonedRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A restart after a finished run gets a fresh seed.
	if m.inputFrame.Has(core.ActionRestart) && m.terminal() {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.startedAt = time.Now()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Persist the run once when it finishes.
	if m.terminal() && !m.runSaved {
		m.saveFinishedRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// terminal reports whether the current run has ended.
func (m Model) terminal() bool {
	return m.gameState.GameOver || m.gameState.Won
}

// saveFinishedRun records the score and run outcome. Best-effort: a storage
// failure never interrupts play.
func (m Model) saveFinishedRun() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.gameState.Score)
	}

	result := storage.ResultGameOver
	if m.gameState.Won {
		result = storage.ResultWin
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		Result:       result,
		Score:        m.gameState.Score,
		LevelReached: m.levelReached(),
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
	})
}

// saveAbandonedRun records a quit mid-run so the history stays honest.
func (m Model) saveAbandonedRun() {
	if m.store == nil || m.runSaved || m.terminal() || m.gameState.Score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		Result:       storage.ResultQuit,
		Score:        m.gameState.Score,
		LevelReached: m.levelReached(),
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
	})
}

// levelReached pulls the level out of the runner's snapshot.
func (m Model) levelReached() int {
	if jg, ok := m.game.(*journey.Game); ok {
		return jg.Snapshot().Level
	}
	return 1
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".journey", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
