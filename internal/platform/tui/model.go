package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/multiplayer"
	"github.com/vovakirdan/lightcycle/internal/registry"
)

// resultProducer is implemented by games that report finished matches.
type resultProducer interface {
	ConsumeResult() (multiplayer.MatchResultData, bool)
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	saver     multiplayer.MatchResultSaver
	config    core.RuntimeConfig
	input     core.MultiInputFrame
	gameState core.GameState
	keyMapper *KeyMapper
	session   multiplayer.SessionID
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The saver may be nil; match results are then discarded.
func NewModel(game registry.Game, saver multiplayer.MatchResultSaver, cfg core.RuntimeConfig, session multiplayer.SessionID) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		saver:     saver,
		config:    cfg,
		input:     core.NewMultiInputFrame(),
		keyMapper: NewKeyMapper(),
		session:   session,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

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

	if m.keyMapper.MapKeyToMultiFrame(msg, &m.input) {
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

	// Refit the arena only while on the menu; resizing mid-match would
	// throw the running match away.
	if m.gameState.InMenu {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.gameState = result.State

	// Persist finished matches (best effort).
	if rp, ok := m.game.(resultProducer); ok {
		if data, done := rp.ConsumeResult(); done && m.saver != nil {
			data.Session = string(m.session)
			//nolint:errcheck // Best-effort save, game continues regardless
			m.saver.SaveMatchResult(data)
		}
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".lightcycle", "screenshots")
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
func Run(game registry.Game, saver multiplayer.MatchResultSaver, cfg core.RuntimeConfig) error {
	model := NewModel(game, saver, cfg, "local")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
