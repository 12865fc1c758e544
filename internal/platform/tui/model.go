package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/termtris/internal/core"
	"github.com/akarpov/termtris/internal/storage"
	"github.com/akarpov/termtris/internal/tetris"
)

// Model is the Bubble Tea model for a termtris session.
type Model struct {
	game       *tetris.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	debouncer  *core.Debouncer
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	finalScore int
}

// NewModel creates a new Bubble Tea model wrapping the given game.
// debounceFrames is the per-action refractory window for raw key presses.
func NewModel(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig, debounceFrames int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		debouncer: core.NewDebouncer(debounceFrames),
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

// handleKey feeds raw presses into the debouncer. Only Ctrl+C bypasses the
// game; everything else is delivered on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, forceQuit := m.keyMapper.MapKey(msg)
	if forceQuit {
		m.quitting = true
		m.finalScore = m.game.Score()
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.debouncer.Press(action)
	}
	return m, nil
}

// handleResize adjusts the screen buffer. The simulation is untouched; the
// playfield has fixed dimensions and only the rendering layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.debouncer.Frame()
	result := m.game.Step(frame)
	m.gameState = result.State

	// Closed means the player quit from inside the game. Stop ticking so the
	// game is never stepped again.
	if m.gameState.Closed {
		m.quitting = true
		m.finalScore = m.gameState.Score
		return m, tea.Quit
	}

	// Save score on game over (once per game over)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.gameState.Score, m.game.Snapshot().PieceCount)
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// FinalScore returns the score at the moment the session ended.
func (m Model) FinalScore() int {
	return m.finalScore
}

// Run starts a full-screen game session and blocks until it ends.
// Returns the final score.
func Run(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig, debounceFrames int) (int, error) {
	model := NewModel(game, store, cfg, debounceFrames)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	if m, ok := finalModel.(Model); ok {
		return m.FinalScore(), nil
	}
	return 0, nil
}
