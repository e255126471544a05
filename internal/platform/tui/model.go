package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termsnake/termsnake/internal/core"
	"github.com/termsnake/termsnake/internal/game"
	"github.com/termsnake/termsnake/internal/storage"
)

// Model is the Bubble Tea model that runs one game session. The game logic
// never sees Bubble Tea: keys become core.Actions, ticks become Advance
// calls, and rendering reads only the screen buffer the game drew into.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	theme  Theme
	keys   KeyMap
	help   help.Model

	// ticking is true while a tick command is in flight. It prevents a
	// second tick stream when play resumes before the stale tick of a
	// paused game has been delivered.
	ticking    bool
	scoreSaved bool
	quitting   bool
}

// footerHeight is the terminal row reserved below the game screen for help.
const footerHeight = 1

// NewModel creates a model for a fresh game.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, theme Theme) Model {
	// Use a time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g := game.New()
	g.Reset(cfg)

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-footerHeight)),
		store:  store,
		config: cfg,
		theme:  theme,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts in the menu phase, so no tick is armed yet.
func (m Model) Init() tea.Cmd {
	return nil
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

// handleKey maps keyboard input to game actions and manages the tick
// lifecycle around phase changes.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	changed := m.game.HandleAction(action)
	if !changed {
		return m, nil
	}

	if m.game.Phase() == game.PhasePlaying {
		if action == core.ActionRestart {
			m.scoreSaved = false
		}
		// Entered playing (start, resume, or restart): recreate the
		// timer unless one is still in flight.
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(game.TickInterval)
		}
	}

	return m, nil
}

// handleResize adjusts the screen buffer; the game re-centers its board on
// the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one game step and re-arms the timer only while the game
// stays in the playing phase.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Phase() != game.PhasePlaying {
		// Stale tick after pause/game over: drop it, timer is down.
		m.ticking = false
		return m, nil
	}

	m.game.Advance()

	if m.game.Phase() == game.PhaseGameOver {
		m.saveScore()
		m.ticking = false
		return m, nil
	}

	return m, tickCmd(game.TickInterval)
}

// saveScore records the finished game's score once, best effort.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.game.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.Score())
	m.scoreSaved = true
}

// View renders the game screen plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(store *storage.Store, cfg core.RuntimeConfig, theme Theme) error {
	p := tea.NewProgram(
		NewModel(store, cfg, theme),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
