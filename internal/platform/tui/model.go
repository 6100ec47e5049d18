package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// heldKeys latches direction keys between key repeats. Terminals report
// presses but never releases, so a press counts as held for a few ticks.
type heldKeys struct {
	left, right int
	hold        int
}

func newHeldKeys(tickRate int) heldKeys {
	return heldKeys{hold: core.Max(tickRate/6, 1)}
}

func (h *heldKeys) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.hold, 0
	case core.ActionRight:
		h.left, h.right = 0, h.hold
	}
}

// apply marks the still-held directions on the frame and ages them by one tick.
func (h *heldKeys) apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// GameModel runs one game inside Bubble Tea. Ticks are scheduled with
// tea.Tick until the game reports Stop; R then starts a brand-new round.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       heldKeys
	chain      uint64 // Tick chain this model schedules
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	best       int
	stopped    bool // The game asked for no more ticks
	roundSaved bool // Whether the finished round has been logged
	exitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewGameModel resets the game and returns a model ready to tick.
// A configuration error from the game is returned before anything runs.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (GameModel, error) {
	if err := game.Reset(cfg); err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		held:       newHeldKeys(cfg.TickRate),
		chain:      nextTickChain(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.loadBest()
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.chain)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Chain != m.chain {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}

	case core.ActionBack:
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case core.ActionRestart:
		if m.stopped {
			return m.restart()
		}

	case core.ActionLeft, core.ActionRight:
		m.held.press(action)

	case core.ActionConfirm:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game scales its
// playfield to the screen, so the round keeps running.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and schedules the next one unless
// the game asked to stop.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}

	m.held.apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.roundSaved {
		m.saveRound()
	}

	if result.Stop {
		m.stopped = true
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.chain)
}

// restart builds a brand-new round and resumes ticking.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	if err := m.game.Reset(m.config); err != nil {
		// The config was valid a moment ago; stay on the finished round.
		return m, nil
	}
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.held = newHeldKeys(m.config.TickRate)
	m.stopped = false
	m.roundSaved = false
	return m, tickCmd(m.config.TickRate, m.chain)
}

// saveRound logs the finished round and refreshes the session best.
func (m *GameModel) saveRound() {
	m.roundSaved = true
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRound(storage.RoundEntry{
		Layout:  m.game.ID(),
		Outcome: m.gameState.Outcome,
		Score:   m.gameState.Score,
		Lives:   m.gameState.Lives,
		Ticks:   m.gameState.Ticks,
	})
	m.loadBest()
}

func (m *GameModel) loadBest() {
	if m.store == nil {
		return
	}
	if best, err := m.store.BestScore(m.game.ID()); err == nil {
		m.best = best
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	best := core.Max(m.best, m.gameState.Score)
	footer := fmt.Sprintf(" Best: %d  %s", best, m.help.View(m.keyMapper.Keys))
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewGameModel(game, store, cfg)
	if err != nil {
		return err
	}
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks start the round
	)

	_, err = p.Run()
	return err
}
