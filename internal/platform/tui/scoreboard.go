package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const maxRounds = 100 // Rounds listed per layout

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	scoreDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the session scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding // Handled by the table; listed for help only
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next layout"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("←", "prev layout"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the rounds logged since the process started, one
// layout at a time.
type ScoreboardModel struct {
	layouts   []registry.GameInfo
	current   int
	store     *storage.Store
	table     table.Model
	summary   string // Played/won/best line, empty when nothing is logged
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first layout.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		layouts: registry.List(),
		store:   store,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.table = newRoundTable(height)
	m.load()
	return m
}

func newRoundTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 6},
			{Title: "Result", Width: 7},
			{Title: "Lives", Width: 6},
			{Title: "Ticks", Width: 8},
			{Title: "Time", Width: 9},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-11, 3)), // Title, layout, summary, borders, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// load fills the table with the current layout's rounds, best first.
func (m *ScoreboardModel) load() {
	m.summary = ""
	var rounds []storage.RoundEntry

	if m.store != nil && len(m.layouts) > 0 {
		id := m.layouts[m.current].ID
		if rs, err := m.store.TopRounds(id, maxRounds); err == nil {
			rounds = rs
		}
		if st, err := m.store.Stats(id); err == nil && st.Rounds > 0 {
			m.summary = fmt.Sprintf("Rounds: %d  Wins: %d  Best: %d  Avg: %.1f",
				st.Rounds, st.Wins, st.BestScore, st.AvgScore)
		}
	}

	rows := make([]table.Row, len(rounds))
	for i, r := range rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprint(r.Score),
			r.Outcome,
			fmt.Sprint(r.Lives),
			fmt.Sprint(r.Ticks),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves to the next (+1) or previous (-1) layout, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if n := len(m.layouts); n > 0 {
		m.current = (m.current + delta + n) % n
		m.load()
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-11, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(scoreTitleStyle.Render(centerText("SESSION SCORES", m.width)))
	b.WriteString("\n\n")

	if len(m.layouts) > 0 {
		layout := fmt.Sprintf("‹ %s ›  %d/%d", m.layouts[m.current].Title, m.current+1, len(m.layouts))
		b.WriteString(centerText(layout, m.width))
		b.WriteString("\n\n")
	}

	var body string
	if len(m.table.Rows()) == 0 {
		body = scoreDimStyle.Italic(true).Padding(1, 2).
			Render("No rounds finished yet.\nScores last until the program exits.")
	} else {
		body = m.summary + "\n\n" + m.table.View()
	}
	for _, line := range strings.Split(scoreBoxStyle.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(scoreDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
