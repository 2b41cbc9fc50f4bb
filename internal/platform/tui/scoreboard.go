package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bigbrick/internal/registry"
	"github.com/vovakirdan/bigbrick/internal/storage"
)

const maxScores = 100 // Rows loaded per board

var (
	sbTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	sbBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Remove    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.Remove, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Remove, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev board"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove player"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best scores of one board at a time.
type ScoreboardModel struct {
	boards    []registry.GameInfo
	board     int // Index into boards
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	status    string // Outcome of the last remove
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered board.
// store may be nil, in which case every board shows as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		boards: registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

// newTable builds the score table sized for the current window.
func (m ScoreboardModel) newTable() table.Model {
	playerW := min(max(m.width-48, 10), 24)
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: playerW},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentID returns the selected board's ID, or "" with no boards.
func (m ScoreboardModel) currentID() string {
	if len(m.boards) == 0 {
		return ""
	}
	return m.boards[m.board].ID
}

// reload fetches scores and stats for the selected board.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	m.stats = nil

	id := m.currentID()
	if m.store != nil && id != "" {
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			s.Player,
			strconv.Itoa(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the board selection by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.board = (m.board + delta + len(m.boards)) % len(m.boards)
	m.status = ""
	m.reload()
}

// removeSelected deletes every score of the highlighted row's player on
// the current board.
func (m *ScoreboardModel) removeSelected() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.scores) {
		return
	}

	player := m.scores[i].Player
	n, err := m.store.RemovePlayer(m.currentID(), player)
	if err != nil {
		m.status = fmt.Sprintf("Could not remove %s: %v", player, err)
		return
	}
	m.status = fmt.Sprintf("Removed %d score(s) of %s", n, player)
	m.reload()
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
		case key.Matches(msg, m.keys.NextBoard):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.Remove):
			m.removeSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
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
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, sbTitleStyle.Render("HIGH SCORES")))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	var body string
	if len(m.scores) == 0 {
		body = sbDimStyle.Italic(true).Padding(1, 4).
			Render("No scores recorded yet.\nDrop some bricks to set one!")
	} else {
		body = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, sbBoxStyle.Render(body)))
	b.WriteString("\n")

	if m.stats != nil && m.stats.GamesCount > 0 {
		line := fmt.Sprintf("Best %d  ·  Average %.0f  ·  %d games  ·  %d players",
			m.stats.HighScore, m.stats.AvgScore, m.stats.GamesCount, m.stats.Players)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, sbDimStyle.Render(line)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, sbStatusStyle.Render(m.status)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.keys)))

	return b.String()
}

// renderTabs draws one tab per board; on narrow windows only the
// selected board is shown between arrows.
func (m ScoreboardModel) renderTabs() string {
	if len(m.boards) == 0 {
		return ""
	}

	tabs := make([]string, len(m.boards))
	for i, g := range m.boards {
		if i == m.board {
			tabs[i] = sbActiveTab.Render(g.Title)
		} else {
			tabs[i] = sbTabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width {
		line = sbActiveTab.Render("‹ " + m.boards[m.board].Title + " ›")
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
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
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
