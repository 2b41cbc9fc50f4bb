package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bigbrick/internal/config"
	"github.com/vovakirdan/bigbrick/internal/core"
	"github.com/vovakirdan/bigbrick/internal/registry"
	"github.com/vovakirdan/bigbrick/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E6A23C"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	menuIdleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0A0"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// menuChoice is how the picker was left.
type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePlay
	choiceScores
	choiceRename
	choiceQuit
)

// MenuItem is one board preset in the picker.
type MenuItem struct {
	GameID    string
	Title     string
	Detail    string // "10x20 · 500ms"
	HighScore int
}

// MenuModel picks a board preset to play.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	height int
	config core.RuntimeConfig
	keys   *KeyMapper
	choice menuChoice
}

// NewMenuModel builds the picker for the registered presets. store may be
// nil, in which case best scores are not shown.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, presets []config.BoardPreset) MenuModel {
	return MenuModel{
		items:  menuItems(store, presets),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// menuItems lists presets in configuration order, then any other
// registered game.
func menuItems(store *storage.Store, presets []config.BoardPreset) []MenuItem {
	var items []MenuItem
	listed := make(map[string]bool, len(presets))

	for _, p := range presets {
		if registry.Exists(p.ID) && !listed[p.ID] {
			listed[p.ID] = true
			items = append(items, MenuItem{
				GameID: p.ID,
				Title:  p.Title,
				Detail: fmt.Sprintf("%dx%d · %dms", p.Width, p.Height, p.IntervalMs),
			})
		}
	}
	for _, g := range registry.List() {
		if !listed[g.ID] {
			items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
		}
	}

	if store != nil {
		for i := range items {
			if best, err := store.HighScore(items[i].GameID); err == nil {
				items[i].HighScore = best
			}
		}
	}
	return items
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		if m.choice = m.choose(msg); m.choice != choiceNone {
			return m, tea.Quit
		}
	}
	return m, nil
}

// choose moves the cursor or returns the choice that closes the picker.
func (m *MenuModel) choose(msg tea.KeyMsg) menuChoice {
	if msg.String() == "n" {
		return choiceRename
	}
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))
	case MenuActionSelect:
		if len(m.items) > 0 {
			return choicePlay
		}
	case MenuActionScoreboard:
		return choiceScores
	case MenuActionQuit, MenuActionBack:
		return choiceQuit
	}
	return choiceNone
}

func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}

	lines := []string{
		"",
		menuTitleStyle.Render("B I G   B R I C K"),
		"",
		menuIdleStyle.Render("Playing as " + m.config.Player),
		"",
	}
	for i, item := range m.items {
		lines = append(lines, m.itemLine(i, item))
	}
	lines = append(lines, "",
		menuHintStyle.Render("↑/↓ choose · enter play · tab scores · n rename · q quit"))

	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, l)
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m MenuModel) itemLine(i int, item MenuItem) string {
	text := item.Title
	if item.Detail != "" {
		text += "  (" + item.Detail + ")"
	}
	if item.HighScore > 0 {
		text += fmt.Sprintf("  best %d", item.HighScore)
	}
	if i == m.cursor {
		return menuActiveStyle.Render("> " + text)
	}
	return menuIdleStyle.Render("  " + text)
}

// centerText left-pads plain text so it sits centered in width columns.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is what the picker decided.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	WantsRename     bool
	Quit            bool
}

// result translates the closing choice.
func (m MenuModel) result() MenuResult {
	r := MenuResult{Config: m.config}
	switch m.choice {
	case choicePlay:
		r.GameID = m.items[m.cursor].GameID
	case choiceScores:
		r.WantsScoreboard = true
	case choiceRename:
		r.WantsRename = true
	default:
		r.Quit = true
	}
	return r
}

// RunMenu shows the picker until the player decides.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, presets []config.BoardPreset) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg, presets), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
