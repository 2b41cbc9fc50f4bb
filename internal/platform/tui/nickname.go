package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxNicknameLen = 16

// NicknameModel asks the player for the name their scores are saved under.
type NicknameModel struct {
	input     textinput.Model
	width     int
	height    int
	submitted bool
	cancelled bool
	errMsg    string
}

// NewNicknameModel creates a prompt pre-filled with the current name.
func NewNicknameModel(current string, width, height int) NicknameModel {
	ti := textinput.New()
	ti.Placeholder = "nickname"
	ti.CharLimit = maxNicknameLen
	ti.Width = maxNicknameLen + 1
	ti.SetValue(current)
	ti.Focus()

	return NicknameModel{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blinking.
func (m NicknameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NicknameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if err := validateNickname(m.input.Value()); err != "" {
				m.errMsg = err
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.errMsg = ""
	return m, cmd
}

// validateNickname returns a message describing why the name can't be
// used, or "" when it's fine. Names end up in "name;value" scoreboard
// lines so the separator is not allowed.
func validateNickname(name string) string {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "Name can't be empty"
	case strings.ContainsRune(name, ';'):
		return "Name can't contain ';'"
	}
	return ""
}

// View renders the prompt.
func (m NicknameModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Who's playing?"),
			"",
			m.input.View(),
			"",
			errStyle.Render(m.errMsg),
			hintStyle.Render("Enter: confirm  |  Esc: cancel"),
		))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Name returns the entered name with surrounding spaces removed.
func (m NicknameModel) Name() string {
	return strings.TrimSpace(m.input.Value())
}

// Submitted reports whether the player confirmed a valid name.
func (m NicknameModel) Submitted() bool {
	return m.submitted
}

// RunNickname prompts for a nickname. ok is false when the player cancelled.
func RunNickname(current string, width, height int) (name string, ok bool, err error) {
	p := tea.NewProgram(
		NewNicknameModel(current, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return current, false, err
	}

	m, isModel := finalModel.(NicknameModel)
	if !isModel || !m.Submitted() {
		return current, false, nil
	}
	return m.Name(), true, nil
}
