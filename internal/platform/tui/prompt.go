package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxNameLength caps player names stored with scores.
const maxNameLength = 24

// NamePromptModel asks for the player name before a run.
type NamePromptModel struct {
	input     textinput.Model
	width     int
	done      bool
	cancelled bool
}

// NewNamePromptModel creates a prompt prefilled with suggestion.
func NewNamePromptModel(suggestion string) NamePromptModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength
	ti.SetValue(suggestion)
	ti.Focus()

	return NamePromptModel{input: ti}
}

// Init starts the cursor blinking.
func (m NamePromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NamePromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.Name() != "" {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NamePromptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("F O R E S T   E S C A P E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Who is lost in the forest?", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(centerText("Enter: start  |  Esc: cancel", m.width)))
	b.WriteString("\n")
	return b.String()
}

// Name returns the trimmed name typed so far.
func (m NamePromptModel) Name() string {
	return strings.TrimSpace(m.input.Value())
}

// Cancelled reports whether the user left without choosing a name.
func (m NamePromptModel) Cancelled() bool {
	return m.cancelled
}

// RunNamePrompt asks for a player name. It returns an empty name when the
// user cancels.
func RunNamePrompt(suggestion string) (string, error) {
	p := tea.NewProgram(NewNamePromptModel(suggestion))

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(NamePromptModel)
	if !ok || m.Cancelled() {
		return "", nil
	}
	return m.Name(), nil
}
