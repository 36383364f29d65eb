package textarea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0AF")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// Model composes the content of a new note.
type Model struct {
	textarea textarea.Model
	header   string
	saved    bool
}

func New(header, initial string) Model {
	ti := textarea.New()
	ti.Placeholder = "..."
	ti.ShowLineNumbers = false
	ti.CharLimit = 0
	ti.SetHeight(12)
	ti.SetWidth(80)
	ti.SetValue(initial)
	ti.Focus()

	return Model{textarea: ti, header: header}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.textarea.SetWidth(msg.Width)
		m.textarea.SetHeight(max(3, msg.Height-6))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			if m.textarea.Focused() {
				m.textarea.Blur()
				return m, nil
			}
			return m, tea.Quit
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyCtrlS:
			m.saved = true
			return m, tea.Quit
		default:
			if !m.textarea.Focused() {
				cmd = m.textarea.Focus()
				cmds = append(cmds, cmd)
			}
		}
	}

	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		headerStyle.Render(m.header),
		m.textarea.View(),
		helpStyle.Render("ctrl+s save • esc blur, twice to cancel • ctrl+c cancel"),
	) + "\n"
}

// Value is the composed content and whether it was saved.
func (m Model) Value() (string, bool) {
	return strings.TrimSpace(m.textarea.Value()), m.saved
}

// Run composes a note interactively. ok is false when the user cancelled.
func Run(header, initial string) (content string, ok bool, err error) {
	final, err := tea.NewProgram(New(header, initial)).Run()
	if err != nil {
		return "", false, err
	}
	content, ok = final.(Model).Value()
	return content, ok && content != "", nil
}
