package initialize

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/dn/internal/config"
	"github.com/Paintersrp/dn/internal/editor"
)

var (
	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
	focusedDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#585b70"))
	blurredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f38ba8"))
	cursorStyle         = focusedStyle.Copy()
	noStyle             = lipgloss.NewStyle()
	helpStyle           = blurredStyle.Copy()
	cursorModeHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#cba6f7"))

	focusedButton = focusedStyle.Copy().Render("[ Submit ]")
	blurredButton = fmt.Sprintf(
		"[ %s ]",
		blurredStyle.Render("Submit"),
	)
)

const (
	dataDirInput = iota
	weekStartInput
	editorInput
	editorArgsInput
	inputCount
)

type InitPromptModel struct {
	cfg        *config.Config
	inputs     []textinput.Model
	focusIndex int
	cursorMode cursor.Mode
	done       bool
	err        error
}

// InitialPrompt edits cfg. Blank inputs keep the values cfg already has.
func InitialPrompt(cfg *config.Config) InitPromptModel {
	m := InitPromptModel{
		inputs: make([]textinput.Model, inputCount),
		cfg:    cfg,
	}

	defaults := SetupDefaults(cfg)

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 32
		t.Placeholder = defaults[i]
		t.PlaceholderStyle = focusedDimStyle
		t.PromptStyle = noStyle

		switch i {
		case dataDirInput:
			t.Prompt = "Data Directory: "
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
			t.CharLimit = 256
		case weekStartInput:
			t.Prompt = "Week Starts On: "
			t.CharLimit = 9
		case editorInput:
			t.Prompt = "Editor: "
		case editorArgsInput:
			t.Prompt = "Editor Arguments: "
			t.CharLimit = 128
		}

		m.inputs[i] = t
	}

	return m
}

func (m InitPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m InitPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+r":
			m.cursorMode++
			if m.cursorMode > cursor.CursorHide {
				m.cursorMode = cursor.CursorBlink
			}
			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				cmds[i] = m.inputs[i].Cursor.SetMode(m.cursorMode)
			}
			return m, tea.Batch(cmds...)

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				if err := m.submit(); err != nil {
					m.err = err
					return m, nil
				}
				m.done = true
				return m, tea.Quit
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.focusInputs()
		}
	}

	cmd := m.updateInputs(msg)
	m.err = nil

	return m, cmd
}

func (m *InitPromptModel) focusInputs() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := 0; i <= len(m.inputs)-1; i++ {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = noStyle
		m.inputs[i].TextStyle = noStyle
	}
	return tea.Batch(cmds...)
}

// submit copies the inputs into the config and saves it. Nothing is
// written when a value is invalid.
func (m *InitPromptModel) submit() error {
	defaults := SetupDefaults(m.cfg)
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = strings.TrimSpace(m.inputs[i].Value())
		if values[i] == "" {
			values[i] = defaults[i]
		}
	}

	next := *m.cfg
	next.DataDir = values[dataDirInput]
	next.WeekStart = strings.ToLower(values[weekStartInput])
	next.Editor = values[editorInput]
	next.EditorArgs = values[editorArgsInput]
	if next.EditorArgs == "none" {
		next.EditorArgs = ""
	}

	if err := next.Validate(); err != nil {
		return err
	}
	if err := next.Save(); err != nil {
		return err
	}
	*m.cfg = next
	return nil
}

func (m *InitPromptModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m InitPromptModel) View() string {
	var b strings.Builder

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		if i < len(m.inputs)-1 {
			b.WriteRune('\n')
		}
	}

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}
	fmt.Fprintf(&b, "\n\n%s\n\n", *button)

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("cursor mode is "))
	b.WriteString(cursorModeHelpStyle.Render(m.cursorMode.String()))
	b.WriteString(helpStyle.Render(" (ctrl+r to change style)"))
	b.WriteString(
		helpStyle.Render("\n(Leave inputs blank for default values)"),
	)

	return b.String()
}

// Done reports whether the configuration was saved.
func (m InitPromptModel) Done() bool {
	return m.done
}

// SetupDefaults returns the placeholder of each input, in input order.
func SetupDefaults(cfg *config.Config) []string {
	ed := cfg.Editor
	if ed == "" {
		ed = editor.Resolve("")
		if config.ValidateEditor(ed) != nil {
			ed = "nvim"
		}
	}
	args := cfg.EditorArgs
	if args == "" {
		args = "none"
	}

	return []string{
		cfg.DataDir,
		cfg.WeekStart,
		ed,
		args,
	}
}

// Run prompts for the configuration and saves it. It reports whether the
// user submitted the form.
func Run(cfg *config.Config) (bool, error) {
	final, err := tea.NewProgram(InitialPrompt(cfg)).Run()
	if err != nil {
		return false, err
	}
	return final.(InitPromptModel).Done(), nil
}
