package settings

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erikgeiser/promptkit/selection"

	"github.com/Paintersrp/dn/internal/config"
)

type ListItem struct {
	field field
	value string
}

func (i ListItem) Title() string { return i.field.title }

func (i ListItem) Description() string {
	if i.value == "" {
		return "(not set)"
	}
	return i.value
}

func (i ListItem) FilterValue() string { return i.field.title }

type listKeyMap struct {
	toggleTitleBar   key.Binding
	toggleStatusBar  key.Binding
	togglePagination key.Binding
	toggleHelpMenu   key.Binding
	toggleEditItem   key.Binding
	exitInputMode    key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleTitleBar: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "toggle title"),
		),
		toggleStatusBar: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "toggle status"),
		),
		togglePagination: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "toggle pagination"),
		),
		toggleHelpMenu: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		toggleEditItem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit item"),
		),
		exitInputMode: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit input mode"),
		),
	}
}

// ListModel lists the configuration and edits one value at a time.
type ListModel struct {
	list         list.Model
	keys         *listKeyMap
	config       *config.Config
	input        textinput.Model
	inputActive  bool
	choice       *selection.Model[string]
	choiceActive bool
}

func NewListModel(cfg *config.Config) ListModel {
	listKeys := newListKeyMap()

	items := make([]list.Item, len(fields))
	for i, f := range fields {
		items[i] = ListItem{field: f, value: f.get(cfg)}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedItemStyle
	delegate.Styles.SelectedDesc = selectedItemStyle.Copy().Foreground(textStyle.GetForeground())

	configList := list.New(items, delegate, 0, 0)
	configList.Title = "Configuration"
	configList.Styles.Title = titleStyle
	configList.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{listKeys.toggleEditItem}
	}
	configList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			listKeys.toggleTitleBar,
			listKeys.toggleStatusBar,
			listKeys.togglePagination,
			listKeys.toggleHelpMenu,
		}
	}

	input := textinput.New()
	input.Cursor.Style = cursorStyle
	input.CharLimit = 256

	return ListModel{
		list:   configList,
		keys:   listKeys,
		config: cfg,
		input:  input,
	}
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		if m.choiceActive {
			return m.updateChoice(msg)
		}
		if m.inputActive {
			return m.updateInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.toggleEditItem):
			item, ok := m.list.SelectedItem().(ListItem)
			if !ok {
				return m, nil
			}
			return m, m.edit(item)

		case key.Matches(msg, m.keys.toggleTitleBar):
			v := !m.list.ShowTitle()
			m.list.SetShowTitle(v)
			m.list.SetShowFilter(v)
			m.list.SetFilteringEnabled(v)
			return m, nil

		case key.Matches(msg, m.keys.toggleStatusBar):
			m.list.SetShowStatusBar(!m.list.ShowStatusBar())
			return m, nil

		case key.Matches(msg, m.keys.togglePagination):
			m.list.SetShowPagination(!m.list.ShowPagination())
			return m, nil

		case key.Matches(msg, m.keys.toggleHelpMenu):
			m.list.SetShowHelp(!m.list.ShowHelp())
			return m, nil
		}
	}

	newListModel, cmd := m.list.Update(msg)
	m.list = newListModel
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *ListModel) edit(item ListItem) tea.Cmd {
	if item.field.choices != nil {
		sel := selection.New(
			fmt.Sprintf("Select %s.", item.field.title),
			item.field.choices,
		)
		sel.Filter = nil
		m.choice = selection.NewModel(sel)
		m.choiceActive = true
		return m.choice.Init()
	}

	m.input.Prompt = item.field.title + ": "
	m.input.SetValue(item.value)
	m.input.CursorEnd()
	m.inputActive = true
	return m.input.Focus()
}

func (m ListModel) updateChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitInputMode) {
		m.choiceActive = false
		return m, nil
	}

	// The selection quits the program on enter, so its command is dropped
	// once a value is chosen.
	_, cmd := m.choice.Update(msg)
	if !key.Matches(msg, m.keys.toggleEditItem) {
		return m, cmd
	}

	value, err := m.choice.Value()
	m.choiceActive = false
	if err != nil {
		return m, m.list.NewStatusMessage(errorMessageStyle(err.Error()))
	}
	return m, m.save(value)
}

func (m ListModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitInputMode):
		m.input.Blur()
		m.inputActive = false
		return m, nil

	case key.Matches(msg, m.keys.toggleEditItem):
		m.input.Blur()
		m.inputActive = false
		return m, m.save(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// save writes value to the selected field and refreshes its item.
func (m *ListModel) save(value string) tea.Cmd {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	if err := apply(m.config, item.field, value); err != nil {
		return m.list.NewStatusMessage(errorMessageStyle(err.Error()))
	}

	item.value = item.field.get(m.config)
	m.list.SetItem(m.list.Index(), item)
	return m.list.NewStatusMessage(statusMessageStyle("Updated and Saved: " + item.field.title))
}

func (m ListModel) View() string {
	if m.inputActive {
		return appStyle.Render(inputStyle.Render(m.input.View()))
	}
	if m.choiceActive {
		return appStyle.Render(m.choice.View())
	}
	return appStyle.Render(m.list.View())
}

func Run(c *config.Config) error {
	if _, err := tea.NewProgram(NewListModel(c), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running settings: %w", err)
	}
	return nil
}
