package day

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Paintersrp/dn/internal/focus"
)

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	open     key.Binding
	edit     key.Binding
	copy     key.Binding
	remove   key.Binding
	add      key.Binding
	prevDay  key.Binding
	nextDay  key.Binding
	prevWeek key.Binding
	nextWeek key.Binding
	today    key.Binding
	pick     key.Binding
	back     key.Binding
	help     key.Binding
	quit     key.Binding
}

func newKeyMap() *keyMap {
	return &keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "time"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "note"),
		),
		open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "backspace"),
			key.WithHelp("d", "delete"),
		),
		add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add"),
		),
		prevDay: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev day"),
		),
		nextDay: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next day"),
		),
		prevWeek: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "prev week"),
		),
		nextWeek: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "next week"),
		),
		today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "weekday"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k *keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.prevDay, k.nextDay, k.today, k.add, k.open, k.help, k.quit}
}

func (k *keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right},
		{k.open, k.edit, k.copy, k.remove, k.add},
		{k.prevDay, k.nextDay, k.prevWeek, k.nextWeek, k.today, k.pick},
		{k.help, k.quit},
	}
}

// bind maps every key of b to a in km.
func bind(km focus.KeyMap, b key.Binding, a focus.Action) {
	for _, k := range b.Keys() {
		km[k] = a
	}
}
