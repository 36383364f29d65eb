package day

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#0AF")
	muted  = lipgloss.Color("#667788")

	titleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1)

	attentionStyle = titleStyle.Copy().
			Foreground(lipgloss.Color("#FFF")).
			Background(accent)

	routeStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(muted).
			Align(lipgloss.Center)

	dayNumberStyle = lipgloss.NewStyle().
			Align(lipgloss.Center)

	todayStyle = dayNumberStyle.Copy().
			Foreground(accent).
			Bold(true)

	selectedDayStyle = dayNumberStyle.Copy().
				Foreground(lipgloss.Color("#FFF")).
				Background(lipgloss.Color("#224")).
				Bold(true)

	dayTitleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 1)

	timeStyle = lipgloss.NewStyle().
			Foreground(muted).
			PaddingLeft(1)

	noteStyle = lipgloss.NewStyle()

	focusedStyle = lipgloss.NewStyle().
			Bold(true).
			Background(accent).
			Foreground(lipgloss.Color("#FFF"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(muted).
				Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"}).
			Padding(0, 1)

	errorStyle = statusStyle.Copy().
			Foreground(lipgloss.Color("#F55"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(6)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1).
			Foreground(lipgloss.Color("#CCC")).
			Background(lipgloss.Color("#334455"))

	activeButtonStyle = buttonStyle.Copy().
				Foreground(lipgloss.Color("#FFF")).
				Background(accent).
				Bold(true)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#334455")).
			PaddingLeft(1)
)
