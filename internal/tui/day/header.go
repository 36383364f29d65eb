package day

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/dn/internal/dates"
)

// titleView shows the month of the selected day, moved by as many weeks as
// the header has been scrolled. Both month names are shown once the header
// has left the selected week.
func (m *Model) titleView() string {
	selected := dates.WeeksSince(m.date, m.first)
	shown := dates.AddDays(m.date, 7*(m.shownWeek-selected))
	title := dates.MonthTitle(shown, m.first, m.shownWeek != selected)

	style := titleStyle
	if m.attending {
		style = attentionStyle
	}

	route := dates.DayPath(m.date, dates.Today(m.state.Now()))
	if route == "" {
		route = "today"
	}
	return style.Render(title) + routeStyle.Render(route)
}

func (m *Model) columnWidth() int {
	if w := m.width / 7; w > 0 {
		return w
	}
	return 1
}

func (m *Model) weekdaysView() string {
	w := m.columnWidth()
	names := dates.Weekdays(m.first)
	cols := make([]string, len(names))
	for i, name := range names {
		cols[i] = weekdayStyle.Width(w).Render(name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderWeek renders one slide of the week carousel.
func (m *Model) renderWeek(offset int, visible bool) string {
	start := dates.FromWeeks(offset, m.first)
	today := dates.Today(m.state.Now())
	w := m.columnWidth()

	cols := make([]string, 7)
	for i := range cols {
		d := dates.AddDays(start, i)
		style := dayNumberStyle
		switch {
		case dates.SameDay(d, m.date):
			style = selectedDayStyle
		case dates.SameDay(d, today):
			style = todayStyle
		}
		cols[i] = style.Width(w).Render(strconv.Itoa(d.Day()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// weekStripRow is the screen line of the week carousel.
const weekStripRow = headerHeight - 1

// pickWeekday selects the i-th day of the week shown in the header.
func (m *Model) pickWeekday(i int) tea.Cmd {
	if i < 0 || i > 6 {
		return nil
	}
	if m.editing {
		m.stopEditing()
	}
	m.setDate(dates.AddDays(dates.FromWeeks(m.shownWeek, m.first), i))
	return tea.Batch(m.days.Sync(), m.weeks.Sync())
}

// handleMouse selects the day clicked in the week strip.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.detail != nil || m.dialog != nil || m.width == 0 {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != weekStripRow {
		return nil
	}
	return m.pickWeekday(msg.X / m.columnWidth())
}
