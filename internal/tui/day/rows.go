package day

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/dn/internal/content"
	"github.com/Paintersrp/dn/internal/dates"
	"github.com/Paintersrp/dn/internal/focus"
	"github.com/Paintersrp/dn/internal/store"
)

// timeColumnWidth is the width of the "start   end" labels.
const timeColumnWidth = 12

// mountRows rebuilds the focus grid from the notes of the selected day. A
// pending focus request restores the cell last focused on that day,
// otherwise the current cell keeps focus.
func (m *Model) mountRows() {
	m.doc.Blur()
	for _, c := range m.cells {
		c.unmount()
	}
	m.cells = nil
	m.rows = nil

	offset := dates.DaysSince(m.date)
	m.notes.Remove(offset)
	notes := m.notesFor(offset)

	for y, n := range notes {
		r := &row{note: n}
		r.time = m.mountCell(focus.Position{X: 0, Y: y}, m.timeKeys(r))
		r.content = m.mountCell(focus.Position{X: 1, Y: y}, m.contentKeys(r))
		m.rows = append(m.rows, r)
	}
	m.add = m.mountCell(focus.Position{X: 1, Y: len(notes)}, m.addKeys())
	m.nav.SetBounds(1, len(notes))
	m.loadDraft()

	if !m.request.Consume(m.restoreFocus) {
		m.nav.Move(focus.Current, focus.WithSmoothScroll(false))
	}
	if !m.nav.HasFocus() {
		m.nav.MoveTo(focus.Position{X: 1, Y: m.nav.Position().Y}, focus.WithSmoothScroll(false))
	}
	m.refreshBody()
}

func (m *Model) mountCell(p focus.Position, keys focus.KeyMap) *cell {
	c := &cell{item: m.nav.Bind(p, keys)}
	c.el = c.item.Attach(m.doc)
	c.unmount = c.item.Mount()
	m.cells = append(m.cells, c)
	return c
}

func (m *Model) restoreFocus() {
	p, ok := m.positions.Get(dates.FormatDay(m.date))
	if !ok {
		p = focus.Position{X: 1}
	}
	if p.Y >= len(m.rows) {
		p = focus.Position{X: 1, Y: len(m.rows)}
	}
	m.nav.MoveTo(p, focus.WithSmoothScroll(false))
}

func (m *Model) focusedCell() *cell {
	active := m.doc.Active()
	if active == nil {
		return nil
	}
	for _, c := range m.cells {
		if c.el == active {
			return c
		}
	}
	return nil
}

func (m *Model) timeKeys(r *row) focus.KeyMap {
	km := focus.KeyMap{}
	bind(km, m.keys.up, focus.Go(focus.PreviousY))
	bind(km, m.keys.down, focus.Go(focus.NextY))
	bind(km, m.keys.right, focus.Go(focus.NextX))
	bind(km, m.keys.open, focus.Call(func(ev *focus.KeyEvent) {
		ev.PreventDefault()
		m.openDialog(r)
	}))
	bind(km, m.keys.remove, focus.Call(func(ev *focus.KeyEvent) {
		ev.PreventDefault()
		m.deleteNote(r)
	}))
	return km
}

func (m *Model) contentKeys(r *row) focus.KeyMap {
	km := focus.KeyMap{}
	bind(km, m.keys.up, focus.Go(focus.PreviousY))
	bind(km, m.keys.down, focus.Go(focus.NextY))
	bind(km, m.keys.left, focus.Go(focus.PreviousX))
	bind(km, m.keys.open, focus.Call(func(ev *focus.KeyEvent) {
		ev.PreventDefault()
		m.openDetail(r.note.Note)
	}))
	bind(km, m.keys.edit, focus.Call(func(ev *focus.KeyEvent) {
		ev.PreventDefault()
		m.queue(m.openEditor(r.note.Note))
	}))
	bind(km, m.keys.copy, focus.Call(func(ev *focus.KeyEvent) {
		ev.PreventDefault()
		if err := clipboard.WriteAll(r.note.Content); err != nil {
			m.fail(fmt.Errorf("failed to copy note: %w", err))
			return
		}
		m.setStatus("Copied %q", firstWords(r.note.Content))
	}))
	bind(km, m.keys.remove, focus.Call(func(ev *focus.KeyEvent) {
		ev.PreventDefault()
		m.deleteNote(r)
	}))
	return km
}

func (m *Model) addKeys() focus.KeyMap {
	km := focus.KeyMap{}
	bind(km, m.keys.up, focus.Go(focus.PreviousY))
	bind(km, m.keys.open, focus.Call(func(ev *focus.KeyEvent) {
		ev.PreventDefault()
		m.queue(m.startEditing())
	}))
	return km
}

func (m *Model) startEditing() tea.Cmd {
	m.editing = true
	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.saveDraft()
}

// updateInput handles keys while the add-note input is active. Enter
// creates the note at the selected day and the current time of day.
func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopEditing()
		return nil
	case tea.KeyEnter:
		m.createNote()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) createNote() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.stopEditing()
		return
	}

	now := m.state.Now()
	n, err := m.store.Create(m.ctx, store.NewNote{
		Content: text,
		Start:   dates.At(m.date, now.Hour(), now.Minute()),
	})
	if err != nil {
		m.fail(err)
		return
	}

	m.input.Reset()
	if err := m.store.SaveDraft(m.ctx, m.date, ""); err != nil {
		m.fail(err)
	}
	m.setStatus("Added %q", firstWords(n.Content))
	m.invalidate()
	m.nav.MoveTo(m.add.item.Position())
}

func (m *Model) loadDraft() {
	if m.editing {
		return
	}
	draft, err := m.store.Draft(m.ctx, m.date)
	if err != nil {
		m.fail(err)
		return
	}
	m.input.SetValue(draft)
}

func (m *Model) saveDraft() {
	if err := m.store.SaveDraft(m.ctx, m.date, m.input.Value()); err != nil {
		m.fail(err)
	}
}

// refreshBody renders the focus grid into the body viewport.
func (m *Model) refreshBody() {
	lines := make([]string, 0, len(m.rows)+1)
	for _, r := range m.rows {
		lines = append(lines, m.rowLine(r.note, r.time.el.Focused(), r.content.el.Focused()))
	}
	lines = append(lines, m.addLine())
	m.body.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) rowLine(n store.DayNote, timeFocused, contentFocused bool) string {
	label := fmt.Sprintf("%5s %5s", n.StartLabel(), n.EndLabel())
	ts := timeStyle
	if timeFocused {
		ts = focusedStyle.Copy().PaddingLeft(1)
	}

	cs := noteStyle
	if contentFocused {
		cs = focusedStyle
	}
	title := content.Title(n.Content, m.width-timeColumnWidth-2)
	return ts.Render(label) + " " + cs.Render(title)
}

func (m *Model) addLine() string {
	label := timeStyle.Render(fmt.Sprintf("%5s %5s", "+", ""))
	if m.editing {
		return label + " " + m.input.View()
	}

	text := "Add note"
	if v := m.input.Value(); v != "" {
		text = content.Title(v, m.width-timeColumnWidth-2)
	}
	style := placeholderStyle
	if m.add != nil && m.add.el.Focused() {
		style = focusedStyle
	}
	return label + " " + style.Render(text)
}

// renderDay renders one slide of the day carousel. The selected day shows
// the live focus grid, its neighbours a static list.
func (m *Model) renderDay(offset int, visible bool) string {
	day := dates.FromDays(offset)
	head := dayTitleStyle.Render(day.Format("Monday, 2 January 2006"))
	if offset == dates.DaysSince(m.date) {
		return head + "\n" + m.body.View()
	}

	lines := []string{head}
	for _, n := range m.notesFor(offset) {
		lines = append(lines, m.rowLine(n, false, false))
	}
	return strings.Join(lines, "\n")
}
