package day

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/dn/internal/content"
	"github.com/Paintersrp/dn/internal/dates"
	"github.com/Paintersrp/dn/internal/focus"
	"github.com/Paintersrp/dn/internal/store"
)

type dialogResult int

const (
	dialogOpen dialogResult = iota
	dialogCancelled
	dialogSaved
	dialogDeleted
)

// dialog edits the start of a note. It has its own focus scope: the date
// and time inputs on the first row, the buttons on the second.
type dialog struct {
	note store.DayNote
	now  func() time.Time

	nav *focus.Navigator
	doc *focus.Document

	dateInput textinput.Model
	timeInput textinput.Model
	cells     []*dialogCell

	result dialogResult
	start  time.Time
	end    *time.Time
	err    error
}

type dialogCell struct {
	item  *focus.Item
	el    *focus.Element
	input *textinput.Model
	label string
}

var (
	dialogDate   = focus.Position{X: 0, Y: 0}
	dialogTime   = focus.Position{X: 1, Y: 0}
	dialogDelete = focus.Position{X: 0, Y: 1}
	dialogCancel = focus.Position{X: 1, Y: 1}
	dialogDone   = focus.Position{X: 2, Y: 1}
)

func newDialog(n store.DayNote, now func() time.Time) *dialog {
	d := &dialog{
		note:      n,
		now:       now,
		doc:       focus.NewDocument(),
		dateInput: newField(dates.FormatDay(n.Start), 10),
		timeInput: newField(n.Start.Format("15:04"), 5),
	}
	d.nav = focus.New(focus.Options{MaxX: 2, MaxY: 1})

	submit := focus.Call(func(ev *focus.KeyEvent) {
		ev.PreventDefault()
		d.submit()
	})

	d.mount(dialogDate, "", &d.dateInput, focus.KeyMap{
		"tab":   focus.GoTo(dialogTime),
		"down":  focus.Go(focus.NextY),
		"enter": submit,
	})
	d.mount(dialogTime, "", &d.timeInput, focus.KeyMap{
		"tab":       focus.GoTo(dialogDone),
		"shift+tab": focus.GoTo(dialogDate),
		"down":      focus.Go(focus.NextY),
		"enter":     submit,
	})
	d.mount(dialogDelete, "Delete", nil, focus.KeyMap{
		"right": focus.Go(focus.NextX),
		"l":     focus.Go(focus.NextX),
		"tab":   focus.Go(focus.NextX),
		"up":    focus.Go(focus.PreviousY),
		"k":     focus.Go(focus.PreviousY),
		"enter": focus.Call(func(ev *focus.KeyEvent) {
			ev.PreventDefault()
			d.result = dialogDeleted
		}),
	})
	d.mount(dialogCancel, "Cancel", nil, focus.KeyMap{
		"left":      focus.Go(focus.PreviousX),
		"h":         focus.Go(focus.PreviousX),
		"shift+tab": focus.Go(focus.PreviousX),
		"right":     focus.Go(focus.NextX),
		"l":         focus.Go(focus.NextX),
		"tab":       focus.Go(focus.NextX),
		"up":        focus.Go(focus.PreviousY),
		"k":         focus.Go(focus.PreviousY),
		"enter": focus.Call(func(ev *focus.KeyEvent) {
			ev.PreventDefault()
			d.result = dialogCancelled
		}),
	})
	d.mount(dialogDone, "Done", nil, focus.KeyMap{
		"left":      focus.Go(focus.PreviousX),
		"h":         focus.Go(focus.PreviousX),
		"shift+tab": focus.Go(focus.PreviousX),
		"up":        focus.GoTo(dialogTime),
		"k":         focus.GoTo(dialogTime),
		"enter":     submit,
	})

	d.nav.MoveTo(dialogDate)
	return d
}

func newField(value string, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = width
	ti.SetValue(value)
	return ti
}

func (d *dialog) mount(p focus.Position, label string, input *textinput.Model, keys focus.KeyMap) {
	c := &dialogCell{item: d.nav.Bind(p, keys), input: input, label: label}
	c.el = d.doc.NewElement(
		func() {
			c.item.OnFocus()
			if c.input != nil {
				c.input.Focus()
				c.input.CursorEnd()
			}
		},
		func() {
			c.item.OnBlur()
			if c.input != nil {
				c.input.Blur()
			}
		},
	)
	c.item.Ref(c.el)
	c.item.Mount()
	d.cells = append(d.cells, c)
}

func (d *dialog) focused() *dialogCell {
	active := d.doc.Active()
	for _, c := range d.cells {
		if active != nil && c.el == active {
			return c
		}
	}
	return nil
}

// Update routes a key to the focused cell. Keys the cell does not consume
// go to its input.
func (d *dialog) Update(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		d.result = dialogCancelled
		return nil
	}

	c := d.focused()
	if c == nil {
		d.nav.MoveTo(dialogDate)
		return nil
	}

	ev := focus.NewKeyEvent(msg.String())
	c.item.OnKeyDown(ev)
	if ev.DefaultPrevented() || c.input == nil {
		return nil
	}

	var cmd tea.Cmd
	*c.input, cmd = c.input.Update(msg)
	d.err = nil
	return cmd
}

// submit parses the inputs into a new start, keeping the duration of notes
// that have an end.
func (d *dialog) submit() {
	day, err := dates.Parse(d.dateInput.Value(), d.now())
	if err != nil {
		d.err = err
		return
	}
	hour, min, err := dates.ParseClock(d.timeInput.Value())
	if err != nil {
		d.err = err
		return
	}

	d.start = dates.At(day, hour, min)
	d.end = nil
	if d.note.End != nil {
		end := d.start.Add(d.note.End.Sub(d.note.Start))
		d.end = &end
	}
	d.result = dialogSaved
}

func (d *dialog) View() string {
	title := titleStyle.Render(content.Title(d.note.Content, 36))

	field := func(label string, c *dialogCell) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), c.input.View())
	}
	fields := lipgloss.JoinVertical(lipgloss.Left,
		field("Date", d.cells[0]),
		field("Time", d.cells[1]),
	)

	buttons := make([]string, 0, 3)
	for _, c := range d.cells[2:] {
		style := buttonStyle
		if c.el.Focused() {
			style = activeButtonStyle
		}
		buttons = append(buttons, style.Render(c.label))
	}

	parts := []string{title, "", fields, "", lipgloss.JoinHorizontal(lipgloss.Top, buttons...)}
	if d.err != nil {
		parts = append(parts, "", errorStyle.Render(d.err.Error()))
	}
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) openDialog(r *row) {
	m.dialog = newDialog(r.note, m.state.Now)
}

// updateDialog forwards keys to the open dialog and applies its result
// once it closes.
func (m *Model) updateDialog(msg tea.KeyMsg) tea.Cmd {
	d := m.dialog
	cmd := d.Update(msg)

	switch d.result {
	case dialogOpen:
		return cmd
	case dialogSaved:
		if err := m.store.Reschedule(m.ctx, d.note.ID, d.start, d.end); err != nil {
			d.err = err
			d.result = dialogOpen
			return nil
		}
		m.setStatus("Moved %q to %s %s", firstWords(d.note.Content), dates.FormatDay(d.start), d.start.Format("15:04"))
	case dialogDeleted:
		if err := m.store.Delete(m.ctx, d.note.ID); err != nil {
			d.err = err
			d.result = dialogOpen
			return nil
		}
		m.setStatus("Deleted %q", firstWords(d.note.Content))
	}

	m.dialog = nil
	m.invalidate()
	return nil
}
