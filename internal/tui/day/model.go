// Package day is the day screen: a week header carousel, a day carousel and
// the notes of the selected day laid out on a roving focus grid.
package day

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/dn/internal/cache"
	"github.com/Paintersrp/dn/internal/carousel"
	"github.com/Paintersrp/dn/internal/dates"
	"github.com/Paintersrp/dn/internal/focus"
	"github.com/Paintersrp/dn/internal/state"
	"github.com/Paintersrp/dn/internal/store"
	"github.com/Paintersrp/dn/internal/tui/strip"
)

const (
	positionCacheSize = 64
	noteCacheSize     = 16
	attentionDuration = 600 * time.Millisecond

	// title, weekday names and the week strip
	headerHeight = 3
)

type noteStore interface {
	NotesByDay(ctx context.Context, day time.Time) ([]store.DayNote, error)
	Create(ctx context.Context, n store.NewNote) (store.Note, error)
	UpdateContent(ctx context.Context, id, content string) error
	Reschedule(ctx context.Context, id string, start time.Time, end *time.Time) error
	Delete(ctx context.Context, id string) error
	Draft(ctx context.Context, day time.Time) (string, error)
	SaveDraft(ctx context.Context, day time.Time, content string) error
}

type attentionMsg struct {
	id int
}

// cell is one mounted focus cell.
type cell struct {
	item    *focus.Item
	el      *focus.Element
	unmount func()
}

type row struct {
	note    store.DayNote
	time    *cell
	content *cell
}

type Model struct {
	state *state.State
	store noteStore
	ctx   context.Context
	keys  *keyMap
	help  help.Model

	width  int
	height int

	first time.Weekday
	date  time.Time
	gen   uint64

	weeks      *strip.Model
	days       *strip.Model
	shownWeek  int
	pendingDay *int
	attention  int
	attending  bool

	body          viewport.Model
	scroller      *scroller
	bodyTarget    int
	bodyAnimating bool
	bodyTicking   bool

	nav     *focus.Navigator
	doc     *focus.Document
	request focus.Request
	rows    []*row
	add     *cell
	cells   []*cell

	input   textinput.Model
	editing bool

	positions *cache.LRU[string, focus.Position]
	notes     *cache.LRU[int, []store.DayNote]

	dialog *dialog
	detail *detail

	queued []tea.Cmd
	status string
	err    error
}

// New returns the day screen opened on date. s must be open.
func New(s *state.State, date time.Time) *Model {
	m := &Model{
		state:     s,
		store:     s.Store,
		ctx:       context.Background(),
		keys:      newKeyMap(),
		help:      help.New(),
		first:     s.Config.FirstWeekday(),
		date:      dates.Civil(date),
		gen:       1,
		body:      viewport.New(0, 0),
		scroller:  newScroller(bodyScrollID),
		doc:       focus.NewDocument(),
		input:     newInput(),
		positions: cache.New[string, focus.Position](positionCacheSize),
		notes:     cache.New[int, []store.DayNote](noteCacheSize),
	}
	m.shownWeek = dates.WeeksSince(m.date, m.first)

	m.weeks = strip.New(carousel.New(carousel.Config{
		SnapCount:  s.Config.SnapCount,
		Generation: m.gen,
		Offset:     m.shownWeek,
		RenderItem: m.renderWeek,
		OnSnap:     func(week int) { m.shownWeek = week },
	}))
	m.days = strip.New(carousel.New(carousel.Config{
		SnapCount:  s.Config.SnapCount,
		Generation: m.gen,
		Offset:     dates.DaysSince(m.date),
		RenderItem: m.renderDay,
		// Navigating re-syncs the carousel, which must not happen while it
		// is still handling the scroll. The day is applied after the update.
		OnSnap: func(day int) { m.pendingDay = &day },
	}))

	m.nav = focus.New(focus.Options{
		MaxX:           1,
		InitialX:       1,
		OnFocus:        m.onFocus,
		OnKey:          m.onKey,
		SmoothScrollID: bodyScrollID,
		Scroll:         m.scroller,
	})

	m.request.Request()
	m.mountRows()
	return m
}

// Run opens the day screen in the alternate screen and blocks until it
// quits.
func Run(s *state.State, date time.Time) error {
	p := tea.NewProgram(New(s, date), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Add note"
	ti.CharLimit = store.MaxContentLength
	return ti
}

// Date is the selected day.
func (m *Model) Date() time.Time {
	return m.date
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.watch(), m.weeks.Sync(), m.days.Sync())
}

func (m *Model) watch() tea.Cmd {
	if m.state.Watcher == nil {
		return nil
	}
	return m.state.Watcher.Start()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds = append(cmds, m.layout())

	case strip.FrameMsg:
		cmds = append(cmds, m.weeks.Update(msg), m.days.Update(msg), m.applyPending())

	case bodyFrameMsg:
		m.stepBody()

	case attentionMsg:
		if msg.id == m.attention {
			m.attending = false
		}

	case editorFinishedMsg:
		m.finishEdit(msg)

	case state.StoreChangedMsg:
		m.notes.Purge()
		m.mountRows()
		cmds = append(cmds, m.watch())

	case state.StoreWatcherErrMsg:
		m.state.Logger.Warn("store watcher error", "err", msg.Err)
		cmds = append(cmds, m.watch())

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		cmds = append(cmds, cmd, m.applyPending())

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	}

	cmds = append(cmds, m.flush(), m.bodyTick())
	m.refreshBody()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.quit) && msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch {
	case m.detail != nil:
		return m.updateDetail(msg)
	case m.dialog != nil:
		return m.updateDialog(msg)
	case m.editing:
		return m.updateInput(msg)
	}

	m.status, m.err = "", nil

	if c := m.focusedCell(); c != nil {
		ev := focus.NewKeyEvent(msg.String())
		c.item.OnKeyDown(ev)
		if ev.DefaultPrevented() {
			return nil
		}
	} else if key.Matches(msg, m.keys.up, m.keys.down, m.keys.left, m.keys.right) {
		m.nav.Move(focus.Current)
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m.quit()
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m.layout()
	case key.Matches(msg, m.keys.prevDay):
		return m.days.Snap(-1)
	case key.Matches(msg, m.keys.nextDay):
		return m.days.Snap(1)
	case key.Matches(msg, m.keys.prevWeek):
		return m.weeks.Snap(-1)
	case key.Matches(msg, m.keys.nextWeek):
		return m.weeks.Snap(1)
	case key.Matches(msg, m.keys.today):
		return m.goToday()
	case key.Matches(msg, m.keys.pick):
		return m.pickWeekday(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.add):
		m.nav.MoveTo(m.add.item.Position())
		return m.startEditing()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.saveDraft()
	return tea.Quit
}

func (m *Model) onFocus(p focus.Position) {
	m.positions.Put(dates.FormatDay(m.date), p)
	m.ensureVisible(p.Y)
}

// onKey arms the focus request on the keys that leave or return to the
// list, so the next mount restores the remembered cell.
func (m *Model) onKey(k string) {
	if k == "enter" || k == "esc" {
		m.request.Request()
	}
}

// queue runs cmd after the current update. Key actions use it since they
// cannot return commands.
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.queued = append(m.queued, cmd)
	}
}

func (m *Model) flush() tea.Cmd {
	if len(m.queued) == 0 {
		return nil
	}
	cmds := m.queued
	m.queued = nil
	return tea.Batch(cmds...)
}

func (m *Model) fail(err error) {
	if err == nil {
		return
	}
	m.err = err
	m.status = ""
	m.state.Logger.Error("day screen", "date", dates.FormatDay(m.date), "err", err)
}

func (m *Model) setStatus(format string, args ...any) {
	m.err = nil
	m.status = fmt.Sprintf(format, args...)
}

// setDate selects d and reconciles both carousels with it.
func (m *Model) setDate(d time.Time) {
	d = dates.Civil(d)
	if dates.SameDay(d, m.date) {
		return
	}

	m.saveDraft()
	if m.nav.HasFocus() {
		m.request.Request()
	}

	m.date = d
	m.gen++
	m.days.Carousel().Sync(m.gen, dates.DaysSince(d))
	week := dates.WeeksSince(d, m.first)
	m.weeks.Carousel().Sync(m.gen, week)
	m.shownWeek = week

	m.mountRows()
}

func (m *Model) applyPending() tea.Cmd {
	if m.pendingDay == nil {
		return nil
	}
	day := *m.pendingDay
	m.pendingDay = nil

	c := m.days.Carousel()
	m.state.Logger.Debug("day snapped",
		"day", day,
		"key", c.Key(),
		"scroll", c.ScrollOffset(),
		"diff", c.DiffOffset(),
		"infinity", c.InfinityOffset(),
	)

	m.setDate(dates.FromDays(day))
	return tea.Batch(m.days.Sync(), m.weeks.Sync())
}

// goToday selects today. When today is already selected the week header is
// brought back to it, or the title flashes when it is already there.
func (m *Model) goToday() tea.Cmd {
	today := dates.Today(m.state.Now())
	if !dates.SameDay(today, m.date) {
		m.setDate(today)
		return tea.Batch(m.days.Sync(), m.weeks.Sync())
	}

	weeks := m.weeks.Carousel()
	if weeks.IsCentered() {
		m.attention++
		m.attending = true
		id := m.attention
		return tea.Tick(attentionDuration, func(time.Time) tea.Msg {
			return attentionMsg{id: id}
		})
	}

	m.shownWeek = dates.WeeksSince(today, m.first)
	weeks.ScrollToCenter()
	return m.weeks.Sync()
}

func (m *Model) layout() tea.Cmd {
	if m.width == 0 {
		return nil
	}

	m.help.Width = m.width
	bodyHeight := m.height - headerHeight - lipgloss.Height(m.footerView())
	if bodyHeight < 2 {
		bodyHeight = 2
	}

	m.weeks.SetSize(m.width, 1)
	m.days.SetSize(m.width, bodyHeight)
	m.body.Width = m.width
	m.body.Height = bodyHeight - lipgloss.Height(dayTitleStyle.Render("x"))
	m.input.Width = m.width - timeColumnWidth - 4

	if m.detail != nil {
		m.detail.setSize(m.width, m.height-1)
	}
	if p := m.nav.Position(); m.nav.HasFocus() {
		m.ensureVisible(p.Y)
	}

	return tea.Batch(m.weeks.Sync(), m.days.Sync())
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.detail != nil {
		return m.detail.View()
	}

	body := m.days.View()
	if m.dialog != nil {
		body = lipgloss.Place(m.width, lipgloss.Height(body), lipgloss.Center, lipgloss.Center, m.dialog.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.titleView(),
		m.weekdaysView(),
		m.weeks.View(),
		body,
		m.footerView(),
	)
}

func (m *Model) footerView() string {
	var line string
	switch {
	case m.err != nil:
		line = errorStyle.Render(m.err.Error())
	case m.status != "":
		line = statusStyle.Render(m.status)
	default:
		line = " "
	}
	return line + "\n" + m.help.View(m.keys)
}

func (m *Model) notesFor(offset int) []store.DayNote {
	if notes, ok := m.notes.Get(offset); ok {
		return notes
	}

	notes, err := m.store.NotesByDay(m.ctx, dates.FromDays(offset))
	if err != nil {
		m.fail(err)
		return nil
	}
	m.notes.Put(offset, notes)
	return notes
}

// invalidate drops every cached day and remounts the selected one. A write
// can touch several days when a note spans them.
func (m *Model) invalidate() {
	m.notes.Purge()
	m.mountRows()
}

func (m *Model) findRow(id string) *row {
	for _, r := range m.rows {
		if r.note.ID == id {
			return r
		}
	}
	return nil
}

func (m *Model) deleteNote(r *row) {
	if err := m.store.Delete(m.ctx, r.note.ID); err != nil {
		m.fail(err)
		return
	}
	m.setStatus("Deleted %q", firstWords(r.note.Content))
	m.invalidate()
}

func firstWords(s string) string {
	s = strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])
	if r := []rune(s); len(r) > 24 {
		return string(r[:24]) + "…"
	}
	return s
}
