package day

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/dn/internal/config"
	"github.com/Paintersrp/dn/internal/dates"
	"github.com/Paintersrp/dn/internal/focus"
	"github.com/Paintersrp/dn/internal/logging"
	"github.com/Paintersrp/dn/internal/state"
	"github.com/Paintersrp/dn/internal/store"
	"github.com/Paintersrp/dn/internal/tui/strip"
)

// Wednesday; the week starts on Monday 3 June.
var now = time.Date(2024, time.June, 5, 10, 30, 0, 0, time.UTC)

func at(d, h, m int) time.Time {
	return time.Date(2024, time.June, d, h, m, 0, 0, time.UTC)
}

func newTestState(t *testing.T) *state.State {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "dn.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return &state.State{
		Config: config.Default(),
		Store:  st,
		Logger: logging.Discard(),
		Now:    func() time.Time { return now },
	}
}

func mustCreate(t *testing.T, s *state.State, content string, start time.Time, end *time.Time) store.Note {
	t.Helper()

	n, err := s.Store.Create(context.Background(), store.NewNote{Content: content, Start: start, End: end})
	if err != nil {
		t.Fatalf("create %q failed: %v", content, err)
	}
	return n
}

func newTestModel(t *testing.T, s *state.State, date time.Time) *Model {
	t.Helper()

	m := New(s, date)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

func settle(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; m.days.Animating() || m.weeks.Animating(); i++ {
		if i > 200 {
			t.Fatalf("carousels did not settle")
		}
		m.Update(strip.FrameMsg{ID: m.days.ID()})
		m.Update(strip.FrameMsg{ID: m.weeks.ID()})
	}
}

func notesOn(t *testing.T, s *state.State, day int) []store.DayNote {
	t.Helper()
	notes, err := s.Store.NotesByDay(context.Background(), at(day, 0, 0))
	if err != nil {
		t.Fatalf("notes by day failed: %v", err)
	}
	return notes
}

func TestMountFocusesFirstNote(t *testing.T) {
	s := newTestState(t)
	mustCreate(t, s, "second", at(5, 11, 0), nil)
	mustCreate(t, s, "first", at(5, 9, 0), nil)

	m := newTestModel(t, s, now)

	if len(m.rows) != 2 || m.rows[0].note.Content != "first" {
		t.Fatalf("unexpected rows: %+v", m.rows)
	}
	if !m.nav.HasFocus() || m.nav.Position() != (focus.Position{X: 1, Y: 0}) {
		t.Fatalf("expected focus on the first note, got %+v (focused=%v)", m.nav.Position(), m.nav.HasFocus())
	}

	steps := []struct {
		key  string
		want focus.Position
	}{
		{"j", focus.Position{X: 1, Y: 1}},
		{"j", focus.Position{X: 1, Y: 2}},
		{"j", focus.Position{X: 1, Y: 2}},
		{"k", focus.Position{X: 1, Y: 1}},
		{"h", focus.Position{X: 0, Y: 1}},
		{"j", focus.Position{X: 0, Y: 1}},
		{"k", focus.Position{X: 0, Y: 0}},
		{"l", focus.Position{X: 1, Y: 0}},
	}
	for i, step := range steps {
		press(m, step.key)
		if got := m.nav.Position(); got != step.want {
			t.Fatalf("step %d (%s): position = %+v, want %+v", i, step.key, got, step.want)
		}
	}
}

func TestDaySnapNavigatesAndRestoresFocus(t *testing.T) {
	s := newTestState(t)
	mustCreate(t, s, "first", at(5, 9, 0), nil)
	mustCreate(t, s, "second", at(5, 11, 0), nil)
	mustCreate(t, s, "tomorrow", at(6, 8, 0), nil)

	m := newTestModel(t, s, now)
	press(m, "j")

	press(m, "]")
	settle(t, m)
	if !dates.SameDay(m.Date(), at(6, 0, 0)) {
		t.Fatalf("date = %s, want 2024-06-06", dates.FormatDay(m.Date()))
	}
	if len(m.rows) != 1 || m.rows[0].note.Content != "tomorrow" {
		t.Fatalf("unexpected rows after snap: %+v", m.rows)
	}
	if got := m.nav.Position(); got != (focus.Position{X: 1, Y: 0}) {
		t.Fatalf("expected default focus on a new day, got %+v", got)
	}

	press(m, "[")
	settle(t, m)
	if !dates.SameDay(m.Date(), now) {
		t.Fatalf("date = %s, want 2024-06-05", dates.FormatDay(m.Date()))
	}
	if got := m.nav.Position(); got != (focus.Position{X: 1, Y: 1}) {
		t.Fatalf("expected restored focus, got %+v", got)
	}
	if m.days.Carousel().InfinityOffset() != 0 || !m.days.Carousel().IsCentered() {
		t.Fatalf("expected day carousel back at its origin")
	}
}

func TestNeighbourDaysRenderStatically(t *testing.T) {
	s := newTestState(t)
	mustCreate(t, s, "yesterday's note", at(4, 9, 0), nil)

	m := newTestModel(t, s, now)
	got := m.renderDay(dates.DaysSince(at(4, 0, 0)), false)
	if !strings.Contains(got, "Tuesday, 4 June 2024") || !strings.Contains(got, "yesterday's note") {
		t.Fatalf("unexpected neighbour slide:\n%s", got)
	}
}

func TestAddNoteUsesSelectedDayAndCurrentTime(t *testing.T) {
	s := newTestState(t)
	m := newTestModel(t, s, at(7, 0, 0))

	press(m, "a")
	if !m.editing {
		t.Fatalf("expected add input to be active")
	}
	press(m, "buy milk", "enter")

	notes := notesOn(t, s, 7)
	if len(notes) != 1 || notes[0].Content != "buy milk" {
		t.Fatalf("unexpected notes: %+v", notes)
	}
	if !notes[0].Start.Equal(at(7, 10, 30)) {
		t.Fatalf("start = %s, want 2024-06-07 10:30", notes[0].Start)
	}
	if got := m.nav.Position(); got != (focus.Position{X: 1, Y: 1}) {
		t.Fatalf("expected focus to stay on the add cell, got %+v", got)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input to be cleared, got %q", m.input.Value())
	}
}

func TestDraftIsKeptPerDay(t *testing.T) {
	s := newTestState(t)
	m := newTestModel(t, s, now)

	press(m, "a", "half a thought", "esc")
	if m.editing {
		t.Fatalf("expected escape to leave the input")
	}

	draft, err := s.Store.Draft(context.Background(), now)
	if err != nil || draft != "half a thought" {
		t.Fatalf("draft = %q, %v", draft, err)
	}

	other, err := s.Store.Draft(context.Background(), at(6, 0, 0))
	if err != nil || other != "" {
		t.Fatalf("draft leaked to another day: %q, %v", other, err)
	}

	again := newTestModel(t, s, now)
	if again.input.Value() != "half a thought" {
		t.Fatalf("expected draft to be restored, got %q", again.input.Value())
	}
}

func TestDialogReschedulesKeepingDuration(t *testing.T) {
	s := newTestState(t)
	end := at(5, 10, 0)
	n := mustCreate(t, s, "meeting", at(5, 9, 0), &end)

	m := newTestModel(t, s, now)
	press(m, "h", "enter")
	if m.dialog == nil {
		t.Fatalf("expected dialog to open from the time cell")
	}

	m.dialog.dateInput.SetValue("2024-06-07")
	press(m, "tab", "backspace", "backspace", "backspace", "backspace", "backspace", "14:15", "enter")
	if m.dialog != nil {
		t.Fatalf("expected dialog to close, err=%v", m.dialog.err)
	}

	got, err := s.Store.Get(context.Background(), n.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got.Start.Equal(at(7, 14, 15)) || got.End == nil || !got.End.Equal(at(7, 15, 15)) {
		t.Fatalf("unexpected schedule %s - %v", got.Start, got.End)
	}
	if len(m.rows) != 0 {
		t.Fatalf("expected the note to leave the day, rows=%d", len(m.rows))
	}
}

func TestDialogRejectsInvalidTime(t *testing.T) {
	s := newTestState(t)
	mustCreate(t, s, "meeting", at(5, 9, 0), nil)

	m := newTestModel(t, s, now)
	press(m, "h", "enter")
	m.dialog.timeInput.SetValue("25:99")
	press(m, "enter")

	if m.dialog == nil || m.dialog.err == nil {
		t.Fatalf("expected dialog to stay open with an error")
	}

	press(m, "esc")
	if m.dialog != nil {
		t.Fatalf("expected escape to cancel")
	}
	if notes := notesOn(t, s, 5); len(notes) != 1 || !notes[0].Start.Equal(at(5, 9, 0)) {
		t.Fatalf("cancel must not change the note: %+v", notes)
	}
	if got := m.nav.Position(); got != (focus.Position{X: 0, Y: 0}) {
		t.Fatalf("expected focus restored on the time cell, got %+v", got)
	}
}

func TestDialogDeleteButton(t *testing.T) {
	s := newTestState(t)
	mustCreate(t, s, "meeting", at(5, 9, 0), nil)

	m := newTestModel(t, s, now)
	press(m, "h", "enter", "down")
	if c := m.dialog.focused(); c == nil || c.label != "Delete" {
		t.Fatalf("expected the delete button to be focused")
	}
	press(m, "enter")

	if notes := notesOn(t, s, 5); len(notes) != 0 {
		t.Fatalf("expected note to be deleted, got %+v", notes)
	}
	if got := m.nav.Position(); got != (focus.Position{X: 1, Y: 0}) {
		t.Fatalf("expected focus on the add cell, got %+v", got)
	}
}

func TestDeleteFromList(t *testing.T) {
	s := newTestState(t)
	mustCreate(t, s, "one", at(5, 9, 0), nil)
	mustCreate(t, s, "two", at(5, 10, 0), nil)

	m := newTestModel(t, s, now)
	press(m, "j", "d")

	if len(m.rows) != 1 || m.rows[0].note.Content != "one" {
		t.Fatalf("unexpected rows: %+v", m.rows)
	}
	if got := m.nav.Position(); got != (focus.Position{X: 1, Y: 1}) {
		t.Fatalf("expected focus to move to the add cell, got %+v", got)
	}
}

func TestDetailOpensAndRestoresFocus(t *testing.T) {
	s := newTestState(t)
	mustCreate(t, s, "# Plan\n\nwrite the **report**", at(5, 9, 0), nil)
	mustCreate(t, s, "other", at(5, 10, 0), nil)

	m := newTestModel(t, s, now)
	press(m, "enter")
	if m.detail == nil {
		t.Fatalf("expected detail view")
	}
	if view := m.View(); !strings.Contains(view, "report") {
		t.Fatalf("detail view misses content:\n%s", view)
	}

	press(m, "esc")
	if m.detail != nil {
		t.Fatalf("expected detail to close")
	}
	if got := m.nav.Position(); got != (focus.Position{X: 1, Y: 0}) {
		t.Fatalf("expected focus restored, got %+v", got)
	}
}

func TestTodayKey(t *testing.T) {
	s := newTestState(t)
	m := newTestModel(t, s, at(7, 0, 0))

	press(m, "t")
	if !dates.SameDay(m.Date(), now) {
		t.Fatalf("expected today, got %s", dates.FormatDay(m.Date()))
	}
	if m.attending {
		t.Fatalf("navigating to today must not flash the title")
	}

	press(m, "t")
	if !m.attending {
		t.Fatalf("expected attention when already on today")
	}
	m.Update(attentionMsg{id: m.attention})
	if m.attending {
		t.Fatalf("expected attention to clear")
	}

	thisWeek := m.shownWeek
	press(m, "}")
	settle(t, m)
	if m.shownWeek != thisWeek+1 || m.weeks.Carousel().IsCentered() {
		t.Fatalf("expected header on the next week, shown=%d", m.shownWeek)
	}
	if !dates.SameDay(m.Date(), now) {
		t.Fatalf("browsing weeks must not change the day")
	}

	press(m, "t")
	settle(t, m)
	if m.shownWeek != thisWeek || !m.weeks.Carousel().IsCentered() {
		t.Fatalf("expected header back on this week, shown=%d", m.shownWeek)
	}
	if m.attending {
		t.Fatalf("scrolling back must not flash the title")
	}
}

func TestMonthTitleShowsBothMonths(t *testing.T) {
	s := newTestState(t)
	m := newTestModel(t, s, now)

	if got := m.titleView(); !strings.Contains(got, "June 2024") || !strings.Contains(got, "today") {
		t.Fatalf("unexpected title %q", got)
	}

	// The week of 27 May ends in June.
	press(m, "{")
	settle(t, m)
	if got := m.titleView(); !strings.Contains(got, "May / June 2024") {
		t.Fatalf("expected both months, got %q", got)
	}
}

func TestMonthTitleFollowsSelectedDay(t *testing.T) {
	s := newTestState(t)

	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), "June 2024"},
		{time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), "December 2024"},
		{time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), "January 2025"},
	}
	for _, tt := range tests {
		m := newTestModel(t, s, tt.date)
		if got := m.titleView(); !strings.Contains(got, tt.want) {
			t.Fatalf("title for %s = %q, want %q", dates.FormatDay(tt.date), got, tt.want)
		}
	}

	// Browsing a week ahead of 30 December shows January of the next year.
	m := newTestModel(t, s, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC))
	press(m, "}")
	settle(t, m)
	if got := m.titleView(); !strings.Contains(got, "January 2025") {
		t.Fatalf("expected January 2025, got %q", got)
	}
}

func TestWeekdayKeysPickFromShownWeek(t *testing.T) {
	s := newTestState(t)
	m := newTestModel(t, s, now)

	press(m, "1")
	settle(t, m)
	if got := dates.FormatDay(m.Date()); got != "2024-06-03" {
		t.Fatalf("expected Monday of this week, got %s", got)
	}

	press(m, "}")
	settle(t, m)
	press(m, "5")
	settle(t, m)
	if got := dates.FormatDay(m.Date()); got != "2024-06-14" {
		t.Fatalf("expected Friday of next week, got %s", got)
	}
	if m.shownWeek != dates.WeeksSince(m.Date(), m.first) || !m.weeks.Carousel().IsCentered() {
		t.Fatalf("expected header on the picked week, shown=%d", m.shownWeek)
	}
}

func TestClickWeekStripPicksDay(t *testing.T) {
	s := newTestState(t)
	m := newTestModel(t, s, now)

	press(m, "{")
	settle(t, m)

	click := func(x, y int) {
		m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		settle(t, m)
	}

	click(m.columnWidth()*6+1, 0)
	if !dates.SameDay(m.Date(), now) {
		t.Fatalf("clicks outside the week strip must be ignored")
	}

	click(m.columnWidth()*6+1, weekStripRow)
	if got := dates.FormatDay(m.Date()); got != "2024-06-02" {
		t.Fatalf("expected Sunday 2 June, got %s", got)
	}
}

func TestStoreChangeReloadsRows(t *testing.T) {
	s := newTestState(t)
	m := newTestModel(t, s, now)
	if len(m.rows) != 0 {
		t.Fatalf("expected empty day")
	}

	mustCreate(t, s, "from elsewhere", at(5, 12, 0), nil)
	m.Update(state.StoreChangedMsg{File: "dn.db-wal"})

	if len(m.rows) != 1 {
		t.Fatalf("expected reload to pick up the new note")
	}
	if view := m.View(); !strings.Contains(view, "from elsewhere") {
		t.Fatalf("view misses the new note:\n%s", view)
	}
}

func TestScrollerBehaviors(t *testing.T) {
	s := newScroller(bodyScrollID)

	if b, ok := s.ScrollBehavior(bodyScrollID); !ok || b != behaviorAuto {
		t.Fatalf("unexpected initial behavior %q, %v", b, ok)
	}
	s.SetScrollBehavior(bodyScrollID, focus.BehaviorSmooth)
	if b, _ := s.ScrollBehavior(bodyScrollID); b != focus.BehaviorSmooth {
		t.Fatalf("behavior = %q", b)
	}

	s.SetScrollBehavior("other", focus.BehaviorSmooth)
	if _, ok := s.ScrollBehavior("other"); ok {
		t.Fatalf("unknown containers must stay unknown")
	}
}
