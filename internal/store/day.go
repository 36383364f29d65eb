package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Paintersrp/dn/internal/dates"
)

const dayLayout = "2006-01-02"

// DayNote is a note as seen from one day.
type DayNote struct {
	Note
	StartsBefore bool
	EndsAfter    bool
}

// Overlaps reports whether the note covers the whole day.
func (n DayNote) Overlaps() bool {
	return n.StartsBefore && n.EndsAfter
}

// StartLabel is "←" for notes that began on an earlier day and the start
// time otherwise.
func (n DayNote) StartLabel() string {
	if n.StartsBefore {
		return "←"
	}
	return dates.Clock(n.Start)
}

// EndLabel is "→" for notes that continue past the day, the end time for
// notes that end on it and empty for notes without an end.
func (n DayNote) EndLabel() string {
	switch {
	case n.EndsAfter:
		return "→"
	case n.End != nil:
		return dates.Clock(*n.End)
	}
	return ""
}

func dayBounds(day time.Time) (string, string) {
	d := day.Format(dayLayout)
	return d + "T00:00:00", d + "T23:59:59"
}

// NotesByDay returns the notes touching day: those starting or ending on it
// and those spanning it. Notes covering the whole day come first, then those
// that started earlier, then the rest, each group in start order.
func (s *Store) NotesByDay(ctx context.Context, day time.Time) ([]DayNote, error) {
	from, to := dayBounds(day)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, start, "end", created_at, updated_at FROM note
		WHERE is_deleted = 0 AND (
			start BETWEEN ?1 AND ?2
			OR coalesce("end", start) BETWEEN ?1 AND ?2
			OR (start <= ?1 AND coalesce("end", start) >= ?2)
		)
		ORDER BY start, created_at`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes of %s: %w", day.Format(dayLayout), err)
	}
	notes, err := scanNotes(rows)
	if err != nil {
		return nil, err
	}

	out := make([]DayNote, len(notes))
	for i, n := range notes {
		start := formatTime(n.Start)
		out[i] = DayNote{
			Note:         n,
			StartsBefore: start < from,
			EndsAfter:    n.End != nil && formatTime(*n.End) > to,
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return group(out[i]) < group(out[j])
	})
	return out, nil
}

func group(n DayNote) int {
	switch {
	case n.Overlaps():
		return 0
	case n.StartsBefore:
		return 1
	}
	return 2
}

// Draft returns the unsaved add-note text of day.
func (s *Store) Draft(ctx context.Context, day time.Time) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx, `SELECT content FROM draft WHERE day = ?`, day.Format(dayLayout)).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}
	return content, nil
}

// SaveDraft stores the add-note text of day. Blank text removes the draft.
func (s *Store) SaveDraft(ctx context.Context, day time.Time, content string) error {
	key := day.Format(dayLayout)
	if strings.TrimSpace(content) == "" {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM draft WHERE day = ?`, key); err != nil {
			return fmt.Errorf("failed to clear draft: %w", err)
		}
		return nil
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO draft (day, content, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		key, content, s.stamp(),
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}
