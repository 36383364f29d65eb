// Package store persists notes and add-note drafts in a local SQLite file.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MaxContentLength is the longest note content accepted, in characters.
const MaxContentLength = 10000

// timeLayout stores wall-clock datetimes without a zone. Values of this
// layout sort lexically in time order.
const timeLayout = "2006-01-02T15:04:05"

var (
	ErrNotFound     = errors.New("note not found")
	ErrAmbiguous    = errors.New("note id prefix is ambiguous")
	ErrEmpty        = errors.New("note content is empty")
	ErrTooLong      = fmt.Errorf("note content exceeds %d characters", MaxContentLength)
	ErrInvalidRange = errors.New("note ends before it starts")
)

// Note is a markdown note placed on the calendar. Start and End are wall
// clock times; their location carries no meaning.
type Note struct {
	ID        string
	Content   string
	Start     time.Time
	End       *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote holds the fields of a note to create.
type NewNote struct {
	Content string
	Start   time.Time
	End     *time.Time
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set dialect: %w", err)
	}
	goose.SetLogger(goose.NopLogger())

	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return New(db), nil
}

// New wraps an already migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) stamp() string {
	return formatTime(s.now())
}

// Create validates and inserts a note.
func (s *Store) Create(ctx context.Context, n NewNote) (Note, error) {
	content, err := validateContent(n.Content)
	if err != nil {
		return Note{}, err
	}
	if n.End != nil && n.End.Before(n.Start) {
		return Note{}, ErrInvalidRange
	}

	stamp := s.stamp()
	note := Note{
		ID:      uuid.NewString(),
		Content: content,
		Start:   plain(n.Start),
		End:     plainPtr(n.End),
	}
	note.CreatedAt, _ = parseTime(stamp)
	note.UpdatedAt = note.CreatedAt

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO note (id, content, start, "end", created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		note.ID, note.Content, formatTime(note.Start), nullableTime(note.End), stamp, stamp,
	)
	if err != nil {
		return Note{}, fmt.Errorf("failed to insert note: %w", err)
	}
	return note, nil
}

// Get returns the note with the given id or unique id prefix.
func (s *Store) Get(ctx context.Context, id string) (Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Note{}, ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, start, "end", created_at, updated_at FROM note
		WHERE is_deleted = 0 AND (id = ? OR substr(id, 1, length(?)) = ?)
		ORDER BY id = ? DESC LIMIT 2`,
		id, id, id, id,
	)
	if err != nil {
		return Note{}, fmt.Errorf("failed to query note: %w", err)
	}
	notes, err := scanNotes(rows)
	if err != nil {
		return Note{}, err
	}

	switch {
	case len(notes) == 0:
		return Note{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	case notes[0].ID == id, len(notes) == 1:
		return notes[0], nil
	default:
		return Note{}, fmt.Errorf("%w: %s", ErrAmbiguous, id)
	}
}

// UpdateContent replaces the content of a note.
func (s *Store) UpdateContent(ctx context.Context, id, content string) error {
	content, err := validateContent(content)
	if err != nil {
		return err
	}
	return s.update(ctx, `UPDATE note SET content = ?, updated_at = ? WHERE id = ? AND is_deleted = 0`,
		content, s.stamp(), id)
}

// Reschedule moves a note. A nil end makes it a point in time.
func (s *Store) Reschedule(ctx context.Context, id string, start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return ErrInvalidRange
	}
	return s.update(ctx, `UPDATE note SET start = ?, "end" = ?, updated_at = ? WHERE id = ? AND is_deleted = 0`,
		formatTime(start), nullableTime(end), s.stamp(), id)
}

// Delete marks a note deleted.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.update(ctx, `UPDATE note SET is_deleted = 1, updated_at = ? WHERE id = ? AND is_deleted = 0`,
		s.stamp(), id)
}

func (s *Store) update(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// All returns every note, newest start first.
func (s *Store) All(ctx context.Context) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, start, "end", created_at, updated_at FROM note
		WHERE is_deleted = 0 ORDER BY start DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	return scanNotes(rows)
}

func scanNotes(rows *sql.Rows) ([]Note, error) {
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var (
			n                   Note
			start, created, upd string
			end                 sql.NullString
		)
		if err := rows.Scan(&n.ID, &n.Content, &start, &end, &created, &upd); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}

		var err error
		if n.Start, err = parseTime(start); err != nil {
			return nil, err
		}
		if end.Valid {
			t, err := parseTime(end.String)
			if err != nil {
				return nil, err
			}
			n.End = &t
		}
		if n.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if n.UpdatedAt, err = parseTime(upd); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}
	return notes, nil
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmpty
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return "", ErrTooLong
	}
	return content, nil
}

func plain(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func plainPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	p := plain(*t)
	return &p
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored time %q: %w", s, err)
	}
	return t, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}
