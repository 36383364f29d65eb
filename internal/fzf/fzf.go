package fzf

import (
	"errors"
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/dn/internal/content"
	"github.com/Paintersrp/dn/internal/dates"
	"github.com/Paintersrp/dn/internal/store"
)

// ErrNoSelection is returned when the user aborts the finder.
var ErrNoSelection = errors.New("no note selected")

// FindFunc matches fuzzyfinder.Find so tests can replace the terminal UI.
type FindFunc func(slice any, itemFunc func(i int) string, opts ...fuzzyfinder.Option) (int, error)

// FuzzyFinder picks one note with a markdown preview.
type FuzzyFinder struct {
	Header string
	Style  string
	notes  []store.Note
	find   FindFunc
}

func NewFuzzyFinder(notes []store.Note, header, style string) *FuzzyFinder {
	return &FuzzyFinder{Header: header, Style: style, notes: notes, find: fuzzyfinder.Find}
}

// Run opens the finder pre-filled with query and returns the chosen note.
func (f *FuzzyFinder) Run(query string) (store.Note, error) {
	if len(f.notes) == 0 {
		return store.Note{}, fmt.Errorf("%w: there are no notes yet", ErrNoSelection)
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := f.find(f.notes, f.label, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return store.Note{}, ErrNoSelection
		}
		return store.Note{}, fmt.Errorf("error selecting note: %w", err)
	}
	if idx < 0 || idx >= len(f.notes) {
		return store.Note{}, ErrNoSelection
	}
	return f.notes[idx], nil
}

func (f *FuzzyFinder) label(i int) string {
	n := f.notes[i]
	return fmt.Sprintf("%s %s  %s", dates.FormatDay(n.Start), n.Start.Format("15:04"), content.FirstLine(n.Content))
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	markdown, err := content.Render(f.notes[i].Content, max(20, w-4), f.Style)
	if err != nil {
		return "Error rendering markdown"
	}
	return markdown
}

// HandleError prints the outcome of an aborted or failed search.
func HandleError(w io.Writer, err error) error {
	if errors.Is(err, ErrNoSelection) {
		fmt.Fprintln(w, err)
		return nil
	}
	return err
}
