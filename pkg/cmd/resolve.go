package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/dn/internal/content"
	"github.com/Paintersrp/dn/internal/dates"
	"github.com/Paintersrp/dn/internal/state"
	"github.com/Paintersrp/dn/internal/store"
)

// ShortIDLength is how much of a note id commands print.
const ShortIDLength = 8

// Context returns the command context, or a background context for commands
// that were not started through Execute.
func Context(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

// ResolveNote looks up the note named by arg, a full id or a unique prefix
// of one.
func ResolveNote(cmd *cobra.Command, s *state.State, arg string) (store.Note, error) {
	if s == nil || s.Store == nil {
		return store.Note{}, fmt.Errorf("state store is not initialized")
	}
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return store.Note{}, fmt.Errorf("a note id argument is required")
	}
	return s.Store.Get(Context(cmd), arg)
}

// ResolveDay parses a day argument relative to the state clock. An empty
// argument is today.
func ResolveDay(s *state.State, arg string) (time.Time, error) {
	now := time.Now()
	if s != nil && s.Now != nil {
		now = s.Now()
	}
	return dates.Parse(arg, now)
}

func ShortID(id string) string {
	if len(id) > ShortIDLength {
		return id[:ShortIDLength]
	}
	return id
}

// FormatNote renders a note as one line: short id, start and title.
func FormatNote(n store.Note, width int) string {
	when := dates.FormatDay(n.Start) + " " + n.Start.Format("15:04")
	if n.End != nil {
		if dates.SameDay(n.Start, *n.End) {
			when += "-" + n.End.Format("15:04")
		} else {
			when += " → " + dates.FormatDay(*n.End) + " " + n.End.Format("15:04")
		}
	}
	return fmt.Sprintf("%s  %s  %s", ShortID(n.ID), when, content.Title(n.Content, width))
}
