// Package cmdtest builds state for command tests.
package cmdtest

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/dn/internal/config"
	"github.com/Paintersrp/dn/internal/logging"
	"github.com/Paintersrp/dn/internal/state"
	"github.com/Paintersrp/dn/internal/store"
)

// Now is the clock of every state built here: Wednesday 5 June 2024, 10:30.
var Now = time.Date(2024, time.June, 5, 10, 30, 0, 0, time.UTC)

// NewState returns state with a config file and an open store below a
// temporary directory.
func NewState(t *testing.T) *state.State {
	t.Helper()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("ensure config failed: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	cfg.DataDir = filepath.Join(home, "data")

	st, err := store.Open(filepath.Join(t.TempDir(), "dn.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return &state.State{
		Config:     cfg,
		ConfigHome: home,
		Store:      st,
		Logger:     logging.Discard(),
		Now:        func() time.Time { return Now },
	}
}

// MustCreate adds a note starting at start, optionally with an end.
func MustCreate(t *testing.T, s *state.State, content string, start time.Time, end ...time.Time) store.Note {
	t.Helper()

	n := store.NewNote{Content: content, Start: start}
	if len(end) > 0 {
		n.End = &end[0]
	}
	created, err := s.Store.Create(context.Background(), n)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return created
}

// Execute runs cmd with args and returns what it printed.
func Execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
