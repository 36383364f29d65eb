package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dn.log")

	logger, closer, err := New(path, "warn")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "day", "2024-06-13")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") || !strings.Contains(out, "day=2024-06-13") {
		t.Fatalf("unexpected log output: %q", out)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Fatalf("log mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closer, err := New("", "nonsense")
	if err != nil {
		t.Fatalf("expected no error without a path, got %v", err)
	}
	logger.Error("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected invalid level")
	}
}
