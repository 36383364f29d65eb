package list

import (
	"strings"
	"testing"
	"time"

	"github.com/Paintersrp/dn/pkg/cmd/cmdtest"
)

func at(day, hour, min int) time.Time {
	return time.Date(2024, time.June, day, hour, min, 0, 0, time.UTC)
}

func TestListDay(t *testing.T) {
	s := cmdtest.NewState(t)
	cmdtest.MustCreate(t, s, "Lunch", at(5, 12, 0), at(5, 13, 0))
	cmdtest.MustCreate(t, s, "# Standup\n- one", at(5, 9, 0))
	cmdtest.MustCreate(t, s, "Trip", at(4, 18, 0), at(7, 9, 0))
	cmdtest.MustCreate(t, s, "Tomorrow", at(6, 9, 0))

	out, err := cmdtest.Execute(t, NewCmdList(s))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "Wednesday, 5 June 2024" {
		t.Fatalf("unexpected heading %q", lines[0])
	}
	if len(lines) != 4 {
		t.Fatalf("expected heading and three notes, got:\n%s", out)
	}

	want := []struct{ labels, title string }{
		{"    ←     →", "Trip"},
		{"09:00      ", "Standup"},
		{"12:00 13:00", "Lunch"},
	}
	for i, w := range want {
		line := lines[i+1]
		if !strings.HasPrefix(line, "  "+w.labels) || !strings.HasSuffix(line, w.title) {
			t.Fatalf("line %d = %q, want labels %q and title %q", i+1, line, w.labels, w.title)
		}
	}
}

func TestListEmptyDay(t *testing.T) {
	s := cmdtest.NewState(t)

	out, err := cmdtest.Execute(t, NewCmdList(s), "2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Monday, 1 January 2024") || !strings.Contains(out, "No notes.") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestListAll(t *testing.T) {
	s := cmdtest.NewState(t)

	out, err := cmdtest.Execute(t, NewCmdList(s), "--all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No notes yet.") {
		t.Fatalf("unexpected output %q", out)
	}

	cmdtest.MustCreate(t, s, "Older", at(1, 9, 0))
	cmdtest.MustCreate(t, s, "Newer", at(9, 9, 0))

	out, err = cmdtest.Execute(t, NewCmdList(s), "--all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Index(out, "Newer") > strings.Index(out, "Older") {
		t.Fatalf("expected newest first:\n%s", out)
	}
}
