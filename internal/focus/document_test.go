package focus

import "testing"

func TestDocumentFocusBlursPrevious(t *testing.T) {
	doc := NewDocument()

	var events []string
	a := doc.NewElement(func() { events = append(events, "focus a") }, func() { events = append(events, "blur a") })
	b := doc.NewElement(func() { events = append(events, "focus b") }, nil)

	a.Focus()
	a.Focus()
	b.Focus()

	want := []string{"focus a", "blur a", "focus b"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
	if doc.Active() != b || a.Focused() {
		t.Fatalf("expected b to be the active element")
	}

	a.Blur()
	if doc.Active() != b {
		t.Fatalf("blurring an inactive element must not change focus")
	}
	doc.Blur()
	if doc.Active() != nil {
		t.Fatalf("expected no active element")
	}
}

func TestRequestConsumesOnce(t *testing.T) {
	var r Request
	calls := 0

	if r.Consume(func() { calls++ }) {
		t.Fatalf("unarmed request must not run")
	}

	r.Request()
	r.Request()
	if !r.Consume(func() { calls++ }) || r.Consume(func() { calls++ }) {
		t.Fatalf("expected exactly one consume")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
