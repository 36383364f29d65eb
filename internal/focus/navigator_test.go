package focus

import (
	"sync"
	"testing"
	"time"
)

type grid struct {
	nav   *Navigator
	doc   *Document
	items map[Position]*Item
	els   map[Position]*Element
	unreg map[Position]func()
}

func newGrid(t *testing.T, opts Options, cells ...Position) *grid {
	t.Helper()

	g := &grid{
		nav:   New(opts),
		doc:   NewDocument(),
		items: make(map[Position]*Item),
		els:   make(map[Position]*Element),
		unreg: make(map[Position]func()),
	}
	for _, p := range cells {
		g.add(p, nil)
	}
	return g
}

func (g *grid) add(p Position, keys KeyMap) *Item {
	if keys == nil {
		keys = arrows()
	}
	it := g.nav.Bind(p, keys)
	g.els[p] = it.Attach(g.doc)
	g.unreg[p] = it.Mount()
	g.items[p] = it
	return it
}

func (g *grid) press(key string) *KeyEvent {
	ev := NewKeyEvent(key)
	for p, el := range g.els {
		if el.Focused() {
			g.items[p].OnKeyDown(ev)
			break
		}
	}
	return ev
}

func arrows() KeyMap {
	return KeyMap{
		"up":    Go(PreviousY),
		"down":  Go(NextY),
		"left":  Go(PreviousX),
		"right": Go(NextX),
	}
}

func TestMoveNextXFocusesNeighbour(t *testing.T) {
	var focused []Position
	g := newGrid(t, Options{MaxX: 1, MaxY: 2, OnFocus: func(p Position) {
		focused = append(focused, p)
	}},
		Position{0, 0}, Position{1, 0}, Position{0, 1},
	)

	g.nav.MoveTo(Position{0, 0})
	ev := g.press("right")

	if got := g.nav.Position(); got != (Position{1, 0}) {
		t.Fatalf("position = %+v, want {1 0}", got)
	}
	if !g.els[Position{1, 0}].Focused() {
		t.Fatalf("expected (1,0) element to hold focus")
	}
	if !ev.DefaultPrevented() {
		t.Fatalf("expected direction action to prevent default")
	}
	if len(focused) != 2 || focused[1] != (Position{1, 0}) {
		t.Fatalf("onFocus calls = %+v", focused)
	}
}

func TestMoveSkipsEmptyCellsAndNeverWraps(t *testing.T) {
	g := newGrid(t, Options{MaxX: 0, MaxY: 3}, Position{0, 0}, Position{0, 3})

	g.nav.MoveTo(Position{0, 0})
	g.nav.Move(NextY)
	if got := g.nav.Position(); got != (Position{0, 3}) {
		t.Fatalf("expected scan to skip to (0,3), got %+v", got)
	}

	g.nav.Move(NextY)
	if got := g.nav.Position(); got != (Position{0, 3}) {
		t.Fatalf("expected no wrap at bottom edge, got %+v", got)
	}

	g.nav.Move(PreviousY)
	g.nav.Move(PreviousY)
	if got := g.nav.Position(); got != (Position{0, 0}) {
		t.Fatalf("expected no wrap at top edge, got %+v", got)
	}
}

func TestPositionIsClampedOnRead(t *testing.T) {
	g := newGrid(t, Options{MaxX: 1, MaxY: 5}, Position{1, 5}, Position{1, 2})

	g.nav.MoveTo(Position{1, 5})
	g.nav.SetBounds(1, 2)

	if got := g.nav.Position(); got != (Position{1, 2}) {
		t.Fatalf("position = %+v, want clamped {1 2}", got)
	}

	g.nav.Move(Current)
	if !g.els[Position{1, 2}].Focused() {
		t.Fatalf("expected Current to focus the clamped cell")
	}
}

func TestClampWithEmptyBounds(t *testing.T) {
	n := New(Options{MaxX: -1, MaxY: -1, InitialX: 3, InitialY: 3})
	if got := n.Position(); got != (Position{}) {
		t.Fatalf("position = %+v, want origin", got)
	}
	n.Move(NextY)
	n.Move(Current)
	n.MoveTo(Position{4, 4})
}

func TestUnregisterIsIdempotentAndTokenScoped(t *testing.T) {
	n := New(Options{MaxX: 0, MaxY: 0})
	p := Position{}

	var first, second int
	unregFirst := n.Register(p, FocusFunc(func() { first++ }))
	unregSecond := n.Register(p, FocusFunc(func() { second++ }))

	unregFirst()
	unregFirst()

	n.MoveTo(p)
	if first != 0 || second != 1 {
		t.Fatalf("expected the newer registration to survive, first=%d second=%d", first, second)
	}

	unregSecond()
	if _, ok := n.cells[p]; ok {
		t.Fatalf("expected cell to be empty")
	}
	n.MoveTo(p)
	if second != 1 {
		t.Fatalf("expected no focus after unregister, got %d", second)
	}
}

func TestRegisterNilIsIgnored(t *testing.T) {
	n := New(Options{})
	unreg := n.Register(Position{}, nil)
	unreg()
	if _, ok := n.cells[Position{}]; ok {
		t.Fatalf("nil focusable must not be registered")
	}

	it := n.Bind(Position{}, nil)
	it.Mount()()
	if _, ok := n.cells[Position{}]; ok {
		t.Fatalf("item without ref must not be registered")
	}
}

func TestKeyMapActions(t *testing.T) {
	var keys []string
	g := newGrid(t, Options{MaxX: 1, MaxY: 2, OnKey: func(k string) { keys = append(keys, k) }})

	var called int
	allow := false
	g.add(Position{0, 0}, KeyMap{
		"enter": Call(func(ev *KeyEvent) { called++ }),
		"home":  GoTo(Position{1, 2}),
		"down":  Go(NextY).When(func(*KeyEvent) bool { return allow }),
	})
	g.add(Position{0, 1}, nil)
	g.add(Position{1, 2}, nil)

	g.nav.MoveTo(Position{0, 0})

	if ev := g.press("enter"); ev.DefaultPrevented() || called != 1 {
		t.Fatalf("callback action: called=%d prevented=%v", called, ev.DefaultPrevented())
	}

	if ev := g.press("down"); ev.DefaultPrevented() || g.nav.Position() != (Position{0, 0}) {
		t.Fatalf("guarded action should be ignored")
	}

	g.press("x")

	g.press("home")
	if got := g.nav.Position(); got != (Position{1, 2}) {
		t.Fatalf("absolute action: position = %+v", got)
	}

	want := []string{"enter", "down", "x", "home"}
	if len(keys) != len(want) {
		t.Fatalf("onKey saw %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("onKey saw %v, want %v", keys, want)
		}
	}
}

func TestBlurClearsHasFocus(t *testing.T) {
	g := newGrid(t, Options{MaxX: 0, MaxY: 0}, Position{})

	g.nav.MoveTo(Position{})
	if !g.nav.HasFocus() {
		t.Fatalf("expected focus")
	}
	g.doc.Blur()
	if g.nav.HasFocus() {
		t.Fatalf("expected blur to clear focus")
	}
}

type fakeTimer struct {
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(_ time.Duration, f func()) Timer {
	t := &fakeTimer{fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) fire() {
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			t.fn()
		}
	}
}

type behaviors struct {
	mu sync.Mutex
	m  map[string]string
}

func (b *behaviors) ScrollBehavior(id string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.m[id]
	return v, ok
}

func (b *behaviors) SetScrollBehavior(id, v string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.m[id] = v
}

func TestSmoothScrollRevertIsLastRequestWins(t *testing.T) {
	clock := &fakeClock{}
	scroll := &behaviors{m: map[string]string{"body": "auto"}}

	var seen []string
	n := New(Options{MaxX: 0, MaxY: 2, SmoothScrollID: "body", Scroll: scroll, Clock: clock})
	for y := 0; y <= 2; y++ {
		n.Register(Position{0, y}, FocusFunc(func() {
			v, _ := scroll.ScrollBehavior("body")
			seen = append(seen, v)
		}))
	}

	n.MoveTo(Position{0, 0})
	n.Move(NextY)
	n.Move(NextY)

	for i, v := range seen {
		if v != BehaviorSmooth {
			t.Fatalf("focus %d saw behavior %q, want smooth", i, v)
		}
	}
	if len(clock.timers) != 3 || !clock.timers[0].stopped || !clock.timers[1].stopped {
		t.Fatalf("expected earlier revert timers to be cancelled")
	}

	clock.fire()
	if v, _ := scroll.ScrollBehavior("body"); v != "auto" {
		t.Fatalf("behavior after revert = %q, want auto", v)
	}
}

func TestSmoothScrollCanBeDisabledPerMove(t *testing.T) {
	clock := &fakeClock{}
	scroll := &behaviors{m: map[string]string{"body": "auto"}}

	n := New(Options{SmoothScrollID: "body", Scroll: scroll, Clock: clock})
	n.Register(Position{}, FocusFunc(func() {}))

	n.MoveTo(Position{}, WithSmoothScroll(false))
	if len(clock.timers) != 0 {
		t.Fatalf("expected no revert timer")
	}

	n2 := New(Options{SmoothScrollID: "missing", Scroll: scroll, Clock: clock})
	n2.Register(Position{}, FocusFunc(func() {}))
	n2.MoveTo(Position{})
	if len(clock.timers) != 0 {
		t.Fatalf("expected unknown container to be skipped")
	}
}

func TestMoveCurrentAfterFocusedCellUnregisters(t *testing.T) {
	var focused []Position
	opts := Options{MaxX: 4, MaxY: 1, OnFocus: func(p Position) {
		focused = append(focused, p)
	}}

	var cells []Position
	for y := 0; y <= 1; y++ {
		for x := 0; x <= 4; x++ {
			cells = append(cells, Position{x, y})
		}
	}
	g := newGrid(t, opts, cells...)

	target := Position{2, 1}
	g.nav.MoveTo(target)
	if len(focused) != 1 || !g.els[target].Focused() {
		t.Fatalf("expected (2,1) focused, got %v", focused)
	}

	g.unreg[target]()
	g.nav.Move(Current)

	if len(focused) != 1 {
		t.Fatalf("move current on an empty cell must not focus, got %v", focused)
	}
	if got := g.nav.Position(); got != target {
		t.Fatalf("position = %+v, want %+v", got, target)
	}
	for p, el := range g.els {
		if p != target && el.Focused() {
			t.Fatalf("unexpected focus on %+v", p)
		}
	}
}
