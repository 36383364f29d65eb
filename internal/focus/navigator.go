// Package focus implements a roving focus grid: one logical cursor over a
// sparse set of focusable cells, moved by key bindings or imperatively.
package focus

import "time"

// BehaviorSmooth is the scroll behavior set on the scroll container while a
// smooth move is in flight.
const BehaviorSmooth = "smooth"

// revertDelay is how long a container keeps smooth scrolling after a move.
// Zero defers the revert to the next timer tick.
const revertDelay = 0

// Position is a cell in the navigation grid.
type Position struct {
	X int
	Y int
}

// Focusable is anything that can take focus. Focusing is expected to
// report back through Item.OnFocus, the way a native focus event would.
type Focusable interface {
	Focus()
}

// FocusFunc adapts a function to Focusable.
type FocusFunc func()

func (f FocusFunc) Focus() { f() }

// ScrollBehavior reads and writes the scroll behavior of a scroll container
// identified by id. Implementations must tolerate SetScrollBehavior being
// called from a timer goroutine.
type ScrollBehavior interface {
	ScrollBehavior(id string) (behavior string, ok bool)
	SetScrollBehavior(id, behavior string)
}

// Timer is the subset of *time.Timer used by the navigator.
type Timer interface {
	Stop() bool
}

// Clock schedules the smooth-scroll revert.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Options configures a Navigator.
type Options struct {
	MaxX     int
	MaxY     int
	InitialX int
	InitialY int

	// OnFocus is called with the position of every cell that reports focus.
	OnFocus func(Position)
	// OnKey sees every key delivered to a bound item, before its action.
	OnKey func(key string)

	// SmoothScrollID names the scroll container whose behavior is switched
	// to smooth while a move is performed. Requires Scroll.
	SmoothScrollID string
	Scroll         ScrollBehavior

	Clock Clock
}

type registration struct {
	focusable Focusable
}

// Navigator owns one focus scope.
type Navigator struct {
	maxX     int
	maxY     int
	position Position
	hasFocus bool

	cells map[Position]*registration

	onFocus func(Position)
	onKey   func(string)

	smoothScrollID string
	scroll         ScrollBehavior
	clock          Clock
	revert         Timer
	revertTo       string
}

// New returns a navigator positioned at (InitialX, InitialY).
func New(opts Options) *Navigator {
	clock := opts.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Navigator{
		maxX:           opts.MaxX,
		maxY:           opts.MaxY,
		position:       Position{X: opts.InitialX, Y: opts.InitialY},
		cells:          make(map[Position]*registration),
		onFocus:        opts.OnFocus,
		onKey:          opts.OnKey,
		smoothScrollID: opts.SmoothScrollID,
		scroll:         opts.Scroll,
		clock:          clock,
	}
}

// SetBounds changes the grid bounds. The stored position is kept as is and
// clamped on every read, so growing the bounds again restores it.
func (n *Navigator) SetBounds(maxX, maxY int) {
	n.maxX = maxX
	n.maxY = maxY
}

// Position returns the current position clamped to the bounds.
func (n *Navigator) Position() Position {
	return Position{
		X: clamp(n.position.X, 0, n.maxX),
		Y: clamp(n.position.Y, 0, n.maxY),
	}
}

// HasFocus reports whether a cell of this scope currently holds focus.
func (n *Navigator) HasFocus() bool {
	return n.hasFocus
}

// Register puts f at p and returns the func that removes exactly this
// registration. The returned func is safe to call any number of times and
// leaves a newer registration of the same cell alone.
func (n *Navigator) Register(p Position, f Focusable) func() {
	if f == nil {
		return func() {}
	}

	reg := &registration{focusable: f}
	n.cells[p] = reg

	return func() {
		if n.cells[p] == reg {
			delete(n.cells, p)
		}
	}
}

type moveOptions struct {
	smoothScroll bool
}

// MoveOption tunes a single move.
type MoveOption func(*moveOptions)

// WithSmoothScroll toggles the smooth scroll workaround for one move. Moves
// are smooth by default.
func WithSmoothScroll(smooth bool) MoveOption {
	return func(o *moveOptions) {
		o.smoothScroll = smooth
	}
}

func collect(opts []MoveOption) moveOptions {
	o := moveOptions{smoothScroll: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Move transfers focus in direction d. Directional moves scan the axis from
// the cell next to the current position up to the bound and stop at the
// first occupied cell. Nothing happens when there is none; there is no wrap.
func (n *Navigator) Move(d Direction, opts ...MoveOption) {
	o := collect(opts)
	pos := n.Position()

	if d == Current {
		n.focusAt(pos, o)
		return
	}

	var isX, isNext bool
	switch d {
	case NextX:
		isX, isNext = true, true
	case PreviousX:
		isX = true
	case NextY:
		isNext = true
	case PreviousY:
	default:
		return
	}

	step, limit, start := -1, n.maxY, pos.Y
	if isNext {
		step = 1
	}
	if isX {
		limit, start = n.maxX, pos.X
	}

	for i := start + step; (isNext && i <= limit) || (!isNext && i >= 0); i += step {
		target := Position{X: pos.X, Y: i}
		if isX {
			target = Position{X: i, Y: pos.Y}
		}
		if _, ok := n.cells[target]; ok {
			n.focusAt(target, o)
			return
		}
	}
}

// MoveTo focuses the cell at p if one is registered there.
func (n *Navigator) MoveTo(p Position, opts ...MoveOption) {
	n.focusAt(p, collect(opts))
}

func (n *Navigator) focusAt(p Position, o moveOptions) {
	reg, ok := n.cells[p]
	if !ok {
		return
	}

	n.position = p
	if o.smoothScroll {
		n.smoothScroll()
	}
	reg.focusable.Focus()
}

// smoothScroll switches the container to smooth scrolling for the focus
// that follows. A pending revert is replaced, keeping the behavior that was
// in place before the first of the overlapping requests.
func (n *Navigator) smoothScroll() {
	if n.smoothScrollID == "" || n.scroll == nil {
		return
	}

	id := n.smoothScrollID
	prev, ok := n.scroll.ScrollBehavior(id)
	if !ok {
		return
	}
	if n.revert != nil && n.revert.Stop() {
		prev = n.revertTo
	}
	n.revertTo = prev

	n.scroll.SetScrollBehavior(id, BehaviorSmooth)
	n.revert = n.clock.AfterFunc(revertDelay, func() {
		n.scroll.SetScrollBehavior(id, prev)
	})
}

func (n *Navigator) handleFocus(p Position) {
	n.position = p
	n.hasFocus = true
	if n.onFocus != nil {
		n.onFocus(p)
	}
}

func (n *Navigator) handleBlur() {
	n.hasFocus = false
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
