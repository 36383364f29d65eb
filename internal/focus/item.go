package focus

// KeyEvent is a key press delivered to a bound item.
type KeyEvent struct {
	Key string

	defaultPrevented bool
}

// NewKeyEvent returns an event for key.
func NewKeyEvent(key string) *KeyEvent {
	return &KeyEvent{Key: key}
}

// PreventDefault marks the key as consumed so the host does not act on it.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Action is what a key does for an item. Build one with Go, GoTo or Call.
type Action struct {
	direction Direction
	target    *Position
	handler   func(*KeyEvent)
	when      func(*KeyEvent) bool
}

// Go moves in direction d.
func Go(d Direction) Action {
	return Action{direction: d}
}

// GoTo moves to an absolute position.
func GoTo(p Position) Action {
	return Action{target: &p}
}

// Call runs fn with the event. The callback decides whether to prevent the
// default.
func Call(fn func(*KeyEvent)) Action {
	return Action{handler: fn}
}

// When guards the action with pred. The key is ignored when pred is false.
func (a Action) When(pred func(*KeyEvent) bool) Action {
	a.when = pred
	return a
}

// KeyMap binds key names to actions.
type KeyMap map[string]Action

// Item is the set of handles for one cell of the grid.
type Item struct {
	nav       *Navigator
	pos       Position
	keys      KeyMap
	focusable Focusable
}

// Bind returns the handles for the cell at p.
func (n *Navigator) Bind(p Position, keys KeyMap) *Item {
	return &Item{nav: n, pos: p, keys: keys}
}

// Position is the cell this item is bound to.
func (it *Item) Position() Position {
	return it.pos
}

// Ref sets the focusable that Mount registers.
func (it *Item) Ref(f Focusable) {
	it.focusable = f
}

// Mount registers the item's focusable and returns its unregister func.
// Without a focusable nothing is registered.
func (it *Item) Mount() func() {
	if it.focusable == nil {
		return func() {}
	}
	return it.nav.Register(it.pos, it.focusable)
}

// OnFocus reports that the item received focus.
func (it *Item) OnFocus() {
	it.nav.handleFocus(it.pos)
}

// OnBlur reports that the item lost focus.
func (it *Item) OnBlur() {
	it.nav.handleBlur()
}

// OnKeyDown runs the action bound to ev.Key.
func (it *Item) OnKeyDown(ev *KeyEvent) {
	if ev == nil {
		return
	}
	if it.nav.onKey != nil {
		it.nav.onKey(ev.Key)
	}

	action, ok := it.keys[ev.Key]
	if !ok {
		return
	}
	if action.when != nil && !action.when(ev) {
		return
	}

	switch {
	case action.handler != nil:
		action.handler(ev)
	case action.target != nil:
		ev.PreventDefault()
		it.nav.MoveTo(*action.target)
	default:
		ev.PreventDefault()
		it.nav.Move(action.direction)
	}
}

// Attach creates an element in doc wired to this item's focus events and
// sets it as the item's focusable.
func (it *Item) Attach(doc *Document) *Element {
	el := doc.NewElement(it.OnFocus, it.OnBlur)
	it.Ref(el)
	return el
}
