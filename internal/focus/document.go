package focus

// Document tracks the single active element of a focus scope. Focusing an
// element blurs the previously active one, and focusing the active element
// again delivers no events.
type Document struct {
	active *Element
}

// Element is a focusable node of a Document.
type Element struct {
	doc     *Document
	onFocus func()
	onBlur  func()
}

func NewDocument() *Document {
	return &Document{}
}

// NewElement creates an element. Either callback may be nil.
func (d *Document) NewElement(onFocus, onBlur func()) *Element {
	return &Element{doc: d, onFocus: onFocus, onBlur: onBlur}
}

// Active returns the focused element or nil.
func (d *Document) Active() *Element {
	return d.active
}

// Blur removes focus from the active element.
func (d *Document) Blur() {
	if d.active != nil {
		d.active.Blur()
	}
}

func (e *Element) Focus() {
	d := e.doc
	if d.active == e {
		return
	}

	prev := d.active
	d.active = e
	if prev != nil && prev.onBlur != nil {
		prev.onBlur()
	}
	if e.onFocus != nil {
		e.onFocus()
	}
}

func (e *Element) Blur() {
	if e.doc.active != e {
		return
	}
	e.doc.active = nil
	if e.onBlur != nil {
		e.onBlur()
	}
}

// Focused reports whether e is the active element.
func (e *Element) Focused() bool {
	return e.doc.active == e
}
