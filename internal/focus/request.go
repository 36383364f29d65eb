package focus

// Request is a one-shot "take focus when you appear" token shared between
// the component that asks for focus and the one that will mount later.
type Request struct {
	pending bool
}

// Request arms the token.
func (r *Request) Request() {
	r.pending = true
}

// Consume runs fn and disarms the token if it was armed. It reports whether
// fn ran.
func (r *Request) Consume(fn func()) bool {
	if !r.pending || fn == nil {
		return false
	}
	r.pending = false
	fn()
	return true
}
