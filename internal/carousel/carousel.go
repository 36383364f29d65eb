// Package carousel keeps the state of an infinite, virtualized snap strip.
//
// The strip holds 2N+1 slots around a centre slot. Each slot maps to a
// logical offset supplied by the caller (a day, a week). When the user
// scrolls past the window edge, or the caller's offset moves somewhere the
// strip is not showing, the strip is remounted around the new centre and the
// shift is folded into the infinity offset.
package carousel

import "math"

// DefaultSnapCount is the number of slots on each side of the centre.
const DefaultSnapCount = 10

// Viewport is the scroll container the carousel measures and drives.
type Viewport interface {
	Width() int
	ScrollLeft() int
	ScrollWidth() int
	ScrollTo(x int, animated bool)
}

// Config configures a Carousel.
type Config struct {
	SnapCount int

	// Generation identifies the caller's current offset source. Sync only
	// reconciles when it changes.
	Generation uint64
	Offset     int

	RenderItem func(offset int, visible bool) string
	OnSnap     func(offset int)
}

// Slot is one position of the strip.
type Slot struct {
	Index    int
	Offset   int
	Rendered bool
	Visible  bool
	Content  string
}

type Carousel struct {
	snapCount  int
	generation uint64
	offset     int

	renderItem func(int, bool) string
	onSnap     func(int)

	key            int
	mountedKey     int
	scrollOffset   int
	diffOffset     int
	infinityOffset int
	lastSlot       int

	viewport Viewport
}

func New(cfg Config) *Carousel {
	n := cfg.SnapCount
	if n < 2 {
		n = DefaultSnapCount
	}

	return &Carousel{
		snapCount:  n,
		generation: cfg.Generation,
		offset:     cfg.Offset,
		renderItem: cfg.RenderItem,
		onSnap:     cfg.OnSnap,
		mountedKey: -1,
	}
}

// Attach sets the viewport. A nil viewport detaches.
func (c *Carousel) Attach(v Viewport) {
	c.viewport = v
}

func (c *Carousel) SnapCount() int { return c.snapCount }
func (c *Carousel) Key() int { return c.key }
func (c *Carousel) ScrollOffset() int { return c.scrollOffset }
func (c *Carousel) DiffOffset() int { return c.diffOffset }
func (c *Carousel) InfinityOffset() int { return c.infinityOffset }

// Logical maps a slot index to the caller's offset space.
func (c *Carousel) Logical(slot int) int {
	return c.offset + slot - c.diffOffset + c.infinityOffset
}

// Sync reconciles an external change of the caller's offset. It reports
// whether the strip was remounted.
func (c *Carousel) Sync(generation uint64, offset int) bool {
	if generation == c.generation {
		return false
	}

	prev := c.offset
	c.generation = generation
	c.offset = offset

	next := c.diffOffset + (offset - prev) + c.infinityOffset
	if next == c.scrollOffset {
		c.diffOffset = next
		return false
	}

	c.reset(0)
	return true
}

// HandleScroll processes a scroll event at contentX with slots itemWidth
// wide.
func (c *Carousel) HandleScroll(contentX, itemWidth int) {
	if contentX == 0 || itemWidth == 0 {
		return
	}

	slot := int(math.Floor(float64(contentX)/float64(itemWidth) - float64(c.snapCount) + 0.5))
	if slot == c.lastSlot {
		return
	}
	c.lastSlot = slot

	if c.onSnap != nil {
		c.onSnap(c.Logical(slot))
	}

	if abs(slot) < c.snapCount {
		c.scrollOffset = slot
		return
	}
	c.reset(c.infinityOffset - c.diffOffset + slot)
}

func (c *Carousel) reset(infinity int) {
	c.key++
	c.scrollOffset = 0
	c.diffOffset = 0
	c.infinityOffset = infinity
	c.lastSlot = 0
}

// Mounted must be called by the viewport owner after every render. When the
// key changed since the last call it recentres the viewport without
// animation and reports true.
func (c *Carousel) Mounted() bool {
	if c.mountedKey == c.key {
		return false
	}
	if c.viewport == nil || c.viewport.Width() == 0 {
		return false
	}
	c.mountedKey = c.key
	c.center(false)
	return true
}

func (c *Carousel) center(animated bool) {
	c.viewport.ScrollTo(c.snapCount*c.viewport.Width(), animated)
}

// ScrollToCenter returns to the origin. Inside the current window it
// scrolls there with animation, otherwise the strip is remounted at it.
func (c *Carousel) ScrollToCenter() {
	if c.viewport == nil {
		return
	}
	if c.infinityOffset == 0 {
		c.center(true)
		return
	}
	c.reset(0)
}

// IsCentered reports whether the viewport rests on the origin slot.
func (c *Carousel) IsCentered() bool {
	if c.viewport == nil || c.infinityOffset != 0 {
		return false
	}

	v := c.viewport
	mid := float64(v.ScrollWidth()) / 2
	at := float64(v.ScrollLeft()) + float64(v.Width())/2
	return math.Abs(mid-at) < 2
}

// Slots returns the whole window. Only the current slot and its two
// neighbours are rendered.
func (c *Carousel) Slots() []Slot {
	slots := make([]Slot, 0, 2*c.snapCount+1)
	for i := -c.snapCount; i <= c.snapCount; i++ {
		s := Slot{Index: i, Offset: c.Logical(i), Visible: i == c.scrollOffset}
		if i >= c.scrollOffset-1 && i <= c.scrollOffset+1 {
			s.Rendered = true
			if c.renderItem != nil {
				s.Content = c.renderItem(s.Offset, s.Visible)
			}
		}
		slots = append(slots, s)
	}
	return slots
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
