// Package strip is a horizontal snap-scrolling container for a carousel. It
// plays the part of the scroll viewport: it keeps a cell based scroll
// position, animates towards snap points and reports every scroll step back
// to the carousel.
package strip

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Paintersrp/dn/internal/carousel"
)

const frameInterval = time.Second / 60

var lastID atomic.Int64

// FrameMsg advances the scroll animation of the strip with the same ID.
type FrameMsg struct {
	ID int
}

type Model struct {
	id       int
	carousel *carousel.Carousel

	width  int
	height int
	slots  int

	scrollLeft int
	target     int
	animating  bool
	ticking    bool
}

// New attaches a strip to c as its viewport.
func New(c *carousel.Carousel) *Model {
	m := &Model{
		id:       int(lastID.Add(1)),
		carousel: c,
		slots:    2*c.SnapCount() + 1,
	}
	c.Attach(m)
	return m
}

func (m *Model) ID() int { return m.id }
func (m *Model) Carousel() *carousel.Carousel { return m.carousel }
func (m *Model) Animating() bool { return m.animating }
func (m *Model) Width() int { return m.width }
func (m *Model) ScrollLeft() int { return m.scrollLeft }
func (m *Model) ScrollWidth() int { return m.slots * m.width }

// ScrollTo scrolls to x. Animated scrolls advance on FrameMsg.
func (m *Model) ScrollTo(x int, animated bool) {
	x = clamp(x, 0, m.ScrollWidth()-m.width)
	m.target = x
	if !animated || m.width == 0 {
		m.animating = false
		m.setScroll(x)
		return
	}
	m.animating = m.scrollLeft != x
}

func (m *Model) setScroll(x int) {
	m.scrollLeft = x
	m.carousel.HandleScroll(x, m.width)
}

// SetSize resizes the strip keeping the current slot in place.
func (m *Model) SetSize(width, height int) {
	m.height = height
	if width == m.width {
		return
	}

	old := m.width
	m.width = width
	if old == 0 || width == 0 {
		return
	}

	slot := (m.scrollLeft + old/2) / old
	m.animating = false
	m.target = slot * width
	m.setScroll(m.target)
}

// Snap scrolls n slots from the current snap point, or from the pending
// target while an animation is running.
func (m *Model) Snap(n int) tea.Cmd {
	if m.width == 0 {
		return nil
	}

	base := m.target
	if !m.animating {
		base = ((m.scrollLeft + m.width/2) / m.width) * m.width
	}
	m.ScrollTo(base+n*m.width, true)
	return m.Sync()
}

// Sync must run after every update touching the carousel. It remounts the
// strip after a carousel reset and keeps the animation ticking.
func (m *Model) Sync() tea.Cmd {
	m.carousel.Mounted()
	if m.animating && !m.ticking {
		m.ticking = true
		id := m.id
		return tea.Tick(frameInterval, func(time.Time) tea.Msg {
			return FrameMsg{ID: id}
		})
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != m.id {
		return nil
	}

	m.ticking = false
	if m.animating {
		m.step()
	}
	return m.Sync()
}

func (m *Model) step() {
	d := m.target - m.scrollLeft
	move := d / 3
	if move == 0 {
		move = sign(d)
	}

	m.setScroll(m.scrollLeft + move)
	if m.scrollLeft == m.target {
		m.animating = false
	}
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	slots := m.carousel.Slots()
	i := m.scrollLeft / m.width
	frac := m.scrollLeft % m.width

	left := m.block(slots, i)
	if frac == 0 {
		return left
	}

	right := strings.Split(m.block(slots, i+1), "\n")
	lines := strings.Split(left, "\n")
	for k := range lines {
		r := ""
		if k < len(right) {
			r = right[k]
		}
		lines[k] = ansi.Cut(lines[k], frac, m.width) + ansi.Cut(r, 0, frac)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) block(slots []carousel.Slot, i int) string {
	var content string
	if i >= 0 && i < len(slots) {
		content = slots[i].Content
	}

	style := lipgloss.NewStyle().Width(m.width).MaxWidth(m.width)
	if m.height > 0 {
		style = style.Height(m.height).MaxHeight(m.height)
	}
	return style.Render(content)
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

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
