package day

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/dn/internal/focus"
)

const (
	bodyScrollID   = "day-body"
	behaviorAuto   = "auto"
	bodyFrameDelay = time.Second / 60
)

type bodyFrameMsg struct{}

// scroller holds the scroll behavior of the scroll containers of the
// screen. The focus navigator flips it from its revert timer.
type scroller struct {
	mu        sync.Mutex
	behaviors map[string]string
}

func newScroller(ids ...string) *scroller {
	s := &scroller{behaviors: make(map[string]string, len(ids))}
	for _, id := range ids {
		s.behaviors[id] = behaviorAuto
	}
	return s
}

func (s *scroller) ScrollBehavior(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.behaviors[id]
	return b, ok
}

func (s *scroller) SetScrollBehavior(id, behavior string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.behaviors[id]; ok {
		s.behaviors[id] = behavior
	}
}

// ensureVisible scrolls the body so line is inside it. Smooth containers
// animate, others jump.
func (m *Model) ensureVisible(line int) {
	h := m.body.Height
	if h <= 0 {
		return
	}

	target := m.bodyTarget
	if !m.bodyAnimating {
		target = m.body.YOffset
	}
	switch {
	case line < target:
		target = line
	case line >= target+h:
		target = line - h + 1
	default:
		return
	}

	if b, _ := m.scroller.ScrollBehavior(bodyScrollID); b != focus.BehaviorSmooth {
		m.bodyAnimating = false
		m.body.SetYOffset(target)
		m.bodyTarget = m.body.YOffset
		return
	}
	m.bodyTarget = target
	m.bodyAnimating = m.body.YOffset != target
}

func (m *Model) bodyTick() tea.Cmd {
	if !m.bodyAnimating || m.bodyTicking {
		return nil
	}
	m.bodyTicking = true
	return tea.Tick(bodyFrameDelay, func(time.Time) tea.Msg {
		return bodyFrameMsg{}
	})
}

func (m *Model) stepBody() {
	m.bodyTicking = false
	if !m.bodyAnimating {
		return
	}

	d := m.bodyTarget - m.body.YOffset
	move := d / 2
	if move == 0 {
		move = d
	}
	before := m.body.YOffset
	m.body.SetYOffset(before + move)
	if m.body.YOffset == m.bodyTarget || m.body.YOffset == before {
		m.bodyAnimating = false
	}
}
