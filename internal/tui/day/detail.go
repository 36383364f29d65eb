package day

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/dn/internal/content"
	"github.com/Paintersrp/dn/internal/dates"
	"github.com/Paintersrp/dn/internal/editor"
	"github.com/Paintersrp/dn/internal/store"
)

// detail shows one note rendered as markdown.
type detail struct {
	note  store.Note
	style string
	view  viewport.Model
}

func newDetail(n store.Note, style string, width, height int) *detail {
	d := &detail{note: n, style: style, view: viewport.New(0, 0)}
	d.setSize(width, height)
	return d
}

func (d *detail) setSize(width, height int) {
	frame := detailStyle.GetHorizontalFrameSize()
	d.view.Width = width - frame
	d.view.Height = height - 1

	rendered, err := content.Render(d.note.Content, d.view.Width, d.style)
	if err != nil {
		rendered = d.note.Content
	}
	d.view.SetContent(strings.TrimSpace(rendered))
}

func (d *detail) header() string {
	label := dates.FormatDay(d.note.Start) + " " + d.note.Start.Format("15:04")
	if d.note.End != nil {
		label += " – " + dates.FormatDay(*d.note.End) + " " + d.note.End.Format("15:04")
	}
	return titleStyle.Render(label) + routeStyle.Render(fmt.Sprintf("%3.f%%", d.view.ScrollPercent()*100))
}

func (d *detail) View() string {
	return d.header() + "\n" + detailStyle.Render(d.view.View())
}

func (m *Model) openDetail(n store.Note) {
	m.detail = newDetail(n, m.state.Config.Theme, m.width, m.height-1)
}

func (m *Model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.back), msg.String() == "q":
		m.detail = nil
		m.request.Request()
		m.mountRows()
		return nil
	case key.Matches(msg, m.keys.edit):
		return m.openEditor(m.detail.note)
	}

	var cmd tea.Cmd
	m.detail.view, cmd = m.detail.view.Update(msg)
	return cmd
}

type editorFinishedMsg struct {
	id     string
	path   string
	before string
	err    error
}

// openEditor hands the note to the configured editor through a temporary
// file. The program is suspended until the editor exits.
func (m *Model) openEditor(n store.Note) tea.Cmd {
	path, err := editor.TempFile(n.Content)
	if err != nil {
		m.fail(err)
		return nil
	}

	cfg := m.state.Config
	launch, err := editor.ForPath(editor.Resolve(cfg.Editor), cfg.EditorArgs, path)
	if err != nil {
		os.Remove(path)
		m.fail(err)
		return nil
	}

	m.state.Logger.Debug("opening editor", "note", n.ID, "cmd", launch.Cmd.Args)
	return tea.ExecProcess(launch.Cmd, func(err error) tea.Msg {
		return editorFinishedMsg{id: n.ID, path: path, before: n.Content, err: err}
	})
}

func (m *Model) finishEdit(msg editorFinishedMsg) {
	after, err := editor.ReadBack(msg.path)
	if msg.err != nil {
		m.fail(fmt.Errorf("editor failed: %w", msg.err))
		return
	}
	if err != nil {
		m.fail(err)
		return
	}

	if strings.TrimSpace(after) == strings.TrimSpace(msg.before) {
		m.setStatus("No changes")
		return
	}
	if err := m.store.UpdateContent(m.ctx, msg.id, after); err != nil {
		m.fail(err)
		return
	}
	m.setStatus("Saved %q", firstWords(after))

	if m.detail != nil && m.detail.note.ID == msg.id {
		m.detail.note.Content = strings.TrimSpace(after)
		m.detail.setSize(m.width, m.height-1)
	}
	m.invalidate()
}
