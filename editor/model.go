package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/emblem/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	width    int
	height   int

	// count is the pending numeric prefix typed with alt+digit.
	count  int
	status string

	lastBufVersion  uint64
	lastTextVersion uint64
	lastCursor      buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

// Status returns the message shown in the status line, usually the error of
// the last command.
func (m Model) Status() string { return m.status }

// SetCommands replaces the command runner and its bindings, e.g. after the
// host reloaded its configuration.
func (m Model) SetCommands(r CommandRunner, bindings []CommandBinding) Model {
	m.cfg.Commands = r
	m.cfg.Bindings = bindings
	return m
}

func (m Model) SetHighlighter(h Highlighter) Model {
	m.cfg.Highlighter = h
	m.rebuildContent()
	return m
}

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = m.textHeight()

	m.refresh()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.afterUpdate()
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.rebuildContent()
		return m, cmd
	default:
		// Hosts may mutate the buffer directly between messages.
		m.afterUpdate()
		return m, nil
	}
}

func (m Model) View() string {
	if !m.cfg.ShowStatus {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + m.renderStatus()
}

// afterUpdate scrolls to the cursor and re-renders when the buffer changed,
// then reports the change.
func (m *Model) afterUpdate() {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return
	}
	textChanged := m.buf.TextVersion() != m.lastTextVersion
	m.lastBufVersion = ver
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = cur
	m.refresh()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, textChanged))
	}
}

func (m Model) textHeight() int {
	if m.cfg.ShowStatus {
		return max(m.height-1, 0)
	}
	return m.height
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// refresh re-renders and scrolls to the cursor. Highlighting only covers
// visible rows, so a scroll needs a second render.
func (m *Model) refresh() {
	m.rebuildContent()
	y := m.viewport.YOffset
	m.followCursor()
	if m.cfg.Highlighter != nil && m.viewport.YOffset != y {
		m.rebuildContent()
	}
}

func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
