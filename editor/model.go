package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a Bubble Tea component that renders and edits a Document.
//
// Layout units are terminal cells: one unit of x is one column and a visual
// line is LineHeight units tall. CellMeasure is the default measurer.
type Model struct {
	cfg Config
	doc *Document

	focused bool

	viewport viewport.Model

	// followWidth is set when the configuration does not wrap on its own;
	// the right margin then tracks the window width.
	followWidth bool

	status string

	lastVersion uint64
	lastCaret   Caret
}

func New(cfg Config) Model {
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:         cfg,
		doc:         NewDocument(cfg),
		focused:     true,
		viewport:    viewport.New(0, 0),
		followWidth: !cfg.layoutConfig().Wraps(),
	}
	m.lastVersion = m.doc.Version()
	m.lastCaret = m.doc.Caret()
	m.rebuildContent()
	return m
}

func (m Model) Document() *Document { return m.doc }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if m.cfg.ShowStatus && height > 0 {
		height--
	}
	m.viewport.Width = width
	m.viewport.Height = height

	if m.followWidth && width > 0 {
		m.doc.SetMargins(m.doc.Layout().MarginLeft, width)
	}

	m.syncFromDocument()
	m.rebuildContent()
	m.followCaret()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCaret()
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

// Status returns the message shown in the status line, if any.
func (m Model) Status() string { return m.status }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		if m.syncFromDocument() {
			m.followCaret()
		}
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		m.syncFromDocument()
		return m, cmd
	default:
		// Hosts may drive the document directly.
		if m.syncFromDocument() {
			m.followCaret()
		}
		return m, nil
	}
}

func (m Model) View() string {
	if !m.cfg.ShowStatus {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + m.renderStatus()
}

func (m *Model) syncFromDocument() (changed bool) {
	ver := m.doc.Version()
	caret := m.doc.Caret()
	if ver == m.lastVersion && caret == m.lastCaret {
		return false
	}
	m.lastVersion = ver
	m.lastCaret = caret
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCaret() {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	row := m.caretRow()

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m Model) caretRow() int {
	return m.doc.Caret().Y / m.doc.Lines().lineHeight()
}
