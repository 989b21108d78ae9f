package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/tendril/buffer"
)

// cell is one rendered terminal column. A wide character occupies its first
// cell; the cells it covers after that are marked cont.
type cell struct {
	ch   rune
	cont bool
}

func (m *Model) renderContent() string {
	vl := m.doc.Lines()
	lh := vl.lineHeight()

	rows := make([][]cell, m.totalRows())
	for _, e := range m.doc.Sequence().All() {
		if e.IsLineBreak() || e.Width <= 0 {
			continue
		}
		row := e.Y / lh
		if row < 0 || row >= len(rows) || e.X < 0 {
			continue
		}
		rows[row] = putCell(rows[row], e)
	}

	caretRow, caretCol := -1, -1
	if m.focused {
		c := m.doc.Caret()
		caretRow = c.Y / lh
		caretCol = c.X
		if m.viewport.Width > 0 {
			caretCol = min(caretCol, m.viewport.Width-1)
		}
	}

	out := make([]string, len(rows))
	for i, row := range rows {
		col := -1
		if i == caretRow {
			col = caretCol
		}
		out[i] = m.renderRow(row, col)
	}
	return strings.Join(out, "\n")
}

func putCell(row []cell, e buffer.Element) []cell {
	end := e.X + e.Width
	for len(row) < end {
		row = append(row, cell{ch: ' '})
	}
	row[e.X] = cell{ch: e.Char}
	if e.Char == '\t' {
		row[e.X].ch = ' '
	}
	for i := e.X + 1; i < end; i++ {
		row[i] = cell{cont: true}
	}
	return row
}

func (m *Model) renderRow(row []cell, caretCol int) string {
	st := m.cfg.Style
	var sb strings.Builder
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(st.Text.Render(run.String()))
			run.Reset()
		}
	}

	for i, c := range row {
		if c.cont {
			continue
		}
		if i == caretCol {
			flush()
			sb.WriteString(st.Cursor.Render(string(c.ch)))
			continue
		}
		run.WriteRune(c.ch)
	}
	flush()

	if caretCol >= len(row) {
		if pad := caretCol - len(row); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) renderStatus() string {
	c := m.doc.Caret()
	s := fmt.Sprintf("ln %d  off %d  x=%d y=%d  font %d  %d chars",
		m.caretRow()+1, m.doc.CursorOffset(), c.X, c.Y, m.doc.FontSize(), m.doc.Len())
	if m.status != "" {
		s += "  " + m.status
	}
	if m.viewport.Width > 0 && len(s) > m.viewport.Width {
		s = s[:m.viewport.Width]
	}
	return m.cfg.Style.Status.Render(s)
}
