package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the visual line rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// TotalRows is the number of rows the laid out text occupies.
	TotalRows int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      max(m.viewport.YOffset, 0),
		VisibleRows: m.visibleRowCount(),
		TotalRows:   m.totalRows(),
	}
}

// ScreenToLayout maps viewport-local screen coordinates to layout units.
func (m Model) ScreenToLayout(x, y int) (lx, ly int) {
	lh := m.doc.Lines().lineHeight()
	return x, (y + max(m.viewport.YOffset, 0)) * lh
}

// LayoutToScreen maps layout units to viewport-local screen coordinates.
//
// ok is false when the point is outside the visible viewport content.
func (m Model) LayoutToScreen(lx, ly int) (x, y int, ok bool) {
	lh := m.doc.Lines().lineHeight()
	x = lx
	y = ly/lh - max(m.viewport.YOffset, 0)
	ok = x >= 0 && x < m.viewport.Width && y >= 0 && y < m.visibleRowCount()
	return x, y, ok
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) totalRows() int {
	lh := m.doc.Lines().lineHeight()
	return (m.doc.Height() + lh - 1) / lh
}
