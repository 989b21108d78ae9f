package editor

import "github.com/iw2rmb/tendril/buffer"

// Caret is the rectangle the cursor is drawn in.
type Caret struct {
	X, Y   int
	Height int
}

// PointTo places the cursor at the element nearest to (x, y). Points below
// the last visual line put the cursor at the end of the document. It reports
// whether the cursor moved.
func PointTo(seq *buffer.Sequence, vl VisualLines, x, y int) bool {
	line := vl.LineAt(y)
	if line > vl.Len()-1 {
		return moveTo(seq, buffer.Back)
	}
	return moveTo(seq, scanLineDown(seq, vl, line, x))
}

// CaretOf returns where the cursor is drawn.
//
// At the start of the document the caret sits at (MarginLeft, 0). At the end
// of the document, or before a line break, it sits just past the previous
// character, or at the start of the next line when that character is itself a
// line break. Elsewhere it sits on the cursor element.
func CaretOf(seq *buffer.Sequence, vl VisualLines) Caret {
	lh := vl.lineHeight()
	cur := seq.Cursor()
	prev := seq.Prev(cur)

	if prev == buffer.Front {
		return Caret{X: vl.MarginLeft, Y: 0, Height: lh}
	}
	if cur == buffer.Back || seq.Elem(cur).IsLineBreak() {
		p := seq.Elem(prev)
		if p.IsLineBreak() {
			return Caret{X: vl.MarginLeft, Y: p.Y + lh, Height: lh}
		}
		return Caret{X: p.Right(), Y: p.Y, Height: lh}
	}
	e := seq.Elem(cur)
	return Caret{X: e.X, Y: e.Y, Height: lh}
}
