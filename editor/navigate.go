package editor

import "github.com/iw2rmb/tendril/buffer"

// MoveUp moves the cursor to the previous visual line, keeping it as close as
// possible to its current x. It reports whether the cursor moved.
func MoveUp(seq *buffer.Sequence, vl VisualLines) bool {
	if vl.Len() == 0 {
		return false
	}
	x, y := anchorOf(seq, vl)
	line := min(vl.LineOf(y), vl.Len())
	if line == 0 {
		return false
	}
	return moveTo(seq, scanLineUp(seq, vl, line-1, x))
}

// MoveDown moves the cursor to the next visual line, keeping it as close as
// possible to its current x. It reports whether the cursor moved.
func MoveDown(seq *buffer.Sequence, vl VisualLines) bool {
	if vl.Len() == 0 {
		return false
	}
	x, y := anchorOf(seq, vl)
	line := vl.LineOf(y)
	if line >= vl.Len()-1 {
		return false
	}
	return moveTo(seq, scanLineDown(seq, vl, line+1, x))
}

// anchorOf returns the point vertical motion starts from: the cursor
// element's own corner, or just past the last element at the end of the
// document.
func anchorOf(seq *buffer.Sequence, vl VisualLines) (x, y int) {
	cur := seq.Cursor()
	if cur != buffer.Back {
		e := seq.Elem(cur)
		return e.X, e.Y
	}
	prev := seq.Prev(cur)
	if prev == buffer.Front {
		return vl.MarginLeft, 0
	}
	p := seq.Elem(prev)
	if p.IsLineBreak() {
		return vl.MarginLeft, p.Y + vl.lineHeight()
	}
	return p.Right(), p.Y
}

// scanLineUp picks the element of line i nearest to x. Ties go to the left
// element. Past the end of the line it picks the line's last element.
func scanLineUp(seq *buffer.Sequence, vl VisualLines, i, x int) buffer.Handle {
	start, stop := vl.Start(i), vl.End(i)
	for h := start; h != stop; h = seq.Next(h) {
		cx := seq.Elem(h).X
		if cx < x {
			continue
		}
		if h != start {
			prev := seq.Prev(h)
			if absInt(seq.Elem(prev).X-x) <= absInt(cx-x) {
				return prev
			}
		}
		return h
	}
	return seq.Prev(stop)
}

// scanLineDown picks the element of line i nearest to x. Ties go to the right
// element. Past the end of the last line it picks Back; past the end of any
// other line it picks the line's last element.
func scanLineDown(seq *buffer.Sequence, vl VisualLines, i, x int) buffer.Handle {
	start, stop := vl.Start(i), vl.End(i)
	for h := start; h != stop; h = seq.Next(h) {
		cx := seq.Elem(h).X
		if cx < x {
			continue
		}
		if h != start {
			prev := seq.Prev(h)
			if absInt(cx-x) > absInt(seq.Elem(prev).X-x) {
				return prev
			}
		}
		return h
	}
	if stop == buffer.Back {
		return buffer.Back
	}
	return seq.Prev(stop)
}

func moveTo(seq *buffer.Sequence, h buffer.Handle) bool {
	if h == seq.Cursor() {
		return false
	}
	return seq.SetCursor(h)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
