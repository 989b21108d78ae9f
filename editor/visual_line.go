package editor

import "github.com/iw2rmb/tendril/buffer"

// VisualLines indexes the first element of every visual line, wrapped
// continuations included, in document order.
type VisualLines struct {
	Starts     []buffer.Handle
	LineHeight int
	MarginLeft int

	// Bottom is the y of the last laid out line.
	Bottom int
}

func collectVisualLines(seq *buffer.Sequence, marginLeft, lineHeight, bottom int) VisualLines {
	vl := VisualLines{
		LineHeight: lineHeight,
		MarginLeft: marginLeft,
		Bottom:     bottom,
	}
	lastY := 0
	for h, e := range seq.All() {
		if e.X != marginLeft {
			continue
		}
		if len(vl.Starts) > 0 && e.Y == lastY {
			continue
		}
		vl.Starts = append(vl.Starts, h)
		lastY = e.Y
	}
	return vl
}

// Len returns the number of visual lines that hold at least one element.
func (vl VisualLines) Len() int { return len(vl.Starts) }

// Start returns the first element of line i.
func (vl VisualLines) Start(i int) buffer.Handle {
	if i < 0 || i >= len(vl.Starts) {
		return buffer.None
	}
	return vl.Starts[i]
}

// End returns the element that follows line i: the next line's start, or
// Back for the last line.
func (vl VisualLines) End(i int) buffer.Handle {
	if i+1 < len(vl.Starts) {
		return vl.Starts[i+1]
	}
	return buffer.Back
}

// LineOf rounds y to the nearest line number.
func (vl VisualLines) LineOf(y int) int {
	lh := vl.lineHeight()
	if y <= 0 {
		return 0
	}
	return (y + lh/2) / lh
}

// LineAt returns the line whose band [i*h, (i+1)*h) contains y.
func (vl VisualLines) LineAt(y int) int {
	if y <= 0 {
		return 0
	}
	return y / vl.lineHeight()
}

// Height returns the height of the laid out text.
func (vl VisualLines) Height() int { return vl.Bottom + vl.lineHeight() }

func (vl VisualLines) lineHeight() int {
	if vl.LineHeight <= 0 {
		return 1
	}
	return vl.LineHeight
}
