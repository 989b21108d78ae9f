package editor

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/tendril/buffer"
)

// Measurer reports the advance width and line height of one character at a
// font size. Implementations must be pure: the same input always yields the
// same size.
type Measurer interface {
	Measure(ch rune, fontSize int) (width, height int)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(ch rune, fontSize int) (width, height int)

func (f MeasureFunc) Measure(ch rune, fontSize int) (int, int) { return f(ch, fontSize) }

// CellMeasure measures in terminal cells. Font size has no effect on a
// terminal grid, so it is ignored.
type CellMeasure struct{}

func (CellMeasure) Measure(ch rune, _ int) (int, int) {
	switch {
	case ch == buffer.LineBreak:
		return 0, 1
	case ch == '\t':
		return 1, 1
	}
	return runewidth.RuneWidth(ch), 1
}

// FixedMeasure gives every character the same advance. Line breaks have no
// width.
type FixedMeasure struct {
	Width  int
	Height int
}

func (m FixedMeasure) Measure(ch rune, _ int) (int, int) {
	if ch == buffer.LineBreak {
		return 0, m.Height
	}
	return m.Width, m.Height
}

// MonospaceMeasure approximates a monospaced font: the advance and line
// height scale linearly with the font size.
type MonospaceMeasure struct {
	Advance     float64 // advance per point, e.g. 0.6
	LineSpacing float64 // line height per point, e.g. 1.2
}

func (m MonospaceMeasure) Measure(ch rune, fontSize int) (int, int) {
	h := int(math.Round(float64(fontSize) * m.LineSpacing))
	if ch == buffer.LineBreak {
		return 0, h
	}
	return int(math.Round(float64(fontSize) * m.Advance)), h
}
