package buffer

// Handle addresses one element slot in a Sequence.
type Handle int32

// Sentinel handles. They never hold a character and are never removed.
const (
	Front Handle = 0
	Back  Handle = 1
)

// None is returned where no element applies.
const None Handle = -1

// LineBreak is the line-break marker. It is stored literally, one element per
// break.
const LineBreak = '\n'

// Element is one character together with its derived geometry.
//
// Width and Height come from the measurer on every relayout; X and Y are the
// top-left corner assigned by the layout engine.
type Element struct {
	Char   rune
	Width  int
	Height int
	X      int
	Y      int
}

// IsLineBreak reports whether the element is a line-break marker.
func (e Element) IsLineBreak() bool { return e.Char == LineBreak }

// IsSpace reports whether the element is a word-wrap point.
func (e Element) IsSpace() bool { return e.Char == ' ' }

// Right returns the x coordinate just past the element.
func (e Element) Right() int { return e.X + e.Width }

type slotState uint8

const (
	slotFree slotState = iota
	slotLive
	slotDetached
)

type node struct {
	elem  Element
	prev  Handle
	next  Handle
	state slotState
}
