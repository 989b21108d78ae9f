package buffer

import (
	"iter"
	"strings"
)

// Sequence is an ordered, mutable run of characters with a cursor.
//
// Insertion and removal happen next to the cursor in O(1). Removed slots are
// detached rather than freed, so a history record can own and later
// reinsert them; Release hands a detached slot back to the arena.
type Sequence struct {
	nodes []node
	free  []Handle

	cursor  Handle
	size    int
	version uint64
}

// New returns an empty sequence with the cursor at Back.
func New() *Sequence {
	s := &Sequence{
		nodes: make([]node, 2, 64),
	}
	s.nodes[Front] = node{prev: None, next: Back, state: slotLive}
	s.nodes[Back] = node{prev: Front, next: None, state: slotLive}
	s.cursor = Back
	return s
}

// NewFromString returns a sequence holding text with the cursor at the start.
func NewFromString(text string) *Sequence {
	s := New()
	for _, r := range text {
		s.InsertBeforeCursor(r)
	}
	s.cursor = s.First()
	return s
}

// Len returns the number of characters, sentinels excluded.
func (s *Sequence) Len() int { return s.size }

// Version increments on every effective change to content or cursor.
func (s *Sequence) Version() uint64 { return s.version }

// Cursor returns the handle of the element right after the insertion point.
func (s *Sequence) Cursor() Handle { return s.cursor }

// SetCursor moves the cursor to h. It reports false, leaving the cursor
// unchanged, when h is Front or not a live element.
func (s *Sequence) SetCursor(h Handle) bool {
	if h == Front || !s.Live(h) {
		return false
	}
	if h != s.cursor {
		s.cursor = h
		s.version++
	}
	return true
}

// Live reports whether h is a sentinel or an element linked into the sequence.
func (s *Sequence) Live(h Handle) bool {
	return s.valid(h) && s.nodes[h].state == slotLive
}

// Detached reports whether h was removed and not yet reinserted or released.
func (s *Sequence) Detached(h Handle) bool {
	return s.valid(h) && h != Front && h != Back && s.nodes[h].state == slotDetached
}

// First returns the first element, or Back when the sequence is empty.
func (s *Sequence) First() Handle { return s.nodes[Front].next }

// Last returns the last element, or Front when the sequence is empty.
func (s *Sequence) Last() Handle { return s.nodes[Back].prev }

// Next returns the successor of h. The successor of Back is None.
func (s *Sequence) Next(h Handle) Handle {
	if !s.valid(h) {
		return None
	}
	return s.nodes[h].next
}

// Prev returns the predecessor of h. The predecessor of Front is None.
func (s *Sequence) Prev(h Handle) Handle {
	if !s.valid(h) {
		return None
	}
	return s.nodes[h].prev
}

// AtStart reports whether the cursor sits before the first element.
func (s *Sequence) AtStart() bool { return s.nodes[s.cursor].prev == Front }

// AtEnd reports whether the cursor is at Back.
func (s *Sequence) AtEnd() bool { return s.cursor == Back }

// Elem returns a copy of the element stored at h. Sentinels yield the zero
// Element.
func (s *Sequence) Elem(h Handle) Element {
	if !s.valid(h) || h == Front || h == Back {
		return Element{}
	}
	return s.nodes[h].elem
}

// Place records the top-left corner of h.
func (s *Sequence) Place(h Handle, x, y int) {
	if !s.valid(h) || h == Front || h == Back {
		return
	}
	s.nodes[h].elem.X = x
	s.nodes[h].elem.Y = y
}

// Resize records the measured size of h.
func (s *Sequence) Resize(h Handle, width, height int) {
	if !s.valid(h) || h == Front || h == Back {
		return
	}
	s.nodes[h].elem.Width = width
	s.nodes[h].elem.Height = height
}

// All yields live elements front to back.
func (s *Sequence) All() iter.Seq2[Handle, Element] {
	return func(yield func(Handle, Element) bool) {
		for h := s.First(); h != Back; h = s.nodes[h].next {
			if !yield(h, s.nodes[h].elem) {
				return
			}
		}
	}
}

// Chars yields the characters front to back.
func (s *Sequence) Chars() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for h := s.First(); h != Back; h = s.nodes[h].next {
			if !yield(s.nodes[h].elem.Char) {
				return
			}
		}
	}
}

// Text returns the document as a string.
func (s *Sequence) Text() string {
	var sb strings.Builder
	sb.Grow(s.size)
	for r := range s.Chars() {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Offset returns the number of elements before h, so the cursor offset is
// Offset(Cursor()). It is O(n) and meant for tests and status lines.
func (s *Sequence) Offset(h Handle) int {
	n := 0
	for cur := s.First(); cur != Back; cur = s.nodes[cur].next {
		if cur == h {
			return n
		}
		n++
	}
	return n
}

func (s *Sequence) valid(h Handle) bool {
	return h >= 0 && int(h) < len(s.nodes)
}
