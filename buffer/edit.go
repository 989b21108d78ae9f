package buffer

// InsertBeforeCursor links a new element holding ch right before the cursor
// and returns its handle.
//
// The cursor handle does not change: it still names the element after the
// insertion point, so the caret ends up after the new character.
func (s *Sequence) InsertBeforeCursor(ch rune) Handle {
	h := s.alloc(ch)
	s.linkBefore(h, s.cursor)
	return h
}

// RemoveBeforeCursor unlinks the element right before the cursor.
//
// The returned handle is detached: the caller owns it until it is passed to
// Reinsert or Release. ok is false when the cursor is at the start.
func (s *Sequence) RemoveBeforeCursor() (h Handle, ok bool) {
	h = s.nodes[s.cursor].prev
	if h == Front {
		return None, false
	}
	s.unlink(h)
	return h, true
}

// Reinsert links a detached element back in right before the cursor.
func (s *Sequence) Reinsert(h Handle) bool {
	if !s.Detached(h) {
		return false
	}
	s.linkBefore(h, s.cursor)
	return true
}

// Release returns a detached slot to the arena. The element is lost.
func (s *Sequence) Release(h Handle) bool {
	if !s.Detached(h) {
		return false
	}
	s.nodes[h] = node{prev: None, next: None, state: slotFree}
	s.free = append(s.free, h)
	return true
}

// Reset drops every element and detached slot and puts the cursor at Back.
func (s *Sequence) Reset() {
	*s = Sequence{nodes: s.nodes[:2], version: s.version + 1}
	s.nodes[Front] = node{prev: None, next: Back, state: slotLive}
	s.nodes[Back] = node{prev: Front, next: None, state: slotLive}
	s.cursor = Back
}

func (s *Sequence) alloc(ch rune) Handle {
	n := node{elem: Element{Char: ch}, prev: None, next: None, state: slotDetached}
	if k := len(s.free); k > 0 {
		h := s.free[k-1]
		s.free = s.free[:k-1]
		s.nodes[h] = n
		return h
	}
	s.nodes = append(s.nodes, n)
	return Handle(len(s.nodes) - 1)
}

func (s *Sequence) linkBefore(h, at Handle) {
	prev := s.nodes[at].prev
	s.nodes[h].prev = prev
	s.nodes[h].next = at
	s.nodes[h].state = slotLive
	s.nodes[prev].next = h
	s.nodes[at].prev = h
	s.size++
	s.version++
}

func (s *Sequence) unlink(h Handle) {
	prev, next := s.nodes[h].prev, s.nodes[h].next
	s.nodes[prev].next = next
	s.nodes[next].prev = prev
	s.nodes[h].prev = None
	s.nodes[h].next = None
	s.nodes[h].state = slotDetached
	s.size--
	s.version++
}
