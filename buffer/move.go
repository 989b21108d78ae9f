package buffer

// MoveLeft moves the cursor one element back. It is a no-op at the start.
func (s *Sequence) MoveLeft() bool {
	if s.AtStart() {
		return false
	}
	s.cursor = s.nodes[s.cursor].prev
	s.version++
	return true
}

// MoveRight moves the cursor one element forward. It is a no-op at the end.
func (s *Sequence) MoveRight() bool {
	if s.AtEnd() {
		return false
	}
	s.cursor = s.nodes[s.cursor].next
	s.version++
	return true
}

// MoveToStart puts the cursor before the first element.
func (s *Sequence) MoveToStart() bool { return s.SetCursor(s.First()) }

// MoveToEnd puts the cursor at Back.
func (s *Sequence) MoveToEnd() bool { return s.SetCursor(Back) }
