package editor

// ChangeEvent describes the document after an edit, a cursor move, or a
// layout change.
type ChangeEvent struct {
	Version uint64
	// Cursor is the number of characters before the insertion point.
	Cursor int
	Caret  Caret
	Len    int

	Text string
}

func (d *Document) changeEvent() ChangeEvent {
	return ChangeEvent{
		Version: d.seq.Version(),
		Cursor:  d.seq.Offset(d.seq.Cursor()),
		Caret:   d.Caret(),
		Len:     d.seq.Len(),
		Text:    d.seq.Text(),
	}
}
