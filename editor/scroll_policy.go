package editor

// ScrollPolicy controls whether the viewport may scroll away from the caret.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport even when
	// the caret does not move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores the mouse wheel. The viewport only moves
	// to keep the caret visible.
	ScrollFollowCursorOnly
)
