// Package editor lays out, navigates, and edits a buffer.Sequence.
//
// Relayout wraps the sequence into visual lines. MoveUp, MoveDown, and
// PointTo place the cursor from coordinates. Document ties a sequence, its
// history, and its layout together, and Model hosts a Document as a Bubble Tea
// component.
package editor
