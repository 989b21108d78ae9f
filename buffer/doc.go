// Package buffer implements the character sequence behind a tendril document.
//
// A Sequence is an arena of elements linked in document order between two
// permanent sentinels, Front and Back. Elements are addressed by Handle, which
// stays valid across edits, so cursors, visual line starts, and history
// records can refer to an element without holding a pointer into the arena.
//
// The cursor is the handle of the element right after the insertion point.
// Back means "end of document".
package buffer
