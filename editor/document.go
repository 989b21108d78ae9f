package editor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/iw2rmb/tendril/buffer"
)

// Direction selects a cursor move.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Document is one open text: its sequence, its undo history, and the layout
// derived from them. Every operation relays out the document before it
// returns, so Caret and Lines are always current.
//
// A Document is not safe for concurrent use.
type Document struct {
	seq    *buffer.Sequence
	hist   *buffer.History
	layout LayoutConfig
	lines  VisualLines

	log      *zap.Logger
	onChange func(ChangeEvent)

	lastVersion uint64
	lastCaret   Caret
}

// NewDocument opens cfg.Text with the cursor at the start and an empty
// history.
func NewDocument(cfg Config) *Document {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	layout := cfg.layoutConfig()
	if layout.FontSize <= 0 {
		layout.FontSize = DefaultFontSize
	}

	seq := buffer.NewFromString(cfg.Text)
	d := &Document{
		seq:      seq,
		hist:     buffer.NewHistory(seq, cfg.HistoryLimit),
		layout:   layout,
		log:      log,
		onChange: cfg.OnChange,
	}
	d.hist.OnEvict = func(a buffer.Action) {
		d.log.Debug("history evicted", zap.Stringer("kind", a.Kind), zap.Int32("elem", int32(a.Elem)))
	}
	d.relayout()
	d.lastVersion = seq.Version()
	d.lastCaret = d.Caret()
	return d
}

// Sequence exposes the underlying sequence for read access. Mutating it
// directly bypasses history and layout.
func (d *Document) Sequence() *buffer.Sequence { return d.seq }

// History exposes the undo log.
func (d *Document) History() *buffer.History { return d.hist }

func (d *Document) Text() string         { return d.seq.Text() }
func (d *Document) Len() int             { return d.seq.Len() }
func (d *Document) Version() uint64      { return d.seq.Version() }
func (d *Document) Lines() VisualLines   { return d.lines }
func (d *Document) Layout() LayoutConfig { return d.layout }

// CursorOffset returns the number of characters before the cursor.
func (d *Document) CursorOffset() int { return d.seq.Offset(d.seq.Cursor()) }

// Caret returns the caret rectangle in layout units.
func (d *Document) Caret() Caret { return CaretOf(d.seq, d.lines) }

// Height returns the height of the laid out text.
func (d *Document) Height() int { return d.lines.Height() }

// InsertRune inserts ch before the cursor.
func (d *Document) InsertRune(ch rune) {
	d.insert(ch)
	d.hist.ClearRedo()
	d.relayout()
	d.notify()
}

// InsertText inserts every character of s before the cursor, one history
// record per character. Characters are stored as given.
func (d *Document) InsertText(s string) {
	if s == "" {
		return
	}
	for _, ch := range s {
		d.insert(ch)
	}
	d.hist.ClearRedo()
	d.relayout()
	d.notify()
}

func (d *Document) insert(ch rune) {
	h := d.seq.InsertBeforeCursor(ch)
	d.hist.Record(buffer.Action{Kind: buffer.ActionInsert, Elem: h, CursorAfter: d.seq.Cursor()})
}

// DeleteBackward removes the character before the cursor. It reports false at
// the start of the document.
func (d *Document) DeleteBackward() bool {
	h, ok := d.seq.RemoveBeforeCursor()
	if !ok {
		return false
	}
	d.hist.ClearRedo()
	d.hist.Record(buffer.Action{Kind: buffer.ActionDelete, Elem: h, CursorAfter: d.seq.Cursor()})
	d.relayout()
	d.notify()
	return true
}

// Move moves the cursor one step in dir and reports whether it moved.
func (d *Document) Move(dir Direction) bool {
	var moved bool
	switch dir {
	case DirLeft:
		moved = d.seq.MoveLeft()
	case DirRight:
		moved = d.seq.MoveRight()
	case DirUp:
		moved = MoveUp(d.seq, d.lines)
	case DirDown:
		moved = MoveDown(d.seq, d.lines)
	}
	if moved {
		d.notify()
	}
	return moved
}

// PointTo moves the cursor to the element nearest to (x, y) in layout units.
func (d *Document) PointTo(x, y int) bool {
	moved := PointTo(d.seq, d.lines, x, y)
	if moved {
		d.notify()
	}
	return moved
}

func (d *Document) CanUndo() bool { return d.hist.CanUndo() }
func (d *Document) CanRedo() bool { return d.hist.CanRedo() }

// Undo reverts the most recent edit. It reports false when there is nothing
// to undo.
func (d *Document) Undo() bool {
	a, ok := d.hist.Undo()
	if !ok {
		return false
	}
	d.log.Debug("undo", zap.Stringer("kind", a.Kind), zap.Int("undo", d.hist.UndoLen()), zap.Int("redo", d.hist.RedoLen()))
	d.relayout()
	d.notify()
	return true
}

// Redo reapplies the most recently undone edit. It reports false when there
// is nothing to redo.
func (d *Document) Redo() bool {
	a, ok := d.hist.Redo()
	if !ok {
		return false
	}
	d.log.Debug("redo", zap.Stringer("kind", a.Kind), zap.Int("undo", d.hist.UndoLen()), zap.Int("redo", d.hist.RedoLen()))
	d.relayout()
	d.notify()
	return true
}

func (d *Document) FontSize() int { return d.layout.FontSize }

// SetFontSize changes the font size, clamped to MinFontSize, and relays out.
// It reports whether the size changed.
func (d *Document) SetFontSize(size int) bool {
	size = max(size, MinFontSize)
	if size == d.layout.FontSize {
		return false
	}
	d.layout.FontSize = size
	d.relayout()
	d.notify()
	return true
}

func (d *Document) ZoomIn() bool  { return d.SetFontSize(d.layout.FontSize + FontSizeStep) }
func (d *Document) ZoomOut() bool { return d.SetFontSize(d.layout.FontSize - FontSizeStep) }

// SetMargins changes the wrap margins and relays out. A right margin at or
// left of the left margin disables wrapping.
func (d *Document) SetMargins(left, right int) bool {
	if left == d.layout.MarginLeft && right == d.layout.MarginRight {
		return false
	}
	d.layout.MarginLeft = left
	d.layout.MarginRight = right
	d.relayout()
	d.notify()
	return true
}

// Load replaces the document with the characters from src. The document is
// left untouched when src fails. On success the cursor is at the start and
// the history is empty.
func (d *Document) Load(ctx context.Context, src Source) error {
	if src == nil {
		return ErrNoSource
	}
	chars, err := src.LoadCharacters(ctx)
	if err != nil {
		d.log.Warn("load failed", zap.Error(err))
		return fmt.Errorf("editor: load: %w", err)
	}

	d.hist.Clear()
	d.seq.Reset()
	for _, ch := range chars {
		d.seq.InsertBeforeCursor(ch)
	}
	d.seq.MoveToStart()
	d.relayout()
	d.log.Info("loaded", zap.Int("chars", d.seq.Len()), zap.Int("lines", d.lines.Len()))
	d.notify()
	return nil
}

// Save writes every character to sink in document order.
func (d *Document) Save(ctx context.Context, sink Sink) error {
	if sink == nil {
		return ErrNoSink
	}
	if err := sink.SaveCharacters(ctx, d.seq.Chars()); err != nil {
		d.log.Warn("save failed", zap.Error(err))
		return fmt.Errorf("editor: save: %w", err)
	}
	d.log.Info("saved", zap.Int("chars", d.seq.Len()))
	return nil
}

func (d *Document) relayout() {
	d.lines = Relayout(d.seq, d.layout)
	if ce := d.log.Check(zap.DebugLevel, "relayout"); ce != nil {
		ce.Write(
			zap.Int("chars", d.seq.Len()),
			zap.Int("lines", d.lines.Len()),
			zap.Int("font_size", d.layout.FontSize),
		)
	}
}

func (d *Document) notify() {
	caret := d.Caret()
	ver := d.seq.Version()
	if ver == d.lastVersion && caret == d.lastCaret {
		return
	}
	d.lastVersion = ver
	d.lastCaret = caret
	if d.onChange != nil {
		d.onChange(d.changeEvent())
	}
}
