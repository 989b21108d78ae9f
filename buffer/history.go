package buffer

// DefaultHistoryLimit bounds each history stack when no limit is given.
const DefaultHistoryLimit = 100

// ActionKind names the operation an Action last performed on its element.
type ActionKind uint8

const (
	// ActionInsert: the element was linked in; replaying removes it.
	ActionInsert ActionKind = iota
	// ActionDelete: the element was unlinked and is owned by the record;
	// replaying reinserts it.
	ActionDelete
)

func (k ActionKind) String() string {
	switch k {
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Action records one insert or delete with enough state to invert it.
//
// CursorAfter is the cursor right after the operation. Replaying an action
// moves the cursor there first, so the element to remove (or the slot to
// reinsert into) is always right before it.
type Action struct {
	Kind        ActionKind
	Elem        Handle
	CursorAfter Handle
}

// Inverse returns the record describing the opposite operation on the same
// element, anchored at cursor.
func (a Action) Inverse(cursor Handle) Action {
	kind := ActionDelete
	if a.Kind == ActionDelete {
		kind = ActionInsert
	}
	return Action{Kind: kind, Elem: a.Elem, CursorAfter: cursor}
}

// History is a pair of bounded undo/redo stacks over one Sequence.
//
// Records of kind ActionDelete own a detached element. When such a record is
// evicted or discarded its slot is released and the character is gone for
// good.
type History struct {
	seq   *Sequence
	undo  []Action
	redo  []Action
	limit int

	// OnEvict, if set, observes records dropped from the bottom of a stack.
	OnEvict func(Action)
}

// NewHistory returns a history bound to seq. A non-positive limit selects
// DefaultHistoryLimit.
func NewHistory(seq *Sequence, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{seq: seq, limit: limit}
}

func (h *History) Limit() int    { return h.limit }
func (h *History) UndoLen() int  { return len(h.undo) }
func (h *History) RedoLen() int  { return len(h.redo) }
func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Record pushes a onto the undo stack, evicting the oldest record when the
// stack is full. It does not touch the redo stack.
func (h *History) Record(a Action) {
	h.undo = h.push(h.undo, a)
}

// ClearRedo discards the redo timeline. Fresh edits must call it; Undo and
// Redo never do.
func (h *History) ClearRedo() {
	for _, a := range h.redo {
		h.discard(a)
	}
	h.redo = h.redo[:0]
}

// Clear drops both stacks, releasing every owned element.
func (h *History) Clear() {
	for _, a := range h.undo {
		h.discard(a)
	}
	h.undo = h.undo[:0]
	h.ClearRedo()
}

// Undo replays the most recent undo record and pushes its inverse onto the
// redo stack. ok is false when there is nothing to undo.
func (h *History) Undo() (applied Action, ok bool) {
	var a Action
	a, h.undo, ok = pop(h.undo)
	if !ok {
		return Action{}, false
	}
	inv, ok := h.replay(a)
	if !ok {
		return Action{}, false
	}
	h.redo = h.push(h.redo, inv)
	return a, true
}

// Redo replays the most recent redo record and pushes its inverse onto the
// undo stack. ok is false when there is nothing to redo.
func (h *History) Redo() (applied Action, ok bool) {
	var a Action
	a, h.redo, ok = pop(h.redo)
	if !ok {
		return Action{}, false
	}
	inv, ok := h.replay(a)
	if !ok {
		return Action{}, false
	}
	h.undo = h.push(h.undo, inv)
	return a, true
}

func (h *History) replay(a Action) (Action, bool) {
	if a.Kind == ActionInsert && h.seq.Live(a.CursorAfter) && h.seq.nodes[a.CursorAfter].prev != a.Elem {
		return Action{}, false
	}
	if !h.seq.SetCursor(a.CursorAfter) {
		h.discard(a)
		return Action{}, false
	}

	switch a.Kind {
	case ActionInsert:
		if _, ok := h.seq.RemoveBeforeCursor(); !ok {
			return Action{}, false
		}
	case ActionDelete:
		if !h.seq.Reinsert(a.Elem) {
			return Action{}, false
		}
	default:
		return Action{}, false
	}
	return a.Inverse(h.seq.Cursor()), true
}

func (h *History) push(stack []Action, a Action) []Action {
	if len(stack) >= h.limit {
		evicted := stack[0]
		stack = append(stack[:0], stack[1:]...)
		h.discard(evicted)
		if h.OnEvict != nil {
			h.OnEvict(evicted)
		}
	}
	return append(stack, a)
}

func (h *History) discard(a Action) {
	if a.Kind == ActionDelete {
		h.seq.Release(a.Elem)
	}
}

func pop(stack []Action) (Action, []Action, bool) {
	if len(stack) == 0 {
		return Action{}, stack, false
	}
	i := len(stack) - 1
	return stack[i], stack[:i], true
}
