package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Backspace key.Binding
	Enter     key.Binding

	Undo, Redo key.Binding

	ZoomIn, ZoomOut key.Binding
	PrintCaret      key.Binding
	Save            key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		// Terminals rarely report ctrl+plus, so zoom lives on alt.
		ZoomIn:     key.NewBinding(key.WithKeys("alt+=", "alt++"), key.WithHelp("alt+=", "larger font")),
		ZoomOut:    key.NewBinding(key.WithKeys("alt+-"), key.WithHelp("alt+-", "smaller font")),
		PrintCaret: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "print caret")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	}
}

func (km KeyMap) empty() bool {
	return len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0 &&
		len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0
}
