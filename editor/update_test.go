package editor

import (
	"context"
	"errors"
	"iter"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testKey(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+z":
		return tea.KeyMsg{Type: tea.KeyCtrlZ}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "alt+=":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'='}, Alt: true}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "alt+-":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}, Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{}, // keep styles minimal for this test
	})

	m, _ = m.Update(testKey("right"))
	m, _ = m.Update(testKey("X"))
	if got := m.Document().Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.Document().CursorOffset(); got != 2 {
		t.Fatalf("cursor after insert: got %d, want %d", got, 2)
	}

	m, _ = m.Update(testKey("backspace"))
	if got := m.Document().Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.Document().CursorOffset(); got != 1 {
		t.Fatalf("cursor after backspace: got %d, want %d", got, 1)
	}
}

func TestUpdate_EnterUndoRedo(t *testing.T) {
	m := New(Config{Text: "ab"})
	m, _ = m.Update(testKey("right"))
	m, _ = m.Update(testKey("enter"))
	if got, want := m.Document().Text(), "a\nb"; got != want {
		t.Fatalf("text after enter: got %q, want %q", got, want)
	}

	m, _ = m.Update(testKey("ctrl+z"))
	if got, want := m.Document().Text(), "ab"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
	m, _ = m.Update(testKey("ctrl+y"))
	if got, want := m.Document().Text(), "a\nb"; got != want {
		t.Fatalf("text after redo: got %q, want %q", got, want)
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{
		Text:     "ab",
		ReadOnly: true,
	})

	m, _ = m.Update(testKey("right"))
	if got := m.Document().CursorOffset(); got != 1 {
		t.Fatalf("cursor after move: got %d, want %d", got, 1)
	}

	m, _ = m.Update(testKey("X"))
	m, _ = m.Update(testKey("backspace"))
	m, _ = m.Update(testKey("enter"))
	if got := m.Document().Text(); got != "ab" {
		t.Fatalf("text in read-only: got %q, want %q", got, "ab")
	}
}

func TestUpdate_Blurred_IgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	m, _ = m.Update(testKey("X"))
	if got := m.Document().Text(); got != "ab" {
		t.Fatalf("text while blurred: got %q, want %q", got, "ab")
	}
}

func TestUpdate_PasteNormalizesLineBreaks(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x\r\ny"), Paste: true})
	if got, want := m.Document().Text(), "x\ny"; got != want {
		t.Fatalf("text after paste: got %q, want %q", got, want)
	}
}

func TestUpdate_SpaceKeyInserts(t *testing.T) {
	m := New(Config{Text: "ab"})
	m, _ = m.Update(testKey("right"))
	m, _ = m.Update(testKey(" "))
	if got, want := m.Document().Text(), "a b"; got != want {
		t.Fatalf("text after space key: got %q, want %q", got, want)
	}

	m = New(Config{Text: "ab", ReadOnly: true})
	m, _ = m.Update(testKey(" "))
	if got, want := m.Document().Text(), "ab"; got != want {
		t.Fatalf("read-only text after space key: got %q, want %q", got, want)
	}
}

func TestUpdate_SpaceKeyWraps(t *testing.T) {
	m := New(Config{Text: "aaabbbb"})
	m = m.SetSize(6, 5)
	for i := 0; i < 3; i++ {
		m, _ = m.Update(testKey("right"))
	}
	m, _ = m.Update(testKey(" "))

	d := m.Document()
	if got, want := d.Lines().Len(), 2; got != want {
		t.Fatalf("lines after space key: got %d, want %d", got, want)
	}
	if got, want := d.Sequence().Offset(d.Lines().Start(1)), 4; got != want {
		t.Fatalf("second line starts at %d, want %d", got, want)
	}
}

func TestUpdate_UpDownFollowWrappedLines(t *testing.T) {
	m := New(Config{Text: "aaaa bbbb"})
	m = m.SetSize(6, 5)

	m, _ = m.Update(testKey("right"))
	m, _ = m.Update(testKey("down"))
	if got, want := m.Document().CursorOffset(), 6; got != want {
		t.Fatalf("cursor after down: got %d, want %d", got, want)
	}
	m, _ = m.Update(testKey("up"))
	if got, want := m.Document().CursorOffset(), 1; got != want {
		t.Fatalf("cursor after up: got %d, want %d", got, want)
	}
}

func TestUpdate_ZoomAndPrintCaret(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(testKey("alt+="))
	if got, want := m.Document().FontSize(), DefaultFontSize+FontSizeStep; got != want {
		t.Fatalf("font size after zoom in: got %d, want %d", got, want)
	}
	m, _ = m.Update(testKey("alt+-"))
	if got, want := m.Document().FontSize(), DefaultFontSize; got != want {
		t.Fatalf("font size after zoom out: got %d, want %d", got, want)
	}

	m, _ = m.Update(testKey("right"))
	m, _ = m.Update(testKey("ctrl+p"))
	if got, want := m.Status(), "caret 1,0"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}
}

func TestUpdate_Save(t *testing.T) {
	var saved strings.Builder
	m := New(Config{
		Text: "ab",
		Sink: SinkFunc(func(_ context.Context, chars iter.Seq[rune]) error {
			for ch := range chars {
				saved.WriteRune(ch)
			}
			return nil
		}),
	})

	m, _ = m.Update(testKey("ctrl+s"))
	if got, want := saved.String(), "ab"; got != want {
		t.Fatalf("saved: got %q, want %q", got, want)
	}
	if got, want := m.Status(), "saved 2 chars"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}

	m = New(Config{Text: "ab"})
	m, _ = m.Update(testKey("ctrl+s"))
	if got, want := m.Status(), "no file to save to"; got != want {
		t.Fatalf("status without sink: got %q, want %q", got, want)
	}

	m = New(Config{
		Text: "ab",
		Sink: SinkFunc(func(context.Context, iter.Seq[rune]) error { return errors.New("read-only fs") }),
	})
	m, _ = m.Update(testKey("ctrl+s"))
	if !strings.Contains(m.Status(), "read-only fs") {
		t.Fatalf("status after failed save: got %q", m.Status())
	}
}

func TestUpdate_MouseClickPlacesCursor(t *testing.T) {
	m := New(Config{Text: "ab\ncd"})
	m = m.SetSize(10, 5)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got, want := m.Document().CursorOffset(), 4; got != want {
		t.Fatalf("cursor after click: got %d, want %d", got, want)
	}

	m, _ = m.Update(tea.MouseMsg{X: 9, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got, want := m.Document().CursorOffset(), 5; got != want {
		t.Fatalf("cursor after click below text: got %d, want %d", got, want)
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if got, want := m.Document().CursorOffset(), 5; got != want {
		t.Fatalf("cursor after right click: got %d, want %d", got, want)
	}
}
