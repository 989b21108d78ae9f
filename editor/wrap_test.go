package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/tendril/buffer"
)

var tenByTen = FixedMeasure{Width: 10, Height: 10}

type placed struct {
	Ch   rune
	X, Y int
}

func layoutOf(text string, cfg LayoutConfig) (*buffer.Sequence, VisualLines) {
	seq := buffer.NewFromString(text)
	return seq, Relayout(seq, cfg)
}

func positions(seq *buffer.Sequence) []placed {
	var out []placed
	for _, e := range seq.All() {
		out = append(out, placed{Ch: e.Char, X: e.X, Y: e.Y})
	}
	return out
}

// nth returns the handle of the i-th element.
func nth(seq *buffer.Sequence, i int) buffer.Handle {
	h := seq.First()
	for ; i > 0 && h != buffer.Back; i-- {
		h = seq.Next(h)
	}
	return h
}

func startChars(seq *buffer.Sequence, vl VisualLines) string {
	var out []rune
	for _, h := range vl.Starts {
		out = append(out, seq.Elem(h).Char)
	}
	return string(out)
}

func TestRelayout_TrailingSpaceStaysAndWordWraps(t *testing.T) {
	seq, vl := layoutOf("AB CD", LayoutConfig{MarginLeft: 5, MarginRight: 35, Measure: tenByTen})

	want := []placed{
		{'A', 5, 0}, {'B', 15, 0}, {' ', 25, 0},
		{'C', 5, 10}, {'D', 15, 10},
	}
	if diff := cmp.Diff(want, positions(seq)); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
	if got, want := startChars(seq, vl), "AC"; got != want {
		t.Fatalf("line starts=%q, want %q", got, want)
	}
	if got, want := vl.LineHeight, 10; got != want {
		t.Fatalf("line height=%d, want %d", got, want)
	}
}

func TestRelayout_ExactFitStaysOnOneLine(t *testing.T) {
	seq, vl := layoutOf("AB CDE", LayoutConfig{MarginRight: 61, Measure: tenByTen})

	if got, want := vl.Len(), 1; got != want {
		t.Fatalf("lines=%d, want %d", got, want)
	}
	if got := seq.Elem(nth(seq, 5)); got.X != 50 || got.Y != 0 {
		t.Fatalf("E at (%d,%d), want (50,0)", got.X, got.Y)
	}
}

func TestRelayout_WordOneUnitTooWideWrapsInFull(t *testing.T) {
	seq, vl := layoutOf("AB CDE", LayoutConfig{MarginRight: 60, Measure: tenByTen})

	want := []placed{
		{'A', 0, 0}, {'B', 10, 0}, {' ', 20, 0},
		{'C', 0, 10}, {'D', 10, 10}, {'E', 20, 10},
	}
	if diff := cmp.Diff(want, positions(seq)); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
	if got, want := startChars(seq, vl), "AC"; got != want {
		t.Fatalf("line starts=%q, want %q", got, want)
	}
}

func TestRelayout_WordWithoutSpaceBreaksAtCharacter(t *testing.T) {
	seq, vl := layoutOf("ABCDE", LayoutConfig{MarginRight: 30, Measure: tenByTen})

	want := []placed{
		{'A', 0, 0}, {'B', 10, 0},
		{'C', 0, 10}, {'D', 10, 10},
		{'E', 0, 20},
	}
	if diff := cmp.Diff(want, positions(seq)); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
	if got, want := startChars(seq, vl), "ACE"; got != want {
		t.Fatalf("line starts=%q, want %q", got, want)
	}
}

func TestRelayout_LineBreakForgetsSpace(t *testing.T) {
	seq, _ := layoutOf("ab cd\nefghij", LayoutConfig{MarginRight: 60, Measure: tenByTen})

	got := positions(seq)
	if got[10] != (placed{'i', 40, 10}) {
		t.Fatalf("i=%+v, want at (40,10)", got[10])
	}
	if got[11] != (placed{'j', 0, 20}) {
		t.Fatalf("j=%+v, want at (0,20)", got[11])
	}
	if got[3] != (placed{'c', 30, 0}) {
		t.Fatalf("c=%+v, want to stay at (30,0)", got[3])
	}
}

func TestRelayout_LineBreaks(t *testing.T) {
	one := FixedMeasure{Width: 1, Height: 1}

	seq, vl := layoutOf("ab\ncd", LayoutConfig{Measure: one})
	want := []placed{{'a', 0, 0}, {'b', 1, 0}, {'\n', 2, 0}, {'c', 0, 1}, {'d', 1, 1}}
	if diff := cmp.Diff(want, positions(seq)); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
	if got, want := startChars(seq, vl), "ac"; got != want {
		t.Fatalf("line starts=%q, want %q", got, want)
	}

	seq, vl = layoutOf("a\n\nb", LayoutConfig{Measure: one})
	if got, want := startChars(seq, vl), "a\nb"; got != want {
		t.Fatalf("line starts=%q, want %q", got, want)
	}

	_, vl = layoutOf("ab\n", LayoutConfig{Measure: one})
	if got, want := vl.Len(), 1; got != want {
		t.Fatalf("lines=%d, want %d", got, want)
	}
	if got, want := vl.Height(), 2; got != want {
		t.Fatalf("height=%d, want %d", got, want)
	}
}

func TestRelayout_EmptySequence(t *testing.T) {
	_, vl := layoutOf("", LayoutConfig{Measure: tenByTen})
	if vl.Len() != 0 {
		t.Fatalf("lines=%d, want 0", vl.Len())
	}
	if got, want := vl.Height(), 10; got != want {
		t.Fatalf("height=%d, want %d", got, want)
	}
}

func TestRelayout_NoWrapWhenRightMarginUnset(t *testing.T) {
	_, vl := layoutOf("a very long line that never wraps", LayoutConfig{MarginLeft: 2, Measure: tenByTen})
	if got, want := vl.Len(), 1; got != want {
		t.Fatalf("lines=%d, want %d", got, want)
	}
	if (LayoutConfig{MarginLeft: 2}).Wraps() {
		t.Fatalf("Wraps()=true without a right margin")
	}
}

func TestRelayout_UsesFontSize(t *testing.T) {
	m := MonospaceMeasure{Advance: 1, LineSpacing: 2}
	seq, vl := layoutOf("ab", LayoutConfig{FontSize: 8, Measure: m})

	b := seq.Elem(nth(seq, 1))
	if b.X != 8 || b.Width != 8 || b.Height != 16 {
		t.Fatalf("b=%+v, want x=8 width=8 height=16", b)
	}
	if got, want := vl.LineHeight, 16; got != want {
		t.Fatalf("line height=%d, want %d", got, want)
	}
}

func TestRelayout_IsRepeatable(t *testing.T) {
	seq, _ := layoutOf("the quick brown fox jumps", LayoutConfig{MarginRight: 100, Measure: tenByTen})
	first := positions(seq)
	Relayout(seq, LayoutConfig{MarginRight: 100, Measure: tenByTen})
	if diff := cmp.Diff(first, positions(seq)); diff != "" {
		t.Fatalf("second relayout moved elements (-first +second):\n%s", diff)
	}
}
