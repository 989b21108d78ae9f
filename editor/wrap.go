package editor

import "github.com/iw2rmb/tendril/buffer"

// Relayout measures and places every element of seq and returns the visual
// line index.
//
// Layout is greedy: characters flow left to right from MarginLeft. When a
// character would reach MarginRight the line wraps, and the run after the most
// recent space on the line (the current character included) moves down with
// it. A line with no space wraps before the current character only. A space
// that overflows stays at the end of its line. Line breaks always start a new
// line.
//
// The whole sequence is recomputed on every call.
func Relayout(seq *buffer.Sequence, cfg LayoutConfig) VisualLines {
	cfg = cfg.normalized()

	_, lineHeight := cfg.Measure.Measure(' ', cfg.FontSize)
	if lineHeight <= 0 {
		lineHeight = 1
	}

	x, y := cfg.MarginLeft, 0
	space := buffer.None

	for h := seq.First(); h != buffer.Back; h = seq.Next(h) {
		el := seq.Elem(h)
		w, ht := cfg.Measure.Measure(el.Char, cfg.FontSize)
		seq.Resize(h, w, ht)
		seq.Place(h, x, y)

		if el.IsLineBreak() {
			x = cfg.MarginLeft
			y += lineHeight
			space = buffer.None
			continue
		}

		if el.IsSpace() {
			space = h
		}
		if ht > 0 {
			lineHeight = ht
		}

		if x > cfg.MarginLeft && x+w >= cfg.MarginRight {
			x, y = cfg.MarginLeft, y+lineHeight
			if space != buffer.None {
				x = reflowWord(seq, space, h, x, y)
				space = buffer.None
				continue
			}
			seq.Place(h, x, y)
		}
		x += w
	}

	return collectVisualLines(seq, cfg.MarginLeft, lineHeight, y)
}
