package editor

import "github.com/iw2rmb/tendril/buffer"

// reflowWord re-places the elements after space through last, starting at
// (x, y), and returns the x just past last. Nothing moves when space is last.
func reflowWord(seq *buffer.Sequence, space, last buffer.Handle, x, y int) int {
	stop := seq.Next(last)
	for h := seq.Next(space); h != stop; h = seq.Next(h) {
		seq.Place(h, x, y)
		x += seq.Elem(h).Width
	}
	return x
}
