package word

// Invert returns the word evaluating to the inverse of w's permutation: the
// reverse of letterwise inversion. No permutations are composed; this is
// why letters carry indices rather than values.
//
// Complexity: O(|w|).
func Invert(w Word) Word {
	out := make(Word, len(w))
	for i, l := range w {
		out[len(w)-1-i] = l.Invert()
	}

	return out
}

// Reduce returns the free reduction of w: one left-to-right pass maintaining
// an output stack. A letter that cancels the current stack top pops it;
// every other letter is pushed. The result carries no adjacent canceling
// pair and evaluates to the same permutation as w.
//
// Reduce preserves evaluation, not trajectories: the points visited by the
// prefixes of Reduce(w) generally differ from those of w.
//
// Complexity: O(|w|) time and space.
func Reduce(w Word) Word {
	out := make(Word, 0, len(w))
	for _, l := range w {
		if n := len(out); n > 0 && out[n-1].Cancels(l) {
			out = out[:n-1]
			continue
		}
		out = append(out, l)
	}

	return out
}
