package word

import "github.com/katalvlaran/permgroup/perm"

// ShortenConnecting returns a sub-word of w (letters deleted, order kept)
// whose path from start visits no point twice and whose endpoint equals the
// endpoint of w itself.
//
// Algorithm: locate the first repeated point on the path of the current
// word. The letters between its two occurrences trace a closed sub-path that
// returns to the same point, so excising them (middle segment plus the
// duplicated visit) cannot change the endpoint. Repeat until the path is
// duplicate-free. Each excision strictly shortens the word, so the loop runs
// at most |w| times.
//
// Because every letter of the result moves its point (a letter fixing the
// current point would repeat it), the duplicate-free path visits distinct
// points drawn from the union of the generators' supports. The result's
// length is therefore bounded by that union's size, the fact behind
// orbit.CompletenessBound.
//
// Complexity: O(|w|²) worst case; O(|w|) when w is already loop-free.
func (t *Table) ShortenConnecting(w Word, start perm.Point) (Word, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	cur := append(Word(nil), w...) // private copy: excisions below reslice it
	for {
		i, j, err := t.firstLoop(cur, start)
		if err != nil {
			return nil, err
		}
		if i < 0 {
			return cur, nil
		}
		// Drop letters i..j-1: the closed sub-path between the two visits.
		cur = append(cur[:i], cur[j:]...)
	}
}

// firstLoop finds the first repeated point on w's path from start. It
// returns the two prefix lengths (i, j), i < j, after which the same point
// is visited (j minimal over the whole path, i the point's first
// occurrence), or (-1, -1) when the path is duplicate-free.
func (t *Table) firstLoop(w Word, start perm.Point) (int, int, error) {
	seen := make(map[perm.Point]int, len(w)+1)
	seen[start] = 0
	p := start
	for k, l := range w {
		img, err := t.Image(l)
		if err != nil {
			return 0, 0, err
		}
		p = img.Apply(p)
		if i, dup := seen[p]; dup {
			return i, k + 1, nil
		}
		seen[p] = k + 1
	}

	return -1, -1, nil
}
