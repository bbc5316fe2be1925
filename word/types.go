// Package word implements the letter/word algebra over an ordered generator
// list: free reduction, table-driven evaluation, prefix paths, and
// connecting-word shortening.
//
// This file declares Letter, Word, and the sentinel errors.
package word

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for word evaluation.
var (
	// ErrNilTable is returned when an evaluation method is called on a nil
	// generator table.
	ErrNilTable = errors.New("word: generator table is nil")

	// ErrLetterRange is returned when a letter references a generator index
	// outside the table's 1..Len range.
	ErrLetterRange = errors.New("word: letter index outside generator table")
)

// Letter references one generator of a fixed, ordered generator list by its
// 1-based position, tagged as either the generator itself or its inverse.
// Letters never hold permutation values, so words stay cheap to invert and
// reduce, with no recomposition.
type Letter struct {
	// Gen is the 1-based position of the referenced generator.
	Gen int

	// Inv selects the inverse of the referenced generator.
	Inv bool
}

// Forward returns the letter applying generator i.
func Forward(i int) Letter { return Letter{Gen: i} }

// Inverse returns the letter applying the inverse of generator i.
func Inverse(i int) Letter { return Letter{Gen: i, Inv: true} }

// Invert flips the forward/inverse tag, keeping the index.
func (l Letter) Invert() Letter {
	l.Inv = !l.Inv

	return l
}

// Cancels reports whether l and m are the same generator with opposite tags,
// i.e. an adjacent pair that free reduction removes.
func (l Letter) Cancels(m Letter) bool {
	return l.Gen == m.Gen && l.Inv != m.Inv
}

// String renders the letter as g<i> for a forward letter and g<i>' for an
// inverse one.
func (l Letter) String() string {
	s := "g" + strconv.Itoa(l.Gen)
	if l.Inv {
		s += "'"
	}

	return s
}

// Word is an ordered sequence of letters, evaluated left-to-right: the first
// letter acts on the starting point first. The empty word is the identity.
type Word []Letter

// String renders the word as space-joined letters; the empty word is "e".
func (w Word) String() string {
	if len(w) == 0 {
		return "e"
	}
	parts := make([]string, len(w))
	for i, l := range w {
		parts[i] = l.String()
	}

	return strings.Join(parts, " ")
}
