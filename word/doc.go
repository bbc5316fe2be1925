// Package word implements the letter/word algebra that bounds and verifies
// orbit closure: words over an ordered generator list, free reduction,
// table-driven evaluation, prefix paths, and connecting-word shortening.
//
// What
//
//   - Letter: a 1-based generator index tagged Forward or Inverse. Letters
//     reference generators by position, never by value, so inverting a word
//     is a reversal plus tag flips; no permutations are recomposed.
//   - Word: an ordered letter sequence, evaluated left-to-right (the first
//     letter acts on the starting point first); the empty word is the
//     identity.
//   - Invert(w): reverse of letterwise inversion.
//   - Reduce(w): single-pass free reduction over an output stack.
//   - Table: per-generator-list forward/inverse lookups (built once by
//     NewTable) giving O(1) letter resolution for Image, Apply, Perm, Path,
//     and ShortenConnecting.
//   - ShortenConnecting(w, start): a letter-order-preserving sub-word whose
//     path repeats no point and whose endpoint matches w's.
//
// Why
//
//   - The orbit builder's round budget rests on one fact this package makes
//     executable: any point reachable by some word is reachable by a
//     loop-free word, and a loop-free word cannot be longer than the number
//     of distinct points it may touch, the union of the generators'
//     supports. orbit.CompletenessBound is that quantity plus one.
//   - Word evaluation against a Table (Apply) checks reachability claims
//     without composing permutations; Perm materializes a word when a real
//     group element is needed.
//
// Determinism
//
//	All operations are pure functions of their inputs; Tables are read-only
//	after construction and safe to share across goroutines.
//
// Complexity (n = |w|, s = support sizes)
//
//   - Invert, Reduce, Apply, Path: O(n)
//   - Perm: O(n·s)
//   - ShortenConnecting: O(n²) worst case
//
// Usage
//
//	tbl := word.NewTable(gens)
//	w := word.Word{word.Forward(1), word.Inverse(2), word.Forward(1)}
//	end, err := tbl.Apply(w, 3)            // image of 3 under w
//	short, err := tbl.ShortenConnecting(w, 3)
//	p, err := tbl.Perm(word.Reduce(w))     // the group element w names
//
// Errors
//
//   - ErrNilTable     if an evaluation method is called on a nil table.
//   - ErrLetterRange  if a letter's index falls outside the table.
package word
