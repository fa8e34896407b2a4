package words

import "iter"

// Generator is a single-use, pull-based generation session over one word. It
// lazily produces every candidate obtainable by permuting the word's
// characters: for each index ordering, the prefixes of length 2 up to len-1 in
// increasing order, then the full-length permutation, before advancing to the
// next ordering. Orderings are visited in lexicographic index order starting
// from the identity, so the emission sequence is fully deterministic.
//
// A Generator does no work until the first call to Next and holds only the
// current index ordering between calls. Once exhausted it stays exhausted; a
// new session requires a new Generator.
type Generator struct {
	word []byte
	idx  []int
	k    int // length of the next candidate to emit
	done bool
}

// NewGenerator creates a suspended generation session over word. The session
// keeps a private copy of the word's bytes, so later changes to the caller's
// string do not affect it.
func NewGenerator(word string) *Generator {
	n := len(word)
	g := &Generator{
		word: []byte(word),
		idx:  NewIndexOrdering(n),
		k:    2,
	}
	if n < 2 {
		// No prefixes exist; the only candidate is the word itself,
		// emitted through the full-length branch. An empty word has
		// nothing to emit at all.
		g.k = n
		g.done = n == 0
	}
	return g
}

// Next produces the next candidate, or ("", false) once the session is
// exhausted. Each returned string is a fresh copy owned by the caller; the
// session reuses none of its storage.
func (g *Generator) Next() (string, bool) {
	if g.done {
		return "", false
	}

	out := make([]byte, g.k)
	for i := 0; i < g.k; i++ {
		out[i] = g.word[g.idx[i]]
	}

	if g.k < len(g.idx) {
		g.k++
	} else if NextPermutation(g.idx) {
		g.k = 2
	} else {
		g.done = true
	}

	return string(out), true
}

// All returns an iterator over the session's remaining candidates, in
// emission order. Breaking out of the range abandons the session; nothing is
// left running and no cleanup is required.
func (g *Generator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for w, ok := g.Next(); ok; w, ok = g.Next() {
			if !yield(w) {
				return
			}
		}
	}
}
