package words

import (
	"fmt"
	"io"

	"github.com/segmentio/fasthash/jody"
)

// WordSet is a set of candidate words keyed by exact content. Lookups are
// bucketed by a jody hash of the word, but membership is always decided by
// full string comparison, so a hash collision can neither drop a distinct
// word nor admit a duplicate.
type WordSet struct {
	buckets map[uint64][]string
	size    int
}

// NewWordSet creates an empty WordSet.
func NewWordSet() *WordSet {
	return &WordSet{buckets: make(map[uint64][]string)}
}

// Add inserts word into the set. It returns true if the word was not already
// present.
func (s *WordSet) Add(word string) bool {
	h := jody.HashString64(word)
	for _, w := range s.buckets[h] {
		if w == word {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], word)
	s.size++
	return true
}

// Has reports whether word is in the set.
func (s *WordSet) Has(word string) bool {
	for _, w := range s.buckets[jody.HashString64(word)] {
		if w == word {
			return true
		}
	}
	return false
}

// Len returns the number of distinct words in the set.
func (s *WordSet) Len() int {
	return s.size
}

// Words returns the set's contents in unspecified order.
func (s *WordSet) Words() []string {
	out := make([]string, 0, s.size)
	for _, bucket := range s.buckets {
		out = append(out, bucket...)
	}
	return out
}

// WriteTo writes the set to w, one word per line, in unspecified order. It
// implements io.WriterTo.
func (s *WordSet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, bucket := range s.buckets {
		for _, word := range bucket {
			n, err := fmt.Fprintln(w, word)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// Collect drains the generation session to exhaustion and returns the
// deduplicated set of every candidate it emitted.
func Collect(g *Generator) *WordSet {
	s := NewWordSet()
	for w := range g.All() {
		s.Add(w)
	}
	return s
}
