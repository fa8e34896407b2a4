package words

import "math/big"

// NewIndexOrdering creates the identity ordering [0, 1, ..., n-1], the
// lexicographically smallest permutation of the integer range [0, n).
func NewIndexOrdering(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// NextPermutation rearranges idx in place into the lexicographically next
// greater permutation of its elements and returns true. When idx is already
// the lexicographically greatest permutation, it is reset to the smallest
// (ascending) ordering and false is returned. Orderings of length 0 or 1 have
// exactly one permutation, so false is returned immediately.
//
// The function keeps no state of its own: the caller owns the buffer.
func NextPermutation(idx []int) bool {
	// Longest non-increasing suffix; the element before it is the pivot.
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		// Fully non-increasing: this was the last ordering.
		reverse(idx)
		return false
	}

	// Rightmost element greater than the pivot.
	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	reverse(idx[i+1:])
	return true
}

func reverse(x []int) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}

func factorial(n int) *big.Int {
	z := new(big.Int)
	return z.MulRange(1, int64(n))
}

// NumberOfOrderings returns the number of distinct index orderings of a word
// of length n, which is n! (indices are pairwise distinct even when the
// characters they map to are not).
func NumberOfOrderings(n int) *big.Int {
	return factorial(n)
}

// NumberOfEmissions returns the total number of candidates a generation
// session over a word of length n produces, counting repeats: each of the n!
// orderings emits n-2 prefixes plus one full-length candidate. A one-letter
// word emits itself once; an empty word emits nothing.
func NumberOfEmissions(n int) *big.Int {
	switch n {
	case 0:
		return new(big.Int)
	case 1:
		return big.NewInt(1)
	}
	f := factorial(n)
	return f.Mul(f, big.NewInt(int64(n-1)))
}
