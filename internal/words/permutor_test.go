package words

import (
	"math/big"
	"testing"
)

func sameOrdering(p1 []int, p2 []int) bool {
	if len(p1) != len(p2) {
		return false
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			return false
		}
	}
	return true
}

func TestNextPermutationOrder(t *testing.T) {
	idx := NewIndexOrdering(3)

	expected := [][]int{
		{0, 1, 2},
		{0, 2, 1},
		{1, 0, 2},
		{1, 2, 0},
		{2, 0, 1},
		{2, 1, 0},
	}

	for i, want := range expected {
		if !sameOrdering(idx, want) {
			t.Fatalf("ordering %d incorrect: expected %v, got %v", i, want, idx)
		}
		ok := NextPermutation(idx)
		if i < len(expected)-1 && !ok {
			t.Fatalf("expected more orderings after %v, got none", want)
		}
		if i == len(expected)-1 && ok {
			t.Fatalf("expected no orderings after %v, got %v", want, idx)
		}
	}

	// Exhaustion resets the buffer to the smallest ordering.
	if !sameOrdering(idx, []int{0, 1, 2}) {
		t.Fatalf("expected reset to %v, got %v", []int{0, 1, 2}, idx)
	}
}

func TestNextPermutationCount(t *testing.T) {
	idx := NewIndexOrdering(6)

	n := big.NewInt(1)
	for NextPermutation(idx) {
		n.Add(n, big.NewInt(1))
	}

	if n.Cmp(NumberOfOrderings(6)) != 0 {
		t.Fatalf("number of orderings incorrect: expected %v, got %v", NumberOfOrderings(6), n)
	}
}

func TestNextPermutationDegenerate(t *testing.T) {
	empty := NewIndexOrdering(0)
	if NextPermutation(empty) {
		t.Fatal("expected no next ordering for empty ordering")
	}

	single := NewIndexOrdering(1)
	if NextPermutation(single) {
		t.Fatal("expected no next ordering for singleton ordering")
	}
	if single[0] != 0 {
		t.Fatalf("expected singleton ordering unchanged, got %v", single)
	}
}

func TestNumberOfOrderings(t *testing.T) {
	if NumberOfOrderings(0).Cmp(big.NewInt(1)) != 0 {
		t.Errorf("expected 1, got %v", NumberOfOrderings(0))
	}
	if NumberOfOrderings(8).Cmp(big.NewInt(40320)) != 0 {
		t.Errorf("expected 40320, got %v", NumberOfOrderings(8))
	}
}

func TestNumberOfEmissions(t *testing.T) {
	expected := map[int]int64{
		0: 0,
		1: 1,
		2: 2,  // 2! x 1
		3: 12, // 3! x 2
		5: 480,
	}
	for n, want := range expected {
		if got := NumberOfEmissions(n); got.Cmp(big.NewInt(want)) != 0 {
			t.Errorf("emissions for length %d incorrect: expected %v, got %v", n, want, got)
		}
	}
}

func BenchmarkNextPermutationAll8(b *testing.B) {
	idx := NewIndexOrdering(8)
	for i := 0; i < b.N; i++ {
		for NextPermutation(idx) {
			// Cycle through all orderings.
		}
	}
}
