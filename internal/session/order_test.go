package session

import (
	"math/rand"
	"testing"
)

func TestSequentialOrder(t *testing.T) {
	order := SequentialOrder(5)
	if len(order) != 5 {
		t.Fatalf("expected length 5, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Errorf("expected order[%d] = %d, got %d", i, i, v)
		}
	}

	if len(SequentialOrder(0)) != 0 {
		t.Error("expected empty order for n=0")
	}
}

func TestShuffledOrder_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 2, 10, 100} {
		order := ShuffledOrder(n, rng)
		if len(order) != n {
			t.Fatalf("n=%d: expected length %d, got %d", n, n, len(order))
		}
		seen := make(map[int]bool, n)
		for _, v := range order {
			if v < 0 || v >= n {
				t.Fatalf("n=%d: value %d out of range", n, v)
			}
			if seen[v] {
				t.Fatalf("n=%d: duplicate value %d", n, v)
			}
			seen[v] = true
		}
	}
}
