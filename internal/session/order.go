package session

import "math/rand"

// SequentialOrder returns [0, n) in natural order.
func SequentialOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// ShuffledOrder returns a uniform random permutation of [0, n). The
// permutation lives outside the state machine so it can be tested on its
// own; a progression only ever receives a finished order.
func ShuffledOrder(n int, rng *rand.Rand) []int {
	return rng.Perm(n)
}
