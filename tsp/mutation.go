// Package tsp - permutation mutation operators for the genetic optimizer.
//
// Operators mutate an order in place and always leave a valid permutation
// behind; they move cities around, never duplicate them.
package tsp

import "math/rand"

// mutateOrder dispatches on the closed operator set; unknown operators are
// rejected during configuration validation.
func mutateOrder(op MutationOp, order []int, rng *rand.Rand) {
	switch op {
	case DisplacementMutation:
		displacementMutate(order, rng)
	case InsertionMutation:
		insertionMutate(order, rng)
	default:
		swapMutate(order, rng)
	}
}

// swapMutate exchanges two distinct random positions.
func swapMutate(order []int, rng *rand.Rand) {
	n := len(order)
	if n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++ // j uniform over positions ≠ i
	}
	order[i], order[j] = order[j], order[i]
}

// displacementMutate cuts a random segment and reinserts it at a random
// position of the remainder.
func displacementMutate(order []int, rng *rand.Rand) {
	n := len(order)
	if n < 3 {
		swapMutate(order, rng)
		return
	}

	segLen := 1 + rng.Intn(n-1) // in [1..n-1]
	start := rng.Intn(n - segLen + 1)

	seg := make([]int, segLen)
	copy(seg, order[start:start+segLen])
	rest := append(order[:start:start], order[start+segLen:]...)

	at := rng.Intn(len(rest) + 1)
	out := make([]int, 0, n)
	out = append(out, rest[:at]...)
	out = append(out, seg...)
	out = append(out, rest[at:]...)
	copy(order, out)
}

// insertionMutate removes a single random city and reinserts it at another
// random position.
func insertionMutate(order []int, rng *rand.Rand) {
	n := len(order)
	if n < 2 {
		return
	}

	from := rng.Intn(n)
	to := rng.Intn(n - 1)
	if to >= from {
		to++
	}

	c := order[from]
	if to > from {
		copy(order[from:], order[from+1:to+1])
	} else {
		copy(order[to+1:], order[to:from])
	}
	order[to] = c
}
