// Package tsp - cost helpers shared by every solver.
package tsp

import (
	"math"

	"github.com/verlaine/tsproute/distmat"
)

// roundScale controls final cost stabilization (1e-9). It removes tiny FP
// drift across platforms without affecting which move wins a comparison.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// cycleCost sums consecutive edge distances of an open city sequence,
// including the wraparound edge from the last city back to the first.
// The sequence may be a partial tour; indices must be valid for m.
//
// Complexity: O(len(order)).
func cycleCost(m *distmat.Matrix, order []int) float64 {
	n := len(order)
	if n < 2 {
		return 0
	}

	var sum float64
	for i := 0; i < n-1; i++ {
		sum += m.Distance(order[i], order[i+1])
	}
	sum += m.Distance(order[n-1], order[0])

	return sum
}
