// Package tsp - permutation crossover operators for the genetic optimizer.
//
// Every operator maps two parent permutations to one child permutation: no
// city is ever duplicated or dropped, for any parent pair and any cut
// points. That closure property is what the genetic loop relies on to skip
// revalidation of offspring in its hot path (CheckCost still guards the run
// boundary).
package tsp

import "math/rand"

// crossoverChild dispatches on the closed operator set. opts validation has
// already rejected unknown operators, so the default arm is unreachable from
// public entry points.
func crossoverChild(op CrossoverOp, p1, p2 []int, rng *rand.Rand) []int {
	switch op {
	case MaximalPreservative:
		return mpxChild(p1, p2, rng)
	case PartiallyMapped:
		return pmxChild(p1, p2, rng)
	default:
		return oxChild(p1, p2, rng)
	}
}

// cutPoints draws a non-empty, non-full segment [a, b) of 0..n-1.
func cutPoints(n int, rng *rand.Rand) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}
	if a == b {
		b++ // at least one element
	}
	if a == 0 && b == n {
		b-- // keep at least one position outside the segment
	}

	return a, b
}

// oxChild implements order crossover (OX): the child keeps p1's segment
// [a,b) in place and fills the remaining positions with the missing cities
// in p2's cyclic order starting from b.
func oxChild(p1, p2 []int, rng *rand.Rand) []int {
	n := len(p1)
	a, b := cutPoints(n, rng)

	child := make([]int, n)
	taken := make([]bool, n)
	for i := a; i < b; i++ {
		child[i] = p1[i]
		taken[p1[i]] = true
	}

	pos := b % n
	for i := 0; i < n; i++ {
		g := p2[(b+i)%n]
		if taken[g] {
			continue
		}
		child[pos] = g
		taken[g] = true
		pos = (pos + 1) % n
		for pos >= a && pos < b { // skip over the transplanted segment
			pos = (pos + 1) % n
		}
	}

	return child
}

// mpxChild implements maximally-preservative crossover (MPX): a segment of
// bounded length (at most n/2, at least 2 where possible) is transplanted
// from p1 to the front of the child, and the remaining cities follow in
// p2's order.
func mpxChild(p1, p2 []int, rng *rand.Rand) []int {
	n := len(p1)
	maxLen := n / 2
	if maxLen < 2 {
		maxLen = n - 1 // tiny instances: keep at least one city from p2
	}
	segLen := 1
	if maxLen >= 2 {
		segLen = 2 + rng.Intn(maxLen-1) // in [2..maxLen]
	}
	start := rng.Intn(n)

	child := make([]int, 0, n)
	taken := make([]bool, n)
	for i := 0; i < segLen; i++ {
		g := p1[(start+i)%n]
		child = append(child, g)
		taken[g] = true
	}
	for _, g := range p2 {
		if !taken[g] {
			child = append(child, g)
		}
	}

	return child
}

// pmxChild implements partially-mapped crossover (PMX): p1's segment [a,b)
// is copied verbatim; every other position takes p2's city, chased through
// the segment mapping p1[i]↔p2[i] until it lands outside the transplant.
func pmxChild(p1, p2 []int, rng *rand.Rand) []int {
	n := len(p1)
	a, b := cutPoints(n, rng)

	child := make([]int, n)
	taken := make([]bool, n)
	posInP1 := make([]int, n)
	for i, g := range p1 {
		posInP1[g] = i
	}
	for i := a; i < b; i++ {
		child[i] = p1[i]
		taken[p1[i]] = true
	}

	for i := 0; i < n; i++ {
		if i >= a && i < b {
			continue
		}
		g := p2[i]
		// The chase terminates: each hop leaves one segment slot behind and
		// the segment is finite.
		for taken[g] {
			g = p2[posInP1[g]]
		}
		child[i] = g
		taken[g] = true
	}

	return child
}
