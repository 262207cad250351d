// Package tsp - tour construction heuristics.
//
// All four builders share one contract: input is a distance model plus a
// start city, output is a complete Tour visiting every city exactly once,
// reached after exactly n−1 extension steps (a hard bound, not a convergence
// criterion). Every step is deterministic: candidate scans run in ascending
// city order with strict comparisons, so ties always resolve to the lowest
// city index. The observer is notified once per step with a copy of the
// partial tour and its cycle cost; the context is checked between steps and
// a cancelled construction returns the context error, never a partial tour.
//
// Complexity: NearestNeighbor, NearestInsertion and FarthestInsertion are
// O(n²) overall (distance-to-tour arrays are maintained incrementally);
// CheapestInsertion scans every (city, edge) pair per step, O(n³) worst case.
package tsp

import (
	"context"

	"github.com/verlaine/tsproute/distmat"
)

// NearestNeighborTour repeatedly appends the closest unvisited city to the
// current endpoint, starting from start.
func NearestNeighborTour(ctx context.Context, m *distmat.Matrix, start int, obs Observer) (*Tour, error) {
	n, obs, err := constructionPreamble(m, start, obs)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, n)
	order := make([]int, 1, n)
	order[0] = start
	visited[start] = true

	var (
		cur  = start
		best int
		step int
	)
	for step = 1; step < n; step++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		best = -1
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if best == -1 || m.Distance(cur, j) < m.Distance(cur, best) {
				best = j
			}
		}

		order = append(order, best)
		visited[best] = true
		cur = best
		notifyStep(obs, m, order, step)
	}

	return NewTour(m, order)
}

// NearestInsertionTour grows a partial tour by repeatedly taking the
// unvisited city closest to any in-tour city and splicing it next to its
// nearest in-tour neighbor, on whichever side increases the length less
// (ties prefer the position after the neighbor).
func NearestInsertionTour(ctx context.Context, m *distmat.Matrix, start int, obs Observer) (*Tour, error) {
	return insertionTour(ctx, m, start, obs, false)
}

// FarthestInsertionTour selects the unvisited city whose distance to the
// partial tour is largest (farthest-first), then inserts it at the position
// of smallest length increase.
func FarthestInsertionTour(ctx context.Context, m *distmat.Matrix, start int, obs Observer) (*Tour, error) {
	return insertionTour(ctx, m, start, obs, true)
}

// CheapestInsertionTour picks, at every step, the (unvisited city k, tour
// edge (i,j)) pair minimizing d(i,k)+d(k,j)−d(i,j) and inserts k between
// i and j.
func CheapestInsertionTour(ctx context.Context, m *distmat.Matrix, start int, obs Observer) (*Tour, error) {
	n, obs, err := constructionPreamble(m, start, obs)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, n)
	order := make([]int, 1, n)
	order[0] = start
	visited[start] = true

	var (
		step, k, p     int
		bestK, bestPos int
		inc, bestInc   float64
	)
	for step = 1; step < n; step++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		bestK = -1
		for k = 0; k < n; k++ {
			if visited[k] {
				continue
			}
			for p = 0; p < len(order); p++ {
				inc = insertionIncrease(m, order, p, k)
				if bestK == -1 || inc < bestInc {
					bestK, bestPos, bestInc = k, p, inc
				}
			}
		}

		order = insertAfter(order, bestPos, bestK)
		visited[bestK] = true
		notifyStep(obs, m, order, step)
	}

	return NewTour(m, order)
}

// insertionTour is the shared engine behind nearest and farthest insertion;
// the two differ only in how the next city is selected against the
// distance-to-tour array.
func insertionTour(ctx context.Context, m *distmat.Matrix, start int, obs Observer, farthest bool) (*Tour, error) {
	n, obs, err := constructionPreamble(m, start, obs)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, n)
	order := make([]int, 1, n)
	order[0] = start
	visited[start] = true

	// near[k] is the distance from k to its closest in-tour city; nearTo[k]
	// is that city's tour position. Both are refreshed after every insertion.
	near := make([]float64, n)
	nearTo := make([]int, n)
	for k := 0; k < n; k++ {
		near[k] = m.Distance(start, k)
		nearTo[k] = 0
	}

	var (
		step, k, p, sel int
	)
	for step = 1; step < n; step++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		// Select the next city against the maintained distances.
		sel = -1
		for k = 0; k < n; k++ {
			if visited[k] {
				continue
			}
			if sel == -1 {
				sel = k
				continue
			}
			if farthest {
				if near[k] > near[sel] {
					sel = k
				}
			} else if near[k] < near[sel] {
				sel = k
			}
		}

		if farthest {
			// Cheapest position over all current tour edges.
			bestPos, bestInc := 0, insertionIncrease(m, order, 0, sel)
			for p = 1; p < len(order); p++ {
				if inc := insertionIncrease(m, order, p, sel); inc < bestInc {
					bestPos, bestInc = p, inc
				}
			}
			order = insertAfter(order, bestPos, sel)
		} else {
			// Splice next to the nearest in-tour neighbor, cheaper side wins.
			pos := nearTo[sel]
			prev := (pos - 1 + len(order)) % len(order)
			before := insertionIncrease(m, order, prev, sel)
			after := insertionIncrease(m, order, pos, sel)
			if before < after {
				order = insertAfter(order, prev, sel)
			} else {
				order = insertAfter(order, pos, sel)
			}
		}
		visited[sel] = true

		// Refresh distance-to-tour entries against the newly added city, and
		// remap stored tour positions shifted by the insertion.
		selPos := positionOf(order, sel)
		for k = 0; k < n; k++ {
			if visited[k] {
				continue
			}
			if nearTo[k] >= selPos {
				nearTo[k]++
			}
			if d := m.Distance(sel, k); d < near[k] {
				near[k] = d
				nearTo[k] = selPos
			}
		}

		notifyStep(obs, m, order, step)
	}

	return NewTour(m, order)
}

// constructionPreamble validates the shared inputs of every builder and
// normalizes a nil observer.
func constructionPreamble(m *distmat.Matrix, start int, obs Observer) (int, Observer, error) {
	if m == nil {
		return 0, nil, ErrNilModel
	}
	n := m.Order()
	if start < 0 || start >= n {
		return 0, nil, ErrStartOutOfRange
	}
	if obs == nil {
		obs = nopObserver{}
	}

	return n, obs, nil
}

// insertionIncrease is the length increase of inserting city k into the edge
// that leaves tour position p: d(i,k)+d(k,j)−d(i,j) with wraparound.
func insertionIncrease(m *distmat.Matrix, order []int, p, k int) float64 {
	i := order[p]
	j := order[(p+1)%len(order)]

	return m.Distance(i, k) + m.Distance(k, j) - m.Distance(i, j)
}

// insertAfter returns order with city k spliced in directly after position p.
func insertAfter(order []int, p, k int) []int {
	order = append(order, 0)
	copy(order[p+2:], order[p+1:])
	order[p+1] = k

	return order
}

// positionOf returns the tour position of city c; the callers guarantee
// presence.
func positionOf(order []int, c int) int {
	for p, v := range order {
		if v == c {
			return p
		}
	}

	return -1
}

// notifyStep emits one observer snapshot for a partial construction state.
// The slice is copied so the observer can never reach back into the builder.
func notifyStep(obs Observer, m *distmat.Matrix, order []int, step int) {
	snap := make([]int, len(order))
	copy(snap, order)
	obs.OnStep(snap, round1e9(cycleCost(m, order)), step)
}
