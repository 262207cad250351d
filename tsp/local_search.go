// Package tsp - local search engines (2-opt, node insertion, edge insertion).
//
// All three improve a Tour in place until no move in their neighborhood
// strictly reduces the cost — the local optimum is the termination
// criterion, never an iteration count.
//
// Policy (fixed and relied upon by test fixtures): best-improvement per
// sweep. A sweep evaluates the entire neighborhood, remembers the single
// most negative Δ, and applies that one move; sweeps repeat until a sweep
// finds nothing with Δ < −eps. Because every accepted move strictly reduces
// the cost over a finite solution set, termination is guaranteed — accepting
// equal-cost moves would reintroduce oscillation, which is why eps ≥ 0 is
// enforced up front. Ties on Δ keep the earliest candidate in scan order
// (ascending positions), making runs reproducible.
//
// The observer sees one snapshot per completed sweep. The context is checked
// between sweeps only — never mid-move — so cancellation can never expose a
// half-mutated tour; the tour held at cancellation is valid and no worse
// than the input, and is kept (graceful stop).
//
// Complexity per sweep: O(n²) Δ-evaluations for 2-opt on symmetric models
// (O(n³) asymmetric, where reversal re-sums the segment), O(n²) for node and
// edge insertion on any model. Sweep count is bounded by the strictly
// decreasing cost sequence.
package tsp

import "context"

// PairwiseExchangeOptimize runs 2-opt on t until a local optimum, returning
// the number of sweeps that applied a move.
func PairwiseExchangeOptimize(ctx context.Context, t *Tour, eps float64, obs Observer) (int, error) {
	return sweepLoop(ctx, t, eps, obs, twoOptSweep)
}

// NodeInsertionOptimize relocates single cities until no relocation improves
// t, returning the number of sweeps that applied a move.
func NodeInsertionOptimize(ctx context.Context, t *Tour, eps float64, obs Observer) (int, error) {
	return sweepLoop(ctx, t, eps, obs, nodeSweep)
}

// EdgeInsertionOptimize relocates adjacent city pairs as a unit until no such
// move improves t, returning the number of sweeps that applied a move.
func EdgeInsertionOptimize(ctx context.Context, t *Tour, eps float64, obs Observer) (int, error) {
	return sweepLoop(ctx, t, eps, obs, edgeSweep)
}

// sweepFunc evaluates one full neighborhood sweep over t and applies the
// best strictly improving move, reporting whether one was applied.
type sweepFunc func(t *Tour, eps float64) (bool, error)

// sweepLoop drives a neighborhood to its local optimum and guards the
// invariants at the boundary.
func sweepLoop(ctx context.Context, t *Tour, eps float64, obs Observer, sweep sweepFunc) (int, error) {
	if t == nil {
		return 0, ErrNilModel
	}
	if eps < 0 {
		return 0, ErrEpsNegative
	}
	if obs == nil {
		obs = nopObserver{}
	}

	sweeps := 0
	for {
		if ctx.Err() != nil {
			break // graceful stop: t is valid and no worse than the input
		}

		improved, err := sweep(t, eps)
		if err != nil {
			return sweeps, err
		}
		if !improved {
			break // local optimum
		}
		sweeps++
		obs.OnStep(t.Order(), t.Cost(), sweeps)
	}

	// Bookkeeping divergence here is an internal bug; halt rather than
	// return a corrupted tour.
	if err := t.CheckCost(); err != nil {
		return sweeps, err
	}

	return sweeps, nil
}

// twoOptSweep scans all segment reversals [i..k], 0 ≤ i < k ≤ n-1, excluding
// the full wrap, and applies the single best improving one.
func twoOptSweep(t *Tour, eps float64) (bool, error) {
	n := t.Len()
	if n < 4 {
		// Fewer than four cities admit no cost-changing reversal on a
		// symmetric model and only degenerate ones otherwise.
		return false, nil
	}

	var (
		bestI, bestK = -1, -1
		bestDelta    float64
		i, k         int
		delta        float64
	)
	for i = 0; i < n-1; i++ {
		for k = i + 1; k < n; k++ {
			if i == 0 && k == n-1 {
				continue // whole-cycle reversal
			}
			delta = t.reverseDelta(i, k)
			if delta < -eps && delta < bestDelta {
				bestI, bestK, bestDelta = i, k, delta
			}
		}
	}
	if bestI == -1 {
		return false, nil
	}

	return true, t.ReverseSegment(bestI, bestK)
}

// nodeSweep scans every (city position, target position) relocation and
// applies the single best improving one.
func nodeSweep(t *Tour, eps float64) (bool, error) {
	n := t.Len()
	if n < 3 {
		return false, nil
	}

	var (
		bestFrom, bestTo = -1, -1
		bestDelta        float64
		from, to         int
		delta            float64
	)
	for from = 0; from < n; from++ {
		for to = 0; to < n; to++ {
			if to == from {
				continue
			}
			delta = t.relocateDelta(from, to)
			if delta < -eps && delta < bestDelta {
				bestFrom, bestTo, bestDelta = from, to, delta
			}
		}
	}
	if bestFrom == -1 {
		return false, nil
	}

	return true, t.Relocate(bestFrom, bestTo)
}

// edgeSweep scans every relocation of a non-wrapping adjacent pair and
// applies the single best improving one.
func edgeSweep(t *Tour, eps float64) (bool, error) {
	n := t.Len()
	if n < 4 {
		return false, nil
	}

	var (
		bestFrom, bestTo = -1, -1
		bestDelta        float64
		from, to         int
		delta            float64
	)
	for from = 0; from < n-1; from++ {
		for to = 0; to < n-1; to++ {
			if to == from {
				continue
			}
			delta = t.relocateEdgeDelta(from, to)
			if delta < -eps && delta < bestDelta {
				bestFrom, bestTo, bestDelta = from, to, delta
			}
		}
	}
	if bestFrom == -1 {
		return false, nil
	}

	return true, t.RelocateEdge(bestFrom, bestTo)
}
