// Package heldkarp provides an exact TSP solver via the Held–Karp
// dynamic-programming algorithm, exposed through the tsp.ExactSolver seam.
//
// dp[mask][j] is the minimum cost of starting at city 0, visiting exactly
// the cities in mask (which always contains bit 0), and ending at j. Filling
// all masks costs O(n²·2ⁿ) time and O(n·2ⁿ) memory, which is why Solver
// enforces a hard order cap: beyond ~20 cities the tables stop fitting in
// reasonable memory, and refusing up front beats thrashing.
//
// Determinism: ties in dp relaxation keep the first (lowest-index)
// predecessor, so the reconstructed tour is stable across runs.
package heldkarp

import (
	"context"
	"fmt"
	"math"

	"github.com/verlaine/tsproute/distmat"
	"github.com/verlaine/tsproute/tsp"
)

// DefaultMaxOrder caps the instance size accepted by a zero-value Solver.
// 20 cities ⇒ dp tables of 20·2²⁰ float64 ≈ 168 MB, the practical ceiling.
const DefaultMaxOrder = 20

// ErrTooLarge is returned when the model order exceeds the solver's cap. It
// wraps tsp.ErrInvalidConfig: the instance, not the solver, is at fault.
var ErrTooLarge = fmt.Errorf("%w: instance too large for exact solver", tsp.ErrInvalidConfig)

// Solver is an exact TSP solver. The zero value is ready to use with
// DefaultMaxOrder.
type Solver struct {
	// MaxOrder overrides the instance-size cap when positive.
	MaxOrder int
}

// SolveExact implements tsp.ExactSolver: it returns a provably optimal
// closed tour rotated to city 0, with Steps == 0.
//
// Models with +Inf entries are treated as missing arcs; when no Hamiltonian
// cycle exists the result is tsp.ErrInfeasible. The context is checked once
// per subset-size block, so cancellation aborts within O(n²·C(n,s)) work.
func (s *Solver) SolveExact(ctx context.Context, m *distmat.Matrix) (tsp.Result, error) {
	if m == nil {
		return tsp.Result{}, tsp.ErrNilModel
	}
	n := m.Order()
	maxOrder := s.MaxOrder
	if maxOrder <= 0 {
		maxOrder = DefaultMaxOrder
	}
	if n > maxOrder {
		return tsp.Result{}, ErrTooLarge
	}
	if n == 1 {
		return tsp.Result{Tour: []int{0, 0}, Cost: 0, Steps: 0}, nil
	}

	allMask := (1 << n) - 1
	dp := make([][]float64, 1<<n)
	parent := make([][]int, 1<<n)
	for mask := 0; mask <= allMask; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := 0; j < n; j++ {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	const startMask = 1 << 0
	dp[startMask][0] = 0

	for mask := startMask; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return tsp.Result{}, err
		}
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask := mask ^ (1 << j)
			for k := 0; k < n; k++ {
				if prevMask&(1<<k) == 0 {
					continue
				}
				c := m.Distance(k, j)
				if math.IsInf(c, 1) {
					continue // missing arc
				}
				if cand := dp[prevMask][k] + c; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// Close the cycle back to city 0.
	bestCost := math.Inf(1)
	last := -1
	for j := 1; j < n; j++ {
		c := m.Distance(j, 0)
		if math.IsInf(c, 1) {
			continue
		}
		if total := dp[allMask][j] + c; total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 || math.IsInf(bestCost, 1) {
		return tsp.Result{}, tsp.ErrInfeasible
	}

	// Walk the parent table backwards from the winning endpoint.
	tour := make([]int, n+1)
	tour[n] = 0
	mask := allMask
	j := last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}
	tour[0] = 0

	return tsp.Result{Tour: tour, Cost: round1e9(bestCost), Steps: 0}, nil
}

// round1e9 mirrors the heuristic packages' cost stabilization so exact and
// heuristic costs compare bit-for-bit in tests.
func round1e9(x float64) float64 {
	const scale = 1e9

	return math.Round(x*scale) / scale
}
