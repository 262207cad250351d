// Package tsp_test provides lightweight helpers shared across the *_test.go
// files in this package: deterministic instance generators, cycle
// normalization, and strict sentinel/slice assertions.
package tsp_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/verlaine/tsproute/distmat"
	"github.com/verlaine/tsproute/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny matches tsp.DefaultEps: strict threshold to accept improvements.
	epsTiny = 1e-12

	// seedDet is the deterministic seed used wherever an RNG participates.
	seedDet = int64(42)

	// startV is the canonical start city used for normalization.
	startV = 0
)

// -----------------------------------------------------------------------------
// Instance generators (deterministic)
// -----------------------------------------------------------------------------

// mustMatrix builds a validated model from raw cells or fails the test.
func mustMatrix(t *testing.T, cells [][]float64) *distmat.Matrix {
	t.Helper()
	m, err := distmat.New(cells)
	if err != nil {
		t.Fatalf("distmat.New failed: %v", err)
	}

	return m
}

// mustPoints builds a Euclidean model from 2D coordinates or fails the test.
func mustPoints(t *testing.T, pts [][2]float64) *distmat.Matrix {
	t.Helper()
	m, err := distmat.FromPoints(pts)
	if err != nil {
		t.Fatalf("distmat.FromPoints failed: %v", err)
	}

	return m
}

// ringMetric builds the circular metric d(i,j) = min(|i-j|, n-|i-j|).
// The unique optimal cycle walks the ring in order, total cost n.
func ringMetric(t *testing.T, n int) *distmat.Matrix {
	t.Helper()
	cells := make([][]float64, n)
	for i := 0; i < n; i++ {
		cells[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			diff := i - j
			if diff < 0 {
				diff = -diff
			}
			if n-diff < diff {
				diff = n - diff
			}
			cells[i][j] = float64(diff)
		}
	}

	return mustMatrix(t, cells)
}

// circlePoints places n cities evenly on the unit circle; the optimal tour is
// the polygon boundary in index order.
func circlePoints(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(th), math.Sin(th)}
	}

	return pts
}

// asymShift builds the directed metric d(i,j) = base[i][j] + bias for i > j,
// breaking symmetry while keeping distances positive.
func asymShift(t *testing.T, base [][]float64, bias float64) *distmat.Matrix {
	t.Helper()
	n := len(base)
	cells := make([][]float64, n)
	for i := 0; i < n; i++ {
		cells[i] = append([]float64(nil), base[i]...)
		for j := 0; j < n; j++ {
			if i > j {
				cells[i][j] += bias
			}
		}
	}

	return mustMatrix(t, cells)
}

// -----------------------------------------------------------------------------
// Cycle normalization and assertions
// -----------------------------------------------------------------------------

// openCycle strips the closing city from a closed tour (len n+1) and returns
// the open form; open input passes through.
func openCycle(tour []int) []int {
	if len(tour) >= 2 && tour[0] == tour[len(tour)-1] {
		return tour[:len(tour)-1]
	}

	return tour
}

// sameCycleEitherDir reports whether two tours describe the same cycle up to
// orientation; both must start at the same city. Accepts open or closed input.
func sameCycleEitherDir(a, b []int) bool {
	a = openCycle(a)
	b = openCycle(b)
	if len(a) == 0 || len(a) != len(b) || a[0] != b[0] {
		return false
	}
	if slices.Equal(a, b) {
		return true
	}

	n := len(a)
	rev := make([]int, n)
	rev[0] = a[0]
	for i := 1; i < n; i++ {
		rev[i] = a[n-i]
	}

	return slices.Equal(rev, b)
}

// mustClosedTour asserts the closed-tour shape: len n+1, first==last==start,
// and the open part a permutation of 0..n-1.
func mustClosedTour(t *testing.T, tour []int, n, start int) {
	t.Helper()
	if len(tour) != n+1 {
		t.Fatalf("closed tour length: got %d, want %d", len(tour), n+1)
	}
	if tour[0] != start || tour[n] != start {
		t.Fatalf("closed tour endpoints: got %d..%d, want %d..%d", tour[0], tour[n], start, start)
	}
	seen := make([]bool, n)
	for _, c := range tour[:n] {
		if c < 0 || c >= n || seen[c] {
			t.Fatalf("closed tour is not a permutation: %v", tour)
		}
		seen[c] = true
	}
}

// mustEqualInts asserts exact equality of two integer slices.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustFloatClose asserts |got−want| ≤ abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.12f want=%.12f (abs=%.1e)", got, want, abs)
	}
}

// tourCost recomputes the cycle cost of an open or closed tour against m.
func tourCost(m *distmat.Matrix, tour []int) float64 {
	open := openCycle(tour)
	var sum float64
	for i := 0; i < len(open); i++ {
		sum += m.Distance(open[i], open[(i+1)%len(open)])
	}

	return sum
}

// countingObserver records every OnStep invocation.
type countingObserver struct {
	steps []int
	tours [][]int
	costs []float64
}

func (o *countingObserver) OnStep(tour []int, cost float64, step int) {
	o.steps = append(o.steps, step)
	o.tours = append(o.tours, tour)
	o.costs = append(o.costs, cost)
}

var _ tsp.Observer = (*countingObserver)(nil)
