// Package tsp_test exercises the Tour data structure: construction
// invariants, closed-form rotation, and — most importantly — agreement of
// every incremental cost delta with a from-scratch recomputation, on
// symmetric and asymmetric models alike.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/verlaine/tsproute/tsp"
)

// -----------------------------------------------------------------------------
// Construction
// -----------------------------------------------------------------------------

func TestNewTour_Validation(t *testing.T) {
	m := ringMetric(t, 5)

	if _, err := tsp.NewTour(nil, []int{0, 1, 2, 3, 4}); err == nil {
		t.Fatal("nil model accepted")
	} else {
		mustErrIs(t, err, tsp.ErrNilModel)
		mustErrIs(t, err, tsp.ErrInvalidConfig)
	}

	bad := [][]int{
		{0, 1, 2, 3},          // too short
		{0, 1, 2, 3, 3},       // duplicate
		{0, 1, 2, 3, 5},       // out of range
		{0, 1, 2, 3, 4, 0},    // closed form is not accepted here
		{-1, 1, 2, 3, 4},      // negative
	}
	for _, order := range bad {
		_, err := tsp.NewTour(m, order)
		mustErrIs(t, err, tsp.ErrNotPermutation)
		mustErrIs(t, err, tsp.ErrInvariant)
	}
}

func TestNewTour_CopiesInputAndComputesCost(t *testing.T) {
	m := ringMetric(t, 5)
	order := []int{0, 1, 2, 3, 4}

	tour, err := tsp.NewTour(m, order)
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}
	mustFloatClose(t, tour.Cost(), 5, 1e-9) // ring walked in order costs n

	order[0] = 99 // mutating the input must not reach the tour
	mustEqualInts(t, tour.Order(), []int{0, 1, 2, 3, 4})
	if err = tour.CheckCost(); err != nil {
		t.Fatalf("CheckCost after input mutation: %v", err)
	}
}

func TestTour_ClosedRotation(t *testing.T) {
	m := ringMetric(t, 5)
	tour, err := tsp.NewTour(m, []int{2, 3, 4, 0, 1})
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	closed, err := tour.Closed(0)
	if err != nil {
		t.Fatalf("Closed failed: %v", err)
	}
	mustEqualInts(t, closed, []int{0, 1, 2, 3, 4, 0})

	closed, err = tour.Closed(3)
	if err != nil {
		t.Fatalf("Closed failed: %v", err)
	}
	mustEqualInts(t, closed, []int{3, 4, 0, 1, 2, 3})

	_, err = tour.Closed(7)
	mustErrIs(t, err, tsp.ErrStartOutOfRange)
}

func TestTour_CloneIndependence(t *testing.T) {
	m := ringMetric(t, 6)
	tour, err := tsp.NewTour(m, []int{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	cp := tour.Clone()
	if err = cp.ReverseSegment(1, 4); err != nil {
		t.Fatalf("ReverseSegment on clone failed: %v", err)
	}
	mustEqualInts(t, tour.Order(), []int{0, 1, 2, 3, 4, 5}) // original untouched
	if err = cp.CheckCost(); err != nil {
		t.Fatalf("clone CheckCost: %v", err)
	}
}

// -----------------------------------------------------------------------------
// Incremental deltas vs. full recomputation
// -----------------------------------------------------------------------------

func TestReverseSegment_MatchesRecompute_Symmetric(t *testing.T) {
	m := mustPoints(t, circlePoints(7))
	tour, err := tsp.NewTour(m, []int{3, 0, 5, 1, 6, 2, 4})
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	n := tour.Len()
	for i := 0; i < n-1; i++ {
		for k := i + 1; k < n; k++ {
			if i == 0 && k == n-1 {
				continue // excluded by contract
			}
			cp := tour.Clone()
			if err = cp.ReverseSegment(i, k); err != nil {
				t.Fatalf("ReverseSegment(%d,%d) failed: %v", i, k, err)
			}
			mustFloatClose(t, cp.Cost(), tourCost(m, cp.Order()), 1e-9)
		}
	}
}

func TestReverseSegment_MatchesRecompute_Asymmetric(t *testing.T) {
	base := [][]float64{
		{0, 3, 1, 8, 4, 6},
		{3, 0, 5, 2, 7, 1},
		{1, 5, 0, 4, 2, 9},
		{8, 2, 4, 0, 3, 5},
		{4, 7, 2, 3, 0, 2},
		{6, 1, 9, 5, 2, 0},
	}
	m := asymShift(t, base, 0.25)
	if m.Symmetric() {
		t.Fatal("instance unexpectedly symmetric")
	}

	tour, err := tsp.NewTour(m, []int{5, 2, 0, 4, 1, 3})
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}
	n := tour.Len()
	for i := 0; i < n-1; i++ {
		for k := i + 1; k < n; k++ {
			if i == 0 && k == n-1 {
				continue
			}
			cp := tour.Clone()
			if err = cp.ReverseSegment(i, k); err != nil {
				t.Fatalf("ReverseSegment(%d,%d) failed: %v", i, k, err)
			}
			mustFloatClose(t, cp.Cost(), tourCost(m, cp.Order()), 1e-9)
		}
	}
}

func TestReverseSegment_Bounds(t *testing.T) {
	m := ringMetric(t, 5)
	tour, err := tsp.NewTour(m, []int{0, 1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	cases := [][2]int{{-1, 2}, {2, 5}, {3, 3}, {3, 1}, {0, 4}} // last is the full wrap
	for _, c := range cases {
		mustErrIs(t, tour.ReverseSegment(c[0], c[1]), tsp.ErrPositionOutOfRange)
	}
	mustEqualInts(t, tour.Order(), []int{0, 1, 2, 3, 4}) // rejected moves mutate nothing
}

func TestRelocate_MatchesRecompute_AllPairs(t *testing.T) {
	base := [][]float64{
		{0, 3, 1, 8, 4, 6},
		{3, 0, 5, 2, 7, 1},
		{1, 5, 0, 4, 2, 9},
		{8, 2, 4, 0, 3, 5},
		{4, 7, 2, 3, 0, 2},
		{6, 1, 9, 5, 2, 0},
	}
	m := asymShift(t, base, 0.25)

	n := 6
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			tour, err := tsp.NewTour(m, []int{5, 2, 0, 4, 1, 3})
			if err != nil {
				t.Fatalf("NewTour failed: %v", err)
			}
			if err = tour.Relocate(from, to); err != nil {
				t.Fatalf("Relocate(%d,%d) failed: %v", from, to, err)
			}
			if err = tour.CheckCost(); err != nil {
				t.Fatalf("Relocate(%d,%d) drift: %v", from, to, err)
			}
		}
	}
}

func TestRelocate_Structure(t *testing.T) {
	m := ringMetric(t, 5)
	tour, err := tsp.NewTour(m, []int{0, 1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	// Move the city at position 1 so it ends up at position 3.
	if err = tour.Relocate(1, 3); err != nil {
		t.Fatalf("Relocate failed: %v", err)
	}
	mustEqualInts(t, tour.Order(), []int{0, 2, 3, 1, 4})

	mustErrIs(t, tour.Relocate(5, 0), tsp.ErrPositionOutOfRange)
	mustErrIs(t, tour.Relocate(0, -1), tsp.ErrPositionOutOfRange)
}

func TestRelocateEdge_MatchesRecompute_AllPairs(t *testing.T) {
	base := [][]float64{
		{0, 3, 1, 8, 4, 6},
		{3, 0, 5, 2, 7, 1},
		{1, 5, 0, 4, 2, 9},
		{8, 2, 4, 0, 3, 5},
		{4, 7, 2, 3, 0, 2},
		{6, 1, 9, 5, 2, 0},
	}
	m := asymShift(t, base, 0.25)

	n := 6
	for from := 0; from < n-1; from++ {
		for to := 0; to < n-1; to++ {
			tour, err := tsp.NewTour(m, []int{5, 2, 0, 4, 1, 3})
			if err != nil {
				t.Fatalf("NewTour failed: %v", err)
			}
			if err = tour.RelocateEdge(from, to); err != nil {
				t.Fatalf("RelocateEdge(%d,%d) failed: %v", from, to, err)
			}
			if err = tour.CheckCost(); err != nil {
				t.Fatalf("RelocateEdge(%d,%d) drift: %v", from, to, err)
			}
		}
	}
}

func TestRelocateEdge_Structure(t *testing.T) {
	m := ringMetric(t, 6)
	tour, err := tsp.NewTour(m, []int{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	// Move the pair (1,2) so it starts at position 3 of the result.
	if err = tour.RelocateEdge(1, 3); err != nil {
		t.Fatalf("RelocateEdge failed: %v", err)
	}
	mustEqualInts(t, tour.Order(), []int{0, 3, 4, 1, 2, 5})

	mustErrIs(t, tour.RelocateEdge(5, 0), tsp.ErrPositionOutOfRange) // pair would wrap
	mustErrIs(t, tour.RelocateEdge(0, 5), tsp.ErrPositionOutOfRange)
}

// -----------------------------------------------------------------------------
// Long random mutation sequences keep the invariants
// -----------------------------------------------------------------------------

func TestTour_RandomMoveSequence_NoDrift(t *testing.T) {
	base := [][]float64{
		{0, 3, 1, 8, 4, 6, 2},
		{3, 0, 5, 2, 7, 1, 4},
		{1, 5, 0, 4, 2, 9, 3},
		{8, 2, 4, 0, 3, 5, 7},
		{4, 7, 2, 3, 0, 2, 1},
		{6, 1, 9, 5, 2, 0, 8},
		{2, 4, 3, 7, 1, 8, 0},
	}
	m := asymShift(t, base, 0.5)
	tour, err := tsp.NewTour(m, []int{0, 1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewTour failed: %v", err)
	}

	rng := rand.New(rand.NewSource(seedDet))
	n := tour.Len()
	for step := 0; step < 500; step++ {
		switch rng.Intn(3) {
		case 0:
			i := rng.Intn(n - 1)
			k := i + 1 + rng.Intn(n-1-i)
			if i == 0 && k == n-1 {
				continue
			}
			err = tour.ReverseSegment(i, k)
		case 1:
			err = tour.Relocate(rng.Intn(n), rng.Intn(n))
		default:
			err = tour.RelocateEdge(rng.Intn(n-1), rng.Intn(n-1))
		}
		if err != nil {
			t.Fatalf("move %d failed: %v", step, err)
		}
	}
	if err = tour.CheckCost(); err != nil {
		t.Fatalf("drift after random sequence: %v", err)
	}
}
