// Package tsp - the Tour data structure.
//
// A Tour is an ordered cycle over all cities: an open permutation of 0..n-1
// whose last city implicitly connects back to the first. Every mutating
// operation maintains the cached cycle cost incrementally — O(1) arithmetic
// for moves on symmetric models, O(segment) for asymmetric ones where the
// reversed interior arcs genuinely change — and preserves the permutation
// invariant. CheckCost recomputes from scratch and reports drift, which is
// how solvers detect their own bookkeeping bugs instead of silently
// returning a corrupted result.
//
// Ownership: a Tour is owned by exactly one component at a time. Clone gives
// an independent copy; Order and Closed return defensive copies.
package tsp

import (
	"math"

	"github.com/verlaine/tsproute/distmat"
)

// costDriftTol is the absolute tolerance used by CheckCost when comparing the
// incrementally maintained cost against a full recomputation.
const costDriftTol = 1e-6

// Tour is a cyclic permutation of all cities with a cached total cost.
type Tour struct {
	m     *distmat.Matrix
	order []int   // open permutation of 0..n-1; cycle closes order[n-1]→order[0]
	cost  float64 // incrementally maintained, unrounded
}

// NewTour builds a Tour from an explicit visiting order, copying the slice.
// Returns ErrNilModel or ErrNotPermutation on invalid input.
//
// Complexity: O(n).
func NewTour(m *distmat.Matrix, order []int) (*Tour, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := validatePermutation(order, m.Order()); err != nil {
		return nil, err
	}

	t := &Tour{m: m, order: make([]int, len(order))}
	copy(t.order, order)
	t.cost = cycleCost(m, t.order)

	return t, nil
}

// RandomTour builds a Tour from a seeded random permutation (genetic seeding
// and local-search starting points).
//
// Complexity: O(n).
func RandomTour(m *distmat.Matrix, rng randLite) (*Tour, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	n := m.Order()
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	// Fisher–Yates via the shim interface so substreams stay injectable.
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	t := &Tour{m: m, order: p}
	t.cost = cycleCost(m, p)

	return t, nil
}

// Len returns the number of cities.
func (t *Tour) Len() int { return len(t.order) }

// Cost returns the cached cycle cost, stabilized to 1e-9.
//
// Complexity: O(1).
func (t *Tour) Cost() float64 { return round1e9(t.cost) }

// City returns the city at position pos without bounds checks; pos must be
// in [0..n-1].
func (t *Tour) City(pos int) int { return t.order[pos] }

// Order returns a defensive copy of the open permutation.
func (t *Tour) Order() []int {
	out := make([]int, len(t.order))
	copy(out, t.order)

	return out
}

// Closed returns the closed form rotated to the requested start city:
// len == n+1, out[0] == out[n] == start.
//
// Complexity: O(n).
func (t *Tour) Closed(start int) ([]int, error) {
	n := len(t.order)
	pivot := -1
	for i := 0; i < n; i++ {
		if t.order[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrStartOutOfRange
	}

	out := make([]int, n+1)
	for i := 0; i < n; i++ {
		out[i] = t.order[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// Clone returns an independent deep copy sharing only the immutable model.
func (t *Tour) Clone() *Tour {
	cp := &Tour{m: t.m, order: make([]int, len(t.order)), cost: t.cost}
	copy(cp.order, t.order)

	return cp
}

// ReverseSegment reverses the positions i..k inclusive (the 2-opt move).
//
// Contract: 0 ≤ i < k ≤ n-1 and not the full wrap (i==0 && k==n-1), which
// would reverse the whole cycle.
//
// Complexity: O(1) cost update on symmetric models, O(k−i) otherwise;
// O(k−i) structural update.
func (t *Tour) ReverseSegment(i, k int) error {
	n := len(t.order)
	if i < 0 || k > n-1 || i >= k || (i == 0 && k == n-1) {
		return ErrPositionOutOfRange
	}

	t.cost += t.reverseDelta(i, k)
	for i < k {
		t.order[i], t.order[k] = t.order[k], t.order[i]
		i++
		k--
	}

	return nil
}

// reverseDelta evaluates the cost change of ReverseSegment(i, k) without
// mutating the tour. Bounds are the caller's responsibility.
//
// Symmetric models: only the two boundary edges change,
// Δ = d(a,c)+d(b,d) − d(a,b) − d(c,d) with a=prev(i), b=T[i], c=T[k], d=next(k).
// Asymmetric models additionally flip every interior arc, so those are
// re-summed explicitly.
func (t *Tour) reverseDelta(i, k int) float64 {
	n := len(t.order)
	a := t.order[(i-1+n)%n]
	b := t.order[i]
	c := t.order[k]
	d := t.order[(k+1)%n]

	delta := t.m.Distance(a, c) + t.m.Distance(b, d) -
		t.m.Distance(a, b) - t.m.Distance(c, d)
	if t.m.Symmetric() {
		return delta
	}

	// Interior arcs reverse direction: subtract forward, add backward.
	for p := i; p < k; p++ {
		delta -= t.m.Distance(t.order[p], t.order[p+1])
		delta += t.m.Distance(t.order[p+1], t.order[p])
	}

	return delta
}

// Relocate removes the city at position from and reinserts it so that it
// occupies position to of the resulting order (node-insertion move).
// from == to is a no-op with zero delta.
//
// Contract: from, to ∈ [0..n-1], n ≥ 2.
//
// Complexity: O(1) cost delta, O(n) structural update.
func (t *Tour) Relocate(from, to int) error {
	n := len(t.order)
	if from < 0 || from >= n || to < 0 || to >= n || n < 2 {
		return ErrPositionOutOfRange
	}

	t.cost += t.relocateDelta(from, to)
	c := t.order[from]
	copy(t.order[from:], t.order[from+1:]) // remove
	copy(t.order[to+1:], t.order[to:n-1])  // open the slot
	t.order[to] = c

	return nil
}

// relocateDelta evaluates the cost change of Relocate(from, to) without
// mutating the tour. Exact for asymmetric models too: no arc changes
// direction, only three are replaced.
func (t *Tour) relocateDelta(from, to int) float64 {
	n := len(t.order)
	c := t.order[from]
	p := t.order[(from-1+n)%n]
	nx := t.order[(from+1)%n]

	// Closing the gap left by c.
	delta := t.m.Distance(p, nx) - t.m.Distance(p, c) - t.m.Distance(c, nx)

	// Splicing c between its new neighbors u→v in the n-1 city remainder.
	u := t.remainderAt(from, (to-1+(n-1))%(n-1))
	v := t.remainderAt(from, to%(n-1))
	delta += t.m.Distance(u, c) + t.m.Distance(c, v) - t.m.Distance(u, v)

	return delta
}

// RelocateEdge moves the adjacent pair at positions (from, from+1) as a unit,
// preserving their internal arc; the pair starts at position to of the
// resulting order (edge-insertion move). from == to is a no-op.
//
// Contract: from ∈ [0..n-2], to ∈ [0..n-2], n ≥ 3. The wrapping pair
// (n-1, 0) is not addressable; sweeps enumerate non-wrapping pairs only.
//
// Complexity: O(1) cost delta, O(n) structural update.
func (t *Tour) RelocateEdge(from, to int) error {
	n := len(t.order)
	if n < 3 || from < 0 || from > n-2 || to < 0 || to > n-2 {
		return ErrPositionOutOfRange
	}

	t.cost += t.relocateEdgeDelta(from, to)
	c1, c2 := t.order[from], t.order[from+1]
	copy(t.order[from:], t.order[from+2:]) // remove both
	copy(t.order[to+2:], t.order[to:n-2])  // open a two-wide slot
	t.order[to] = c1
	t.order[to+1] = c2

	return nil
}

// relocateEdgeDelta evaluates the cost change of RelocateEdge(from, to)
// without mutating the tour. The internal arc c1→c2 survives the move, so
// exactly three arcs are replaced — exact for asymmetric models.
func (t *Tour) relocateEdgeDelta(from, to int) float64 {
	n := len(t.order)
	c1 := t.order[from]
	c2 := t.order[from+1]
	p := t.order[(from-1+n)%n]
	nx := t.order[(from+2)%n]

	delta := t.m.Distance(p, nx) - t.m.Distance(p, c1) - t.m.Distance(c2, nx)

	// Neighbors of the insertion slot in the n-2 city remainder.
	r := n - 2
	u := t.edgeRemainderAt(from, (to-1+r)%r)
	v := t.edgeRemainderAt(from, to%r)
	delta += t.m.Distance(u, c1) + t.m.Distance(c2, v) - t.m.Distance(u, v)

	return delta
}

// remainderAt indexes the order as if the city at position removed were
// absent: j addresses the n-1 remaining cities in tour order.
func (t *Tour) remainderAt(removed, j int) int {
	if j < removed {
		return t.order[j]
	}

	return t.order[j+1]
}

// edgeRemainderAt is remainderAt for a removed adjacent pair at positions
// (removed, removed+1): j addresses the n-2 remaining cities.
func (t *Tour) edgeRemainderAt(removed, j int) int {
	if j < removed {
		return t.order[j]
	}

	return t.order[j+2]
}

// CheckCost verifies the permutation invariant and recomputes the cycle cost
// from scratch, returning ErrNotPermutation or ErrCostDrift on divergence.
// Solvers call it at run boundaries; any failure is an internal bug and
// halts the run.
//
// Complexity: O(n).
func (t *Tour) CheckCost() error {
	if err := validatePermutation(t.order, t.m.Order()); err != nil {
		return err
	}
	if math.Abs(cycleCost(t.m, t.order)-t.cost) > costDriftTol {
		return ErrCostDrift
	}

	return nil
}

// validatePermutation checks that order is a permutation of {0..n-1} of
// length n. Returns ErrNotPermutation otherwise.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(order []int, n int) error {
	if len(order) != n || n <= 0 {
		return ErrNotPermutation
	}

	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// randLite is the tiny RNG shim used where only Intn is needed; satisfied by
// *math/rand.Rand and by deterministic test doubles.
type randLite interface {
	Intn(n int) int
}
