// Package distmat provides the immutable pairwise-distance model consumed by
// the tsp solvers.
//
// A Matrix is built exactly once from raw cells or from 2D city coordinates,
// validated up-front, and never mutated afterwards. Because of that it is safe
// to share a single *Matrix across any number of concurrent optimization runs
// without locking.
//
// Design:
//   - Row-major flat storage for cache-friendly reads in hot loops.
//   - Strict construction-time validation; only sentinel errors from errors.go.
//   - Distance() trusts construction invariants and performs no checks;
//     At() is the bounds-checked variant for callers holding user input.
package distmat

import "math"

// Matrix is an immutable n×n distance lookup over city indices 0..n-1.
// The zero value is not usable; always construct via New or FromPoints.
type Matrix struct {
	n     int       // number of cities
	cells []float64 // flat row-major storage, length n*n
	sym   bool      // symmetry within symTol, fixed at construction
}

// symTol is the structural tolerance used to classify a model as symmetric
// at construction time. Independent from any solver acceptance epsilon.
const symTol = 1e-12

// New builds a Matrix from raw cells, copying them into flat storage.
//
// Validation (in order): non-empty, square, finite, non-negative, zero diagonal.
// Asymmetric inputs are accepted: cells[i][j] need not equal cells[j][i].
//
// Complexity: O(n²) time and space.
func New(cells [][]float64) (*Matrix, error) {
	n := len(cells)
	if n == 0 {
		return nil, ErrEmpty
	}

	m := &Matrix{n: n, cells: make([]float64, n*n)}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(cells[i]) != n {
			return nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			v = cells[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNotFinite
			}
			if v < 0 {
				return nil, ErrNegativeDistance
			}
			if i == j && v != 0 {
				return nil, ErrNonZeroDiagonal
			}
			m.cells[i*n+j] = v
		}
	}
	m.sym = m.IsSymmetric(symTol)

	return m, nil
}

// FromPoints builds a symmetric Euclidean Matrix from 2D city coordinates.
// pts[i] is the coordinate of city i; the resulting model satisfies
// Distance(i,j) == Distance(j,i) and a zero diagonal by construction.
//
// Complexity: O(n²) time and space.
func FromPoints(pts [][2]float64) (*Matrix, error) {
	n := len(pts)
	if n == 0 {
		return nil, ErrEmpty
	}

	m := &Matrix{n: n, cells: make([]float64, n*n)}
	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			// Hypot is a numerically stable sqrt(dx²+dy²).
			d = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			m.cells[i*n+j] = d
			m.cells[j*n+i] = d
		}
	}
	m.sym = true // Euclidean metric is symmetric by construction

	return m, nil
}

// Order returns the number of cities n.
//
// Complexity: O(1).
func (m *Matrix) Order() int { return m.n }

// Distance returns the distance from city i to city j without bounds checks.
// Both indices must be in [0..n-1]; construction guarantees the value is
// finite and non-negative.
//
// Complexity: O(1).
func (m *Matrix) Distance(i, j int) float64 { return m.cells[i*m.n+j] }

// At is the bounds-checked variant of Distance for callers that hold
// unvalidated indices. Returns ErrIndexOutOfRange on violation.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfRange
	}

	return m.cells[i*m.n+j], nil
}

// Symmetric reports whether the model was classified symmetric at
// construction (|d(i,j)−d(j,i)| ≤ 1e-12 for all pairs). Solvers use this to
// pick O(1) versus O(segment) cost-delta formulas; both remain exact.
//
// Complexity: O(1).
func (m *Matrix) Symmetric() bool { return m.sym }

// IsSymmetric reports whether |d(i,j)−d(j,i)| ≤ tol for all pairs.
// Heuristics that assume a symmetric instance may use this as a precondition;
// the solvers themselves accept asymmetric models.
//
// Complexity: O(n²).
func (m *Matrix) IsSymmetric(tol float64) bool {
	var (
		i, j int
		diff float64
	)
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			diff = m.cells[i*m.n+j] - m.cells[j*m.n+i]
			if diff < 0 {
				diff = -diff
			}
			if diff > tol {
				return false
			}
		}
	}

	return true
}

// Clone returns an independent deep copy. Rarely needed given immutability;
// provided for callers that build perturbed variants of an instance.
//
// Complexity: O(n²).
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{n: m.n, cells: make([]float64, len(m.cells)), sym: m.sym}
	copy(cp.cells, m.cells)

	return cp
}
