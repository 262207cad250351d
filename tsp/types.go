// Package tsp - public types, enums and sentinel errors.
//
// Operator and algorithm choices are closed enum sets: the dispatcher switches
// over them exhaustively, so adding a variant is a compile-time-checked
// extension rather than a runtime string match.
package tsp

import (
	"errors"
	"fmt"
)

// Algorithm selects the solver family executed by Solve.
type Algorithm uint8

const (
	// NearestNeighbor appends the closest unvisited city to the current endpoint.
	NearestNeighbor Algorithm = iota
	// NearestInsertion inserts the city closest to the partial tour next to its
	// nearest in-tour neighbor.
	NearestInsertion
	// CheapestInsertion inserts the (city, edge) pair with the smallest length increase.
	CheapestInsertion
	// FarthestInsertion inserts the city farthest from the partial tour at its
	// cheapest position.
	FarthestInsertion
	// PairwiseExchange is 2-opt local search from a seeded random tour.
	PairwiseExchange
	// NodeInsertion relocates single cities until no relocation improves the tour.
	NodeInsertion
	// EdgeInsertion relocates adjacent city pairs as a unit.
	EdgeInsertion
	// Genetic evolves a population of random tours across generations.
	Genetic
)

// String returns the stable lowercase name used in logs and test output.
func (a Algorithm) String() string {
	switch a {
	case NearestNeighbor:
		return "nearest_neighbor"
	case NearestInsertion:
		return "nearest_insertion"
	case CheapestInsertion:
		return "cheapest_insertion"
	case FarthestInsertion:
		return "farthest_insertion"
	case PairwiseExchange:
		return "pairwise_exchange"
	case NodeInsertion:
		return "node_insertion"
	case EdgeInsertion:
		return "edge_insertion"
	case Genetic:
		return "genetic"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// CrossoverOp selects the genetic crossover operator.
type CrossoverOp uint8

const (
	// OrderCrossover (OX) keeps a segment of one parent and fills the rest in
	// the other parent's cyclic order.
	OrderCrossover CrossoverOp = iota
	// MaximalPreservative (MPX) transplants a bounded segment and appends the
	// remaining cities in the second parent's order.
	MaximalPreservative
	// PartiallyMapped (PMX) copies a segment and resolves conflicts through the
	// induced position mapping.
	PartiallyMapped
)

// MutationOp selects the genetic mutation operator.
type MutationOp uint8

const (
	// SwapMutation exchanges two random positions.
	SwapMutation MutationOp = iota
	// DisplacementMutation cuts a random segment and reinserts it elsewhere.
	DisplacementMutation
	// InsertionMutation moves a single random city to another position.
	InsertionMutation
)

// RandomStart requests a start city drawn from the seeded RNG instead of a
// fixed index. Runs stay reproducible for a fixed Options.Seed.
const RandomStart = -1

// DefaultEps is the strict-improvement tolerance: local search accepts a move
// only when Δ < −eps. A zero or tiny positive eps rules out equal-cost moves
// and with them any oscillation.
const DefaultEps = 1e-12

// Options configures a single optimization run. The zero value is not valid;
// start from DefaultOptions.
type Options struct {
	// Algo selects the solver family.
	Algo Algorithm

	// StartCity fixes the tour start for construction heuristics and the
	// rotation of the returned tour. RandomStart draws it from the seeded RNG.
	StartCity int

	// Seed drives every stochastic component. Seed 0 selects a fixed default
	// stream, so default runs are reproducible too.
	Seed int64

	// Eps is the strict-improvement tolerance for local search (Δ < −Eps).
	Eps float64

	// PopulationSize is the fixed number of individuals per generation (genetic only).
	PopulationSize int

	// SelectionPoolSize individuals are sampled without replacement each
	// generation; the best SelectionKeepSize of them become parents.
	SelectionPoolSize int
	SelectionKeepSize int

	// CrossoverRate and MutationRate are probabilities in [0,1] applied per
	// offspring (genetic only).
	CrossoverRate float64
	MutationRate  float64

	// Crossover and Mutation pick the operators used for every mating and
	// mutation event.
	Crossover CrossoverOp
	Mutation  MutationOp

	// MaxGenerations bounds the genetic run; cancellation may stop it earlier.
	MaxGenerations int
}

// DefaultOptions returns the canonical configuration: nearest-neighbor from
// city 0, strict eps, and the classic genetic parameters (population 50,
// pool 30 / keep 10, 50% crossover and mutation, 100 generations).
func DefaultOptions() Options {
	return Options{
		Algo:              NearestNeighbor,
		StartCity:         0,
		Seed:              0,
		Eps:               DefaultEps,
		PopulationSize:    50,
		SelectionPoolSize: 30,
		SelectionKeepSize: 10,
		CrossoverRate:     0.5,
		MutationRate:      0.5,
		Crossover:         OrderCrossover,
		Mutation:          SwapMutation,
		MaxGenerations:    100,
	}
}

// Result is the outcome of an optimization run.
type Result struct {
	// Tour is the closed cycle of city indices: len == n+1, Tour[0] == Tour[n].
	Tour []int

	// Cost is the total cycle length, stabilized to 1e-9.
	Cost float64

	// Steps counts the discrete units of work performed: construction steps,
	// local-search sweeps, or generations. Exact solvers report 0.
	Steps int
}

// --- Sentinel errors -------------------------------------------------------
//
// Three failure classes exist (none is transient): malformed models surface
// from package distmat as ErrInvalidInput, configuration problems wrap
// ErrInvalidConfig, and internal bookkeeping divergence wraps ErrInvariant.

// ErrInvalidConfig is the base class for every configuration failure. All
// checks run before the first algorithm step.
var ErrInvalidConfig = errors.New("tsp: invalid configuration")

var (
	// ErrNilModel is returned when no distance model is supplied.
	ErrNilModel = fmt.Errorf("%w: nil distance model", ErrInvalidConfig)

	// ErrUnsupportedAlgorithm is returned for an Algorithm outside the known set.
	ErrUnsupportedAlgorithm = fmt.Errorf("%w: unsupported algorithm", ErrInvalidConfig)

	// ErrStartOutOfRange is returned when StartCity is neither RandomStart nor in [0..n-1].
	ErrStartOutOfRange = fmt.Errorf("%w: start city out of range", ErrInvalidConfig)

	// ErrEpsNegative is returned for a negative improvement tolerance.
	ErrEpsNegative = fmt.Errorf("%w: negative eps", ErrInvalidConfig)

	// ErrRateOutOfRange is returned when a crossover/mutation rate leaves [0,1].
	ErrRateOutOfRange = fmt.Errorf("%w: rate outside [0,1]", ErrInvalidConfig)

	// ErrPopulationSize is returned for a population smaller than two individuals.
	ErrPopulationSize = fmt.Errorf("%w: population size too small", ErrInvalidConfig)

	// ErrSelectionSizes is returned when pool/keep sizes are non-positive,
	// keep exceeds pool, or pool exceeds the population.
	ErrSelectionSizes = fmt.Errorf("%w: inconsistent selection sizes", ErrInvalidConfig)

	// ErrMaxGenerations is returned for a non-positive generation bound.
	ErrMaxGenerations = fmt.Errorf("%w: non-positive generation count", ErrInvalidConfig)

	// ErrUnknownOperator is returned for a crossover/mutation operator outside
	// the closed enum sets.
	ErrUnknownOperator = fmt.Errorf("%w: unknown operator", ErrInvalidConfig)

	// ErrNilSolver is returned by SolveExact when no ExactSolver is supplied.
	ErrNilSolver = fmt.Errorf("%w: nil exact solver", ErrInvalidConfig)
)

// ErrInvariant is the base class for internal-bug conditions. Detecting one
// halts the run instead of continuing with a corrupted tour.
var ErrInvariant = errors.New("tsp: invariant violated")

var (
	// ErrNotPermutation is returned when a tour is not a permutation of 0..n-1.
	ErrNotPermutation = fmt.Errorf("%w: tour is not a permutation", ErrInvariant)

	// ErrCostDrift is returned when the incrementally maintained cost diverges
	// from a full recomputation.
	ErrCostDrift = fmt.Errorf("%w: cached cost diverged from recomputation", ErrInvariant)
)

// ErrPositionOutOfRange is returned by Tour mutators for indices outside the
// documented bounds. Programmer error, not a configuration problem.
var ErrPositionOutOfRange = errors.New("tsp: position out of range")

// ErrInfeasible is returned by exact solvers when no Hamiltonian cycle exists.
var ErrInfeasible = errors.New("tsp: no feasible tour")
