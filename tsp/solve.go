// Package tsp - the Solve dispatcher and the exact-solver seam.
package tsp

import (
	"context"

	"github.com/verlaine/tsproute/distmat"
)

// Solve runs the algorithm selected by opts on m and returns the best tour
// found as a closed cycle rotated to the resolved start city.
//
// Routing:
//   - construction algorithms build one tour in n−1 steps (Steps == n−1);
//   - local-search algorithms improve a seeded random tour to a local optimum
//     (Steps == improving sweeps);
//   - Genetic delegates to GeneticOptimize (Steps == generations).
//
// Cancellation: construction returns the context error and no tour; local
// search and the genetic loop stop gracefully and return the current best.
//
// Contracts: m non-nil, opts fully validated before the first step; obs may
// be nil. Errors are the sentinel taxonomy of this package (wrapping
// ErrInvalidConfig or ErrInvariant) or a context error.
func Solve(ctx context.Context, m *distmat.Matrix, opts Options, obs Observer) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	n := m.Order()
	if err := validateOptions(n, opts); err != nil {
		return Result{}, err
	}

	// One base stream per call: the start-city draw (when requested) comes
	// first, then solver substreams derive from it.
	base := rngFromSeed(opts.Seed)
	start := opts.StartCity
	if start == RandomStart {
		start = base.Intn(n)
	}

	switch opts.Algo {
	case NearestNeighbor, NearestInsertion, CheapestInsertion, FarthestInsertion:
		builder := NearestNeighborTour
		switch opts.Algo {
		case NearestInsertion:
			builder = NearestInsertionTour
		case CheapestInsertion:
			builder = CheapestInsertionTour
		case FarthestInsertion:
			builder = FarthestInsertionTour
		}

		t, err := builder(ctx, m, start, obs)
		if err != nil {
			return Result{}, err
		}

		return finishRun(t, start, n-1)

	case PairwiseExchange, NodeInsertion, EdgeInsertion:
		improve := PairwiseExchangeOptimize
		switch opts.Algo {
		case NodeInsertion:
			improve = NodeInsertionOptimize
		case EdgeInsertion:
			improve = EdgeInsertionOptimize
		}

		t, err := RandomTour(m, base)
		if err != nil {
			return Result{}, err
		}
		sweeps, err := improve(ctx, t, opts.Eps, obs)
		if err != nil {
			return Result{}, err
		}

		return finishRun(t, start, sweeps)

	default: // Genetic; validation rejected everything else
		opts.StartCity = start // resolved once, here
		return GeneticOptimize(ctx, m, opts, obs)
	}
}

// finishRun converts a finished open tour into a Result rotated to start.
func finishRun(t *Tour, start, steps int) (Result, error) {
	closed, err := t.Closed(start)
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: closed, Cost: t.Cost(), Steps: steps}, nil
}

// ExactSolver is the seam for optimal solvers. Implementations live outside
// this package (see package heldkarp); the heuristics here never depend on
// one.
type ExactSolver interface {
	// SolveExact returns a provably optimal closed tour over m, or
	// ErrInfeasible when no Hamiltonian cycle exists. Implementations honor
	// ctx and report Steps == 0.
	SolveExact(ctx context.Context, m *distmat.Matrix) (Result, error)
}

// SolveExact delegates to s after the same model screening Solve performs, so
// exact and heuristic runs fail identically on bad input.
func SolveExact(ctx context.Context, m *distmat.Matrix, s ExactSolver) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	if s == nil {
		return Result{}, ErrNilSolver
	}

	return s.SolveExact(ctx, m)
}
