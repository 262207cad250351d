// Package tsp - the genetic optimizer.
//
// GeneticOptimize evolves a fixed-size population of complete tours. Each
// generation samples SelectionPoolSize individuals without replacement, keeps
// the best SelectionKeepSize of them as parents, and refills the population
// with one elite copy of the best tour seen so far, the parents themselves,
// and operator-generated offspring. The best-ever tour is tracked across the
// whole run and is what the Result reports — a late bad generation can never
// lose an earlier champion.
//
// Determinism: all randomness derives from Options.Seed through three fixed
// substreams (population init, selection sampling, operator draws), so a rate
// change perturbs one concern without reshuffling the others. Same seed and
// options ⇒ identical evolution.
//
// Cancellation is checked between generations and stops the run gracefully:
// the best tour found so far is returned with a nil error.
package tsp

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"github.com/verlaine/tsproute/distmat"
)

// Substream identifiers for deriveRNG; fixed so runs stay reproducible across
// refactors.
const (
	gaStreamInit uint64 = iota + 1
	gaStreamSelect
	gaStreamOperators
)

// individual pairs an open tour permutation with its unrounded cycle cost.
type individual struct {
	order []int
	cost  float64
}

// GeneticOptimize runs the evolutionary search on m and returns the best tour
// found, closed and rotated to the resolved start city. Steps reports the
// number of completed generations.
//
// Contracts:
//   - opts is validated up front; Algo is ignored (this entry point is the
//     genetic solver by definition).
//   - Returns only configuration or invariant sentinels; cancellation is a
//     graceful stop, not an error.
//
// Complexity: O(MaxGenerations · PopulationSize · n) plus the sort cost of
// selection per generation.
func GeneticOptimize(ctx context.Context, m *distmat.Matrix, opts Options, obs Observer) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	opts.Algo = Genetic // direct callers get the genetic block validated too
	n := m.Order()
	if err := validateOptions(n, opts); err != nil {
		return Result{}, err
	}
	if obs == nil {
		obs = nopObserver{}
	}

	base := rngFromSeed(opts.Seed)
	start := opts.StartCity
	if start == RandomStart {
		start = base.Intn(n)
	}
	rngInit := deriveRNG(base, gaStreamInit)
	rngSel := deriveRNG(base, gaStreamSelect)
	rngOps := deriveRNG(base, gaStreamOperators)

	pop := make([]individual, opts.PopulationSize)
	best := individual{cost: math.Inf(1)}
	for i := range pop {
		order := randomPerm(n, rngInit)
		pop[i] = individual{order: order, cost: cycleCost(m, order)}
		best.track(pop[i])
	}

	generations := 0
	for gen := 1; gen <= opts.MaxGenerations; gen++ {
		if ctx.Err() != nil {
			break // graceful stop: best holds a complete valid tour
		}

		parents := selectParents(pop, opts.SelectionPoolSize, opts.SelectionKeepSize, rngSel)

		next := make([]individual, 0, opts.PopulationSize)
		next = append(next, best.clone()) // elitism
		for _, p := range parents {
			if len(next) == opts.PopulationSize {
				break
			}
			next = append(next, p.clone())
		}
		for len(next) < opts.PopulationSize {
			child := breed(m, parents, opts, rngOps)
			best.track(child)
			next = append(next, child)
		}
		pop = next

		generations = gen
		obs.OnStep(append([]int(nil), best.order...), round1e9(best.cost), gen)
	}

	t, err := NewTour(m, best.order)
	if err != nil {
		return Result{}, err
	}
	if math.Abs(cycleCost(m, best.order)-best.cost) > costDriftTol {
		return Result{}, ErrCostDrift
	}
	closed, err := t.Closed(start)
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: closed, Cost: t.Cost(), Steps: generations}, nil
}

// track replaces b with cand when cand is strictly cheaper, copying the order
// so later operator work cannot alias the champion.
func (b *individual) track(cand individual) {
	if cand.cost < b.cost {
		b.order = append([]int(nil), cand.order...)
		b.cost = cand.cost
	}
}

// clone returns an independent copy.
func (b individual) clone() individual {
	return individual{order: append([]int(nil), b.order...), cost: b.cost}
}

// selectParents samples pool individuals without replacement and returns the
// keep cheapest, ordered best-first. Cost ties keep the lower population
// index, so selection is fully determined by rng and the population.
func selectParents(pop []individual, pool, keep int, rng *rand.Rand) []individual {
	if pool > len(pop) {
		pool = len(pop)
	}
	if keep > pool {
		keep = pool
	}

	idx := rng.Perm(len(pop))[:pool]
	sort.Slice(idx, func(a, b int) bool {
		if pop[idx[a]].cost != pop[idx[b]].cost {
			return pop[idx[a]].cost < pop[idx[b]].cost
		}

		return idx[a] < idx[b]
	})

	parents := make([]individual, keep)
	for i := 0; i < keep; i++ {
		parents[i] = pop[idx[i]]
	}

	return parents
}

// breed produces one offspring from the parent pool: crossover with
// probability CrossoverRate (else a copy of the first drawn parent), then
// mutation with probability MutationRate.
func breed(m *distmat.Matrix, parents []individual, opts Options, rng *rand.Rand) individual {
	p1 := parents[rng.Intn(len(parents))]
	p2 := parents[rng.Intn(len(parents))]

	var order []int
	if rng.Float64() < opts.CrossoverRate {
		order = crossoverChild(opts.Crossover, p1.order, p2.order, rng)
	} else {
		order = append([]int(nil), p1.order...)
	}
	if rng.Float64() < opts.MutationRate {
		mutateOrder(opts.Mutation, order, rng)
	}

	return individual{order: order, cost: cycleCost(m, order)}
}
