// Package tsp - configuration validation.
//
// Every check runs before the first algorithm step (spec class
// InvalidConfigurationError): a run either starts with a fully consistent
// configuration or not at all. Only sentinel errors from types.go are
// returned; all of them wrap ErrInvalidConfig.
package tsp

// validateOptions verifies opts against a model of n cities.
//
// Stages: algorithm enum → start city → eps → genetic block (rates, sizes,
// operators) when Algo == Genetic.
//
// Complexity: O(1).
func validateOptions(n int, opts Options) error {
	switch opts.Algo {
	case NearestNeighbor, NearestInsertion, CheapestInsertion, FarthestInsertion,
		PairwiseExchange, NodeInsertion, EdgeInsertion, Genetic:
		// known
	default:
		return ErrUnsupportedAlgorithm
	}

	if opts.StartCity != RandomStart && (opts.StartCity < 0 || opts.StartCity >= n) {
		return ErrStartOutOfRange
	}

	// A negative eps would invert the acceptance rule Δ < −eps and with it the
	// termination guarantee of local search.
	if opts.Eps < 0 {
		return ErrEpsNegative
	}

	if opts.Algo != Genetic {
		return nil
	}

	if opts.CrossoverRate < 0 || opts.CrossoverRate > 1 ||
		opts.MutationRate < 0 || opts.MutationRate > 1 {
		return ErrRateOutOfRange
	}
	if opts.PopulationSize < 2 {
		return ErrPopulationSize
	}
	if opts.SelectionPoolSize < 1 || opts.SelectionKeepSize < 1 ||
		opts.SelectionKeepSize > opts.SelectionPoolSize ||
		opts.SelectionPoolSize > opts.PopulationSize {
		return ErrSelectionSizes
	}
	if opts.MaxGenerations < 1 {
		return ErrMaxGenerations
	}

	switch opts.Crossover {
	case OrderCrossover, MaximalPreservative, PartiallyMapped:
	default:
		return ErrUnknownOperator
	}
	switch opts.Mutation {
	case SwapMutation, DisplacementMutation, InsertionMutation:
	default:
		return ErrUnknownOperator
	}

	return nil
}
