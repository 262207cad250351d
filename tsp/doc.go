// Package tsp provides heuristic Travelling Salesman Problem solvers over an
// immutable distance model (distmat.Matrix).
//
// Three independent algorithm families are implemented:
//
//   - Construction heuristics — build a complete tour from scratch:
//     NearestNeighbor, NearestInsertion, CheapestInsertion, FarthestInsertion.
//     Each runs exactly n−1 extension steps and is deterministic for a fixed
//     start city (ties broken by lowest city index).
//
//   - Local search — improve an existing tour until a local optimum:
//     PairwiseExchange (2-opt), NodeInsertion, EdgeInsertion.
//     Policy: best-improvement per sweep; only strictly improving moves
//     (Δ < −eps) are accepted, so every run terminates.
//
//   - Genetic optimizer — evolves a population of tours across generations
//     with truncation selection, permutation-safe crossover (order,
//     maximally-preservative, partially-mapped) and mutation (swap,
//     displacement, insertion). Elitism guarantees the best-known cost
//     never regresses.
//
// Solve is the unified dispatcher: it validates Options, routes to the chosen
// Algorithm and reports progress through the Observer interface — one
// synchronous, copy-only snapshot per construction step, local-search sweep
// or generation. Exact solving is delegated through the ExactSolver interface
// (see package heldkarp for a reference implementation); the core never
// solves to optimality itself.
//
// Design:
//   - Deterministic: every stochastic component draws from a seeded RNG
//     (Options.Seed; seed 0 means a fixed default stream).
//   - Strict sentinels: configuration errors wrap ErrInvalidConfig, internal
//     bookkeeping divergence wraps ErrInvariant; matched via errors.Is.
//   - Cooperative cancellation: the context is checked between steps, never
//     mid-move, so tours are never observed half-mutated.
//   - No logging, no panics on user input.
package tsp
