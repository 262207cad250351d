// Package tsproute is a heuristic route-optimization toolkit for the
// Travelling Salesman Problem — construction heuristics, local search and a
// genetic optimizer over immutable distance models, with an exact solver for
// small instances.
//
// 🚀 What is tsproute?
//
//	A deterministic, dependency-light library that brings together:
//		• Distance models: validated, immutable matrices + Euclidean builder
//		• Construction: nearest neighbor, nearest/cheapest/farthest insertion
//		• Local search: 2-opt, node insertion, edge insertion
//		• Evolutionary: genetic optimizer with OX/MPX/PMX and three mutations
//		• Exact: Held–Karp dynamic programming behind a pluggable interface
//
// ✨ Why choose tsproute?
//
//   - Reproducible – every stochastic component derives from one seed
//   - Observable – per-step snapshots without coupling the core to rendering
//   - Honest errors – sentinel taxonomy, errors.Is-friendly, no panics
//   - Pure Go – no cgo, trivial dependency surface
//
// Everything is organized under three subpackages:
//
//	distmat/  — the immutable pairwise-distance model
//	tsp/      — heuristics, local search, genetic optimizer, Solve dispatcher
//	heldkarp/ — exact Held–Karp solver implementing tsp.ExactSolver
//
// Quick taste:
//
//	m, _ := distmat.FromPoints(cities)
//	res, err := tsp.Solve(ctx, m, tsp.DefaultOptions(), nil)
//
//	go get github.com/verlaine/tsproute
package tsproute
