// Package tsp - the step observer boundary.
//
// Observers exist so a front-end can render intermediate tours without the
// core ever depending on rendering. Calls are synchronous, fire-and-forget
// notifications at fixed points: the end of each construction step, each
// local-search sweep and each generation. Snapshots are always copies — an
// observer cannot mutate algorithm state, and keeping a snapshot after
// OnStep returns is safe.
package tsp

// Observer receives one read-only tour snapshot per discrete algorithm step.
//
//   - tour: the current (possibly partial) city sequence, interpreted as a
//     cycle; the slice is the observer's to keep.
//   - cost: cycle cost of the snapshot, stabilized to 1e-9.
//   - step: 1-based step index (insertion step, sweep, or generation).
type Observer interface {
	OnStep(tour []int, cost float64, step int)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(tour []int, cost float64, step int)

// OnStep implements Observer.
func (f ObserverFunc) OnStep(tour []int, cost float64, step int) { f(tour, cost, step) }

// nopObserver is the default sink when callers pass a nil Observer.
type nopObserver struct{}

func (nopObserver) OnStep([]int, float64, int) {}
