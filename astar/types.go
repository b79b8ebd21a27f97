// Package astar defines configuration options for the A* search.
package astar

import "github.com/katalvlaran/gridpath/grid"

// Options configures the behavior of the A* search.
//
// Conn            – neighbor connectivity (Conn4 or Conn8).
// HeuristicWeight – multiplier applied to the heuristic term. 1.0 keeps
// the heuristic admissible and the result optimal; values > 1 bias the
// search toward the goal, trading optimality for speed with no documented
// sub-optimality bound.
type Options struct {
	Conn            grid.Connectivity // Neighbor connectivity (Conn4 or Conn8)
	HeuristicWeight float64           // Heuristic multiplier; 1.0 = admissible
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithConnectivity selects 4- or 8-directional movement.
// Default is grid.Conn4.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithDiagonals is shorthand for WithConnectivity(grid.Conn8).
func WithDiagonals() Option {
	return func(o *Options) {
		o.Conn = grid.Conn8
	}
}

// WithHeuristicWeight sets the heuristic multiplier.
// Must pass a positive value; zero or negative panics.
// Weights above 1 make the search greedier and the result possibly
// sub-optimal — an explicit opt-in, not a tuning default.
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			// Panic to signal invalid configuration early, matching the
			// option-constructor contract used across gridpath.
			panic("astar: heuristic weight must be positive")
		}
		o.HeuristicWeight = w
	}
}

// DefaultOptions returns an Options struct initialized with the baseline
// configuration. Use functional options to override.
//
// Defaults:
//   - Conn:            grid.Conn4 (orthogonal movement only).
//   - HeuristicWeight: 1.0 (admissible; optimal paths).
func DefaultOptions() Options {
	return Options{
		Conn:            grid.Conn4,
		HeuristicWeight: 1.0,
	}
}
