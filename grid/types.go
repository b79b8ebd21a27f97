// Package grid defines the core types shared by every gridpath search:
// cells, vectors, and neighbor connectivity.
package grid

import "math"

// Sqrt2 is the step cost of one diagonal move on a uniform grid.
const Sqrt2 = math.Sqrt2

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Precomputed neighbor tables, index-aligned with their step-cost tables.
// Shared read-only state; callers must not mutate the returned slices.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	steps4   = []float64{1, 1, 1, 1}
	steps8   = []float64{1, Sqrt2, 1, Sqrt2, 1, Sqrt2, 1, Sqrt2}
)

// Offsets returns the neighbor offset table for the connectivity:
// 4 entries for Conn4, 8 for Conn8. The slice is shared; do not mutate.
// Complexity: O(1).
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// StepCosts returns the per-direction base step cost, index-aligned with
// Offsets: 1 for orthogonal moves, √2 for diagonal moves.
// The slice is shared; do not mutate.
// Complexity: O(1).
func (c Connectivity) StepCosts() []float64 {
	if c == Conn8 {
		return steps8
	}

	return steps4
}

// Cell is one grid location addressed by integer coordinates.
type Cell struct {
	X, Y int
}

// Index returns the row-major flat index of the cell: Y*width + X.
// Complexity: O(1).
func (c Cell) Index(width int) int {
	return c.Y*width + c.X
}

// In reports whether the cell lies within a width×height grid.
// Complexity: O(1).
func (c Cell) In(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Vec2 is a 2D float vector used for flow directions and world positions.
type Vec2 struct {
	X, Y float64
}

// Normalized returns the unit-length vector pointing the same way,
// or the zero vector unchanged.
// Complexity: O(1).
func (v Vec2) Normalized() Vec2 {
	l := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if l == 0 {
		return Vec2{}
	}

	return Vec2{X: v.X / l, Y: v.Y / l}
}
