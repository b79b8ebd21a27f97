// Package flowfield builds steepest-descent vector fields over grid
// distance fields.
package flowfield

import (
	"math"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// FromField derives a flow field from a distance field: for every cell
// with a finite distance, the unit direction toward the 8-neighbor with
// the smallest distance value; the zero vector where no neighbor improves
// on the cell's own distance, and on unreachable (+Inf) cells.
//
// The result is index-aligned with dist. Returns nil on invalid
// dimensions or a short buffer.
//
// Complexity: O(W×H) time and memory.
func FromField(dist []float64, width, height int) []grid.Vec2 {
	size := width * height
	if width <= 0 || height <= 0 || len(dist) < size {
		return nil
	}

	flow := make([]grid.Vec2, size)
	offsets := grid.Conn8.Offsets()

	for i := 0; i < size; i++ {
		if math.IsInf(dist[i], 1) {
			continue // unreachable: zero vector
		}

		x, y := i%width, i/width
		best := dist[i]
		var bestDX, bestDY int

		for _, off := range offsets {
			nx, ny := x+off[0], y+off[1]
			if !grid.InBounds(nx, ny, width, height) {
				continue
			}
			if d := dist[ny*width+nx]; d < best {
				best = d
				bestDX, bestDY = off[0], off[1]
			}
		}

		if bestDX != 0 || bestDY != 0 {
			flow[i] = grid.Vec2{X: float64(bestDX), Y: float64(bestDY)}.Normalized()
		}
	}

	return flow
}

// FromGoal computes the distance field to a single goal and derives its
// flow field in one call.
// Complexity: O(W×H log(W×H)) for the relaxation, O(W×H) for the field.
func FromGoal(costs []float64, width, height int, goal grid.Cell) []grid.Vec2 {
	return FromField(dijkstra.FieldTo(costs, width, height, goal), width, height)
}

// FromGoals is FromGoal over a goal set: every cell steers toward its
// nearest goal by accumulated cost.
func FromGoals(costs []float64, width, height int, goals []grid.Cell) []grid.Vec2 {
	return FromField(dijkstra.Field(costs, width, height, goals), width, height)
}
