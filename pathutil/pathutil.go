// Package pathutil provides smoothing, string-pulling, simplification and
// coordinate conversion for grid search results.
package pathutil

import "github.com/katalvlaran/gridpath/grid"

// Smooth applies iterations rounds of 3-point unweighted averaging to a
// positional path, keeping both endpoints fixed. The input is never
// mutated; paths shorter than 3 points come back as copies.
//
// Smoothing is purely geometric and ignores the grid; use Funnel first
// when the result must stay out of blocked cells.
//
// Complexity: O(N×iterations) time, O(N) memory.
func Smooth(points []grid.Vec2, iterations int) []grid.Vec2 {
	out := make([]grid.Vec2, len(points))
	copy(out, points)
	if len(points) < 3 || iterations <= 0 {
		return out
	}

	next := make([]grid.Vec2, len(points))
	n := len(points)
	for iter := 0; iter < iterations; iter++ {
		next[0] = out[0]
		next[n-1] = out[n-1]
		for i := 1; i < n-1; i++ {
			next[i] = grid.Vec2{
				X: (out[i-1].X + out[i].X + out[i+1].X) / 3,
				Y: (out[i-1].Y + out[i].Y + out[i+1].Y) / 3,
			}
		}
		out, next = next, out
	}

	return out
}

// Funnel string-pulls a positional path against its blocking grid: from
// the current anchor it keeps the furthest later waypoint reachable by a
// clear straight line (per grid.LineClear — no blocking cell strictly
// between, endpoints exempt), appends it, and continues from there. The
// result is the visibility-minimal subsequence of the input, endpoints
// always included.
//
// Waypoints are truncated to their containing cells for the visibility
// test. Paths shorter than 3 points come back as copies.
//
// Complexity: O(N²×L) worst case, L = cells per line.
func Funnel(points []grid.Vec2, cells []int, width, height int, blocking int) []grid.Vec2 {
	if len(points) < 3 {
		out := make([]grid.Vec2, len(points))
		copy(out, points)

		return out
	}

	out := []grid.Vec2{points[0]}
	n := len(points)
	current := 0

	for current < n-1 {
		furthest := current + 1
		from := cellOf(points[current])
		for i := current + 2; i < n; i++ {
			if grid.LineClear(cells, width, height, from, cellOf(points[i]), blocking) {
				furthest = i
			}
		}
		out = append(out, points[furthest])
		current = furthest
	}

	return out
}

// Simplify drops interior path cells whose incoming and outgoing step
// directions match, keeping only the endpoints and direction changes.
// Idempotent: Simplify(Simplify(p)) == Simplify(p).
// Paths shorter than 3 cells come back as copies.
//
// Complexity: O(N) time and memory.
func Simplify(path []int, width int) []int {
	if len(path) < 3 {
		out := make([]int, len(path))
		copy(out, path)

		return out
	}

	out := []int{path[0]}
	n := len(path)
	for i := 1; i < n-1; i++ {
		px, py := path[i-1]%width, path[i-1]/width
		cx, cy := path[i]%width, path[i]/width
		nx, ny := path[i+1]%width, path[i+1]/width

		// Keep the cell only where the step direction changes.
		if cx-px != nx-cx || cy-py != ny-cy {
			out = append(out, path[i])
		}
	}
	out = append(out, path[n-1])

	return out
}

// ToWorld converts a flat-index path to world-space cell-center
// positions: cell (x,y) maps to ((x+0.5)·cellSize, (y+0.5)·cellSize).
//
// Complexity: O(N) time and memory.
func ToWorld(path []int, width int, cellSize float64) []grid.Vec2 {
	out := make([]grid.Vec2, len(path))
	half := cellSize * 0.5
	for i, idx := range path {
		x, y := idx%width, idx/width
		out[i] = grid.Vec2{X: float64(x)*cellSize + half, Y: float64(y)*cellSize + half}
	}

	return out
}

// cellOf truncates a waypoint to its containing cell.
func cellOf(p grid.Vec2) grid.Cell {
	return grid.Cell{X: int(p.X), Y: int(p.Y)}
}
