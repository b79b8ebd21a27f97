package grid

// Index maps (x,y) to a row-major flat index: y*width + x.
// Complexity: O(1).
func Index(x, y, width int) int {
	return y*width + x
}

// Coords converts a row-major flat index back to (x,y).
// Complexity: O(1).
func Coords(idx, width int) (x, y int) {
	return idx % width, idx / width
}

// InBounds reports whether (x,y) lies within a width×height grid.
// Complexity: O(1).
func InBounds(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

// CellAt converts a row-major flat index to a Cell.
// Complexity: O(1).
func CellAt(idx, width int) Cell {
	x, y := Coords(idx, width)

	return Cell{X: x, Y: y}
}

// TracePath rebuilds a path from a predecessor array filled by a search:
// it walks came from goal back to start and returns the flat indices in
// start-to-goal inclusive order. Cells with no predecessor hold -1.
// Returns nil when goal was never reached from start.
// Complexity: O(path length) time and memory.
func TracePath(came []int, start, goal int) []int {
	n := 0
	for cur := goal; cur != start; cur = came[cur] {
		if cur == -1 {
			return nil
		}
		n++
	}

	path := make([]int, n+1)
	path[0] = start
	for cur, i := goal, n; cur != start; cur, i = came[cur], i-1 {
		path[i] = cur
	}

	return path
}

// CostsFromWalkable derives a unit-cost field from a walkable field:
// nonzero → cost 1, zero → blocked (cost 0).
// Complexity: O(W×H) time and memory.
func CostsFromWalkable(walkable []int) []float64 {
	costs := make([]float64, len(walkable))
	for i, w := range walkable {
		if w != 0 {
			costs[i] = 1
		}
	}

	return costs
}
