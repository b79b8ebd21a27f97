// Package dijkstra_test validates uniform-cost search behavior: nearest-
// goal selection, distance-field invariants, budget-limited floods, and
// the total-function failure contract.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// uniform returns a w×h cost field of all 1s.
func uniform(w, h int) []float64 {
	costs := make([]float64, w*h)
	for i := range costs {
		costs[i] = 1
	}

	return costs
}

// ------------------------------------------------------------------------
// 1. Validation: empty results for invalid or degenerate inputs.
// ------------------------------------------------------------------------

func TestFind_InvalidInputs(t *testing.T) {
	costs := uniform(4, 4)
	goal := []grid.Cell{{X: 3, Y: 3}}

	if p := dijkstra.Find(costs, 4, 4, grid.Cell{X: -1, Y: 0}, goal); p != nil {
		t.Errorf("out-of-bounds start: got %v; want nil", p)
	}
	if p := dijkstra.Find(costs, 4, 4, grid.Cell{X: 0, Y: 0}, nil); p != nil {
		t.Errorf("no goals: got %v; want nil", p)
	}
	if p := dijkstra.Find(costs, 4, 4, grid.Cell{X: 0, Y: 0}, []grid.Cell{{X: 9, Y: 9}}); p != nil {
		t.Errorf("all goals out of bounds: got %v; want nil", p)
	}
	if p := dijkstra.Find(costs, 0, 0, grid.Cell{}, goal); p != nil {
		t.Errorf("zero-size grid: got %v; want nil", p)
	}

	costs[0] = 0
	if p := dijkstra.Find(costs, 4, 4, grid.Cell{X: 0, Y: 0}, goal); p != nil {
		t.Errorf("blocked start: got %v; want nil", p)
	}
}

// ------------------------------------------------------------------------
// 2. Find: nearest-of-several-goals paths.
// ------------------------------------------------------------------------

// TestFind_NearestGoal verifies the least-cost goal wins, not the first
// listed one.
func TestFind_NearestGoal(t *testing.T) {
	costs := uniform(7, 1)
	start := grid.Cell{X: 3, Y: 0}
	goals := []grid.Cell{{X: 0, Y: 0}, {X: 5, Y: 0}} // distances 3 and 2

	path := dijkstra.Find(costs, 7, 1, start, goals)
	if len(path) != 3 {
		t.Fatalf("path = %v; want 3 cells toward x=5", path)
	}
	if path[0] != 3 || path[len(path)-1] != 5 {
		t.Errorf("path endpoints = %d..%d; want 3..5", path[0], path[len(path)-1])
	}
}

// TestFind_StartOnGoal collapses to a single cell.
func TestFind_StartOnGoal(t *testing.T) {
	costs := uniform(3, 3)
	path := dijkstra.Find(costs, 3, 3, grid.Cell{X: 1, Y: 1}, []grid.Cell{{X: 1, Y: 1}})
	if len(path) != 1 || path[0] != 4 {
		t.Fatalf("path = %v; want [4]", path)
	}
}

// TestFind_WeightedDetour verifies relaxation follows accumulated cost,
// not step count.
func TestFind_WeightedDetour(t *testing.T) {
	// Row of cost 1 on top, direct cell of cost 9 in the middle.
	costs := []float64{
		1, 1, 1,
		1, 9, 1,
		1, 1, 1,
	}
	start, goal := grid.Cell{X: 0, Y: 1}, grid.Cell{X: 2, Y: 1}

	path := dijkstra.Find(costs, 3, 3, start, []grid.Cell{goal})
	if len(path) != 5 {
		t.Fatalf("path = %v; want the 5-cell detour around the cost-9 cell", path)
	}
	for _, idx := range path {
		if costs[idx] == 9 {
			t.Errorf("path crossed the cost-9 cell at %d", idx)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Field: distance-field invariants.
// ------------------------------------------------------------------------

// TestField_Invariants checks goal zeros, monotone neighbor gaps, and
// +Inf behind walls.
func TestField_Invariants(t *testing.T) {
	const w, h = 6, 6
	costs := uniform(w, h)
	for y := 0; y < h-1; y++ {
		costs[grid.Index(3, y, w)] = 0 // wall with a gap at the bottom
	}
	goals := []grid.Cell{{X: 0, Y: 0}, {X: 5, Y: 5}}

	dist := dijkstra.Field(costs, w, h, goals)
	if dist == nil {
		t.Fatal("Field returned nil")
	}

	for _, g := range goals {
		if d := dist[g.Index(w)]; d != 0 {
			t.Errorf("goal %v distance = %v; want 0", g, d)
		}
	}

	// Blocked cells stay unreachable.
	if !math.IsInf(dist[grid.Index(3, 0, w)], 1) {
		t.Errorf("blocked cell has finite distance %v", dist[grid.Index(3, 0, w)])
	}

	// Monotonicity: every finite cell differs from its best 4-neighbor by
	// exactly its own entry cost (unit here), and no gap exceeds it.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := dist[grid.Index(x, y, w)]
			if math.IsInf(d, 1) || d == 0 {
				continue
			}
			best := math.Inf(1)
			for _, off := range grid.Conn4.Offsets() {
				nx, ny := x+off[0], y+off[1]
				if grid.InBounds(nx, ny, w, h) && dist[grid.Index(nx, ny, w)] < best {
					best = dist[grid.Index(nx, ny, w)]
				}
			}
			if d != best+1 {
				t.Errorf("cell (%d,%d) distance %v; want best neighbor %v + 1", x, y, d, best)
			}
		}
	}
}

// TestField_NoUsableGoal yields an all-Inf field.
func TestField_NoUsableGoal(t *testing.T) {
	costs := uniform(3, 3)
	costs[4] = 0

	dist := dijkstra.Field(costs, 3, 3, []grid.Cell{{X: 1, Y: 1}}) // blocked goal
	for i, d := range dist {
		if !math.IsInf(d, 1) {
			t.Errorf("dist[%d] = %v; want +Inf", i, d)
		}
	}
}

// TestFieldTo matches Field with a singleton goal set.
func TestFieldTo(t *testing.T) {
	costs := uniform(4, 4)
	goal := grid.Cell{X: 2, Y: 1}

	a := dijkstra.FieldTo(costs, 4, 4, goal)
	b := dijkstra.Field(costs, 4, 4, []grid.Cell{goal})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("FieldTo[%d]=%v differs from Field[%d]=%v", i, a[i], i, b[i])
		}
	}
}

// ------------------------------------------------------------------------
// 4. Reachable: budget-limited floods.
// ------------------------------------------------------------------------

func TestReachable_Budget(t *testing.T) {
	costs := uniform(5, 5)
	start := grid.Cell{X: 2, Y: 2}

	// Budget 1: start plus its four orthogonal neighbors.
	cells := dijkstra.Reachable(costs, 5, 5, start, 1)
	if len(cells) != 5 {
		t.Fatalf("budget 1: %d cells; want 5 (got %v)", len(cells), cells)
	}
	if cells[0] != start.Index(5) {
		t.Errorf("first cell = %d; want start %d", cells[0], start.Index(5))
	}

	// Budget 2: the full Manhattan diamond of radius 2 → 13 cells.
	if cells = dijkstra.Reachable(costs, 5, 5, start, 2); len(cells) != 13 {
		t.Errorf("budget 2: %d cells; want 13", len(cells))
	}
}

func TestReachable_Degenerate(t *testing.T) {
	costs := uniform(3, 3)

	if cells := dijkstra.Reachable(costs, 3, 3, grid.Cell{X: 1, Y: 1}, 0); cells != nil {
		t.Errorf("zero budget: got %v; want nil", cells)
	}
	if cells := dijkstra.Reachable(costs, 3, 3, grid.Cell{X: 1, Y: 1}, -4); cells != nil {
		t.Errorf("negative budget: got %v; want nil", cells)
	}
	if cells := dijkstra.Reachable(costs, 3, 3, grid.Cell{X: 5, Y: 5}, 3); cells != nil {
		t.Errorf("out-of-bounds start: got %v; want nil", cells)
	}
}

// TestReachable_RespectsWalls verifies the flood never leaks through
// blocked cells even within budget.
func TestReachable_RespectsWalls(t *testing.T) {
	costs := uniform(5, 1)
	costs[2] = 0

	cells := dijkstra.Reachable(costs, 5, 1, grid.Cell{X: 0, Y: 0}, 10)
	if len(cells) != 2 {
		t.Fatalf("cells = %v; want exactly [0 1]", cells)
	}
	for _, c := range cells {
		if c > 1 {
			t.Errorf("flood leaked past the wall to %d", c)
		}
	}
}
