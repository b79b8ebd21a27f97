// Package dijkstra_test provides runnable examples for the uniform-cost
// entry points.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleFind demonstrates routing to the nearest of two goals.
func ExampleFind() {
	// 1) A 1×7 corridor of unit cost; start in the middle.
	costs := []float64{1, 1, 1, 1, 1, 1, 1}

	// 2) Goals at both ends: x=0 (3 steps away) and x=5 (2 steps away).
	path := dijkstra.Find(costs, 7, 1, grid.Cell{X: 3, Y: 0}, []grid.Cell{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
	})

	// 3) The cheaper goal wins.
	fmt.Println(path)
	// Output: [3 4 5]
}

// ExampleField demonstrates a distance field over a 3×3 grid with the
// goal in a corner.
func ExampleField() {
	costs := []float64{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}

	dist := dijkstra.Field(costs, 3, 3, []grid.Cell{{X: 0, Y: 0}})

	for y := 0; y < 3; y++ {
		fmt.Printf("%.0f %.0f %.0f\n",
			dist[grid.Index(0, y, 3)], dist[grid.Index(1, y, 3)], dist[grid.Index(2, y, 3)])
	}
	// Output:
	// 0 1 2
	// 1 2 3
	// 2 3 4
}
