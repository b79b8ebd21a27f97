// Package dijkstra implements uniform-cost search and distance-field
// propagation over grid cost fields.
package dijkstra

import (
	"math"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// Find computes the lowest-cost 4-connected path from start to the
// nearest of the given goals and returns it as flat indices, start and
// goal inclusive.
//
// Out-of-bounds goals are ignored; if none remain, or start is invalid or
// blocked, or no goal is reachable, the result is empty. "Nearest" means
// least accumulated cost, not fewest steps.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) scratch.
func Find(costs []float64, width, height int, start grid.Cell, goals []grid.Cell) []int {
	size := width * height
	if width <= 0 || height <= 0 || len(costs) < size {
		return nil
	}
	if !start.In(width, height) {
		return nil
	}

	startIdx := start.Index(width)
	if costs[startIdx] <= 0 {
		return nil
	}

	// Collect in-bounds goals for O(1) membership checks on pop.
	goalSet := make(map[int]struct{}, len(goals))
	for _, gc := range goals {
		if gc.In(width, height) {
			goalSet[gc.Index(width)] = struct{}{}
		}
	}
	if len(goalSet) == 0 {
		return nil
	}

	g := make([]float64, size)
	came := make([]int, size)
	inf := math.Inf(1)
	for i := 0; i < size; i++ {
		g[i] = inf
		came[i] = -1
	}

	open := frontier.New(size / 4)
	g[startIdx] = 0
	open.Push(startIdx, 0)

	offsets := grid.Conn4.Offsets()

	for open.Len() > 0 {
		cur := open.Pop()

		// The first goal popped is the nearest: priorities are exact
		// g-costs and pops come out in non-decreasing order.
		if _, hit := goalSet[cur.Cell]; hit {
			return grid.TracePath(came, startIdx, cur.Cell)
		}

		// Stale lazy-decrease-key entry.
		if cur.Priority > g[cur.Cell] {
			continue
		}

		cx, cy := cur.Cell%width, cur.Cell/width
		for _, off := range offsets {
			nx, ny := cx+off[0], cy+off[1]
			if !grid.InBounds(nx, ny, width, height) {
				continue
			}

			ni := ny*width + nx
			cellCost := costs[ni]
			if cellCost <= 0 {
				continue
			}

			newG := g[cur.Cell] + cellCost
			if newG >= g[ni] {
				continue
			}

			g[ni] = newG
			came[ni] = cur.Cell
			open.Push(ni, newG)
		}
	}

	return nil
}

// Field propagates a distance field outward from a goal set: the result
// holds, for every cell, the minimum accumulated cost to its nearest
// goal, index-aligned with costs. Unreachable and blocked cells hold
// +Inf; every valid, passable goal holds exactly 0.
//
// Returns nil on invalid dimensions or a short cost buffer. Goals that
// are out of bounds or blocked are skipped; with no usable goal the
// field is all +Inf.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) memory for the result.
func Field(costs []float64, width, height int, goals []grid.Cell) []float64 {
	size := width * height
	if width <= 0 || height <= 0 || len(costs) < size {
		return nil
	}

	dist := make([]float64, size)
	inf := math.Inf(1)
	for i := 0; i < size; i++ {
		dist[i] = inf
	}

	open := frontier.New(size / 4)

	// Seed every valid, passable goal at distance 0.
	for _, g := range goals {
		if !g.In(width, height) {
			continue
		}
		gi := g.Index(width)
		if costs[gi] <= 0 {
			continue
		}
		dist[gi] = 0
		open.Push(gi, 0)
	}

	offsets := grid.Conn4.Offsets()

	for open.Len() > 0 {
		cur := open.Pop()
		if cur.Priority > dist[cur.Cell] {
			continue // stale
		}

		cx, cy := cur.Cell%width, cur.Cell/width
		for _, off := range offsets {
			nx, ny := cx+off[0], cy+off[1]
			if !grid.InBounds(nx, ny, width, height) {
				continue
			}

			ni := ny*width + nx
			cellCost := costs[ni]
			if cellCost <= 0 {
				continue
			}

			newDist := dist[cur.Cell] + cellCost
			if newDist >= dist[ni] {
				continue
			}

			dist[ni] = newDist
			open.Push(ni, newDist)
		}
	}

	return dist
}

// FieldTo is Field with a single goal.
func FieldTo(costs []float64, width, height int, goal grid.Cell) []float64 {
	return Field(costs, width, height, []grid.Cell{goal})
}

// Reachable collects every cell whose accumulated cost from start stays
// within budget, start included, in non-decreasing cost order.
//
// Returns nil on invalid dimensions, an invalid or blocked start, or a
// non-positive budget (degenerate input).
//
// Complexity: O(R log R) time for R reachable cells, O(W×H) scratch.
func Reachable(costs []float64, width, height int, start grid.Cell, budget float64) []int {
	size := width * height
	if width <= 0 || height <= 0 || len(costs) < size {
		return nil
	}
	if !start.In(width, height) || budget <= 0 {
		return nil
	}

	startIdx := start.Index(width)
	if costs[startIdx] <= 0 {
		return nil
	}

	g := make([]float64, size)
	inf := math.Inf(1)
	for i := 0; i < size; i++ {
		g[i] = inf
	}

	open := frontier.New(size / 4)
	g[startIdx] = 0
	open.Push(startIdx, 0)

	var cells []int
	offsets := grid.Conn4.Offsets()

	for open.Len() > 0 {
		cur := open.Pop()
		if cur.Priority > g[cur.Cell] {
			continue // stale
		}

		// Finalized within budget: record it.
		cells = append(cells, cur.Cell)

		cx, cy := cur.Cell%width, cur.Cell/width
		for _, off := range offsets {
			nx, ny := cx+off[0], cy+off[1]
			if !grid.InBounds(nx, ny, width, height) {
				continue
			}

			ni := ny*width + nx
			cellCost := costs[ni]
			if cellCost <= 0 {
				continue
			}

			newG := g[cur.Cell] + cellCost
			if newG > budget || newG >= g[ni] {
				continue
			}

			g[ni] = newG
			open.Push(ni, newG)
		}
	}

	return cells
}
