// Package astar implements best-first search over weighted grid cost
// fields with an admissible (or explicitly weighted) heuristic.
package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// Find computes the lowest-cost path from start to goal over a cost field
// and returns it as flat indices, start and goal inclusive.
//
// Returns an empty path when:
//   - width or height is not positive, or costs is shorter than width×height;
//   - start or goal lies out of bounds or on a blocked (<=0) cell;
//   - the frontier exhausts before the goal is reached (unreachable).
//
// Options customization:
//
//   - WithConnectivity(c) / WithDiagonals(): movement model (default Conn4).
//   - WithHeuristicWeight(w): inflate the heuristic (default 1.0, optimal).
//
// Complexity:
//
//   - Time:  O(W×H log(W×H)) worst case.
//   - Space: O(W×H) per-call scratch.
func Find(costs []float64, width, height int, start, goal grid.Cell, opts ...Option) []int {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, ok := newRunner(costs, width, height, start, goal, cfg)
	if !ok {
		return nil
	}
	if !r.search() {
		return nil
	}

	return grid.TracePath(r.came, r.startIdx, r.goalIdx)
}

// FindUniform runs Find over a walkable field at uniform cost 1:
// nonzero cells are passable, zero cells are blocked.
// Same contract and options as Find.
// Complexity: O(W×H) conversion plus the Find cost.
func FindUniform(walkable []int, width, height int, start, goal grid.Cell, opts ...Option) []int {
	return Find(grid.CostsFromWalkable(walkable), width, height, start, goal, opts...)
}

// Cost returns only the total cost of the lowest-cost path from start to
// goal, or +Inf when no path exists. Same validation and options as Find;
// skipping path reconstruction keeps the query allocation-lighter.
// Complexity: identical to Find.
func Cost(costs []float64, width, height int, start, goal grid.Cell, opts ...Option) float64 {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, ok := newRunner(costs, width, height, start, goal, cfg)
	if !ok {
		return math.Inf(1)
	}
	if !r.search() {
		return math.Inf(1)
	}

	return r.g[r.goalIdx]
}

// IsReachable reports whether any 8-connected path exists between start
// and goal on the cost field.
// Complexity: identical to Find under Conn8.
func IsReachable(costs []float64, width, height int, start, goal grid.Cell) bool {
	return Cost(costs, width, height, start, goal, WithDiagonals()) < math.Inf(1)
}

// heuristic estimates remaining cost from (x,y) to the goal: Manhattan
// distance under Conn4, octile distance under Conn8. Both are admissible
// for base step costs 1 (orthogonal) and √2 (diagonal).
func heuristic(x, y int, goal grid.Cell, conn grid.Connectivity) float64 {
	dx := x - goal.X
	if dx < 0 {
		dx = -dx
	}
	dy := y - goal.Y
	if dy < 0 {
		dy = -dy
	}

	if conn == grid.Conn8 {
		if dx < dy {
			dx, dy = dy, dx
		}

		return float64(dx) + (grid.Sqrt2-1)*float64(dy)
	}

	return float64(dx + dy)
}

// runner holds the per-call scratch state of one A* execution.
// Parallel arrays indexed by cell keep the hot loop cache-friendly.
type runner struct {
	costs         []float64
	width, height int
	goal          grid.Cell
	cfg           Options

	startIdx, goalIdx int

	g      []float64       // best known cost-from-start per cell; +Inf initially
	came   []int           // predecessor on the best known path; -1 initially
	closed []bool          // finalized cells; set on first pop
	open   *frontier.Queue // min-heap on g+weight·h
}

// newRunner validates inputs and allocates scratch state.
// ok=false covers every input-validation failure of the contract.
func newRunner(costs []float64, width, height int, start, goal grid.Cell, cfg Options) (*runner, bool) {
	size := width * height
	if width <= 0 || height <= 0 || len(costs) < size {
		return nil, false
	}
	if !start.In(width, height) || !goal.In(width, height) {
		return nil, false
	}

	startIdx := start.Index(width)
	goalIdx := goal.Index(width)
	if costs[startIdx] <= 0 || costs[goalIdx] <= 0 {
		return nil, false
	}

	r := &runner{
		costs:    costs,
		width:    width,
		height:   height,
		goal:     goal,
		cfg:      cfg,
		startIdx: startIdx,
		goalIdx:  goalIdx,
		g:        make([]float64, size),
		came:     make([]int, size),
		closed:   make([]bool, size),
		open:     frontier.New(size / 4),
	}
	inf := math.Inf(1)
	for i := 0; i < size; i++ {
		r.g[i] = inf
		r.came[i] = -1
	}

	return r, true
}

// search runs the main best-first loop and reports whether the goal was
// reached. On success r.g[r.goalIdx] and r.came describe the result.
func (r *runner) search() bool {
	// 1) Seed the frontier with the start cell at priority h(start).
	r.g[r.startIdx] = 0
	r.open.Push(r.startIdx, heuristic(r.startIdx%r.width, r.startIdx/r.width, r.goal, r.cfg.Conn)*r.cfg.HeuristicWeight)

	offsets := r.cfg.Conn.Offsets()
	steps := r.cfg.Conn.StepCosts()

	for r.open.Len() > 0 {
		// 2) Pop the most promising open cell.
		cur := r.open.Pop()

		// 3) First pop of the goal finalizes it: with a consistent
		//    heuristic the recorded g-cost is minimal.
		if cur.Cell == r.goalIdx {
			return true
		}

		// 4) Skip stale duplicates of already-finalized cells.
		if r.closed[cur.Cell] {
			continue
		}
		r.closed[cur.Cell] = true

		cx, cy := cur.Cell%r.width, cur.Cell/r.width

		// 5) Relax every neighbor under the active connectivity.
		for d, off := range offsets {
			nx, ny := cx+off[0], cy+off[1]
			if !grid.InBounds(nx, ny, r.width, r.height) {
				continue
			}

			ni := ny*r.width + nx
			if r.closed[ni] {
				continue
			}

			cellCost := r.costs[ni]
			if cellCost <= 0 {
				continue // blocked
			}

			// Edge weight = base step cost × destination cell cost.
			newG := r.g[cur.Cell] + steps[d]*cellCost
			if newG >= r.g[ni] {
				continue
			}

			r.g[ni] = newG
			r.came[ni] = cur.Cell
			r.open.Push(ni, newG+heuristic(nx, ny, r.goal, r.cfg.Conn)*r.cfg.HeuristicWeight)
		}
	}

	// 6) Frontier exhausted: goal unreachable.
	return false
}
