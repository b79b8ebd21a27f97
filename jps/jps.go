// Package jps implements Jump Point Search over uniform walkable fields.
package jps

import (
	"math"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// Find computes a shortest 8-connected path from start to goal over a
// walkable field (0 blocked, nonzero passable, uniform cost 1) and
// returns it as flat indices, start and goal inclusive, expanded to
// per-cell steps so consecutive entries are always grid-adjacent.
//
// Returns an empty path when width/height are not positive, the buffer is
// short, start or goal is out of bounds or blocked, or no path exists.
//
// The total path length equals the 8-connected A* optimum on the same
// field; the exact cell sequence may differ.
//
// Complexity: worst case O(W×H log(W×H)) time, O(W×H) scratch; typically
// far fewer expansions than A* on open maps.
func Find(walkable []int, width, height int, start, goal grid.Cell) []int {
	size := width * height
	if width <= 0 || height <= 0 || len(walkable) < size {
		return nil
	}
	if !start.In(width, height) || !goal.In(width, height) {
		return nil
	}

	startIdx := start.Index(width)
	goalIdx := goal.Index(width)
	if walkable[startIdx] == 0 || walkable[goalIdx] == 0 {
		return nil
	}

	r := &runner{
		cells:  walkable,
		width:  width,
		height: height,
		goal:   goal,
		g:      make([]float64, size),
		came:   make([]int, size),
		closed: make([]bool, size),
		open:   frontier.New(size / 8),
	}
	inf := math.Inf(1)
	for i := 0; i < size; i++ {
		r.g[i] = inf
		r.came[i] = -1
	}

	r.g[startIdx] = 0
	r.open.Push(startIdx, octile(start.X, start.Y, goal))

	for r.open.Len() > 0 {
		cur := r.open.Pop()

		if cur.Cell == goalIdx {
			return expand(grid.TracePath(r.came, startIdx, goalIdx), width)
		}

		if r.closed[cur.Cell] {
			continue
		}
		r.closed[cur.Cell] = true

		cx, cy := cur.Cell%width, cur.Cell/width

		// Prune to natural + forced directions implied by the direction
		// of travel from the parent; the start node keeps all 8.
		var dirs [8][2]int
		n := r.prunedDirections(&dirs, cur.Cell, cx, cy)

		for d := 0; d < n; d++ {
			ji := r.jump(cx, cy, dirs[d][0], dirs[d][1])
			if ji == -1 || r.closed[ji] {
				continue
			}

			jx, jy := ji%width, ji/width
			ddx, ddy := jx-cx, jy-cy

			// Jump points sit on a straight run from the expanding node,
			// so euclidean distance is the exact uniform-cost increment.
			newG := r.g[cur.Cell] + math.Sqrt(float64(ddx*ddx+ddy*ddy))
			if newG >= r.g[ji] {
				continue
			}

			r.g[ji] = newG
			r.came[ji] = cur.Cell
			r.open.Push(ji, newG+octile(jx, jy, goal))
		}
	}

	return nil
}

// runner holds the per-call scratch state of one JPS execution.
type runner struct {
	cells         []int
	width, height int
	goal          grid.Cell

	g      []float64
	came   []int
	closed []bool
	open   *frontier.Queue
}

// walkable reports whether (x,y) is in bounds and passable.
func (r *runner) walkable(x, y int) bool {
	if !grid.InBounds(x, y, r.width, r.height) {
		return false
	}

	return r.cells[y*r.width+x] != 0
}

// prunedDirections fills dirs with the directions to probe from the cell
// at (cx,cy) and returns how many were written.
//
// Root node (no parent): all 8 directions. Otherwise the natural
// continuations of the travel direction from the parent, plus a forced
// direction for each blocked flanking cell.
func (r *runner) prunedDirections(dirs *[8][2]int, cell, cx, cy int) int {
	parent := r.came[cell]
	if parent == -1 {
		copy(dirs[:], grid.Conn8.Offsets())

		return 8
	}

	pdx := sign(cx - parent%r.width)
	pdy := sign(cy - parent/r.width)

	n := 0
	switch {
	case pdx != 0 && pdy != 0: // diagonal travel
		dirs[n] = [2]int{pdx, pdy}
		n++
		dirs[n] = [2]int{pdx, 0}
		n++
		dirs[n] = [2]int{0, pdy}
		n++
		if !r.walkable(cx-pdx, cy) {
			dirs[n] = [2]int{-pdx, pdy}
			n++
		}
		if !r.walkable(cx, cy-pdy) {
			dirs[n] = [2]int{pdx, -pdy}
			n++
		}
	case pdx != 0: // horizontal travel
		dirs[n] = [2]int{pdx, 0}
		n++
		if !r.walkable(cx, cy-1) {
			dirs[n] = [2]int{pdx, -1}
			n++
		}
		if !r.walkable(cx, cy+1) {
			dirs[n] = [2]int{pdx, 1}
			n++
		}
	default: // vertical travel
		dirs[n] = [2]int{0, pdy}
		n++
		if !r.walkable(cx-1, cy) {
			dirs[n] = [2]int{-1, pdy}
			n++
		}
		if !r.walkable(cx+1, cy) {
			dirs[n] = [2]int{1, pdy}
			n++
		}
	}

	return n
}

// jump walks from (x,y) in direction (dx,dy) and returns the flat index
// of the next jump point, or -1 when the run dies out.
//
// Termination order per step: blocked/out-of-bounds first, then goal,
// then forced-neighbor patterns. Straight runs are plain loops; the
// diagonal walk is a loop that probes its two straight components, so
// arbitrarily long corridors never deepen the stack.
func (r *runner) jump(x, y, dx, dy int) int {
	for {
		nx, ny := x+dx, y+dy
		if !r.walkable(nx, ny) {
			return -1
		}
		// No corner cutting: a diagonal with both flanking orthogonal
		// cells blocked is not traversable.
		if dx != 0 && dy != 0 && !r.walkable(x+dx, y) && !r.walkable(x, y+dy) {
			return -1
		}
		if nx == r.goal.X && ny == r.goal.Y {
			return ny*r.width + nx
		}

		if dx != 0 && dy != 0 {
			// Forced neighbors across the trailing corners.
			if (!r.walkable(x, ny) && r.walkable(nx, ny+dy)) ||
				(!r.walkable(nx, y) && r.walkable(nx+dx, ny)) {
				return ny*r.width + nx
			}
			// A diagonal stops as soon as either straight component run
			// would itself find a jump point.
			if r.jump(nx, ny, dx, 0) != -1 || r.jump(nx, ny, 0, dy) != -1 {
				return ny*r.width + nx
			}
		} else if dx != 0 {
			// Straight horizontal: forced neighbors above/below.
			if (!r.walkable(nx, y-1) && r.walkable(nx+dx, y-1)) ||
				(!r.walkable(nx, y+1) && r.walkable(nx+dx, y+1)) {
				return ny*r.width + nx
			}
		} else {
			// Straight vertical: forced neighbors left/right.
			if (!r.walkable(x-1, ny) && r.walkable(x-1, ny+dy)) ||
				(!r.walkable(x+1, ny) && r.walkable(x+1, ny+dy)) {
				return ny*r.width + nx
			}
		}

		x, y = nx, ny
	}
}

// expand interpolates a jump-point chain into per-cell steps: consecutive
// jump points lie on straight or diagonal runs, so unit sign-steps walk
// exactly the cells between them.
func expand(points []int, width int) []int {
	if len(points) < 2 {
		return points
	}

	path := []int{points[0]}
	for i := 1; i < len(points); i++ {
		px, py := points[i-1]%width, points[i-1]/width
		qx, qy := points[i]%width, points[i]/width
		sx, sy := sign(qx-px), sign(qy-py)

		for px != qx || py != qy {
			px += sx
			py += sy
			path = append(path, py*width+px)
		}
	}

	return path
}

// octile is the admissible 8-connected heuristic:
// max(dx,dy) + (√2−1)·min(dx,dy).
func octile(x, y int, goal grid.Cell) float64 {
	dx := x - goal.X
	if dx < 0 {
		dx = -dx
	}
	dy := y - goal.Y
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}

	return float64(dx) + (grid.Sqrt2-1)*float64(dy)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
