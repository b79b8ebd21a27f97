package grid

// LineClear reports whether the straight line from one cell to another is
// unobstructed: it walks the Bresenham segment between the two cells and
// fails on any cell strictly between them whose value equals blocking.
// The endpoints themselves are exempt, so a query between two occupied
// cells can still succeed when the corridor between them is open.
//
// Out-of-bounds endpoints are never visible from anywhere.
// Complexity: O(max(|dx|,|dy|)) time, O(1) memory.
func LineClear(cells []int, width, height int, from, to Cell, blocking int) bool {
	if !from.In(width, height) || !to.In(width, height) {
		return false
	}

	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	px, py := x0, y0
	for {
		// Endpoints exempt: only interior cells may block.
		if (px != x0 || py != y0) && (px != x1 || py != y1) {
			if cells[py*width+px] == blocking {
				return false
			}
		}

		if px == x1 && py == y1 {
			return true
		}

		e2 := 2 * err
		if e2 >= dy {
			err += dy
			px += sx
		}
		if e2 <= dx {
			err += dx
			py += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
