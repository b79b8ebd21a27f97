// Package astar implements single-pair A* search over weighted cost
// fields, plus the cost-only, reachability, and batch entry points built
// on it.
//
// What:
//
//   - Find: lowest-cost path between two cells on a cost field, with
//     4- or 8-connectivity and an optional heuristic weight.
//   - FindUniform: same search over a walkable field at uniform cost 1.
//   - Cost: terminal g-cost only, +Inf when no path exists.
//   - IsReachable: boolean existence probe (8-connected).
//   - FindBatch: one Find per (start,goal) pair, fanned out across workers.
//
// Why:
//
//   - Per-agent path queries are the hot path of crowd movement; the
//     search runs over flat buffers with parallel scratch arrays and no
//     per-cell node objects.
//
// Algorithm:
//
//   - Best-first search with an admissible heuristic: Manhattan distance
//     under Conn4, octile distance max(dx,dy)+(√2−1)·min(dx,dy) under
//     Conn8. Edge weight = base step cost × destination cell cost.
//   - A cell is finalized on first pop (closed set); stale heap entries
//     are skipped, so no decrease-key is needed.
//   - WithHeuristicWeight(w) for w > 1 inflates the heuristic, trading
//     optimality for speed. No sub-optimality bound is claimed; it is an
//     explicit opt-in, never a default.
//
// Complexity:
//
//   - Time:  O(W×H log(W×H)) worst case; far less on typical maps.
//   - Space: O(W×H) scratch (g-cost, predecessor, closed, frontier),
//     allocated per call and discarded on return.
//
// Failure contract:
//
//   - Every entry point is total: out-of-bounds or blocked endpoints,
//     degenerate dimensions, short buffers, and exhausted frontiers all
//     yield an empty result (nil path, +Inf cost, false). Nothing panics
//     except option constructors fed invalid configuration.
package astar
