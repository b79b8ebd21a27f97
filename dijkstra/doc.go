// Package dijkstra implements uniform-cost relaxation over grid cost
// fields: nearest-goal paths, full distance fields, and cost-limited
// reachable sets.
//
// What:
//
//   - Find: lowest-cost path from a start to the nearest of several goals.
//   - Field: distance field from a goal set outward — the minimum
//     accumulated cost from every cell to its nearest goal (+Inf where
//     unreachable, exactly 0 on every passable goal).
//   - FieldTo: single-goal convenience wrapper over Field.
//   - Reachable: every cell whose accumulated cost from a start stays
//     within a budget.
//
// Why:
//
//   - Multi-goal queries (nearest resource, nearest exit) and shared
//     fields (one relaxation steering many agents via flowfield) are
//     where per-pair A* stops paying off.
//
// Algorithm:
//
//   - Priority = g only, 4-connectivity, edge weight = destination cell
//     cost. Field seeds the frontier from every valid, passable goal at
//     distance 0. Stale heap entries — priority above the recorded best
//     distance — are skipped on pop (lazy decrease-key).
//
// Complexity:
//
//   - Time:  O(W×H log(W×H)); Space: O(W×H) per-call scratch.
//
// Failure contract:
//
//   - Total entry points: invalid dimensions, short buffers, blocked or
//     out-of-bounds starts, empty goal sets, and non-positive budgets
//     yield nil; a Field with no reachable cells is all +Inf.
package dijkstra
