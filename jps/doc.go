// Package jps implements Jump Point Search: a pruned A* for uniform-cost,
// 8-connected walkable fields.
//
// What:
//
//   - Find: same contract as astar.Find but restricted to walkable
//     fields (0 blocked, nonzero passable at uniform cost 1) and fixed
//     8-connectivity. Returns the same flat-index path type.
//
// Why:
//
//   - On open uniform grids most A* expansions are interchangeable
//     straight-line cells. JPS skips them: only jump points — the goal
//     and cells with forced neighbors — ever enter the frontier, cutting
//     heap traffic by orders of magnitude on large maps.
//
// Algorithm:
//
//   - Each expansion walks single directions via the jump function until
//     it reaches the goal, runs out of walkable cells, or finds a forced
//     neighbor (a neighbor reachable only through the current cell,
//     detected from local blocked/open patterns that differ for straight
//     and diagonal travel). The jump point enters the frontier with a
//     g-cost increment equal to the straight-line distance from the
//     expanding node.
//   - Direction pruning: the start node considers all 8 directions;
//     every other node considers only the natural continuations of its
//     parent direction plus any forced directions.
//   - Diagonal jumps probe their orthogonal components first, so a
//     diagonal is cut short as soon as either component run would find a
//     jump point.
//   - The jump function is iterative: straight runs are plain loops and
//     the diagonal walk is a loop probing two straight sub-jumps, so
//     long corridors cannot overflow the stack.
//
// Complexity:
//
//   - Worst case matches A* (O(W×H log(W×H))); typical open maps expand
//     far fewer nodes. Scratch is O(W×H) per call, discarded on return.
//
// Failure contract:
//
//   - Total: invalid dimensions, short buffers, out-of-bounds or blocked
//     endpoints, and exhausted frontiers all return an empty path.
//
// Properties:
//
//   - On a uniform grid the returned path's total length equals the
//     8-connected A* optimum (cell sequences may differ).
//   - No corner cutting: a diagonal is never taken when its destination
//     is blocked, and straight/diagonal probes enforce flanking cells.
package jps
