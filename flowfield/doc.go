// Package flowfield derives per-cell steering vectors from distance
// fields: each passable, reachable cell points toward its neighbor with
// the steepest distance decrease.
//
// What:
//
//   - FromField: flow field from a precomputed distance field.
//   - FromGoal / FromGoals: compute the distance field via dijkstra
//     first, then derive the flow field.
//
// Why:
//
//   - One field serves any number of agents: steering becomes a single
//     O(1) lookup per agent per tick instead of a path query.
//
// Algorithm:
//
//   - For each cell with a finite distance, examine the 8 neighbors,
//     pick the in-bounds one with the smallest distance value, and emit
//     the normalized direction to it. Cells with no improving neighbor
//     (goals, local minima) and unreachable cells emit the zero vector.
//
// Complexity:
//
//   - FromField: O(W×H) time, O(W×H) memory for the result.
//   - FromGoal(s): adds one dijkstra.Field relaxation.
package flowfield
