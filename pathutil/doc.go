// Package pathutil post-processes search results: smoothing, visibility
// string-pulling, collinear simplification, and world-coordinate
// conversion.
//
// What:
//
//   - Smooth: iterative 3-point averaging of a positional path with
//     fixed endpoints. Purely geometric — no grid lookups, so the result
//     may cut corners; pair with Funnel when obstacles matter.
//   - Funnel: greedy string-pull — from each anchor keep only the
//     furthest later waypoint with clear line of sight over the blocking
//     grid, yielding the visibility-minimal subsequence.
//   - Simplify: drop interior cells whose incoming and outgoing grid
//     step direction match, collapsing collinear runs to their turns.
//     Idempotent: a second pass changes nothing.
//   - ToWorld: map flat indices to world-space cell-center positions for
//     a given cell size.
//
// Why:
//
//   - Raw grid paths stair-step and oversample; agents following them
//     look robotic. These passes are cheap, local, and composable:
//     Simplify → Funnel → Smooth is the usual pipeline.
//
// Complexity:
//
//   - Smooth: O(N×iterations). Simplify, ToWorld: O(N).
//   - Funnel: O(N²×L) worst case (L = line length); short in practice.
//
// All functions are total: inputs too short to process come back as
// copies, untouched.
package pathutil
