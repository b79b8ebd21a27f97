// Package gridpath is your allocation-light toolbox for pathfinding over
// uniform 2D grids — from single-pair A* to flow fields steering whole
// crowds at once.
//
// 🚀 What is gridpath?
//
//	A pure-Go library of batch-callable search primitives that operate
//	directly on flat numeric buffers:
//		• Single-pair A*: 4- or 8-connectivity, optional heuristic weight
//		• Multi-goal Dijkstra: nearest-goal paths & full distance fields
//		• Flow fields: per-cell steepest-descent steering vectors
//		• Jump Point Search: pruned A* for uniform 8-connected grids
//		• Path post-processing: smoothing, string-pulling, simplification
//		• Reachability: cost-limited floods, existence probes, batch A*
//
// ✨ Why choose gridpath?
//
//   - Hot-path friendly – every call is a pure function over caller-owned
//     buffers; scratch state lives and dies inside the call
//   - Predictable failure – every entry point is total: invalid, blocked
//     or unreachable inputs yield an empty result, never a panic
//   - Pure Go – no cgo, no engine bindings, no hidden deps
//   - Parallel by construction – independent queries share nothing, and
//     the batch entry point fans out across workers for you
//
// Everything is organized under seven subpackages:
//
//	grid/      — addressing, connectivity, cells, vectors, line of sight
//	frontier/  — the min-priority open set shared by every search
//	astar/     — weighted single-pair search, cost probes, batch runs
//	dijkstra/  — uniform relaxation: nearest-goal paths, distance fields
//	flowfield/ — steering vectors derived from distance fields
//	jps/       — Jump Point Search on uniform walkable fields
//	pathutil/  — smoothing, funnel, simplification, world conversion
//
// Quick ASCII example:
//
//	S . . # .
//	. . . # .
//	. . x # .
//	. . . . .
//	. . . . G
//
//	an A* query from S to G routes around the wall; blocking x instead
//	would leave the diagonal free.
//
// Grids are implicit: a width, a height, and a row-major buffer where
// index = y*width + x. Cost fields use <=0 for blocked cells and >0 as a
// movement-cost multiplier; walkable fields use 0 for blocked and any
// nonzero value for passable at uniform cost.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
