// Package frontier implements the min-priority open set shared by every
// gridpath search (A*, Dijkstra, JPS).
//
// What:
//
//   - Queue is a binary min-heap of (cell index, priority) pairs.
//   - Priority is g+h for A*, g for Dijkstra, ties broken arbitrarily.
//
// Why:
//
//   - One heap implementation instead of three: the searches differ only
//     in how they compute priority, never in how they order the open set.
//   - “Lazy decrease-key”: improving a cell's cost pushes a duplicate
//     entry; the stale one is recognized and skipped on pop, either via a
//     closed flag or by comparing against the recorded best cost. No
//     decrease-key support is needed.
//
// Complexity:
//
//   - Push, Pop: O(log N); Len: O(1).
//   - A search pushes at most one entry per relaxed edge, so N ≤ E.
package frontier
