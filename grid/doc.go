// Package grid provides the addressing layer every gridpath search builds
// on: row-major index arithmetic, cell coordinates, connectivity tables,
// steering vectors, and grid-walked line-of-sight checks.
//
// What:
//
//   - Index/Coords map (x,y) ↔ flat index over an implicit width×height grid.
//   - Cell is an integer coordinate pair; Vec2 a float direction/position.
//   - Connectivity (Conn4 or Conn8) exposes precomputed neighbor offsets
//     and per-direction step costs.
//   - CostsFromWalkable derives a unit-cost field from a walkable field.
//   - LineClear reports straight-line visibility between two cells.
//
// Why:
//
//   - Grids here are a coordinate convention over caller-owned buffers,
//     not an owned object: no storage lifecycle, no copies, no locks.
//   - Precomputed offset tables keep neighbor loops branch-free.
//
// Complexity:
//
//   - Index, Coords, InBounds: O(1).
//   - CostsFromWalkable: O(W×H).
//   - LineClear: O(max(|dx|,|dy|)) along the segment.
//
// Conventions:
//
//   - index = y*width + x (row-major).
//   - Cost fields: <=0 blocked, >0 movement-cost multiplier.
//   - Walkable fields: 0 blocked, nonzero passable at uniform cost 1.
package grid
