// Package terrain models a fixed-size N×N terrain map as a weighted grid graph
// where each cell carries a traversal cost or is impassable.
//
// What:
//
//   - Cell addresses one square by integer (X, Y), 0 ≤ X, Y < N.
//   - CostTable maps a terrain label (road, dirt, grass, water, obstacle) to a Cost.
//   - Builder bulk-loads (x, y, label) records; Build snapshots an immutable Grid.
//   - Grid answers bounds, cost, passability and 4-neighbor queries in O(1).
//   - Regions / Connected group passable cells into 4-connected regions.
//
// Why:
//
//   - Searches read costs from a Grid many times per call; costs live in one dense
//     row-major slice (index = y*N + x), never in string-keyed maps.
//   - A built Grid has no writer, so any number of searches may share it
//     concurrently without locking.
//
// Complexity:
//
//   - NewBuilder / Build:  O(N²) time and memory.
//   - Set, Cost, InBounds: O(1).
//   - Regions:             O(N²) time and memory.
//
// Options:
//
//   - WithCosts(table):         replace the whole label→cost table.
//   - WithCost(label, cost):    override a single label.
//   - WithDefaultLabel(label):  label assigned to cells no record mentions (grass).
//
// Errors:
//
//   - ErrInvalidSize:  N < 1.
//   - ErrInvalidCost:  a table cost is < 1 or > MaxCost(N) (and not Impassable).
//   - ErrUnknownLabel: a record or the default label is missing from the table.
//   - ErrOutOfBounds:  a record addresses a cell outside the grid.
package terrain
