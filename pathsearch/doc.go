// Package pathsearch finds least-cost routes across a terrain.Grid and reports
// the order in which cells were finalized, so callers can replay the search.
//
// Overview:
//
//   - One engine, Search, runs a priority-driven expansion parameterized by a
//     KeyFunc. With the key equal to the accumulated cost it is Dijkstra's
//     uniform-cost search; adding the Chebyshev distance to the goal turns it
//     into A*.
//   - Moves are the 4 axis-aligned steps; entering a cell costs that cell's
//     terrain cost. Impassable cells are never entered.
//   - The frontier has no decrease-key. Improved cells are pushed again and
//     stale entries are dropped on pop by the visited check.
//
// Result contract:
//
//   - Found:   true iff the goal was popped.
//   - Cost:    accumulated cost of the path, or NotFound (-1).
//   - Trace:   every finalized cell in pop order, goal included when found.
//     Empty when an endpoint is out of bounds or impassable; partial when the
//     goal is unreachable or the search was cancelled.
//   - Path:    source→goal, BOTH endpoints included. Source == goal gives
//     [source] at cost 0. Nil when not found.
//   - Parents: the predecessor table; Parents.PathTo(goal) reproduces Path.
//
// "No path" is a normal result, never an error. Errors are reserved for a nil
// grid or key function, invalid options, a cancelled context, an exhausted
// expansion budget or a failing OnVisit hook.
//
// Determinism:
//
//	Neighbors are relaxed in the fixed order +x, +y, −x, −y and equal keys
//	pop in insertion order, so repeated searches yield identical traces.
//
// Complexity (V = N² cells):
//
//   - Time:  O(V log V); each cell has at most 4 incoming relaxations.
//   - Space: O(V) for the dense distance, predecessor and visited tables,
//     plus up to 4V frontier entries under lazy deletion.
//
// Concurrency:
//
//	All per-search state is owned by the call. A terrain.Grid is read-only and
//	may be shared by concurrent searches; Compare does exactly that.
package pathsearch
