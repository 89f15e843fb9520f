// Package terrainpath finds least-cost routes across square terrain grids.
//
// 🚀 What is terrainpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Terrain grids: N×N cells whose entry cost comes from a label table
//		• Frontier: a min-priority queue with FIFO tie-breaking
//		• Shortest paths: Dijkstra and A* (Chebyshev heuristic) over 4-connected moves
//		• Reconstruction: predecessor chains turned into source→goal paths
//		• Storage: CSV ingestion and a SQLite map store
//
// ✨ Why choose terrainpath?
//
//   - Deterministic: identical input yields identical traces and paths
//   - Observable: every search returns its visitation order for replay
//   - Cancellable: context and expansion budgets on every search
//   - Extensible: custom cost tables and OnVisit hooks
//
// Packages:
//
//	terrain/       Grid, Builder, cost tables, neighbor order, connected regions
//	frontier/      the priority queue used by every search
//	pathsearch/    Search, Dijkstra, AStar, Compare and Predecessors
//	terrainio/     CSV reader and the SQLite-backed map Store
//	cmd/pathfind   command line front end (import, maps, search, compare)
//
// Quick ASCII example (# is an obstacle, S and G the endpoints):
//
//	S . .
//	. # .
//	. . G
//
// Both searches return cost 12 on an all-grass grid: four moves of cost 3.
//
//	go get github.com/katalvlaran/terrainpath
package terrainpath
