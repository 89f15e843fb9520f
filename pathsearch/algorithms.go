package pathsearch

import "github.com/katalvlaran/terrainpath/terrain"

// Chebyshev returns max(|a.X-b.X|, |a.Y-b.Y|).
func Chebyshev(a, b terrain.Cell) int64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return int64(dx)
	}
	return int64(dy)
}

// UniformCostKey orders the frontier by accumulated cost alone.
func UniformCostKey() KeyFunc {
	return func(_ terrain.Cell, accumulated terrain.Cost) int64 {
		return int64(accumulated)
	}
}

// ChebyshevKey orders the frontier by accumulated cost plus the Chebyshev
// distance to goal. Every step costs at least 1 and changes the distance by at
// most 1, so the estimate is admissible and consistent.
func ChebyshevKey(goal terrain.Cell) KeyFunc {
	return func(c terrain.Cell, accumulated terrain.Cost) int64 {
		return int64(accumulated) + Chebyshev(c, goal)
	}
}

// Dijkstra runs uniform-cost search from source to goal.
func Dijkstra(g *terrain.Grid, source, goal terrain.Cell, opts ...Option) (Result, error) {
	return Search(g, source, goal, UniformCostKey(), opts...)
}

// AStar runs heuristic search guided by the Chebyshev distance to goal.
// It returns the same optimal cost as Dijkstra while usually finalizing fewer cells.
func AStar(g *terrain.Grid, source, goal terrain.Cell, opts ...Option) (Result, error) {
	return Search(g, source, goal, ChebyshevKey(goal), opts...)
}

// Run dispatches to the search variant named by alg.
func Run(alg Algorithm, g *terrain.Grid, source, goal terrain.Cell, opts ...Option) (Result, error) {
	switch alg {
	case AlgorithmDijkstra:
		return Dijkstra(g, source, goal, opts...)
	case AlgorithmAStar:
		return AStar(g, source, goal, opts...)
	default:
		return notFound(nil, Predecessors{}), ErrUnknownAlgorithm
	}
}
