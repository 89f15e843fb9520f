package pathsearch

import "github.com/katalvlaran/terrainpath/terrain"

// none marks a cell without predecessor.
const none = -1

// Predecessors is the predecessor table of one search: for every reached cell,
// the cell it was last improved from. The zero value is an empty table.
type Predecessors struct {
	grid   *terrain.Grid
	source terrain.Cell
	prev   []int
}

// Of returns the predecessor of c, or ok=false if c has none (it is the
// source, was never reached, or lies outside the grid).
func (p Predecessors) Of(c terrain.Cell) (terrain.Cell, bool) {
	if p.grid == nil || !p.grid.InBounds(c) {
		return terrain.Cell{}, false
	}
	pi := p.prev[p.grid.Index(c)]
	if pi == none {
		return terrain.Cell{}, false
	}
	return p.grid.Coordinate(pi), true
}

// PathTo walks predecessor links back from goal until the source and returns
// the cells in source→goal order, both endpoints included. It returns nil if
// the chain does not end at the source.
// Complexity: O(path length).
func (p Predecessors) PathTo(goal terrain.Cell) []terrain.Cell {
	if p.grid == nil || !p.grid.InBounds(goal) {
		return nil
	}
	// build reversed path; a chain can never be longer than the grid
	path := []terrain.Cell{goal}
	for at := p.grid.Index(goal); p.prev[at] != none; {
		at = p.prev[at]
		path = append(path, p.grid.Coordinate(at))
		if len(path) > len(p.prev) {
			return nil
		}
	}
	if path[len(path)-1] != p.source {
		return nil
	}
	// reverse to get source → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
