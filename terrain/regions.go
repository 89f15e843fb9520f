package terrain

// Regions finds all 4-connected regions of passable cells.
// Regions are discovered in row-major order of their first cell; cells inside
// a region are listed in BFS order from that cell.
//
// Time:   O(N²).
// Memory: O(N²) for the seen flags and output.
func (g *Grid) Regions() [][]Cell {
	seen := make([]bool, len(g.costs))
	var regions [][]Cell
	var nbrs []Cell

	for i, cost := range g.costs {
		if cost == Impassable || seen[i] {
			continue
		}
		seen[i] = true
		queue := []int{i}
		var region []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			region = append(region, u)
			nbrs = g.Neighbors(nbrs[:0], u)
			for _, v := range nbrs {
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// Connected reports whether a and b are both passable and lie in the same
// region, i.e. whether any path between them exists.
// Complexity: O(N²) worst case.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.costs))
	seen[g.Index(a)] = true
	queue := []Cell{a}
	var nbrs []Cell

	for qi := 0; qi < len(queue); qi++ {
		nbrs = g.Neighbors(nbrs[:0], queue[qi])
		for _, v := range nbrs {
			if v == b {
				return true
			}
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}
