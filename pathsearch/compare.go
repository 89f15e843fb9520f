package pathsearch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/terrainpath/terrain"
)

// Comparison holds the results of both variants on the same query.
type Comparison struct {
	Dijkstra Result
	AStar    Result
}

// Saved returns how many fewer cells A* finalized than Dijkstra.
func (c Comparison) Saved() int {
	return len(c.Dijkstra.Trace) - len(c.AStar.Trace)
}

// Compare runs Dijkstra and AStar concurrently on the shared grid.
// If either search fails the other is cancelled and the first error is
// returned. An OnVisit hook passed in opts is called from both goroutines.
func Compare(ctx context.Context, g *terrain.Grid, source, goal terrain.Cell, opts ...Option) (Comparison, error) {
	eg, ctx := errgroup.WithContext(ctx)
	// ctx goes last so it overrides any WithContext in opts
	opts = append(opts[:len(opts):len(opts)], WithContext(ctx))

	var cmp Comparison
	eg.Go(func() error {
		res, err := Dijkstra(g, source, goal, opts...)
		cmp.Dijkstra = res
		return err
	})
	eg.Go(func() error {
		res, err := AStar(g, source, goal, opts...)
		cmp.AStar = res
		return err
	})
	err := eg.Wait()

	return cmp, err
}
