package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/terrainpath/frontier"
	"github.com/katalvlaran/terrainpath/terrain"
)

// Search finds a least-cost path from source to goal on g, ordering the
// frontier by key. It is the engine behind Dijkstra and AStar.
//
// Preconditions and fast-fail (in order):
//  1. g must be non-nil (ErrNilGrid) and key non-nil (ErrNilKey).
//  2. Options must be valid (ErrOptionViolation).
//  3. source and goal must be in bounds and passable; otherwise the result is
//     NotFound with an empty trace, and no frontier work is done.
//
// Loop, per iteration:
//  1. Check cancellation and the expansion budget.
//  2. Pop the minimum-key entry; skip it if already visited (stale).
//  3. Mark visited, append to the trace, call OnVisit.
//  4. Stop if it is the goal.
//  5. Relax the passable 4-neighbors.
//
// Costs and keys never overflow: terrain caps every finite cost at
// terrain.MaxCost(N), so any path cost plus a Chebyshev estimate fits in an
// int64. A custom KeyFunc must stay within that range too.
//
// Complexity: O(V log V) time, O(V) space, V = N².
func Search(g *terrain.Grid, source, goal terrain.Cell, key KeyFunc, opts ...Option) (Result, error) {
	if g == nil {
		return notFound(nil, Predecessors{}), ErrNilGrid
	}
	if key == nil {
		return notFound(nil, Predecessors{}), ErrNilKey
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return notFound(nil, Predecessors{}), cfg.err
	}

	// Passable is false for out-of-bounds cells too.
	if !g.Passable(source) || !g.Passable(goal) {
		return notFound(nil, Predecessors{}), nil
	}

	r := newRunner(g, source, goal, key, cfg)
	r.init()

	return r.process()
}

// runner holds the mutable state of a single search.
type runner struct {
	g      *terrain.Grid
	opts   Options
	source terrain.Cell
	goal   terrain.Cell
	key    KeyFunc

	dist    []terrain.Cost // best accumulated cost per cell index; Impassable = unseen
	prev    []int          // predecessor index per cell index; none = -1
	visited []bool         // finalized cells
	pq      *frontier.Frontier
	trace   []terrain.Cell
	nbrs    []terrain.Cell // scratch buffer for neighbor lookups
}

func newRunner(g *terrain.Grid, source, goal terrain.Cell, key KeyFunc, cfg Options) *runner {
	n := g.Len()

	return &runner{
		g:       g,
		opts:    cfg,
		source:  source,
		goal:    goal,
		key:     key,
		dist:    make([]terrain.Cost, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      frontier.New(n),
		nbrs:    make([]terrain.Cell, 0, 4),
	}
}

// init sets every distance to infinity and every predecessor to none, then
// seeds the frontier with the source at cost 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = terrain.Impassable
		r.prev[i] = none
	}
	r.dist[r.g.Index(r.source)] = 0
	r.pq.Push(r.source, r.key(r.source, 0))
}

// process is the main expansion loop.
func (r *runner) process() (Result, error) {
	ctx := r.opts.Ctx
	for !r.pq.Empty() {
		select {
		case <-ctx.Done():
			return notFound(r.trace, r.parents()), ctx.Err()
		default:
		}
		if r.opts.MaxExpansions > 0 && len(r.trace) >= r.opts.MaxExpansions {
			return notFound(r.trace, r.parents()), fmt.Errorf("%w: %d cells finalized", ErrBudgetExceeded, len(r.trace))
		}

		u, _, _ := r.pq.Pop()
		ui := r.g.Index(u)
		if r.visited[ui] {
			continue // stale entry
		}
		r.visited[ui] = true
		r.trace = append(r.trace, u)
		if err := r.opts.OnVisit(u, r.dist[ui]); err != nil {
			return notFound(r.trace, r.parents()), fmt.Errorf("pathsearch: OnVisit error at %v: %w", u, err)
		}

		if u == r.goal {
			parents := r.parents()
			return Result{
				Found:   true,
				Cost:    r.dist[ui],
				Trace:   r.trace,
				Path:    parents.PathTo(r.goal),
				Parents: parents,
			}, nil
		}

		r.relax(u, ui)
	}

	return notFound(r.trace, r.parents()), nil
}

// relax tries to improve every passable neighbor of u. Distance, predecessor
// and the frontier push change together, and only on strict improvement.
func (r *runner) relax(u terrain.Cell, ui int) {
	du := r.dist[ui]
	r.nbrs = r.g.Neighbors(r.nbrs[:0], u)
	for _, v := range r.nbrs {
		vi := r.g.Index(v)
		w := r.g.Cost(v)
		if w >= terrain.Impassable-du {
			continue // unreachable with terrain.MaxCost in force
		}
		cand := du + w
		if cand >= r.dist[vi] {
			continue
		}
		r.dist[vi] = cand
		r.prev[vi] = ui
		r.pq.Push(v, r.key(v, cand))
	}
}

// parents exposes the predecessor table of this run.
func (r *runner) parents() Predecessors {
	return Predecessors{grid: r.g, source: r.source, prev: r.prev}
}
