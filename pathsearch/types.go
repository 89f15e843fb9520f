// Package pathsearch defines options, results and sentinel errors for grid
// shortest-path searches.
package pathsearch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/terrainpath/terrain"
)

// Sentinel errors returned by searches.
var (
	// ErrNilGrid indicates that a nil *terrain.Grid was passed.
	ErrNilGrid = errors.New("pathsearch: grid is nil")

	// ErrNilKey indicates that Search was called without a key function.
	ErrNilKey = errors.New("pathsearch: key function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathsearch: invalid option supplied")

	// ErrBudgetExceeded indicates the search finalized MaxExpansions cells
	// without reaching the goal.
	ErrBudgetExceeded = errors.New("pathsearch: expansion budget exceeded")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("pathsearch: unknown algorithm")
)

// NotFound is the Cost reported when no path exists.
const NotFound terrain.Cost = -1

// KeyFunc computes the frontier priority of a cell reached at the given
// accumulated cost.
type KeyFunc func(c terrain.Cell, accumulated terrain.Cost) int64

// Algorithm names a search variant.
type Algorithm string

const (
	// AlgorithmDijkstra is uniform-cost search.
	AlgorithmDijkstra Algorithm = "dijkstra"
	// AlgorithmAStar is heuristic search with the Chebyshev distance.
	AlgorithmAStar Algorithm = "astar"
)

// ParseAlgorithm accepts "dijkstra"/"ucs" and "astar"/"a*"/"a-star", case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra", "ucs", "uniform":
		return AlgorithmDijkstra, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Options configures a search.
type Options struct {
	// Ctx is checked once per main-loop iteration.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of finalized cells.
	// A value of 0 disables the cap.
	MaxExpansions int

	// OnVisit is called for each finalized cell with its accumulated cost.
	// Returning an error aborts the search.
	OnVisit func(c terrain.Cell, cost terrain.Cost) error

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for a search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no expansion cap
// and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnVisit:       func(terrain.Cell, terrain.Cost) error { return nil },
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of finalized cells.
//
//	n > 0:  stop with ErrBudgetExceeded after n cells
//	n == 0: no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnVisit registers a hook run for every finalized cell.
func WithOnVisit(fn func(c terrain.Cell, cost terrain.Cost) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of one search. See the package documentation for the
// exact contract of each field.
type Result struct {
	Found   bool
	Cost    terrain.Cost
	Trace   []terrain.Cell
	Path    []terrain.Cell
	Parents Predecessors
}

// notFound builds a "no path" result carrying the partial trace.
func notFound(trace []terrain.Cell, parents Predecessors) Result {
	return Result{Cost: NotFound, Trace: trace, Parents: parents}
}

// Frames splits the trace into consecutive batches of at most batch cells,
// for progressive replay. batch < 1 yields a single frame. The frames share
// memory with Trace.
func (r Result) Frames(batch int) [][]terrain.Cell {
	if len(r.Trace) == 0 {
		return nil
	}
	if batch < 1 {
		batch = len(r.Trace)
	}
	frames := make([][]terrain.Cell, 0, (len(r.Trace)+batch-1)/batch)
	for i := 0; i < len(r.Trace); i += batch {
		end := i + batch
		if end > len(r.Trace) {
			end = len(r.Trace)
		}
		frames = append(frames, r.Trace[i:end:end])
	}
	return frames
}
