// Package terrain defines cells, costs, labels, options and sentinel errors
// for terrain grids.
package terrain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for terrain construction.
var (
	// ErrInvalidSize indicates a grid dimension below 1.
	ErrInvalidSize = errors.New("terrain: grid size must be at least 1")
	// ErrInvalidCost indicates a cost table entry that is neither Impassable nor
	// within [1, MaxCost(N)].
	ErrInvalidCost = errors.New("terrain: traversal cost out of range")
	// ErrUnknownLabel indicates a terrain label with no entry in the cost table.
	ErrUnknownLabel = errors.New("terrain: unknown terrain label")
	// ErrOutOfBounds indicates a record addressing a cell outside the grid.
	ErrOutOfBounds = errors.New("terrain: cell out of bounds")
)

// Cost is the price of stepping into a cell.
type Cost int64

// Impassable marks a cell that can never be entered.
const Impassable Cost = math.MaxInt64

// Cell addresses one grid square. Two cells are the same cell iff their
// coordinates are equal.
type Cell struct {
	X, Y int
}

// String renders the cell as "x,y", the same form the CLI accepts.
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Label names a terrain type.
type Label string

// Recognized terrain labels.
const (
	Road     Label = "road"
	Dirt     Label = "dirt"
	Grass    Label = "grass"
	Water    Label = "water"
	Obstacle Label = "obstacle"
)

// normalize lower-cases and trims a raw label so "Grass" and " grass" resolve alike.
func normalize(raw string) Label {
	return Label(strings.ToLower(strings.TrimSpace(raw)))
}

// CostTable maps terrain labels to traversal costs.
type CostTable map[Label]Cost

// DefaultCosts returns the stock table: road=1, dirt=2, grass=3, water=5,
// obstacle=Impassable.
func DefaultCosts() CostTable {
	return CostTable{
		Road:     1,
		Dirt:     2,
		Grass:    3,
		Water:    5,
		Obstacle: Impassable,
	}
}

// clone returns an independent copy with normalized keys.
func (t CostTable) clone() CostTable {
	out := make(CostTable, len(t))
	for l, c := range t {
		out[normalize(string(l))] = c
	}
	return out
}

// MaxCost returns the largest finite cost accepted for an n×n grid. With every
// cost at most MaxCost(n), a path through all n² cells plus a distance
// estimate of up to n still fits in an int64.
func MaxCost(n int) Cost {
	if n < 1 {
		return 0
	}
	cells := int64(n) * int64(n)
	return Cost((math.MaxInt64 - int64(n)) / cells)
}

// validate rejects costs below 1 or above limit. Impassable is always allowed.
// Zero or negative steps would break the heuristic search's admissibility.
func (t CostTable) validate(limit Cost) error {
	for l, c := range t {
		if c < 1 {
			return fmt.Errorf("%w: %q=%d is below 1", ErrInvalidCost, l, c)
		}
		if c != Impassable && c > limit {
			return fmt.Errorf("%w: %q=%d exceeds %d", ErrInvalidCost, l, c, limit)
		}
	}
	return nil
}

// Record is one ingested terrain assignment: the cell (X, Y) has type Type.
type Record struct {
	X, Y int
	Type string
}

// Options configures grid construction.
type Options struct {
	// Costs is the label→cost table used to resolve record labels.
	Costs CostTable
	// DefaultLabel is assigned to every cell before records are applied.
	DefaultLabel Label
}

// Option represents a functional option for grid construction.
type Option func(*Options)

// DefaultOptions returns DefaultCosts with Grass as the default label.
func DefaultOptions() Options {
	return Options{
		Costs:        DefaultCosts(),
		DefaultLabel: Grass,
	}
}

// WithCosts replaces the whole cost table. A nil table is ignored.
func WithCosts(table CostTable) Option {
	return func(o *Options) {
		if table != nil {
			o.Costs = table.clone()
		}
	}
}

// WithCost sets the cost of a single label, adding it if absent.
func WithCost(label Label, cost Cost) Option {
	return func(o *Options) {
		if o.Costs == nil {
			o.Costs = CostTable{}
		}
		o.Costs[normalize(string(label))] = cost
	}
}

// WithDefaultLabel sets the label given to cells no record mentions.
func WithDefaultLabel(label Label) Option {
	return func(o *Options) {
		o.DefaultLabel = normalize(string(label))
	}
}
