package terrain

import "fmt"

// neighborOffsets lists the 4 axis-aligned moves in search order: +x, +y, −x, −y.
var neighborOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is an immutable N×N terrain map. costs[y*N+x] holds the cost of
// entering (x, y). Safe for concurrent reads.
type Grid struct {
	size  int
	costs []Cost
	table CostTable
}

// Builder accumulates terrain assignments before a Grid is built.
// A Builder is not safe for concurrent use.
type Builder struct {
	size  int
	costs []Cost
	table CostTable
}

// NewBuilder prepares an n×n grid with every cell set to the default label.
// Returns ErrInvalidSize if n < 1, ErrInvalidCost for a table entry outside
// [1, MaxCost(n)] other than Impassable, and
// ErrUnknownLabel if the default label is not in the table.
// Complexity: O(n²).
func NewBuilder(n int, opts ...Option) (*Builder, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	table := cfg.Costs.clone()
	if err := table.validate(MaxCost(n)); err != nil {
		return nil, err
	}
	def, ok := table[normalize(string(cfg.DefaultLabel))]
	if !ok {
		return nil, fmt.Errorf("%w: default label %q", ErrUnknownLabel, cfg.DefaultLabel)
	}

	costs := make([]Cost, n*n)
	for i := range costs {
		costs[i] = def
	}

	return &Builder{size: n, costs: costs, table: table}, nil
}

// Set assigns label to cell c. Later calls for the same cell overwrite earlier ones.
func (b *Builder) Set(c Cell, label string) error {
	if c.X < 0 || c.X >= b.size || c.Y < 0 || c.Y >= b.size {
		return fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, c, b.size, b.size)
	}
	cost, ok := b.table[normalize(label)]
	if !ok {
		return fmt.Errorf("%w: %q at %v", ErrUnknownLabel, label, c)
	}
	b.costs[c.Y*b.size+c.X] = cost

	return nil
}

// Apply calls Set once per record, in order, stopping at the first failure.
func (b *Builder) Apply(records []Record) error {
	for i, r := range records {
		if err := b.Set(Cell{X: r.X, Y: r.Y}, r.Type); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// Build snapshots the current assignments into an immutable Grid.
// The Builder stays usable; later Sets do not affect built grids.
func (b *Builder) Build() *Grid {
	costs := make([]Cost, len(b.costs))
	copy(costs, b.costs)

	return &Grid{size: b.size, costs: costs, table: b.table.clone()}
}

// New builds an n×n grid and applies records in order.
func New(n int, records []Record, opts ...Option) (*Grid, error) {
	b, err := NewBuilder(n, opts...)
	if err != nil {
		return nil, err
	}
	if err = b.Apply(records); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Size returns N.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells, N².
func (g *Grid) Len() int { return len(g.costs) }

// InBounds reports whether 0 ≤ c.X, c.Y < N.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// Cost returns the cost of entering c, or Impassable if c is out of bounds.
func (g *Grid) Cost(c Cell) Cost {
	if !g.InBounds(c) {
		return Impassable
	}
	return g.costs[c.Y*g.size+c.X]
}

// Passable reports whether c is in bounds and not Impassable.
func (g *Grid) Passable(c Cell) bool {
	return g.Cost(c) != Impassable
}

// Index maps an in-bounds cell to its row-major index y*N + x.
func (g *Grid) Index(c Cell) int {
	return c.Y*g.size + c.X
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.size, Y: idx / g.size}
}

// Resolve looks up the cost of a label in the grid's table.
func (g *Grid) Resolve(label string) (Cost, error) {
	cost, ok := g.table[normalize(label)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return cost, nil
}

// Neighbors appends to dst the passable 4-neighbors of c in the order
// +x, +y, −x, −y and returns the extended slice.
func (g *Grid) Neighbors(dst []Cell, c Cell) []Cell {
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.Passable(n) {
			dst = append(dst, n)
		}
	}
	return dst
}
