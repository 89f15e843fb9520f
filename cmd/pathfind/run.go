package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/terrainpath/pathsearch"
	"github.com/katalvlaran/terrainpath/terrain"
	"github.com/katalvlaran/terrainpath/terrainio"
)

var (
	errNoTerrain = errors.New("terrain source required: --csv, or --db with --map")
	errBadCell   = errors.New("cell must be x,y")
	errBadCost   = errors.New("cost override must be label=value")
)

// point is the JSON form of a cell.
type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// searchOutput is the JSON form of a pathsearch.Result.
type searchOutput struct {
	Algorithm string    `json:"algorithm"`
	Found     bool      `json:"found"`
	Cost      int64     `json:"cost"`
	Path      []point   `json:"path"`
	Visited   int       `json:"visited"`
	Trace     []point   `json:"trace,omitempty"`
	Frames    [][]point `json:"frames,omitempty"`
}

type compareOutput struct {
	Dijkstra searchOutput `json:"dijkstra"`
	AStar    searchOutput `json:"astar"`
	Saved    int          `json:"saved"`
}

func runImport(ctx context.Context, cmd *cli.Command) error {
	size := int(cmd.Int("size"))
	records, err := terrainio.LoadCSVFile(cmd.String("csv"))
	if err != nil {
		return err
	}
	// build once so a corrupt file never reaches the store
	if _, err = terrain.New(size, records); err != nil {
		return fmt.Errorf("validate %s: %w", cmd.String("csv"), err)
	}

	store, err := terrainio.Open(cmd.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	if err = store.SaveMap(ctx, cmd.String("map"), size, records); err != nil {
		return err
	}
	log.Printf("imported %d records into map %q (%d×%d)", len(records), cmd.String("map"), size, size)

	return nil
}

func runMaps(ctx context.Context, cmd *cli.Command) error {
	store, err := terrainio.Open(cmd.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.Maps(ctx)
	if err != nil {
		return err
	}
	out := cmd.Root().Writer
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
	return nil
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	alg, err := pathsearch.ParseAlgorithm(cmd.String("algo"))
	if err != nil {
		return err
	}
	q, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}
	defer q.cancel()

	res, err := pathsearch.Run(alg, q.grid, q.from, q.to, q.opts...)
	if err != nil {
		return err
	}
	q.diagnose(res)

	out := toOutput(string(alg), res, cmd.Bool("trace"))
	if size := int(cmd.Int("frame-size")); size > 0 {
		for _, f := range res.Frames(size) {
			out.Frames = append(out.Frames, toPoints(f))
		}
	}
	return writeJSON(cmd.Root().Writer, out)
}

func runCompare(ctx context.Context, cmd *cli.Command) error {
	q, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}
	defer q.cancel()

	cmp, err := pathsearch.Compare(q.ctx, q.grid, q.from, q.to, q.opts...)
	if err != nil {
		return err
	}
	q.diagnose(cmp.Dijkstra)
	log.Printf("astar finalized %d fewer cells than dijkstra", cmp.Saved())

	return writeJSON(cmd.Root().Writer, compareOutput{
		Dijkstra: toOutput(string(pathsearch.AlgorithmDijkstra), cmp.Dijkstra, false),
		AStar:    toOutput(string(pathsearch.AlgorithmAStar), cmp.AStar, false),
		Saved:    cmp.Saved(),
	})
}

// query bundles everything a search needs.
type query struct {
	ctx      context.Context
	cancel   context.CancelFunc
	grid     *terrain.Grid
	from, to terrain.Cell
	opts     []pathsearch.Option
}

func prepare(ctx context.Context, cmd *cli.Command) (*query, error) {
	from, err := parseCell(cmd.String("from"))
	if err != nil {
		return nil, fmt.Errorf("--from: %w", err)
	}
	to, err := parseCell(cmd.String("to"))
	if err != nil {
		return nil, fmt.Errorf("--to: %w", err)
	}
	costOpts, err := parseCosts(cmd.StringSlice("cost"))
	if err != nil {
		return nil, err
	}
	g, err := loadGrid(ctx, cmd, costOpts)
	if err != nil {
		return nil, err
	}

	q := &query{grid: g, from: from, to: to}
	q.ctx, q.cancel = context.WithCancel(ctx)
	if d := cmd.Duration("timeout"); d > 0 {
		q.cancel()
		q.ctx, q.cancel = context.WithTimeout(ctx, d)
	}
	q.opts = []pathsearch.Option{
		pathsearch.WithContext(q.ctx),
		pathsearch.WithMaxExpansions(int(cmd.Int("max-expansions"))),
	}
	return q, nil
}

// diagnose logs why a search came back empty.
func (q *query) diagnose(res pathsearch.Result) {
	switch {
	case res.Found:
		log.Printf("path %v→%v: cost %d, %d cells, %d visited", q.from, q.to, res.Cost, len(res.Path), len(res.Trace))
	case !q.grid.InBounds(q.from) || !q.grid.InBounds(q.to):
		log.Printf("no path: endpoint outside the %d×%d grid", q.grid.Size(), q.grid.Size())
	case !q.grid.Passable(q.from) || !q.grid.Passable(q.to):
		log.Printf("no path: endpoint is impassable")
	case !q.grid.Connected(q.from, q.to):
		log.Printf("no path: %v and %v lie in different regions of %d (%d cells searched)",
			q.from, q.to, len(q.grid.Regions()), len(res.Trace))
	default:
		log.Printf("no path after %d cells", len(res.Trace))
	}
}

func loadGrid(ctx context.Context, cmd *cli.Command, opts []terrain.Option) (*terrain.Grid, error) {
	if db, name := cmd.String("db"), cmd.String("map"); db != "" && name != "" {
		store, err := terrainio.Open(db)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Grid(ctx, name, opts...)
	}
	if path := cmd.String("csv"); path != "" {
		records, err := terrainio.LoadCSVFile(path)
		if err != nil {
			return nil, err
		}
		return terrain.New(int(cmd.Int("size")), records, opts...)
	}
	return nil, errNoTerrain
}

// parseCell reads "x,y".
func parseCell(s string) (terrain.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return terrain.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return terrain.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return terrain.Cell{}, fmt.Errorf("%w: %q", errBadCell, s)
	}
	return terrain.Cell{X: x, Y: y}, nil
}

// parseCosts turns label=value pairs into terrain options; "inf" means impassable.
func parseCosts(pairs []string) ([]terrain.Option, error) {
	opts := make([]terrain.Option, 0, len(pairs))
	for _, p := range pairs {
		label, val, ok := strings.Cut(p, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("%w: %q", errBadCost, p)
		}
		val = strings.ToLower(strings.TrimSpace(val))
		if val == "inf" || val == "impassable" {
			opts = append(opts, terrain.WithCost(terrain.Label(label), terrain.Impassable))
			continue
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadCost, p)
		}
		opts = append(opts, terrain.WithCost(terrain.Label(label), terrain.Cost(n)))
	}
	return opts, nil
}

func toOutput(alg string, res pathsearch.Result, withTrace bool) searchOutput {
	out := searchOutput{
		Algorithm: alg,
		Found:     res.Found,
		Cost:      int64(res.Cost),
		Path:      toPoints(res.Path),
		Visited:   len(res.Trace),
	}
	if withTrace {
		out.Trace = toPoints(res.Trace)
	}
	return out
}

func toPoints(cells []terrain.Cell) []point {
	out := make([]point, len(cells))
	for i, c := range cells {
		out[i] = point{X: c.X, Y: c.Y}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
