// Command pathfind runs terrain shortest-path searches from the command line.
//
// It supports four subcommands:
//  1. "import"   load a terrain CSV into a SQLite map store
//  2. "maps"     list the maps in a store
//  3. "search"   run Dijkstra or A* between two cells and print the result as JSON
//  4. "compare"  run both variants concurrently and print both results
//
// Terrain comes either from a CSV file (--csv, with --size) or from a stored
// map (--db and --map). Costs per label can be overridden with --cost.
// Every flag can also be set through its PATHFIND_* environment variable.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "pathfind"
)

// defaultSize matches the dimension of the exported map data.
const defaultSize = 400

func main() {
	log.SetFlags(log.LstdFlags)
	log.SetPrefix(AppName + ": ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp assembles the command tree; results are written to out.
func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "least-cost routes across terrain grids",
		Version: Version,
		Writer:  out,
		Commands: []*cli.Command{
			importCommand(),
			mapsCommand(),
			searchCommand(),
			compareCommand(),
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "load a terrain CSV into a map store",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "csv", Usage: "terrain CSV with x,y,type columns", Required: true, Sources: cli.EnvVars("PATHFIND_CSV")},
			&cli.StringFlag{Name: "db", Usage: "SQLite map store", Required: true, Sources: cli.EnvVars("PATHFIND_DB")},
			&cli.StringFlag{Name: "map", Usage: "name to store the map under", Required: true, Sources: cli.EnvVars("PATHFIND_MAP")},
			&cli.IntFlag{Name: "size", Usage: "grid dimension N", Value: defaultSize, Sources: cli.EnvVars("PATHFIND_SIZE")},
		},
		Action: runImport,
	}
}

func mapsCommand() *cli.Command {
	return &cli.Command{
		Name:  "maps",
		Usage: "list stored maps",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Usage: "SQLite map store", Required: true, Sources: cli.EnvVars("PATHFIND_DB")},
		},
		Action: runMaps,
	}
}

func searchCommand() *cli.Command {
	flags := append(gridFlags(),
		&cli.StringFlag{Name: "algo", Usage: "dijkstra or astar", Value: "dijkstra", Sources: cli.EnvVars("PATHFIND_ALGO")},
		&cli.BoolFlag{Name: "trace", Usage: "include the visitation trace in the output"},
		&cli.IntFlag{Name: "frame-size", Usage: "also print the trace as replay batches of this many cells (0 = off)"},
	)
	return &cli.Command{
		Name:   "search",
		Usage:  "find a least-cost path between two cells",
		Flags:  flags,
		Action: runSearch,
	}
}

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:   "compare",
		Usage:  "run dijkstra and astar side by side",
		Flags:  gridFlags(),
		Action: runCompare,
	}
}

// gridFlags returns fresh instances of the flags shared by search and compare.
func gridFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "csv", Usage: "terrain CSV with x,y,type columns", Sources: cli.EnvVars("PATHFIND_CSV")},
		&cli.StringFlag{Name: "db", Usage: "SQLite map store", Sources: cli.EnvVars("PATHFIND_DB")},
		&cli.StringFlag{Name: "map", Usage: "stored map name (with --db)", Sources: cli.EnvVars("PATHFIND_MAP")},
		&cli.IntFlag{Name: "size", Usage: "grid dimension N (with --csv)", Value: defaultSize, Sources: cli.EnvVars("PATHFIND_SIZE")},
		&cli.StringFlag{Name: "from", Usage: "source cell as x,y", Required: true},
		&cli.StringFlag{Name: "to", Usage: "goal cell as x,y", Required: true},
		&cli.StringSliceFlag{Name: "cost", Usage: "label cost override as label=value (value may be inf)"},
		&cli.IntFlag{Name: "max-expansions", Usage: "give up after this many finalized cells (0 = no limit)"},
		&cli.DurationFlag{Name: "timeout", Usage: "give up after this long (0 = no limit)"},
	}
}
