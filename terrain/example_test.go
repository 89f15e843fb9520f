// File: terrain/example_test.go
package terrain_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/terrainpath/terrain"
)

// ExampleNew builds a 3×3 map from ingested records.
// Scenario:
//
//   - Unassigned cells default to grass (cost 3).
//   - A road runs along the top row; the centre is an obstacle.
//   - Labels are matched case-insensitively.
func ExampleNew() {
	records := []terrain.Record{
		{X: 0, Y: 0, Type: "road"},
		{X: 1, Y: 0, Type: "road"},
		{X: 2, Y: 0, Type: "road"},
		{X: 1, Y: 1, Type: "Obstacle"},
		{X: 2, Y: 2, Type: "water"},
	}
	g, err := terrain.New(3, records)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for y := 0; y < g.Size(); y++ {
		row := make([]string, 0, g.Size())
		for x := 0; x < g.Size(); x++ {
			c := g.Cost(terrain.Cell{X: x, Y: y})
			if c == terrain.Impassable {
				row = append(row, "#")
				continue
			}
			row = append(row, fmt.Sprint(int64(c)))
		}
		fmt.Println(strings.Join(row, " "))
	}

	// Output:
	// 1 1 1
	// 3 # 3
	// 3 3 5
}
