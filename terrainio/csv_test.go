package terrainio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrainpath/terrain"
	"github.com/katalvlaran/terrainpath/terrainio"
)

// TestReadCSV_Basic parses the layout used by the exported map data.
func TestReadCSV_Basic(t *testing.T) {
	in := "x,y,type\n0,0,road\n1,0,Grass\n\n2,1,Obstacle\n"
	records, err := terrainio.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []terrain.Record{
		{X: 0, Y: 0, Type: "road"},
		{X: 1, Y: 0, Type: "Grass"},
		{X: 2, Y: 1, Type: "Obstacle"},
	}, records)
}

// TestReadCSV_ColumnOrder accepts any column order, case and extra columns.
func TestReadCSV_ColumnOrder(t *testing.T) {
	in := "\ufeffType, note ,Y,X\nwater,lake,4,3\n dirt ,,0, 1\n"
	records, err := terrainio.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []terrain.Record{
		{X: 3, Y: 4, Type: "water"},
		{X: 1, Y: 0, Type: "dirt"},
	}, records)
}

// TestReadCSV_HeaderOnly yields no records.
func TestReadCSV_HeaderOnly(t *testing.T) {
	records, err := terrainio.ReadCSV(strings.NewReader("x,y,type\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestReadCSV_Errors covers missing columns and malformed rows.
func TestReadCSV_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", terrainio.ErrMissingColumn},
		{"NoX", "y,type\n1,road\n", terrainio.ErrMissingColumn},
		{"NoY", "x,type\n1,road\n", terrainio.ErrMissingColumn},
		{"NoType", "x,y\n1,2\n", terrainio.ErrMissingColumn},
		{"BadX", "x,y,type\na,1,road\n", terrainio.ErrMalformedRecord},
		{"BadY", "x,y,type\n1,2.5,road\n", terrainio.ErrMalformedRecord},
		{"ShortRow", "x,y,type\n1,2\n", terrainio.ErrMalformedRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrainio.ReadCSV(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestLoadCSVFile reads from disk and reports missing files.
func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y,type\n2,2,water\n"), 0o600))

	records, err := terrainio.LoadCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, []terrain.Record{{X: 2, Y: 2, Type: "water"}}, records)

	_, err = terrainio.LoadCSVFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
