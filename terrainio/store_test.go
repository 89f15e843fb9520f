package terrainio_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/terrainpath/pathsearch"
	"github.com/katalvlaran/terrainpath/terrain"
	"github.com/katalvlaran/terrainpath/terrainio"
)

// StoreSuite exercises the SQLite map store against a fresh database per test.
type StoreSuite struct {
	suite.Suite
	path  string
	store *terrainio.Store
	ctx   context.Context
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "maps.db")
	st, err := terrainio.Open(s.path)
	require.NoError(s.T(), err)
	s.store = st
}

func (s *StoreSuite) TearDownTest() {
	require.NoError(s.T(), s.store.Close())
}

// TestRoundTrip keeps record order, including overwrites of the same cell.
func (s *StoreSuite) TestRoundTrip() {
	records := []terrain.Record{
		{X: 0, Y: 0, Type: "water"},
		{X: 1, Y: 1, Type: "Obstacle"},
		{X: 0, Y: 0, Type: "road"},
	}
	require.NoError(s.T(), s.store.SaveMap(s.ctx, "island", 3, records))

	m, err := s.store.LoadMap(s.ctx, "island")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "island", m.Name)
	require.Equal(s.T(), 3, m.Size)
	require.Equal(s.T(), records, m.Records)
	require.False(s.T(), m.CreatedAt.IsZero())

	g, err := s.store.Grid(s.ctx, "island")
	require.NoError(s.T(), err)
	require.Equal(s.T(), terrain.Cost(1), g.Cost(terrain.Cell{X: 0, Y: 0}))
	require.False(s.T(), g.Passable(terrain.Cell{X: 1, Y: 1}))
}

// TestReplace overwrites a map wholesale.
func (s *StoreSuite) TestReplace() {
	require.NoError(s.T(), s.store.SaveMap(s.ctx, "m", 4, []terrain.Record{{X: 1, Y: 1, Type: "water"}, {X: 2, Y: 2, Type: "dirt"}}))
	require.NoError(s.T(), s.store.SaveMap(s.ctx, "m", 5, []terrain.Record{{X: 3, Y: 3, Type: "road"}}))

	m, err := s.store.LoadMap(s.ctx, "m")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, m.Size)
	require.Equal(s.T(), []terrain.Record{{X: 3, Y: 3, Type: "road"}}, m.Records)
}

// TestMapsAndDelete lists and removes maps.
func (s *StoreSuite) TestMapsAndDelete() {
	require.NoError(s.T(), s.store.SaveMap(s.ctx, "beta", 2, nil))
	require.NoError(s.T(), s.store.SaveMap(s.ctx, "alpha", 2, nil))

	names, err := s.store.Maps(s.ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"alpha", "beta"}, names)

	require.NoError(s.T(), s.store.DeleteMap(s.ctx, "alpha"))
	require.ErrorIs(s.T(), s.store.DeleteMap(s.ctx, "alpha"), terrainio.ErrMapNotFound)
	names, err = s.store.Maps(s.ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"beta"}, names)
}

// TestErrors covers unknown maps, invalid input and corrupt stored labels.
func (s *StoreSuite) TestErrors() {
	_, err := s.store.LoadMap(s.ctx, "nope")
	require.ErrorIs(s.T(), err, terrainio.ErrMapNotFound)
	_, err = s.store.Grid(s.ctx, "nope")
	require.ErrorIs(s.T(), err, terrainio.ErrMapNotFound)

	require.ErrorIs(s.T(), s.store.SaveMap(s.ctx, " ", 3, nil), terrainio.ErrInvalidMap)
	require.ErrorIs(s.T(), s.store.SaveMap(s.ctx, "zero", 0, nil), terrainio.ErrInvalidMap)

	require.NoError(s.T(), s.store.SaveMap(s.ctx, "bad", 2, []terrain.Record{{X: 0, Y: 0, Type: "lava"}}))
	_, err = s.store.Grid(s.ctx, "bad")
	require.ErrorIs(s.T(), err, terrain.ErrUnknownLabel)
}

// TestCorruptTimestamp reports a stored creation time that does not parse.
func (s *StoreSuite) TestCorruptTimestamp() {
	require.NoError(s.T(), s.store.SaveMap(s.ctx, "stamp", 2, nil))

	raw, err := sql.Open("sqlite", s.path)
	require.NoError(s.T(), err)
	_, err = raw.ExecContext(s.ctx, `UPDATE maps SET created_at = 'yesterday' WHERE name = ?`, "stamp")
	require.NoError(s.T(), err)
	require.NoError(s.T(), raw.Close())

	_, err = s.store.LoadMap(s.ctx, "stamp")
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "created_at")
	require.NotErrorIs(s.T(), err, terrainio.ErrMapNotFound)
}

// TestReopen checks that maps survive closing the database.
func (s *StoreSuite) TestReopen() {
	require.NoError(s.T(), s.store.SaveMap(s.ctx, "kept", 3, []terrain.Record{{X: 2, Y: 0, Type: "road"}}))
	require.NoError(s.T(), s.store.Close())

	st, err := terrainio.Open(s.path)
	require.NoError(s.T(), err)
	s.store = st

	g, err := s.store.Grid(s.ctx, "kept")
	require.NoError(s.T(), err)
	res, err := pathsearch.Dijkstra(g, terrain.Cell{X: 0, Y: 0}, terrain.Cell{X: 2, Y: 0})
	require.NoError(s.T(), err)
	require.Equal(s.T(), terrain.Cost(3+1), res.Cost)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
