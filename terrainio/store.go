package terrainio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/terrainpath/terrain"
)

// Map is a named terrain map with its dimension and ordered records.
type Map struct {
	Name      string
	Size      int
	CreatedAt time.Time
	Records   []terrain.Record
}

// Store wraps a SQLite database holding named terrain maps.
// It is safe for concurrent use.
type Store struct {
	sql *sql.DB
}

// Open opens (or creates) the SQLite database at path and runs migrations.
func Open(path string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	s := &Store{sql: sqlDB}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate() error {
	version := 0
	// missing table on a fresh database leaves version at 0
	_ = s.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := s.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS maps (
				name       TEXT PRIMARY KEY,
				size       INTEGER NOT NULL,
				created_at TEXT NOT NULL
			);

			CREATE TABLE IF NOT EXISTS terrain (
				map  TEXT NOT NULL REFERENCES maps(name) ON DELETE CASCADE,
				seq  INTEGER NOT NULL,
				x    INTEGER NOT NULL,
				y    INTEGER NOT NULL,
				type TEXT NOT NULL,
				PRIMARY KEY (map, seq)
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}
	return nil
}

// SaveMap stores records under name, replacing any map with that name.
// The replacement happens in one transaction.
func (s *Store) SaveMap(ctx context.Context, name string, size int, records []terrain.Record) error {
	name = strings.TrimSpace(name)
	if name == "" || size < 1 {
		return fmt.Errorf("%w: name=%q size=%d", ErrInvalidMap, name, size)
	}

	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM terrain WHERE map = ?`, name); err != nil {
		return fmt.Errorf("clear terrain: %w", err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO maps (name, size, created_at) VALUES (?, ?, ?)`,
		name, size, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("save map: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO terrain (map, seq, x, y, type) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, r := range records {
		if _, err = stmt.ExecContext(ctx, name, i, r.X, r.Y, r.Type); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadMap returns the stored map with its records in ingestion order.
func (s *Store) LoadMap(ctx context.Context, name string) (*Map, error) {
	m := &Map{Name: name}
	var created string
	err := s.sql.QueryRowContext(ctx, `SELECT size, created_at FROM maps WHERE name = ?`, name).Scan(&m.Size, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrMapNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}
	if m.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return nil, fmt.Errorf("map %q created_at: %w", name, err)
	}

	rows, err := s.sql.QueryContext(ctx, `SELECT x, y, type FROM terrain WHERE map = ? ORDER BY seq`, name)
	if err != nil {
		return nil, fmt.Errorf("load terrain: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r terrain.Record
		if err := rows.Scan(&r.X, &r.Y, &r.Type); err != nil {
			return nil, fmt.Errorf("scan terrain: %w", err)
		}
		m.Records = append(m.Records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load terrain: %w", err)
	}

	return m, nil
}

// Maps lists stored map names in alphabetical order.
func (s *Store) Maps(ctx context.Context) ([]string, error) {
	rows, err := s.sql.QueryContext(ctx, `SELECT name FROM maps ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan map: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// DeleteMap removes a stored map. Deleting an unknown map returns ErrMapNotFound.
func (s *Store) DeleteMap(ctx context.Context, name string) error {
	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM terrain WHERE map = ?`, name); err != nil {
		return fmt.Errorf("delete terrain: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM maps WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete map: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrMapNotFound, name)
	}
	return tx.Commit()
}

// Grid builds a terrain.Grid from the stored map name.
func (s *Store) Grid(ctx context.Context, name string, opts ...terrain.Option) (*terrain.Grid, error) {
	m, err := s.LoadMap(ctx, name)
	if err != nil {
		return nil, err
	}
	g, err := terrain.New(m.Size, m.Records, opts...)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", name, err)
	}
	return g, nil
}
