package terrainio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/terrainpath/terrain"
)

// Sentinel errors for ingestion and storage.
var (
	// ErrMissingColumn indicates a CSV header without x, y or type.
	ErrMissingColumn = errors.New("terrainio: missing required column")
	// ErrMalformedRecord indicates a row that cannot be parsed.
	ErrMalformedRecord = errors.New("terrainio: malformed record")
	// ErrMapNotFound indicates an unknown map name.
	ErrMapNotFound = errors.New("terrainio: map not found")
	// ErrInvalidMap indicates an empty map name or a size below 1.
	ErrInvalidMap = errors.New("terrainio: invalid map")
)

// ReadCSV parses terrain records from r. The first row is the header; blank
// lines are skipped and extra columns ignored. Rows are returned in file order.
func ReadCSV(r io.Reader) ([]terrain.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []terrain.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if isBlank(row) {
			continue
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// LoadCSVFile opens path and parses it with ReadCSV.
func LoadCSVFile(path string) ([]terrain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terrain csv: %w", err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// columns holds the positions of the required fields.
type columns struct {
	x, y, typ int
}

func columnIndex(header []string) (columns, error) {
	cols := columns{x: -1, y: -1, typ: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "x":
			cols.x = i
		case "y":
			cols.y = i
		case "type":
			cols.typ = i
		}
	}
	switch {
	case cols.x < 0:
		return cols, fmt.Errorf("%w: x", ErrMissingColumn)
	case cols.y < 0:
		return cols, fmt.Errorf("%w: y", ErrMissingColumn)
	case cols.typ < 0:
		return cols, fmt.Errorf("%w: type", ErrMissingColumn)
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (terrain.Record, error) {
	need := max(cols.x, cols.y, cols.typ)
	if len(row) <= need {
		return terrain.Record{}, fmt.Errorf("%w: %d fields, need %d", ErrMalformedRecord, len(row), need+1)
	}
	x, err := strconv.Atoi(strings.TrimSpace(row[cols.x]))
	if err != nil {
		return terrain.Record{}, fmt.Errorf("%w: x=%q", ErrMalformedRecord, row[cols.x])
	}
	y, err := strconv.Atoi(strings.TrimSpace(row[cols.y]))
	if err != nil {
		return terrain.Record{}, fmt.Errorf("%w: y=%q", ErrMalformedRecord, row[cols.y])
	}

	return terrain.Record{X: x, Y: y, Type: strings.TrimSpace(row[cols.typ])}, nil
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
