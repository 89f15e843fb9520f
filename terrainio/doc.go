// Package terrainio ingests terrain records from tabular sources and persists
// named maps.
//
// What:
//
//   - ReadCSV / LoadCSVFile parse (x, y, type) rows into []terrain.Record.
//     The header must name the x, y and type columns, in any order and case.
//   - Store keeps named maps in SQLite (modernc.org/sqlite, pure Go). Records are
//     stored with their ingestion sequence so last-write-wins survives a round trip.
//   - Store.Grid rebuilds a terrain.Grid straight from a stored map.
//
// Errors:
//
//   - ErrMissingColumn:   the CSV header lacks x, y or type.
//   - ErrMalformedRecord: a row has a non-integer coordinate or too few fields.
//   - ErrMapNotFound:     no stored map has the requested name.
//   - ErrInvalidMap:      a map name is empty or its size is below 1.
package terrainio
