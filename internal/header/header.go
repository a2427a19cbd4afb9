// Package header reads the ordered column names of a data feed, either from
// the column_headers.tsv file shipped with each delivery or from a table the
// feed was loaded into.
package header

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"aaschema/internal/dialect"
)

// ErrEmptyHeader is returned when a source yields no column names.
var ErrEmptyHeader = errors.New("header has no columns")

// Read returns the first tab separated record of r.
func Read(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	record, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	names := make([]string, 0, len(record))
	for _, name := range record {
		names = append(names, strings.TrimSpace(name))
	}
	if len(names) == 1 && names[0] == "" {
		return nil, ErrEmptyHeader
	}
	return names, nil
}

// ReadFile reads the header of the file at path.
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open header file: %w", err)
	}
	defer file.Close()

	names, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return names, nil
}

// FromTable lists the columns of schemaName.table in ordinal order.
func FromTable(ctx context.Context, db *sql.DB, d dialect.Dialect, schemaName, table string) ([]string, error) {
	target := d.GetSchemaName(schemaName)

	rows, err := db.QueryContext(ctx, d.ColumnsQuery(), target, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name (table: %s): %w", table, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("table %s: %w", table, ErrEmptyHeader)
	}
	return names, nil
}
