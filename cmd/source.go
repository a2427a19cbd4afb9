package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aaschema/internal/dialect"
	"aaschema/internal/header"
)

// source is one header to map: a file or a database table.
type source struct {
	Name    string
	Columns []string
}

var (
	tableName  string
	schemaName string
)

func addTableFlags(c *cobra.Command) {
	c.Flags().StringVar(&tableName, "table", "", "read the header from this table of the active database instead of files")
	c.Flags().StringVar(&schemaName, "schema", "", "schema of --table (dialect default when empty)")
}

// readTable reads the header of --table using the active database config.
func readTable(ctx context.Context) (source, error) {
	config, err := GetActiveDBConfig()
	if err != nil {
		return source{}, err
	}

	db, err := sql.Open(config.Driver, config.DSN)
	if err != nil {
		return source{}, fmt.Errorf("failed to open db: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return source{}, fmt.Errorf("failed to connect to db: %w", err)
	}
	zap.S().Infow("Connected", "database", config.Name, "driver", config.Driver)

	columns, err := header.FromTable(ctx, db, dialect.GetDialect(config.Driver), schemaName, tableName)
	if err != nil {
		return source{}, err
	}
	return source{Name: tableName, Columns: columns}, nil
}

// readFile reads one column_headers.tsv file.
func readFile(path string) (source, error) {
	columns, err := header.ReadFile(path)
	if err != nil {
		return source{}, err
	}
	return source{Name: path, Columns: columns}, nil
}
