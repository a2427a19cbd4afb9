package dialect

import (
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL Driver
)

type PostgresDialect struct{}

func (d *PostgresDialect) ColumnsQuery() string {
	return fmt.Sprintf(`SELECT column_name FROM information_schema.columns WHERE table_schema = %s AND table_name = %s ORDER BY ordinal_position`,
		d.Placeholder(0), d.Placeholder(1))
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

// Tables land in public unless told otherwise.
func (d *PostgresDialect) GetSchemaName(input string) string {
	if input == "" {
		return "public"
	}
	return input
}
