package dialect

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL Driver
)

type MysqlDialect struct{}

// An empty schema means the database selected in the DSN.
func (d *MysqlDialect) ColumnsQuery() string {
	return fmt.Sprintf(`SELECT COLUMN_NAME FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = COALESCE(NULLIF(%s, ''), DATABASE()) AND TABLE_NAME = %s ORDER BY ORDINAL_POSITION`,
		d.Placeholder(0), d.Placeholder(1))
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) GetSchemaName(input string) string {
	return DefaultGetSchemaName(input)
}
