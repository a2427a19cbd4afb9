package dialect

import (
	"fmt"
	"strings"

	_ "github.com/sijms/go-ora/v2" // Oracle Driver
)

type OracleDialect struct{}

// ALL_TAB_COLUMNS keys tables by owner; identifiers are stored upper case.
// Oracle reads an empty owner as NULL, which falls back to the session user.
func (d *OracleDialect) ColumnsQuery() string {
	return fmt.Sprintf(`SELECT COLUMN_NAME FROM ALL_TAB_COLUMNS WHERE OWNER = NVL(%s, USER) AND TABLE_NAME = UPPER(%s) ORDER BY COLUMN_ID`,
		d.Placeholder(0), d.Placeholder(1))
}

func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) GetSchemaName(input string) string {
	return strings.ToUpper(input)
}
