package dialect

// Dialect abstracts the database-specific parts of reading a table's header.
type Dialect interface {
	// ColumnsQuery lists the column names of one table in ordinal order.
	// It binds two parameters: schema, then table.
	ColumnsQuery() string

	// Helpers
	Placeholder(index int) string // Returns ?, $1, @p1, etc.
	GetSchemaName(input string) string
}
