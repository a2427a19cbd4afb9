package header_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aaschema/internal/dialect"
	"aaschema/internal/header"
)

func TestRead(t *testing.T) {
	names, err := header.Read(strings.NewReader("accept_language\tbrowser\tpost_zip\tevar1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"accept_language", "browser", "post_zip", "evar1"}, names)
}

func TestRead_OnlyFirstRecord(t *testing.T) {
	names, err := header.Read(strings.NewReader("a\tb\n1\t2\t3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestRead_KeepsDuplicatesAndOddNames(t *testing.T) {
	names, err := header.Read(strings.NewReader("zip\tsociallink (deprecated)\tzip\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"zip", "sociallink (deprecated)", "zip"}, names)
}

func TestRead_Empty(t *testing.T) {
	_, err := header.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, header.ErrEmptyHeader)

	_, err = header.Read(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, header.ErrEmptyHeader)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "column_headers.tsv")
	require.NoError(t, os.WriteFile(path, []byte("zip\tprop5\n"), 0o644))

	names, err := header.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"zip", "prop5"}, names)

	_, err = header.ReadFile(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)
}

// columnsDriver serves a fixed column list for any query.
type columnsDriver struct {
	columns []string
	args    *[]driver.Value
}

func (d columnsDriver) Open(string) (driver.Conn, error) { return columnsConn(d), nil }

type columnsConn columnsDriver

func (c columnsConn) Prepare(string) (driver.Stmt, error) { return columnsStmt(c), nil }
func (c columnsConn) Close() error                        { return nil }
func (c columnsConn) Begin() (driver.Tx, error)           { return nil, errors.New("not supported") }

type columnsStmt columnsConn

func (s columnsStmt) Close() error  { return nil }
func (s columnsStmt) NumInput() int { return -1 }
func (s columnsStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, errors.New("not supported")
}
func (s columnsStmt) Query(args []driver.Value) (driver.Rows, error) {
	*s.args = args
	return &columnsRows{columns: s.columns}, nil
}

type columnsRows struct {
	columns []string
	pos     int
}

func (r *columnsRows) Columns() []string { return []string{"column_name"} }
func (r *columnsRows) Close() error      { return nil }
func (r *columnsRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.columns) {
		return io.EOF
	}
	dest[0] = r.columns[r.pos]
	r.pos++
	return nil
}

func openFake(t *testing.T, name string, columns []string) (*sql.DB, *[]driver.Value) {
	t.Helper()
	args := new([]driver.Value)
	sql.Register(name, columnsDriver{columns: columns, args: args})
	db, err := sql.Open(name, "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, args
}

func TestFromTable(t *testing.T) {
	db, args := openFake(t, "header-fake-columns", []string{"hit_time_gmt", "post_zip", "evar1"})

	names, err := header.FromTable(context.Background(), db, &dialect.PostgresDialect{}, "", "hit_data")
	require.NoError(t, err)
	assert.Equal(t, []string{"hit_time_gmt", "post_zip", "evar1"}, names)
	assert.Equal(t, []driver.Value{"public", "hit_data"}, *args)
}

func TestFromTable_NoColumns(t *testing.T) {
	db, _ := openFake(t, "header-fake-empty", nil)

	_, err := header.FromTable(context.Background(), db, &dialect.MysqlDialect{}, "feeds", "missing")
	assert.ErrorIs(t, err, header.ErrEmptyHeader)
}
