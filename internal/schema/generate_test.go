package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"aaschema/internal/format"
	"aaschema/internal/schema"
)

func TestGenerate_Avro(t *testing.T) {
	r, _ := newObservedResolver(t, schema.DefaultTables())

	s, err := r.Generate([]string{"zip", "post_mobileupgrades", "prop5", "browser", "visit_num"}, format.Avro)
	require.NoError(t, err)

	assert.Equal(t, format.Avro, s.Format)
	assert.Equal(t, map[string]string{
		"zip":                 "string",
		"post_mobileupgrades": "null",
		"prop5":               "string",
		"browser":             "string",
		"visit_num":           "long",
	}, s.Map())
	assert.Equal(t, []string{"zip", "post_mobileupgrades", "prop5", "browser", "visit_num"}, s.Names())
	assert.Equal(t, schema.Field{Name: "visit_num", Canonical: "int unsigned", Type: "long"}, s.Fields[4])
}

func TestGenerate_BigQuery(t *testing.T) {
	r, _ := newObservedResolver(t, schema.DefaultTables())

	s, err := r.Generate([]string{"date_time", "curr_rate", "post_mobileupgrades", "hit_time_gmt", "evar1"}, format.BigQuery)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"date_time":           "TIMESTAMP",
		"curr_rate":           "NUMERIC",
		"post_mobileupgrades": "STRING",
		"hit_time_gmt":        "NUMERIC",
		"evar1":               "STRING",
	}, s.Map())
}

func TestGenerate_InvalidFormat(t *testing.T) {
	r, logs := newObservedResolver(t, schema.DefaultTables())

	for _, f := range []format.Format{0, -1, 3, 99} {
		s, err := r.Generate([]string{"zip"}, f)
		assert.ErrorIs(t, err, schema.ErrInvalidFormat)
		assert.Nil(t, s)
	}
	assert.Equal(t, 0, logs.Len())
}

func TestGenerate_DuplicatesLastWriteWins(t *testing.T) {
	tables := schema.NewTables(nil, nil, map[string]string{"zip": "varchar(50)"})
	r, _ := newObservedResolver(t, tables)

	s, err := r.Generate([]string{"zip", "x", "zip"}, format.Avro)
	require.NoError(t, err)

	require.Len(t, s.Fields, 3)
	assert.Equal(t, "string", s.Fields[0].Type)
	assert.Equal(t, "null", s.Fields[1].Type)
	assert.Len(t, s.Map(), 2)
}

func TestGenerate_EmptyInput(t *testing.T) {
	r, _ := newObservedResolver(t, schema.DefaultTables())

	s, err := r.Generate(nil, format.BigQuery)
	require.NoError(t, err)
	assert.Empty(t, s.Fields)
	assert.Empty(t, s.Map())
}

func TestGenerate_UnmappedIsNotAnError(t *testing.T) {
	r, logs := newObservedResolver(t, schema.DefaultTables())

	// curr_rate is decimal(24,12) which Avro leaves to the default
	s, err := r.Generate([]string{"no_such_column", "curr_rate"}, format.Avro)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"no_such_column": "null", "curr_rate": "string"}, s.Map())

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 2)
	assert.Equal(t, "no_such_column", warnings[0].ContextMap()["field"])
	assert.Equal(t, "decimal(24,12)", warnings[1].ContextMap()["type"])
	assert.Equal(t, "avro", warnings[1].ContextMap()["format"])
}

func TestGenerateSchema(t *testing.T) {
	s, err := schema.GenerateSchema([]string{"zip"}, format.BigQuery)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"zip": "STRING"}, s.Map())

	_, err = schema.GenerateSchema([]string{"zip"}, format.Format(7))
	assert.ErrorIs(t, err, schema.ErrInvalidFormat)
}

func TestGenerate_EveryKnownTypeTranslates(t *testing.T) {
	r, logs := newObservedResolver(t, schema.DefaultTables())

	var names []string
	for name := range schema.DefaultTables().Known {
		names = append(names, name)
	}
	s, err := r.Generate(names, format.BigQuery)
	require.NoError(t, err)
	require.Len(t, s.Fields, len(names))

	// range keys such as "evar1 - evar250" start like a custom field, so nothing
	// falls through and every descriptor has a BigQuery type
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
