package schema_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"aaschema/internal/schema"
)

func newObservedResolver(t *testing.T, tables schema.Tables) (*schema.Resolver, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return schema.NewResolver(tables, zap.New(core).Sugar()), logs
}

func TestResolve_Rules(t *testing.T) {
	r, _ := newObservedResolver(t, schema.DefaultTables())

	tests := []struct {
		name       string
		descriptor string
		rule       schema.Rule
		post       bool
	}{
		{"mobileupgrades", "null", schema.RuleDeprecated, false},
		{"post_mobileupgrades", "null", schema.RuleDeprecated, false},
		{"socialtermslist (deprecated)", "null", schema.RuleDeprecated, false},
		{"browser", "string", schema.RuleForeignKey, false},
		{"visit_search_engine", "string", schema.RuleForeignKey, false},
		{"evar12", "string", schema.RuleCustomField, false},
		{"post_prop5", "string", schema.RuleCustomField, false},
		{"mvvar3", "string", schema.RuleCustomField, false},
		{"hier1", "string", schema.RuleCustomField, false},
		{"zip", "varchar(50)", schema.RuleKnownType, false},
		{"post_zip", "varchar(50)", schema.RuleKnownType, true},
		{"visit_num", "int unsigned", schema.RuleKnownType, false},
		{"date_time", "datetime", schema.RuleKnownType, false},
		{"post_browser_height", "smallint unsigned", schema.RuleKnownType, true},
		{"totally_unknown_field_xyz", "null", schema.RuleFallback, false},
		{"post_survey", "null", schema.RuleFallback, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(tt.name)
			assert.Equal(t, tt.name, res.Name)
			assert.Equal(t, tt.descriptor, res.Descriptor)
			assert.Equal(t, tt.rule, res.Rule, "rule %s", res.Rule)
			assert.Equal(t, tt.post, res.Post)
		})
	}
}

func TestResolve_DeprecatedBeatsForeignKey(t *testing.T) {
	tables := schema.NewTables([]string{"both"}, []string{"both"}, map[string]string{"both": "int"})
	r, _ := newObservedResolver(t, tables)

	res := r.Resolve("both")
	assert.Equal(t, schema.TypeNull, res.Descriptor)
	assert.Equal(t, schema.RuleDeprecated, res.Rule)
}

func TestResolve_ForeignKeyBeatsKnownType(t *testing.T) {
	r, _ := newObservedResolver(t, schema.DefaultTables())

	// browser is "int unsigned" in the reference but holds lookup codes.
	assert.Equal(t, "int unsigned", schema.DefaultTables().Known["browser"])
	assert.Equal(t, schema.TypeString, r.CanonicalType("browser"))
}

func TestResolve_CustomFieldBeatsTable(t *testing.T) {
	tables := schema.NewTables(nil, nil, map[string]string{"evar12": "int"})
	r, _ := newObservedResolver(t, tables)

	assert.Equal(t, schema.TypeString, r.CanonicalType("evar12"))
}

func TestResolve_CustomFieldPatternAnchoring(t *testing.T) {
	r, _ := newObservedResolver(t, schema.NewTables(nil, nil, nil))

	// matched from the start only; trailing text is allowed
	assert.Equal(t, schema.RuleCustomField, r.Resolve("prop1_extra").Rule)
	assert.Equal(t, schema.RuleCustomField, r.Resolve("post_evar250").Rule)

	assert.Equal(t, schema.RuleFallback, r.Resolve("evar").Rule)
	assert.Equal(t, schema.RuleFallback, r.Resolve("xprop1").Rule)
	assert.Equal(t, schema.RuleFallback, r.Resolve("pre_post_prop1").Rule)
	assert.Equal(t, schema.RuleFallback, r.Resolve("Prop1").Rule)
}

func TestResolve_RangeKeysNeverMatch(t *testing.T) {
	r, logs := newObservedResolver(t, schema.DefaultTables())

	for _, key := range []string{"evar1 - evar250", "prop1 - prop75", "hier1 - hier5", "mvvar1 - mvvar3"} {
		require.Contains(t, schema.DefaultTables().Known, key)
	}

	// A custom field name lands in the pattern rule, never the range entries.
	res := r.Resolve("evar1")
	assert.Equal(t, schema.RuleCustomField, res.Rule)
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestResolve_PostPrefixStrippedOnce(t *testing.T) {
	tables := schema.NewTables(nil, nil, map[string]string{"zip": "varchar(50)", "post_zip": "text"})
	r, _ := newObservedResolver(t, tables)

	// there is no separate post_ table: post_zip looks up "zip"
	assert.Equal(t, "varchar(50)", r.CanonicalType("post_zip"))
	assert.Equal(t, "text", r.CanonicalType("post_post_zip"))
}

func TestResolve_FallbackLogsUnmappedColumn(t *testing.T) {
	r, logs := newObservedResolver(t, schema.DefaultTables())

	assert.Equal(t, schema.TypeNull, r.CanonicalType("totally_unknown_field_xyz"))

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "could not be mapped")
	assert.Equal(t, "totally_unknown_field_xyz", warnings[0].ContextMap()["field"])
}

func TestResolve_Totality(t *testing.T) {
	r, _ := newObservedResolver(t, schema.DefaultTables())

	allowed := map[string]bool{schema.TypeString: true, schema.TypeNull: true}
	for _, v := range schema.DefaultTables().Known {
		allowed[v] = true
	}

	inputs := []string{
		"",
		"post_",
		"évar1",
		"日本語の列",
		"post_\x00",
		strings.Repeat("a", 10000),
		"post_" + strings.Repeat("prop", 500),
		" zip",
		"zip ",
	}
	for _, in := range inputs {
		desc := r.CanonicalType(in)
		assert.True(t, allowed[desc], "unexpected descriptor %q for %q", desc, in)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r, _ := newObservedResolver(t, schema.DefaultTables())

	for _, name := range []string{"zip", "evar9", "browser", "nope", "post_mobileupgrades"} {
		first := r.Resolve(name)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, r.Resolve(name))
		}
	}
}

func TestResolve_Concurrent(t *testing.T) {
	r, _ := newObservedResolver(t, schema.DefaultTables())

	names := []string{"zip", "post_zip", "evar12", "browser", "unknown_col", "date_time"}
	want := make([]string, len(names))
	for i, n := range names {
		want[i] = r.CanonicalType(n)
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, n := range names {
				assert.Equal(t, want[i], r.CanonicalType(n))
			}
		}()
	}
	wg.Wait()
}

func TestRule_String(t *testing.T) {
	assert.Equal(t, "deprecated", schema.RuleDeprecated.String())
	assert.Equal(t, "foreign_key", schema.RuleForeignKey.String())
	assert.Equal(t, "custom_field", schema.RuleCustomField.String())
	assert.Equal(t, "known_type", schema.RuleKnownType.String())
	assert.Equal(t, "fallback", schema.RuleFallback.String())
	assert.Equal(t, "unknown", schema.Rule(0).String())
}

func TestNewResolver_CopiesTables(t *testing.T) {
	tables := schema.NewTables([]string{"gone"}, []string{"fk"}, map[string]string{"zip": "varchar(50)"})
	r, _ := newObservedResolver(t, tables)

	tables.Known["zip"] = "int"
	tables.Known["added"] = "int"
	delete(tables.Deprecated, "gone")
	tables.ForeignKeys["zip"] = struct{}{}

	assert.Equal(t, "varchar(50)", r.Resolve("zip").Descriptor)
	assert.Equal(t, schema.RuleKnownType, r.Resolve("zip").Rule)
	assert.Equal(t, schema.RuleDeprecated, r.Resolve("gone").Rule)
	assert.Equal(t, schema.RuleFallback, r.Resolve("added").Rule)

	got := r.Tables()
	got.Known["zip"] = "text"
	got.Deprecated["zip"] = struct{}{}
	assert.Equal(t, "varchar(50)", r.Resolve("zip").Descriptor)
	assert.Equal(t, "varchar(50)", r.Tables().Known["zip"])
}
