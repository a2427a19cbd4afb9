package schema

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Tables is the reference data a Resolver classifies column names with.
// A Resolver never mutates the Tables it was built from.
type Tables struct {
	Deprecated  map[string]struct{}
	ForeignKeys map[string]struct{}
	Known       map[string]string
}

// TableFile is the on-disk shape of a table extension file. JSON files parse
// too since YAML is a superset.
type TableFile struct {
	Deprecated  []string          `yaml:"deprecated"`
	ForeignKeys []string          `yaml:"foreign_keys"`
	KnownTypes  map[string]string `yaml:"known_types"`
}

// DefaultTables returns a fresh copy of the built-in reference tables.
func DefaultTables() Tables {
	return Tables{
		Deprecated:  toSet(deprecatedColumns),
		ForeignKeys: toSet(foreignKeyColumns),
		Known:       maps.Clone(knownFieldTypes),
	}
}

// NewTables builds Tables from plain lists, mostly for tests and extension files.
func NewTables(deprecated, foreignKeys []string, known map[string]string) Tables {
	if known == nil {
		known = map[string]string{}
	}
	return Tables{
		Deprecated:  toSet(deprecated),
		ForeignKeys: toSet(foreignKeys),
		Known:       maps.Clone(known),
	}
}

// Clone returns a deep copy of t.
func (t Tables) Clone() Tables {
	return Tables{
		Deprecated:  maps.Clone(t.Deprecated),
		ForeignKeys: maps.Clone(t.ForeignKeys),
		Known:       maps.Clone(t.Known),
	}
}

// Extend returns a copy of t with the entries of f added. Known types in f
// override existing ones.
func (t Tables) Extend(f TableFile) Tables {
	out := t.Clone()
	if out.Deprecated == nil {
		out.Deprecated = map[string]struct{}{}
	}
	if out.ForeignKeys == nil {
		out.ForeignKeys = map[string]struct{}{}
	}
	if out.Known == nil {
		out.Known = map[string]string{}
	}
	for _, name := range f.Deprecated {
		out.Deprecated[name] = struct{}{}
	}
	for _, name := range f.ForeignKeys {
		out.ForeignKeys[name] = struct{}{}
	}
	for name, typ := range f.KnownTypes {
		out.Known[name] = typ
	}
	return out
}

// IsDeprecated reports whether name is in the deprecated set.
func (t Tables) IsDeprecated(name string) bool {
	_, ok := t.Deprecated[name]
	return ok
}

// IsForeignKey reports whether name is in the foreign key set.
func (t Tables) IsForeignKey(name string) bool {
	_, ok := t.ForeignKeys[name]
	return ok
}

// ReadTableFile parses a table extension file.
func ReadTableFile(path string) (TableFile, error) {
	var f TableFile
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read table file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse table file %s: %w", path, err)
	}
	return f, nil
}

// LoadTables returns the default tables extended with the file at path.
// An empty path yields the defaults.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}
	f, err := ReadTableFile(path)
	if err != nil {
		return Tables{}, err
	}
	return tables.Extend(f), nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
