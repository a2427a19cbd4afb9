package schema

import (
	"errors"
	"fmt"

	"aaschema/internal/format"
)

// ErrInvalidFormat is returned when schema generation is asked for a format
// outside the format enumeration. No schema is produced in that case.
var ErrInvalidFormat = errors.New("invalid output format")

// Field is one column of a generated schema.
type Field struct {
	Name      string
	Canonical string
	Type      string
}

// Schema is the name to output type mapping for one header, in input order.
// Duplicate names are kept as separate fields.
type Schema struct {
	Format format.Format
	Fields []Field
}

// Map collapses the schema into a name to type map; for duplicate names the
// last field wins.
func (s *Schema) Map() map[string]string {
	m := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		m[f.Name] = f.Type
	}
	return m
}

// Names returns the field names in order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Generate resolves every name and translates it for f. Once f is valid the
// call cannot fail: unknown names and types fall back and are logged.
func (r *Resolver) Generate(names []string, f format.Format) (*Schema, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, f)
	}
	t, err := format.NewTranslator(f, r.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	r.logger.Infow("Mapping column headers", "count", len(names), "format", f.String())
	s := &Schema{Format: f, Fields: make([]Field, 0, len(names))}
	for _, name := range names {
		canonical := r.CanonicalType(name)
		s.Fields = append(s.Fields, Field{
			Name:      name,
			Canonical: canonical,
			Type:      t.Translate(canonical),
		})
	}
	return s, nil
}

// GenerateSchema runs Generate with the built-in tables and the global logger.
func GenerateSchema(names []string, f format.Format) (*Schema, error) {
	return NewResolver(DefaultTables(), nil).Generate(names, f)
}
