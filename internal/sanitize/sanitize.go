// Package sanitize turns feed column names into identifiers accepted by both
// Avro and BigQuery, i.e. names matching [A-Za-z_][A-Za-z0-9_]*.
//
// https://cloud.google.com/bigquery/docs/schemas#column_names
// https://avro.apache.org/docs/current/specification/#names
package sanitize

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"unicode/utf8"
)

// MaxLength is the longest name, in characters, BigQuery accepts for a column.
const MaxLength = 128

var (
	ErrTooLong     = errors.New("name exceeds maximum length")
	ErrReserved    = errors.New("name is reserved")
	ErrLeadingChar = errors.New("name must start with a letter or an underscore")
)

// ReservedNames are column names BigQuery refuses.
var ReservedNames = []string{"_TABLE_", "_FILE_", "_PARTITION_"}

var (
	nonWord      = regexp.MustCompile(`\W`)
	validLeading = regexp.MustCompile(`^[a-zA-Z_]`)
)

// Name replaces every non-word character of name with an underscore.
func Name(name string) (string, error) {
	if n := utf8.RuneCountInString(name); n > MaxLength {
		return "", fmt.Errorf("%w: %q has %d characters", ErrTooLong, name, n)
	}
	if slices.Contains(ReservedNames, name) {
		return "", fmt.Errorf("%w: %q", ErrReserved, name)
	}

	sanitized := nonWord.ReplaceAllString(name, "_")
	if !validLeading.MatchString(sanitized) {
		return "", fmt.Errorf("%w: %q sanitized to %q", ErrLeadingChar, name, sanitized)
	}
	return sanitized, nil
}
