package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects the target type system a canonical descriptor is translated into.
type Format int

const (
	// Avro is the row-serialization format.
	Avro Format = iota + 1
	// BigQuery is the columnar warehouse format.
	BigQuery
)

// ErrUnknownFormat is returned by ParseFormat for names outside the enumeration.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{Avro, BigQuery}
}

func (f Format) String() string {
	switch f {
	case Avro:
		return "avro"
	case BigQuery:
		return "bigquery"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Valid reports whether f is a member of the enumeration.
func (f Format) Valid() bool {
	switch f {
	case Avro, BigQuery:
		return true
	default:
		return false
	}
}

// ParseFormat maps a case-insensitive format name to its Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(name, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
