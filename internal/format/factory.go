package format

import (
	"fmt"

	"go.uber.org/zap"
)

// GetTranslator returns the Translator for f. Every member of Format must have
// a case here; anything else is an error.
func GetTranslator(f Format) (Translator, error) {
	return NewTranslator(f, nil)
}

// NewTranslator is GetTranslator with an explicit logger for diagnostics.
// A nil logger falls back to the global zap logger.
func NewTranslator(f Format, logger *zap.SugaredLogger) (Translator, error) {
	switch f {
	case Avro:
		return &AvroTranslator{table: newTable(f, avroTypes, "string", logger)}, nil
	case BigQuery:
		return &BigQueryTranslator{table: newTable(f, bigqueryTypes, "STRING", logger)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Translate maps descriptor for f using the built-in translator tables.
func Translate(descriptor string, f Format) (string, error) {
	t, err := GetTranslator(f)
	if err != nil {
		return "", err
	}
	return t.Translate(descriptor), nil
}

// Ensure interface implementation
var _ Translator = (*AvroTranslator)(nil)
var _ Translator = (*BigQueryTranslator)(nil)
