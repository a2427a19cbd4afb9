package format

import (
	"go.uber.org/zap"
)

// table is the lookup shared by every translator: exact match, then default.
type table struct {
	format   Format
	types    map[string]string
	fallback string
	logger   *zap.SugaredLogger
}

func newTable(f Format, types map[string]string, fallback string, logger *zap.SugaredLogger) table {
	if logger == nil {
		logger = zap.S()
	}
	return table{format: f, types: types, fallback: fallback, logger: logger}
}

func (t table) Format() Format {
	return t.format
}

func (t table) Lookup(descriptor string) (string, bool) {
	mapped, ok := t.types[descriptor]
	return mapped, ok
}

func (t table) Translate(descriptor string) string {
	if mapped, ok := t.types[descriptor]; ok {
		return mapped
	}
	t.logger.Warnw("Type could not be mapped; using format default",
		"type", descriptor, "format", t.format.String(), "default", t.fallback)
	return t.fallback
}

func (t table) DefaultType() string {
	return t.fallback
}
