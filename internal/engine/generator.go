package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"aaschema/internal/schema"
)

// descriptorPattern splits a canonical descriptor such as "varchar(255)",
// "decimal(24,12)" or "int unsigned" into base, length, scale and sign.
var descriptorPattern = regexp.MustCompile(`^([a-z]+)(?:\((\d+)(?:,(\d+))?\))?( unsigned)?$`)

// Descriptor is a parsed canonical type descriptor.
type Descriptor struct {
	Base     string
	Length   int
	Scale    int
	Unsigned bool
}

// ParseDescriptor parses a canonical descriptor. Descriptors outside the
// pattern come back with only Base set to the raw string.
func ParseDescriptor(s string) Descriptor {
	m := descriptorPattern.FindStringSubmatch(s)
	if m == nil {
		return Descriptor{Base: s}
	}
	d := Descriptor{Base: m[1], Unsigned: m[4] != ""}
	if m[2] != "" {
		d.Length, _ = strconv.Atoi(m[2])
	}
	if m[3] != "" {
		d.Scale, _ = strconv.Atoi(m[3])
	}
	return d
}

// Generator produces fake data feed values. It is not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator returns a Generator; the same seed gives the same values.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

// GenerateValue returns a value for column name typed by its canonical descriptor,
// already formatted the way the feed writes it.
func (g *Generator) GenerateValue(name, descriptor string) string {
	d := ParseDescriptor(descriptor)
	colName := strings.ToLower(strings.TrimPrefix(name, schema.PostPrefix))

	switch d.Base {
	case schema.TypeNull:
		return ""
	case "tinyint", "smallint", "int", "bigint":
		return strconv.Itoa(g.integer(colName, d))
	case "decimal":
		return strconv.FormatFloat(g.faker.Float64Range(0, 10), 'f', d.Scale, 64)
	case "datetime":
		end := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		return g.faker.DateRange(end.AddDate(-1, 0, 0), end).Format("2006-01-02 15:04:05")
	}

	// string-like: char, varchar, text, string and anything unparsed
	return truncate(g.text(colName), d.Length)
}

func (g *Generator) integer(colName string, d Descriptor) int {
	// epoch seconds
	if strings.HasSuffix(colName, "_time_gmt") || strings.HasSuffix(colName, "_timestamp") {
		return g.faker.Number(1546300800, 1577836799)
	}
	switch d.Base {
	case "tinyint":
		if d.Unsigned {
			return g.faker.Number(0, 255)
		}
		return g.faker.Number(-128, 127)
	case "smallint":
		if d.Unsigned {
			return g.faker.Number(0, 65535)
		}
		return g.faker.Number(-32768, 32767)
	default:
		if d.Unsigned {
			return g.faker.Number(0, 2147483647)
		}
		return g.faker.Number(-2147483648, 2147483647)
	}
}

func (g *Generator) text(colName string) string {
	switch {
	case strings.Contains(colName, "url") || strings.Contains(colName, "referrer"):
		return g.faker.URL()
	case strings.Contains(colName, "domain"):
		return g.faker.DomainName()
	case colName == "ip" || colName == "ip2":
		return g.faker.IPv4Address()
	case strings.Contains(colName, "zip"):
		return g.faker.Zip()
	case strings.Contains(colName, "city"):
		return g.faker.City()
	case colName == "user_agent":
		return g.faker.UserAgent()
	case strings.Contains(colName, "visid") || strings.HasSuffix(colName, "id"):
		return g.faker.UUID()
	case strings.HasPrefix(colName, "prop") || strings.HasPrefix(colName, "evar"):
		return g.faker.Word()
	}
	return g.faker.Sentence(3)
}

// Row generates one hit for the resolved fields.
func (g *Generator) Row(fields []schema.Field) []string {
	row := make([]string, len(fields))
	for i, f := range fields {
		row[i] = g.GenerateValue(f.Name, f.Canonical)
	}
	return row
}

// Rows generates count hits.
func (g *Generator) Rows(fields []schema.Field, count int) ([][]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("row count must not be negative: %d", count)
	}
	rows := make([][]string, count)
	for i := range rows {
		rows[i] = g.Row(fields)
	}
	return rows, nil
}
