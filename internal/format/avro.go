package format

// AvroTranslator produces Avro primitive type names.
// https://avro.apache.org/docs/current/specification/#primitive-types
type AvroTranslator struct {
	table
}

// decimal(24,12) and datetime need Avro logical types; they are left out so
// they fall back to "string".
var avroTypes = map[string]string{
	"bigint unsigned":   "long",
	"char(1)":           "string",
	"char(10)":          "string",
	"char(16)":          "string",
	"char(2)":           "string",
	"char(20)":          "string",
	"char(30)":          "string",
	"char(32)":          "string",
	"char(4)":           "string",
	"char(40)":          "string",
	"char(5)":           "string",
	"char(8)":           "string",
	"char(80)":          "string",
	"int":               "long",
	"int unsigned":      "long",
	"smallint unsigned": "long",
	"text":              "string",
	"tinyint":           "long",
	"tinyint unsigned":  "long",
	"varchar(100)":      "string",
	"varchar(16)":       "string",
	"varchar(180)":      "string",
	"varchar(244)":      "string",
	"varchar(255)":      "string",
	"varchar(40)":       "string",
	"varchar(50)":       "string",

	// already Avro
	"string": "string",
	"null":   "null",
}
