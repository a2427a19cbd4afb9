package format

// BigQueryTranslator produces BigQuery standard SQL type names.
// https://cloud.google.com/bigquery/docs/reference/standard-sql/data-types
type BigQueryTranslator struct {
	table
}

var bigqueryTypes = map[string]string{
	"bigint unsigned":   "NUMERIC",
	"char(1)":           "STRING",
	"char(10)":          "STRING",
	"char(16)":          "STRING",
	"char(2)":           "STRING",
	"char(20)":          "STRING",
	"char(30)":          "STRING",
	"char(32)":          "STRING",
	"char(4)":           "STRING",
	"char(40)":          "STRING",
	"char(5)":           "STRING",
	"char(8)":           "STRING",
	"char(80)":          "STRING",
	"datetime":          "TIMESTAMP",
	"decimal(24,12)":    "NUMERIC",
	"int":               "NUMERIC",
	"int unsigned":      "NUMERIC",
	"smallint unsigned": "NUMERIC",
	"text":              "STRING",
	"tinyint":           "NUMERIC",
	"tinyint unsigned":  "NUMERIC",
	"varchar(100)":      "STRING",
	"varchar(16)":       "STRING",
	"varchar(180)":      "STRING",
	"varchar(244)":      "STRING",
	"varchar(255)":      "STRING",
	"varchar(40)":       "STRING",
	"varchar(50)":       "STRING",

	// BigQuery columns are nullable by default and there is no NULL type.
	"string": "STRING",
	"null":   "STRING",
}
