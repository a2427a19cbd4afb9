package schema

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// PostPrefix marks the post-processed variant of a base field.
const PostPrefix = "post_"

// Descriptors produced by the classification rules rather than the tables.
const (
	TypeString = "string"
	TypeNull   = "null"
)

// customFieldPattern matches numbered custom fields (prop12, post_evar3, ...).
// It is anchored at the start only.
var customFieldPattern = regexp.MustCompile(`^(?:post_)?(prop|evar|mvvar|hier)[0-9]+`)

// Rule names the classification rule that produced a descriptor.
type Rule int

const (
	RuleDeprecated Rule = iota + 1
	RuleForeignKey
	RuleCustomField
	RuleKnownType
	RuleFallback
)

func (r Rule) String() string {
	switch r {
	case RuleDeprecated:
		return "deprecated"
	case RuleForeignKey:
		return "foreign_key"
	case RuleCustomField:
		return "custom_field"
	case RuleKnownType:
		return "known_type"
	case RuleFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of classifying one column name.
type Resolution struct {
	Name       string
	Descriptor string
	Rule       Rule
	Post       bool // name carried the post_ prefix
}

// Resolver classifies column names against a fixed set of Tables. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	tables Tables
	logger *zap.SugaredLogger
}

// NewResolver builds a Resolver over a copy of tables; later changes to the
// caller's maps do not reach it. A nil logger falls back to the global zap
// logger.
func NewResolver(tables Tables, logger *zap.SugaredLogger) *Resolver {
	if logger == nil {
		logger = zap.S()
	}
	return &Resolver{tables: tables.Clone(), logger: logger}
}

// Tables returns a copy of the tables the resolver was built with.
func (r *Resolver) Tables() Tables {
	return r.tables.Clone()
}

// Resolve classifies name. Rules are tried in a fixed order and the first match
// wins; a name nothing matches resolves to "null".
func (r *Resolver) Resolve(name string) Resolution {
	res := Resolution{Name: name}

	if r.tables.IsDeprecated(name) {
		r.logger.Debugw("Field is deprecated", "field", name)
		res.Descriptor, res.Rule = TypeNull, RuleDeprecated
		return res
	}

	// Kept as strings even where the source is numeric so the codes can be
	// joined against the lookup files later.
	if r.tables.IsForeignKey(name) {
		r.logger.Debugw("Field is a foreign key column", "field", name)
		res.Descriptor, res.Rule = TypeString, RuleForeignKey
		return res
	}

	// Must run before the table lookup: range keys like "evar1 - evar250"
	// never match a real column.
	if customFieldPattern.MatchString(name) {
		r.logger.Debugw("Field matches a custom field", "field", name)
		res.Descriptor, res.Rule = TypeString, RuleCustomField
		return res
	}

	lookup, post := strings.CutPrefix(name, PostPrefix)
	res.Post = post
	if typ, ok := r.tables.Known[lookup]; ok {
		res.Descriptor, res.Rule = typ, RuleKnownType
		return res
	}

	r.logger.Warnw("Field could not be mapped; defaulting to null", "field", name)
	res.Descriptor, res.Rule = TypeNull, RuleFallback
	return res
}

// CanonicalType returns the canonical type descriptor for name.
func (r *Resolver) CanonicalType(name string) string {
	return r.Resolve(name).Descriptor
}
