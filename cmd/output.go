package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"aaschema/internal/sanitize"
	"aaschema/internal/schema"
)

var outputFormats = []string{"json", "yaml", "tsv"}

// entry is one output line of a mapping table.
type entry struct {
	Name string
	Type string
}

// mappingEntries collapses s (last write wins, first position kept) and
// optionally sanitizes the names.
func mappingEntries(s *schema.Schema, sanitizeNames bool) ([]entry, error) {
	var entries []entry
	index := make(map[string]int, len(s.Fields))
	for _, f := range s.Fields {
		name := f.Name
		if sanitizeNames {
			sanitized, err := sanitize.Name(name)
			if err != nil {
				return nil, err
			}
			name = sanitized
		}
		if i, ok := index[name]; ok {
			entries[i].Type = f.Type
			continue
		}
		index[name] = len(entries)
		entries = append(entries, entry{Name: name, Type: f.Type})
	}
	return entries, nil
}

// mapping is the rendered table of one source.
type mapping struct {
	Source  string
	Entries []entry
}

// writeMappings renders one document. A single source is written as a flat
// name to type table; several sources are keyed by source name (json, yaml)
// or carry the source in a leading column (tsv).
func writeMappings(w io.Writer, mappings []mapping, output string) error {
	if len(mappings) == 1 {
		return writeMapping(w, mappings[0].Entries, output)
	}
	switch output {
	case "json":
		var buf bytes.Buffer
		buf.WriteString("{")
		for i, m := range mappings {
			if i > 0 {
				buf.WriteString(",")
			}
			key, err := json.Marshal(m.Source)
			if err != nil {
				return err
			}
			buf.WriteString("\n  ")
			buf.Write(key)
			buf.WriteString(": ")
			if err := encodeJSONObject(&buf, m.Entries, "  "); err != nil {
				return err
			}
		}
		if len(mappings) > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("}\n")
		_, err := w.Write(buf.Bytes())
		return err
	case "yaml":
		root := &yaml.Node{Kind: yaml.MappingNode}
		for _, m := range mappings {
			root.Content = append(root.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Source},
				yamlMapping(m.Entries),
			)
		}
		return encodeYAML(w, root)
	case "tsv":
		for _, m := range mappings {
			for _, e := range m.Entries {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", m.Source, e.Name, e.Type); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output %q (want one of %v)", output, outputFormats)
	}
}

// writeMapping renders entries as json, yaml or tsv, keeping their order.
func writeMapping(w io.Writer, entries []entry, output string) error {
	switch output {
	case "json":
		var buf bytes.Buffer
		if err := encodeJSONObject(&buf, entries, ""); err != nil {
			return err
		}
		buf.WriteString("\n")
		_, err := w.Write(buf.Bytes())
		return err
	case "yaml":
		return encodeYAML(w, yamlMapping(entries))
	case "tsv":
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Type); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output %q (want one of %v)", output, outputFormats)
	}
}

// encoding/json sorts map keys, so objects are written by hand.
func encodeJSONObject(buf *bytes.Buffer, entries []entry, indent string) error {
	buf.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			buf.WriteString(",")
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return err
		}
		val, err := json.Marshal(e.Type)
		if err != nil {
			return err
		}
		buf.WriteString("\n  " + indent)
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	if len(entries) > 0 {
		buf.WriteString("\n" + indent)
	}
	buf.WriteString("}")
	return nil
}

func yamlMapping(entries []entry) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Type},
		)
	}
	return node
}

func encodeYAML(w io.Writer, node *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

func validOutput(output string) bool {
	return slices.Contains(outputFormats, output)
}
