// Package schema declares the expected shape of each content collection and
// validates raw front-matter/YAML data against it. Validation is eager: a
// document either coerces cleanly into typed values at load time or fails
// with a ParseError naming the document and field.
package schema

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Kind is the declared type of a field's value.
type Kind int

const (
	String Kind = iota
	Text        // multi-line string, same coercion as String
	Int
	Bool
	Date // ISO-8601, coerced to time.Time
	URL
	Object
	List // list of objects described by Field.Fields
)

// Field describes one field of a collection's schema. Object and List fields
// carry their nested field set in Fields. Min/Max constrain Int fields when
// Max > 0.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Default  interface{}
	Min, Max int
	Fields   []Field
}

// Schema is the declared shape of one collection's documents.
type Schema struct {
	Collection string
	Fields     []Field
}

// Date layouts accepted for Date fields, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Validate checks data against the schema and returns a coerced copy: strings
// stay strings, Int fields become int, Date fields become time.Time, Object
// fields become map[string]interface{}, List fields []map[string]interface{}.
// Fields absent from the document are absent from the result unless the
// schema declares a default. The first violation aborts validation.
func (s *Schema) Validate(path string, data map[string]interface{}) (map[string]interface{}, *ParseError) {
	return validateFields(path, "", s.Fields, data)
}

func validateFields(path, prefix string, fields []Field, data map[string]interface{}) (map[string]interface{}, *ParseError) {
	out := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		name := f.Name
		if prefix != "" {
			name = prefix + "." + f.Name
		}
		raw, ok := data[f.Name]
		if !ok || raw == nil {
			if f.Required {
				return nil, missing(path, name)
			}
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}
		v, perr := coerce(path, name, f, raw)
		if perr != nil {
			return nil, perr
		}
		out[f.Name] = v
	}
	return out, nil
}

func coerce(path, name string, f Field, raw interface{}) (interface{}, *ParseError) {
	switch f.Kind {
	case String, Text:
		s, ok := raw.(string)
		if !ok {
			return nil, mismatch(path, name, fmt.Sprintf("expected a string, got %T", raw))
		}
		return s, nil

	case Int:
		n, ok := asInt(raw)
		if !ok {
			return nil, mismatch(path, name, fmt.Sprintf("expected an integer, got %T", raw))
		}
		if f.Max > 0 && (n < f.Min || n > f.Max) {
			return nil, mismatch(path, name, fmt.Sprintf("must be an integer between %d and %d", f.Min, f.Max))
		}
		return n, nil

	case Bool:
		b, ok := raw.(bool)
		if !ok {
			return nil, mismatch(path, name, fmt.Sprintf("expected a boolean, got %T", raw))
		}
		return b, nil

	case Date:
		if t, ok := raw.(time.Time); ok {
			return t, nil
		}
		s, ok := raw.(string)
		if !ok {
			return nil, mismatch(path, name, fmt.Sprintf("expected an ISO-8601 date string, got %T", raw))
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, mismatch(path, name, fmt.Sprintf("%q is not a valid ISO-8601 date", s))

	case URL:
		s, ok := raw.(string)
		if !ok {
			return nil, mismatch(path, name, fmt.Sprintf("expected a URL string, got %T", raw))
		}
		if strings.TrimSpace(s) == "" {
			return nil, mismatch(path, name, "URL must not be empty")
		}
		if _, err := url.Parse(s); err != nil {
			return nil, mismatch(path, name, fmt.Sprintf("%q is not a valid URL", s))
		}
		return s, nil

	case Object:
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, mismatch(path, name, fmt.Sprintf("expected a mapping, got %T", raw))
		}
		return validateFields(path, name, f.Fields, m)

	case List:
		items, ok := raw.([]interface{})
		if !ok {
			return nil, mismatch(path, name, fmt.Sprintf("expected a list, got %T", raw))
		}
		out := make([]map[string]interface{}, 0, len(items))
		for i, item := range items {
			m, ok := item.(map[string]interface{})
			if !ok {
				return nil, mismatch(path, fmt.Sprintf("%s[%d]", name, i), fmt.Sprintf("expected a mapping, got %T", item))
			}
			v, perr := validateFields(path, fmt.Sprintf("%s[%d]", name, i), f.Fields, m)
			if perr != nil {
				return nil, perr
			}
			out = append(out, v)
		}
		return out, nil

	default:
		return nil, mismatch(path, name, "unsupported field kind")
	}
}

// asInt accepts the integer representations YAML decoding can produce.
func asInt(raw interface{}) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
