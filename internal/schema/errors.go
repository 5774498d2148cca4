package schema

import "fmt"

// ErrorKind classifies a document validation failure.
type ErrorKind int

const (
	// MissingField means a required field is absent from the document.
	MissingField ErrorKind = iota
	// TypeMismatch means a field's value cannot be coerced to its declared type.
	TypeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case TypeMismatch:
		return "type mismatch"
	default:
		return "unknown"
	}
}

// ParseError reports why one document failed validation. Path is the
// document's collection-relative path, Field the dotted name of the offending
// field (list elements are indexed, e.g. "testimonials.items[1].rating").
type ParseError struct {
	Kind   ErrorKind
	Path   string
	Field  string
	Detail string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("%s: missing required field %q", e.Path, e.Field)
	case TypeMismatch:
		return fmt.Sprintf("%s: field %q: %s", e.Path, e.Field, e.Detail)
	default:
		return fmt.Sprintf("%s: field %q: invalid", e.Path, e.Field)
	}
}

func missing(path, field string) *ParseError {
	return &ParseError{Kind: MissingField, Path: path, Field: field}
}

func mismatch(path, field, detail string) *ParseError {
	return &ParseError{Kind: TypeMismatch, Path: path, Field: field, Detail: detail}
}
