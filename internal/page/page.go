// Package page composes typed records into the section-keyed models the
// layouts render. A PageSpec declares which sections a page requires; data
// for optional sections may simply be absent.
package page

import (
	"fmt"
	"regexp"
	"strings"
)

// ComposeErrorKind classifies a page composition failure.
type ComposeErrorKind int

// MissingSection means a section the page declares required has no data.
const MissingSection ComposeErrorKind = iota

// ComposeError reports why one page could not be composed. It is fatal to
// that page only; other pages build independently.
type ComposeError struct {
	Kind    ComposeErrorKind
	Page    string
	Section string
}

func (e *ComposeError) Error() string {
	return fmt.Sprintf("page %q: missing required section %q", e.Page, e.Section)
}

// Section declares one named section of a page.
type Section struct {
	Name     string
	Required bool
}

// PageSpec declares a page and its sections.
type PageSpec struct {
	Name     string
	Layout   string
	Title    string
	Sections []Section
}

// PageModel is the composed structure handed to the renderer for one page:
// a mapping from section name to the record (or record sequence) feeding it.
// Built fresh per build, never persisted.
type PageModel struct {
	Name     string
	Layout   string
	Title    string
	Sections map[string]interface{}
}

// Section returns the named section's data, or nil when the (optional)
// section was composed without data.
func (m *PageModel) Section(name string) interface{} {
	return m.Sections[name]
}

// Has reports whether the named section carries data.
func (m *PageModel) Has(name string) bool {
	_, ok := m.Sections[name]
	return ok
}

// Compose binds section data to a page spec. Only sections the spec declares
// are carried over; a required section without data fails with
// MissingSection, an optional one is omitted from the model.
func Compose(spec PageSpec, data map[string]interface{}) (*PageModel, *ComposeError) {
	model := &PageModel{
		Name:     spec.Name,
		Layout:   spec.Layout,
		Title:    spec.Title,
		Sections: make(map[string]interface{}, len(spec.Sections)),
	}
	for _, section := range spec.Sections {
		v, ok := data[section.Name]
		if !ok || v == nil {
			if section.Required {
				return nil, &ComposeError{Kind: MissingSection, Page: spec.Name, Section: section.Name}
			}
			continue
		}
		model.Sections[section.Name] = v
	}
	return model, nil
}

var newlines = regexp.MustCompile(`\n+`)

// Paragraphs splits raw multi-line text into display paragraphs: split on one
// or more consecutive newlines, trim each segment, drop segments that are
// empty after trimming, preserve order. The about section renders through
// this.
func Paragraphs(text string) []string {
	segments := newlines.Split(text, -1)
	out := []string{}
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		out = append(out, seg)
	}
	return out
}
