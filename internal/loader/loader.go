// Package loader turns raw documents into typed records: it splits front
// matter from markdown bodies, decodes the structured header, validates it
// against the collection's schema, and renders markdown to HTML. Loading is a
// pure transformation of the document it is given; one document failing never
// affects its siblings.
package loader

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v2"

	"github.com/adhillon192/Vue-Portfolio/internal/content"
	"github.com/adhillon192/Vue-Portfolio/internal/model"
	"github.com/adhillon192/Vue-Portfolio/internal/render"
	"github.com/adhillon192/Vue-Portfolio/internal/schema"
)

// Loader parses documents into typed records.
type Loader struct {
	md goldmark.Markdown
}

// New returns a loader with the site's markdown converter.
func New() *Loader {
	return &Loader{md: render.NewMarkdown()}
}

// BlogPost loads one blog document: front matter validated against the blog
// schema, markdown body rendered to HTML. A post without a title falls back
// to a title-cased slug.
func (l *Loader) BlogPost(doc content.Document) (*model.BlogPost, *schema.ParseError) {
	header, body := splitFrontMatter(doc.Raw)
	data, perr := schema.Blog().Validate(doc.Path, header)
	if perr != nil {
		return nil, perr
	}

	var html bytes.Buffer
	if err := l.md.Convert(body, &html); err != nil {
		return nil, &schema.ParseError{
			Kind: schema.TypeMismatch, Path: doc.Path, Field: "body",
			Detail: fmt.Sprintf("markdown conversion failed: %v", err),
		}
	}

	slug := model.SlugFromPath(doc.Path)
	post := &model.BlogPost{
		Slug:        slug,
		Path:        doc.Path,
		Title:       str(data, "title"),
		Description: str(data, "description"),
		Date:        date(data, "date"),
		Image:       str(data, "image"),
		MinRead:     num(data, "minRead"),
		Body:        template.HTML(html.String()),
	}
	if post.Title == "" {
		post.Title = model.TitleFromSlug(slug)
	}
	if author := obj(data, "author"); author != nil {
		post.Author.Name = str(author, "name")
		if avatar := obj(author, "avatar"); avatar != nil {
			post.Author.Avatar = model.Avatar{Src: str(avatar, "src"), Alt: str(avatar, "alt")}
		}
	}
	return post, nil
}

// Project loads one full-YAML project document.
func (l *Loader) Project(doc content.Document) (*model.ProjectEntry, *schema.ParseError) {
	raw, perr := decodeYAML(doc)
	if perr != nil {
		return nil, perr
	}
	data, perr := schema.Projects().Validate(doc.Path, raw)
	if perr != nil {
		return nil, perr
	}
	return &model.ProjectEntry{
		Slug:        model.SlugFromPath(doc.Path),
		Path:        doc.Path,
		Name:        str(data, "name"),
		Description: str(data, "description"),
		Image:       str(data, "image"),
		URL:         str(data, "url"),
		Repo:        str(data, "repo"),
		Year:        num(data, "year"),
		Featured:    boolean(data, "featured"),
	}, nil
}

// Index loads the homepage document.
func (l *Loader) Index(doc content.Document) (*model.IndexPage, *schema.ParseError) {
	raw, perr := decodeYAML(doc)
	if perr != nil {
		return nil, perr
	}
	data, perr := schema.Index().Validate(doc.Path, raw)
	if perr != nil {
		return nil, perr
	}

	page := &model.IndexPage{}
	if hero := obj(data, "hero"); hero != nil {
		page.Hero.Title = str(hero, "title")
		page.Hero.Description = str(hero, "description")
		for _, link := range list(hero, "links") {
			page.Hero.Links = append(page.Hero.Links, model.Link{
				Label: str(link, "label"),
				To:    str(link, "to"),
			})
		}
	}
	if about := obj(data, "about"); about != nil {
		page.About.Title = str(about, "title")
		page.About.Description = str(about, "description")
	}
	if exp := obj(data, "experience"); exp != nil {
		page.Experience.Title = str(exp, "title")
		for _, item := range list(exp, "items") {
			page.Experience.Items = append(page.Experience.Items, model.ExperienceItem{
				Position:    str(item, "position"),
				Company:     str(item, "company"),
				Period:      str(item, "period"),
				Description: str(item, "description"),
			})
		}
	}
	if ts := obj(data, "testimonials"); ts != nil {
		page.Testimonials.Title = str(ts, "title")
		for _, item := range list(ts, "items") {
			page.Testimonials.Items = append(page.Testimonials.Items, model.Testimonial{
				Name:   str(item, "name"),
				Role:   str(item, "role"),
				Quote:  str(item, "quote"),
				Rating: num(item, "rating"),
			})
		}
	}
	if faq := obj(data, "faq"); faq != nil {
		page.FAQ.Title = str(faq, "title")
		for _, item := range list(faq, "items") {
			page.FAQ.Items = append(page.FAQ.Items, model.FAQItem{
				Label:   str(item, "label"),
				Content: str(item, "content"),
			})
		}
	}
	return page, nil
}

// splitFrontMatter separates a document's front-matter block from its body.
// A document without front matter is all body with an empty header, so the
// schema's required-field checks produce the diagnostics.
func splitFrontMatter(raw []byte) (map[string]interface{}, []byte) {
	header := map[string]interface{}{}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &header)
	if err != nil {
		return map[string]interface{}{}, raw
	}
	return normalizeMap(header), body
}

// decodeYAML parses a full-YAML document body into a string-keyed map.
func decodeYAML(doc content.Document) (map[string]interface{}, *schema.ParseError) {
	header := map[string]interface{}{}
	if err := yaml.Unmarshal(doc.Raw, &header); err != nil {
		return nil, &schema.ParseError{
			Kind: schema.TypeMismatch, Path: doc.Path, Field: "(document)",
			Detail: fmt.Sprintf("invalid YAML: %v", err),
		}
	}
	return normalizeMap(header), nil
}

// normalize rewrites the interface-keyed maps YAML decoding produces into
// string-keyed maps, recursively, so the schema layer sees one shape.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = normalize(item)
		}
		return out
	case map[string]interface{}:
		return normalizeMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

// Accessors over schema-validated data. Values are already coerced, so plain
// type assertions suffice; absent optional fields yield zero values.

func str(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func num(m map[string]interface{}, key string) int {
	n, _ := m[key].(int)
	return n
}

func boolean(m map[string]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func date(m map[string]interface{}, key string) time.Time {
	t, _ := m[key].(time.Time)
	return t
}

func obj(m map[string]interface{}, key string) map[string]interface{} {
	o, _ := m[key].(map[string]interface{})
	return o
}

func list(m map[string]interface{}, key string) []map[string]interface{} {
	l, _ := m[key].([]map[string]interface{})
	return l
}
