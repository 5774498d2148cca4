// Package render owns the two rendering collaborators: the goldmark markdown
// converter post bodies go through, and the html/template layout set composed
// pages are executed against. Layout internals are opaque to the pipeline;
// this package only parses and executes them.
package render

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// NewMarkdown returns the markdown converter used for post bodies: GitHub
// flavored markdown, auto heading IDs, hard line breaks.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)
}

// BaseLayout is the layout every page layout extends. It must exist directly
// in the layouts directory.
const BaseLayout = "base.html"

// Engine holds the parsed layout set.
type Engine struct {
	templates *template.Template
}

// LoadLayouts parses the layout directory: base.html plus partials/ first,
// then the remaining page layouts, home.html last so its block definitions
// win. Missing base.html is an error; anything else is optional.
func LoadLayouts(dir string) (*Engine, error) {
	var layoutFiles []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			layoutFiles = append(layoutFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finding layout files in %q: %w", dir, err)
	}

	var basePath, homePath string
	var partials, pages []string
	for _, f := range layoutFiles {
		switch {
		case filepath.Base(f) == BaseLayout && filepath.Dir(f) == dir:
			basePath = f
		case strings.HasPrefix(filepath.Dir(f), filepath.Join(dir, "partials")):
			partials = append(partials, f)
		case filepath.Base(f) == "home.html" && filepath.Dir(f) == dir:
			homePath = f
		default:
			pages = append(pages, f)
		}
	}
	if basePath == "" {
		return nil, fmt.Errorf("%s not found directly in layouts directory %q", BaseLayout, dir)
	}

	templates, err := template.ParseFiles(append([]string{basePath}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s and partials: %w", BaseLayout, err)
	}
	if len(pages) > 0 {
		if templates, err = templates.ParseFiles(pages...); err != nil {
			return nil, fmt.Errorf("parsing page layouts: %w", err)
		}
	}
	if homePath != "" {
		if templates, err = templates.ParseFiles(homePath); err != nil {
			return nil, fmt.Errorf("parsing home.html: %w", err)
		}
	}
	return &Engine{templates: templates}, nil
}

// Has reports whether a layout with the given name was parsed.
func (e *Engine) Has(name string) bool {
	return e.templates.Lookup(name) != nil
}

// Execute renders the named layout with data into w.
func (e *Engine) Execute(w io.Writer, name string, data interface{}) error {
	if err := e.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("executing layout %q: %w", name, err)
	}
	return nil
}

// ExecuteToFile renders the named layout into path, creating parent
// directories as needed.
func (e *Engine) ExecuteToFile(path, name string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("creating directory for %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()
	return e.Execute(f, name, data)
}
