// Package content is the store for the site's source documents. It wraps a
// filesystem and hands out raw documents grouped into collections; everything
// downstream (loading, querying, composing) goes through it rather than
// touching the filesystem directly.
package content

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Collection names understood by the store.
const (
	CollectionBlog     = "blog"
	CollectionProjects = "projects"
	CollectionIndex    = "index"
)

// Document is one source file, read but not yet parsed. Raw holds the full
// file contents; splitting front matter from body is the loader's job.
type Document struct {
	Collection string
	Path       string // slash-separated, relative to the content root
	Raw        []byte
}

// Store reads documents from a content directory. It is constructed once per
// build and treated as read-only; it never writes.
type Store struct {
	fsys fs.FS
}

// NewStore returns a store over the given filesystem, whose root is the
// content directory (e.g. os.DirFS("content")).
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// List returns every document in the named collection, sorted by path
// ascending. A collection with no documents yields an empty slice, not an
// error; an unknown collection name is an error.
func (s *Store) List(collection string) ([]Document, error) {
	switch collection {
	case CollectionBlog:
		return s.listDir(collection, "blog", ".md")
	case CollectionProjects:
		return s.listDir(collection, "projects", ".yml", ".yaml")
	case CollectionIndex:
		return s.listIndex()
	default:
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
}

// Read returns a single document by its collection-relative path.
func (s *Store) Read(collection, p string) (Document, error) {
	raw, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", p, err)
	}
	return Document{Collection: collection, Path: p, Raw: raw}, nil
}

func (s *Store) listDir(collection, dir string, exts ...string) ([]Document, error) {
	docs := []Document{}
	if _, err := fs.Stat(s.fsys, dir); err != nil {
		// A missing collection directory means no content, which is fine.
		return docs, nil
	}
	err := fs.WalkDir(s.fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasExt(d.Name(), exts) {
			return nil
		}
		doc, err := s.Read(collection, p)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing collection %q: %w", collection, err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// listIndex resolves the single homepage document. Either index.yml or
// index.yaml is accepted; absence yields an empty slice.
func (s *Store) listIndex() ([]Document, error) {
	for _, name := range []string{"index.yml", "index.yaml"} {
		if _, err := fs.Stat(s.fsys, name); err != nil {
			continue
		}
		doc, err := s.Read(CollectionIndex, name)
		if err != nil {
			return nil, err
		}
		return []Document{doc}, nil
	}
	return []Document{}, nil
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
