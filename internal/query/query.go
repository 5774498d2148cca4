// Package query is the content interface pages compose from. It loads every
// collection through the loader exactly once, caches the typed records for
// the lifetime of the build, and serves sorted, filterable views of them.
// Surrounding code never reads the content store directly.
package query

import (
	"fmt"
	"sort"
	"time"

	"github.com/adhillon192/Vue-Portfolio/internal/content"
	"github.com/adhillon192/Vue-Portfolio/internal/loader"
	"github.com/adhillon192/Vue-Portfolio/internal/model"
	"github.com/adhillon192/Vue-Portfolio/internal/schema"
)

// Site holds one build's worth of loaded content. Records are parsed once at
// Load and shared; callers may iterate the returned slices any number of
// times without re-parsing, and must not mutate them.
type Site struct {
	posts    []*model.BlogPost
	projects []*model.ProjectEntry
	index    *model.IndexPage
	errs     []*schema.ParseError
}

// Load reads and parses every collection from the store. Documents that fail
// validation are skipped and their errors collected; only I/O failures abort
// the load. The blog collection is sorted descending by date, ties broken by
// path ascending, so output is deterministic.
func Load(store *content.Store, l *loader.Loader) (*Site, error) {
	s := &Site{}

	docs, err := store.List(content.CollectionBlog)
	if err != nil {
		return nil, fmt.Errorf("loading blog collection: %w", err)
	}
	for _, doc := range docs {
		post, perr := l.BlogPost(doc)
		if perr != nil {
			s.errs = append(s.errs, perr)
			continue
		}
		s.posts = append(s.posts, post)
	}
	sort.SliceStable(s.posts, func(i, j int) bool {
		if !s.posts[i].Date.Equal(s.posts[j].Date) {
			return s.posts[i].Date.After(s.posts[j].Date)
		}
		return s.posts[i].Path < s.posts[j].Path
	})

	docs, err = store.List(content.CollectionProjects)
	if err != nil {
		return nil, fmt.Errorf("loading projects collection: %w", err)
	}
	for _, doc := range docs {
		project, perr := l.Project(doc)
		if perr != nil {
			s.errs = append(s.errs, perr)
			continue
		}
		s.projects = append(s.projects, project)
	}

	docs, err = store.List(content.CollectionIndex)
	if err != nil {
		return nil, fmt.Errorf("loading index collection: %w", err)
	}
	for _, doc := range docs {
		index, perr := l.Index(doc)
		if perr != nil {
			s.errs = append(s.errs, perr)
			continue
		}
		s.index = index
	}

	return s, nil
}

// Posts returns all blog posts, newest first. An empty blog is an empty
// slice, never an error.
func (s *Site) Posts() []*model.BlogPost {
	return s.posts
}

// PostsWhere returns the posts matching pred, preserving order.
func (s *Site) PostsWhere(pred func(*model.BlogPost) bool) []*model.BlogPost {
	out := []*model.BlogPost{}
	for _, p := range s.posts {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// PublishedBefore is a predicate for posts dated strictly before t.
func PublishedBefore(t time.Time) func(*model.BlogPost) bool {
	return func(p *model.BlogPost) bool { return p.Date.Before(t) }
}

// RecentPosts returns at most n of the newest posts.
func (s *Site) RecentPosts(n int) []*model.BlogPost {
	if n > len(s.posts) {
		n = len(s.posts)
	}
	return s.posts[:n]
}

// Post returns the post with the given slug, or nil.
func (s *Site) Post(slug string) *model.BlogPost {
	for _, p := range s.posts {
		if p.Slug == slug {
			return p
		}
	}
	return nil
}

// Projects returns all project entries in path order.
func (s *Site) Projects() []*model.ProjectEntry {
	return s.projects
}

// FeaturedProjects returns the entries marked featured, preserving order.
func (s *Site) FeaturedProjects() []*model.ProjectEntry {
	out := []*model.ProjectEntry{}
	for _, p := range s.projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Index returns the homepage record, or nil when the index document is
// missing or failed validation.
func (s *Site) Index() *model.IndexPage {
	return s.index
}

// Errors returns the per-document validation failures collected during Load.
func (s *Site) Errors() []*schema.ParseError {
	return s.errs
}
