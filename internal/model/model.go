// Package model defines the typed records each collection's documents load
// into. One discriminated type per collection replaces the old generic
// map-shaped content item, so layouts bind to real fields instead of digging
// through untyped front matter.
package model

import (
	"html/template"
	"path"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Avatar is an author portrait referenced by URL.
type Avatar struct {
	Src string
	Alt string
}

// Author is the byline of a blog post.
type Author struct {
	Name   string
	Avatar Avatar
}

// BlogPost is the validated projection of one markdown post.
type BlogPost struct {
	Slug        string
	Path        string
	Title       string
	Description string
	Date        time.Time
	Image       string
	MinRead     int
	Author      Author
	Body        template.HTML
}

// Permalink is the post's site-relative URL.
func (p *BlogPost) Permalink() string {
	return "/blog/" + p.Slug + "/"
}

// ProjectEntry is one entry of the projects listing.
type ProjectEntry struct {
	Slug        string
	Path        string
	Name        string
	Description string
	Image       string
	URL         string
	Repo        string
	Year        int
	Featured    bool
}

// Link is a labelled URL, used by the hero's call-to-action row.
type Link struct {
	Label string
	To    string
}

// Hero is the homepage banner.
type Hero struct {
	Title       string
	Description string
	Links       []Link
}

// About is the homepage introduction. Description holds raw multi-line text;
// the composer splits it into paragraphs.
type About struct {
	Title       string
	Description string
}

// ExperienceItem is one role in the experience timeline.
type ExperienceItem struct {
	Position    string
	Company     string
	Period      string
	Description string
}

// Experience is the homepage work-history section.
type Experience struct {
	Title string
	Items []ExperienceItem
}

// Testimonial is one quote in the testimonial grid. Rating is 1..5 when set.
type Testimonial struct {
	Name   string
	Role   string
	Quote  string
	Rating int
}

// Testimonials is the homepage testimonial section.
type Testimonials struct {
	Title string
	Items []Testimonial
}

// FAQItem is one entry of the FAQ accordion.
type FAQItem struct {
	Label   string
	Content string
}

// FAQ is the homepage FAQ section.
type FAQ struct {
	Title string
	Items []FAQItem
}

// IndexPage is the validated projection of the homepage document. Hero and
// About are always populated; the other sections are zero-valued when the
// document omits them.
type IndexPage struct {
	Hero         Hero
	About        About
	Experience   Experience
	Testimonials Testimonials
	FAQ          FAQ
}

// SlugFromPath derives a record's identifier from its document path: the base
// name without extension. Deterministic, so the same document always maps to
// the same URL.
func SlugFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

var titleCaser = cases.Title(language.English)

// TitleFromSlug turns a slug into a presentable fallback title
// ("react-shopping-cart" -> "React Shopping Cart").
func TitleFromSlug(slug string) string {
	t := strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " ")
	return titleCaser.String(t)
}
