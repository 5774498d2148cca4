package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhillon192/Vue-Portfolio/internal/model"
)

func homeSpec() PageSpec {
	return PageSpec{
		Name:   "home",
		Layout: "home.html",
		Sections: []Section{
			{Name: "hero", Required: true},
			{Name: "about", Required: true},
			{Name: "experience"},
			{Name: "testimonials"},
			{Name: "faq"},
		},
	}
}

func TestComposeAllSections(t *testing.T) {
	data := map[string]interface{}{
		"hero":         model.Hero{Title: "Hi"},
		"about":        []string{"one", "two"},
		"experience":   model.Experience{Items: []model.ExperienceItem{{Company: "Acme"}}},
		"testimonials": model.Testimonials{Items: []model.Testimonial{{Name: "Sam"}}},
		"faq":          model.FAQ{Items: []model.FAQItem{{Label: "Q"}}},
	}

	pm, cerr := Compose(homeSpec(), data)
	require.Nil(t, cerr)
	assert.Equal(t, "home", pm.Name)
	assert.True(t, pm.Has("testimonials"))
	hero, ok := pm.Section("hero").(model.Hero)
	require.True(t, ok)
	assert.Equal(t, "Hi", hero.Title)
}

func TestComposeOptionalSectionMissing(t *testing.T) {
	data := map[string]interface{}{
		"hero":  model.Hero{Title: "Hi"},
		"about": []string{"one"},
	}

	pm, cerr := Compose(homeSpec(), data)
	require.Nil(t, cerr)
	assert.False(t, pm.Has("testimonials"))
	assert.Nil(t, pm.Section("testimonials"))
}

func TestComposeRequiredSectionMissing(t *testing.T) {
	data := map[string]interface{}{
		"about": []string{"one"},
	}

	pm, cerr := Compose(homeSpec(), data)
	require.NotNil(t, cerr)
	assert.Nil(t, pm)
	assert.Equal(t, MissingSection, cerr.Kind)
	assert.Equal(t, "home", cerr.Page)
	assert.Equal(t, "hero", cerr.Section)
	assert.Contains(t, cerr.Error(), `"hero"`)
}

func TestComposeIgnoresUndeclaredSections(t *testing.T) {
	data := map[string]interface{}{
		"hero":    model.Hero{Title: "Hi"},
		"about":   []string{"one"},
		"sidebar": "not declared",
	}

	pm, cerr := Compose(homeSpec(), data)
	require.Nil(t, cerr)
	assert.False(t, pm.Has("sidebar"))
}

func TestParagraphsExactBehavior(t *testing.T) {
	got := Paragraphs("Hello.\n\nWorld.\n\n\n")
	assert.Equal(t, []string{"Hello.", "World."}, got)
}

func TestParagraphsSingleNewlineSplits(t *testing.T) {
	got := Paragraphs("one\ntwo")
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestParagraphsTrimsSegments(t *testing.T) {
	got := Paragraphs("  padded  \n\n\t tabbed \n\n   \n")
	assert.Equal(t, []string{"padded", "tabbed"}, got)
}

func TestParagraphsEmptyInput(t *testing.T) {
	assert.Empty(t, Paragraphs(""))
	assert.Empty(t, Paragraphs("\n\n\n"))
	assert.Empty(t, Paragraphs("   "))
}

func TestParagraphsIdempotent(t *testing.T) {
	first := Paragraphs("I build web things.\n\nMostly storefronts.\n\nAnd small APIs.\n")
	rejoined := strings.Join(first, "\n\n")
	assert.Equal(t, first, Paragraphs(rejoined))
}
