package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBlogComplete(t *testing.T) {
	data := map[string]interface{}{
		"title":       "Building a Shopify Store",
		"description": "Next.js, Shopify and Supabase end to end.",
		"date":        "2024-03-18",
		"image":       "https://cdn.example.com/store.png",
		"minRead":     8,
		"author": map[string]interface{}{
			"name": "Aman Dhillon",
			"avatar": map[string]interface{}{
				"src": "https://cdn.example.com/me.png",
				"alt": "portrait",
			},
		},
	}

	out, perr := Blog().Validate("blog/store.md", data)
	require.Nil(t, perr)

	assert.Equal(t, "Building a Shopify Store", out["title"])
	assert.Equal(t, 8, out["minRead"])
	date, ok := out["date"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	author, ok := out["author"].(map[string]interface{})
	require.True(t, ok)
	avatar, ok := author["avatar"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/me.png", avatar["src"])
}

func TestValidateMissingRequiredField(t *testing.T) {
	data := map[string]interface{}{
		"title":       "No Date",
		"description": "front matter without a date",
	}

	_, perr := Blog().Validate("blog/no-date.md", data)
	require.NotNil(t, perr)
	assert.Equal(t, MissingField, perr.Kind)
	assert.Equal(t, "date", perr.Field)
	assert.Equal(t, "blog/no-date.md", perr.Path)
	assert.Contains(t, perr.Error(), `"date"`)
}

func TestValidateNestedMissingField(t *testing.T) {
	data := map[string]interface{}{
		"title":       "Post",
		"description": "d",
		"date":        "2024-01-01",
		"author": map[string]interface{}{
			"avatar": map[string]interface{}{"src": "https://x/a.png"},
		},
	}

	_, perr := Blog().Validate("blog/p.md", data)
	require.NotNil(t, perr)
	assert.Equal(t, MissingField, perr.Kind)
	assert.Equal(t, "author.name", perr.Field)
}

func TestValidateDateFormats(t *testing.T) {
	for _, in := range []string{
		"2023-11-05",
		"2023-11-05T09:30:00",
		"2023-11-05 09:30:00",
		"2023-11-05T09:30:00Z",
	} {
		data := map[string]interface{}{"title": "t", "description": "d", "date": in}
		out, perr := Blog().Validate("blog/d.md", data)
		require.Nil(t, perr, "date %q should parse", in)
		assert.IsType(t, time.Time{}, out["date"])
	}
}

func TestValidateBadDate(t *testing.T) {
	data := map[string]interface{}{"title": "t", "description": "d", "date": "next tuesday"}

	_, perr := Blog().Validate("blog/d.md", data)
	require.NotNil(t, perr)
	assert.Equal(t, TypeMismatch, perr.Kind)
	assert.Equal(t, "date", perr.Field)
}

func TestValidateTypeMismatchInt(t *testing.T) {
	data := map[string]interface{}{
		"title": "t", "description": "d", "date": "2024-01-01",
		"minRead": "five",
	}

	_, perr := Blog().Validate("blog/m.md", data)
	require.NotNil(t, perr)
	assert.Equal(t, TypeMismatch, perr.Kind)
	assert.Equal(t, "minRead", perr.Field)
}

func TestValidateDefaultApplied(t *testing.T) {
	data := map[string]interface{}{"title": "t", "description": "d", "date": "2024-01-01"}

	out, perr := Blog().Validate("blog/m.md", data)
	require.Nil(t, perr)
	assert.Equal(t, 1, out["minRead"])
	_, hasImage := out["image"]
	assert.False(t, hasImage, "absent optional field stays absent")
}

func TestValidateRatingRange(t *testing.T) {
	base := func(rating interface{}) map[string]interface{} {
		return map[string]interface{}{
			"hero":  map[string]interface{}{"title": "Hi"},
			"about": map[string]interface{}{"description": "text"},
			"testimonials": map[string]interface{}{
				"items": []interface{}{
					map[string]interface{}{"name": "Sam", "quote": "Great", "rating": rating},
				},
			},
		}
	}

	out, perr := Index().Validate("index.yml", base(5))
	require.Nil(t, perr)
	ts := out["testimonials"].(map[string]interface{})
	items := ts["items"].([]map[string]interface{})
	assert.Equal(t, 5, items[0]["rating"])

	for _, bad := range []interface{}{0, 6, "five", 4.5} {
		_, perr := Index().Validate("index.yml", base(bad))
		require.NotNil(t, perr, "rating %v must be rejected", bad)
		assert.Equal(t, TypeMismatch, perr.Kind)
		assert.Equal(t, "testimonials.items[0].rating", perr.Field)
	}
}

func TestValidateListElementMissingField(t *testing.T) {
	data := map[string]interface{}{
		"hero":  map[string]interface{}{"title": "Hi"},
		"about": map[string]interface{}{"description": "text"},
		"faq": map[string]interface{}{
			"items": []interface{}{
				map[string]interface{}{"label": "Q1", "content": "A1"},
				map[string]interface{}{"label": "Q2"},
			},
		},
	}

	_, perr := Index().Validate("index.yml", data)
	require.NotNil(t, perr)
	assert.Equal(t, MissingField, perr.Kind)
	assert.Equal(t, "faq.items[1].content", perr.Field)
}
