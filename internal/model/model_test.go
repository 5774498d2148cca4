package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"blog/react-shopping-cart.md", "react-shopping-cart"},
		{"blog/f1-rest-api.md", "f1-rest-api"},
		{"projects/store.yml", "store"},
		{"index.yml", "index"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SlugFromPath(tt.path))
	}
}

func TestSlugIsDeterministic(t *testing.T) {
	assert.Equal(t, SlugFromPath("blog/a-post.md"), SlugFromPath("blog/a-post.md"))
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "React Shopping Cart", TitleFromSlug("react-shopping-cart"))
	assert.Equal(t, "Dockerized Blog", TitleFromSlug("dockerized_blog"))
}

func TestPermalink(t *testing.T) {
	p := BlogPost{Slug: "f1-rest-api"}
	assert.Equal(t, "/blog/f1-rest-api/", p.Permalink())
}
