package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLayouts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return dir
}

func TestLoadLayoutsAndExecute(t *testing.T) {
	dir := writeLayouts(t, map[string]string{
		"base.html":         `<html>{{template "nav"}}<main>{{.Title}}</main></html>`,
		"home.html":         `{{template "base.html" .}}`,
		"single.html":       `<article>{{.Title}}</article>`,
		"partials/nav.html": `{{define "nav"}}<nav>home</nav>{{end}}`,
	})

	engine, err := LoadLayouts(dir)
	require.NoError(t, err)

	assert.True(t, engine.Has("base.html"))
	assert.True(t, engine.Has("home.html"))
	assert.True(t, engine.Has("single.html"))
	assert.False(t, engine.Has("list-posts.html"))

	var buf bytes.Buffer
	err = engine.Execute(&buf, "single.html", struct{ Title string }{"F1 REST API"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<article>F1 REST API</article>")

	buf.Reset()
	err = engine.Execute(&buf, "home.html", struct{ Title string }{"Home"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<nav>home</nav>")
	assert.Contains(t, buf.String(), "<main>Home</main>")
}

func TestLoadLayoutsMissingBase(t *testing.T) {
	dir := writeLayouts(t, map[string]string{
		"single.html": `<article>{{.Title}}</article>`,
	})

	_, err := LoadLayouts(dir)
	assert.Error(t, err)
}

func TestMarkdownConversion(t *testing.T) {
	md := NewMarkdown()
	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte("# Heading\n\nSome ~~old~~ text."), &buf))

	out := buf.String()
	assert.Contains(t, out, `<h1 id="heading">`)
	assert.Contains(t, out, "<del>old</del>")
}

func TestExecuteToFile(t *testing.T) {
	dir := writeLayouts(t, map[string]string{
		"base.html": `<p>{{.Title}}</p>`,
	})
	engine, err := LoadLayouts(dir)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "blog", "post", "index.html")
	require.NoError(t, engine.ExecuteToFile(out, "base.html", struct{ Title string }{"x"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", string(data))
}
