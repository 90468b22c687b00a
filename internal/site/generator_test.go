package site

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/progress"
)

func newTestGenerator(t *testing.T, out string) *Generator {
	t.Helper()
	theme, err := DefaultTheme()
	require.NoError(t, err)
	pages, err := LoadPages(content.SamplePages())
	require.NoError(t, err)
	g := NewGenerator(out, theme, pages, zap.NewNop())
	g.Now = func() time.Time { return time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	g := newTestGenerator(t, out)

	m, err := g.Generate(context.Background(), sampleStore(t))
	require.NoError(t, err)

	for _, name := range []string{
		"index.html", "introduction.html", "world.html",
		"character.html", "archive.html", "blog.html",
		"character-1.html", "character-2.html", "character-3.html",
		"archive-1.html", "archive-2.html", "blog-1.html", "blog-2.html",
		"fragments/blog-all.html", "fragments/blog-1.html", "fragments/blog-2.html",
		"style.css", "script.js", "search-index.json", "manifest.json",
	} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
		assert.Contains(t, m.Files, name)
	}

	raw, err := os.ReadFile(filepath.Join(out, "manifest.json"))
	require.NoError(t, err)
	var got Manifest
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, m.BuildID, got.BuildID)
	assert.Equal(t, 3, got.Counts[content.KindCharacter])
	assert.Equal(t, map[string]int{"창작 과정": 1, "아트 기법": 2}, got.Categories)
	assert.True(t, got.GeneratedAt.Equal(g.Now()))
}

func TestGenerateStaticLinks(t *testing.T) {
	out := t.TempDir()
	g := newTestGenerator(t, out)
	m, err := g.Generate(context.Background(), sampleStore(t))
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(out, "character.html"))
	require.NoError(t, err)
	html := string(index)
	assert.Contains(t, html, `href="character-2.html"`)
	assert.Contains(t, html, `href="style.css?v=`+m.BuildID+`"`)
	assert.Contains(t, html, `class="nav-btn active" href="character.html"`)

	blog, err := os.ReadFile(filepath.Join(out, "blog.html"))
	require.NoError(t, err)
	assert.Contains(t, string(blog), `data-fragment="fragments/blog-2.html"`)

	detail, err := os.ReadFile(filepath.Join(out, "blog-2.html"))
	require.NoError(t, err)
	assert.Contains(t, string(detail), `class="back-btn" href="blog.html"`)

	fragment, err := os.ReadFile(filepath.Join(out, "fragments", "blog-2.html"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(fragment), `class="blog-item"`))
}

func TestGenerateReportsProgress(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGenerator(t, t.TempDir())
	g.Reporter = &progress.CIReporter{Out: &buf, Description: "Exporting"}

	m, err := g.Generate(context.Background(), sampleStore(t))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Exporting: 20 files")
	assert.Contains(t, buf.String(), "[20/20] manifest.json")
	assert.Len(t, m.Files, 20)
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestGenerator(t, t.TempDir()).Generate(ctx, sampleStore(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportCategoriesNumbersWithoutGaps(t *testing.T) {
	post := func(id int, category string) content.Record {
		return &content.BlogPost{Base: content.Base{ID: id}, Category: category}
	}
	posts := []content.Record{post(1, "a"), post(2, AllCategories), post(3, "b"), post(4, "a")}

	names, index := exportCategories(posts)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, index)

	links := StaticLinks{CategoryIndex: index}
	assert.Equal(t, "fragments/blog-2.html", links.Fragment("b"))
	assert.Equal(t, "fragments/blog-all.html", links.Fragment("unindexed"))
	assert.Equal(t, "fragments/blog-all.html", links.Fragment(AllCategories))
}

func TestGenerateWithoutBlogPosts(t *testing.T) {
	store, err := content.New(&content.Payload{
		Characters: []content.CharacterDoc{{ID: 1, Name: "solo"}},
	})
	require.NoError(t, err)

	out := t.TempDir()
	m, err := newTestGenerator(t, out).Generate(context.Background(), store)
	require.NoError(t, err)
	assert.Empty(t, m.Categories)
	assert.Contains(t, m.Files, "fragments/blog-all.html")
	assert.NotContains(t, m.Files, "fragments/blog-1.html")
}
