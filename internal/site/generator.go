package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/router"
)

// Generator exports the whole site as static files.
type Generator struct {
	OutputDir string
	Theme     *Theme
	Pages     *Pages
	Logger    *zap.Logger
	Reporter  progress.Reporter
	// Now stamps the manifest; defaults to time.Now.
	Now func() time.Time
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(outputDir string, theme *Theme, pages *Pages, logger *zap.Logger) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Theme:     theme,
		Pages:     pages,
		Logger:    logger,
		Reporter:  progress.Nop{},
		Now:       time.Now,
	}
}

// Manifest describes one export.
type Manifest struct {
	BuildID     string               `json:"buildId"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Counts      map[content.Kind]int `json:"counts"`
	Categories  map[string]int       `json:"categories"`
	Files       []string             `json:"files"`
}

// exportFile is one file of the export.
type exportFile struct {
	path  string
	write func(w io.Writer) error
}

// Generate writes every page, detail page, blog fragment and asset of store
// into the output directory.
func (g *Generator) Generate(ctx context.Context, store *content.Store) (*Manifest, error) {
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	now := g.Now
	if now == nil {
		now = time.Now
	}

	categories, categoryIndex := exportCategories(store.Collection(content.KindBlog))

	m := &Manifest{
		BuildID:     uuid.NewString(),
		GeneratedAt: now().UTC(),
		Counts:      store.Counts(),
		Categories:  categoryIndex,
	}
	links := StaticLinks{BuildID: m.BuildID, CategoryIndex: categoryIndex}
	r, err := NewRenderer(Options{Theme: g.Theme, Pages: g.Pages, Links: links, Logger: logger})
	if err != nil {
		return nil, err
	}
	rt := router.New(store)

	var files []exportFile
	page := func(path string, req router.ViewRequest) {
		files = append(files, exportFile{path: path, write: func(w io.Writer) error {
			_, err := r.Render(ctx, w, store, req)
			return err
		}})
	}
	for _, p := range router.Pages {
		page(links.Page(p), rt.Resolve(p, router.Params{}))
	}
	for _, k := range content.Kinds {
		for _, rec := range store.Collection(k) {
			id := rec.Common().ID
			page(links.Detail(k, id), rt.Resolve(router.PageFor(k), router.Params{ID: strconv.Itoa(id), HasID: true}))
		}
	}
	for _, c := range append([]string{AllCategories}, categories...) {
		files = append(files, exportFile{path: links.Fragment(c), write: func(w io.Writer) error {
			return r.RenderBlogFragment(w, store, c)
		}})
	}
	files = append(files,
		exportFile{path: "style.css", write: writeString(r.Theme().CSS)},
		exportFile{path: "script.js", write: writeString(r.Theme().JS)},
		exportFile{path: "search-index.json", write: func(w io.Writer) error {
			return writeJSON(w, BuildSearchIndex(store, links))
		}},
	)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	reporter.Start(len(files) + 1)
	defer reporter.Finish()
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := g.writeFile(f); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.path, err)
		}
		m.Files = append(m.Files, f.path)
		reporter.Update(i+1, f.path)
	}

	m.Files = append(m.Files, "manifest.json")
	if err := g.writeFile(exportFile{path: "manifest.json", write: func(w io.Writer) error {
		return writeJSON(w, m)
	}}); err != nil {
		return nil, fmt.Errorf("writing manifest.json: %w", err)
	}
	reporter.Update(len(files)+1, "manifest.json")

	logger.Info("site exported",
		zap.String("output", g.OutputDir),
		zap.String("build_id", m.BuildID),
		zap.Int("files", len(m.Files)),
	)
	return m, nil
}

func (g *Generator) writeFile(f exportFile) error {
	var buf bytes.Buffer
	if err := f.write(&buf); err != nil {
		return err
	}
	out := filepath.Join(g.OutputDir, filepath.FromSlash(f.path))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0o644)
}

// exportCategories returns the blog categories in list order and their
// fragment numbers. The sentinel always leads the category list and is
// skipped by position, so numbering is 1..n without gaps.
func exportCategories(posts []content.Record) ([]string, map[string]int) {
	cats := NewCategoryFilter(posts, "").Categories()
	names := make([]string, 0, len(cats))
	index := make(map[string]int, len(cats))
	for _, c := range cats[1:] {
		if _, dup := index[c.Name]; dup {
			continue
		}
		names = append(names, c.Name)
		index[c.Name] = len(names)
	}
	return names, index
}

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
