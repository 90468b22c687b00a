package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/folio/internal/router"
)

// StaticPage is a page with no records: home, introduction, world.
type StaticPage struct {
	Page        router.Page
	Title       string
	Description string
	HTML        template.HTML
}

// pageMatter is the front matter of a static page file.
type pageMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Pages holds the rendered static pages.
type Pages struct {
	pages map[router.Page]StaticPage
}

// LoadPages reads <page>.md for every static page from fsys. A missing file
// yields an empty page titled after the page name.
func LoadPages(fsys fs.FS) (*Pages, error) {
	md := newMarkdown()
	ps := &Pages{pages: make(map[router.Page]StaticPage)}
	for _, p := range router.Pages {
		if _, ok := p.Kind(); ok {
			continue
		}
		sp, err := loadPage(fsys, md, p)
		if err != nil {
			return nil, err
		}
		ps.pages[p] = sp
	}
	return ps, nil
}

func loadPage(fsys fs.FS, md goldmark.Markdown, p router.Page) (StaticPage, error) {
	sp := StaticPage{Page: p, Title: defaultTitle(p)}
	if fsys == nil {
		return sp, nil
	}

	name := string(p) + ".md"
	raw, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return sp, nil
	}
	if err != nil {
		return sp, fmt.Errorf("reading page %s: %w", name, err)
	}

	var matter pageMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &matter)
	if err != nil {
		return sp, fmt.Errorf("parsing front matter of %s: %w", name, err)
	}
	if matter.Title != "" {
		sp.Title = matter.Title
	}
	sp.Description = matter.Description

	sp.HTML, err = renderMarkdown(md, string(body))
	if err != nil {
		return sp, fmt.Errorf("rendering %s: %w", name, err)
	}
	return sp, nil
}

// Get returns the static page p.
func (ps *Pages) Get(p router.Page) StaticPage {
	if sp, ok := ps.pages[p]; ok {
		return sp
	}
	return StaticPage{Page: p, Title: defaultTitle(p)}
}

func defaultTitle(p router.Page) string {
	if p == router.PageHome {
		return "Top"
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}
