package site

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/router"
)

// Linker builds the URLs pages link to. The server and the static export
// lay out URLs differently; renderers only ever go through a Linker.
type Linker interface {
	Page(p router.Page) string
	Detail(k content.Kind, id int) string
	Category(category string) string
	Fragment(category string) string
	Asset(name string) string
}

// ServerLinks links into the HTTP server's routes.
type ServerLinks struct {
	Version string
}

func (l ServerLinks) Page(p router.Page) string {
	if p == router.PageHome {
		return "/"
	}
	return "/" + string(p)
}

func (l ServerLinks) Detail(k content.Kind, id int) string {
	return l.Page(router.PageFor(k)) + "?id=" + strconv.Itoa(id)
}

func (l ServerLinks) Category(category string) string {
	if category == "" || category == AllCategories {
		return l.Page(router.PageBlog)
	}
	return l.Page(router.PageBlog) + "?" + url.Values{"category": {category}}.Encode()
}

func (l ServerLinks) Fragment(category string) string {
	if category == "" {
		category = AllCategories
	}
	return "/fragments/blog?" + url.Values{"category": {category}}.Encode()
}

func (l ServerLinks) Asset(name string) string {
	if l.Version == "" {
		return "/assets/" + name
	}
	return "/assets/" + name + "?v=" + url.QueryEscape(l.Version)
}

// StaticLinks links between the files of a static export.
type StaticLinks struct {
	BuildID string
	// CategoryIndex numbers categories for fragment file names.
	CategoryIndex map[string]int
}

func (l StaticLinks) Page(p router.Page) string {
	if p == router.PageHome {
		return "index.html"
	}
	return string(p) + ".html"
}

func (l StaticLinks) Detail(k content.Kind, id int) string {
	return fmt.Sprintf("%s-%d.html", router.PageFor(k), id)
}

func (l StaticLinks) Category(category string) string {
	if category == "" || category == AllCategories {
		return l.Page(router.PageBlog)
	}
	return l.Page(router.PageBlog) + "?" + url.Values{"category": {category}}.Encode()
}

func (l StaticLinks) Fragment(category string) string {
	if i, ok := l.CategoryIndex[category]; ok && category != AllCategories {
		return fmt.Sprintf("fragments/blog-%d.html", i)
	}
	return "fragments/blog-all.html"
}

func (l StaticLinks) Asset(name string) string {
	if l.BuildID == "" {
		return name
	}
	return name + "?v=" + url.QueryEscape(l.BuildID)
}

// navHref maps a navigation href from the content payload (which uses the
// original "character.html" file names) onto the linker's URL layout.
// Hrefs that are not site pages are kept as they are.
func navHref(l Linker, href string) (string, router.Page, bool) {
	u, err := url.Parse(href)
	if err != nil || u.IsAbs() || u.Host != "" {
		return href, "", false
	}
	p, err := router.ParsePage(u.Path)
	if err != nil {
		return href, "", false
	}
	return l.Page(p), p, true
}
