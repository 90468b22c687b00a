// Package router resolves a page identity and its query parameters into the
// view a page load should render.
package router

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ziadkadry99/folio/internal/content"
)

// ErrUnknownPage is returned by ParsePage for names outside the page set.
var ErrUnknownPage = errors.New("unknown page")

// Page identifies one page of the site.
type Page string

const (
	PageHome         Page = "home"
	PageIntroduction Page = "introduction"
	PageCharacter    Page = "character"
	PageWorld        Page = "world"
	PageArchive      Page = "archive"
	PageBlog         Page = "blog"
)

// Pages lists every page in navigation order.
var Pages = []Page{PageHome, PageIntroduction, PageCharacter, PageWorld, PageArchive, PageBlog}

var pageKinds = map[Page]content.Kind{
	PageCharacter: content.KindCharacter,
	PageArchive:   content.KindArchive,
	PageBlog:      content.KindBlog,
}

// ParsePage accepts "blog", "/blog", "blog.html" and "index.html" style names.
// The empty name is the home page.
func ParsePage(name string) (Page, error) {
	name = strings.Trim(name, "/")
	name = strings.TrimSuffix(name, ".html")
	switch name {
	case "", "index", string(PageHome):
		return PageHome, nil
	}
	p := Page(name)
	for _, known := range Pages {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPage, name)
}

// Kind returns the content kind a page lists, or false for static pages.
func (p Page) Kind() (content.Kind, bool) {
	k, ok := pageKinds[p]
	return k, ok
}

// PageFor returns the list page owning records of kind k.
func PageFor(k content.Kind) Page {
	for p, pk := range pageKinds {
		if pk == k {
			return p
		}
	}
	return PageHome
}

// Params are the query parameters a page understands.
type Params struct {
	ID       string
	HasID    bool
	Category string
}

// ParamsFromQuery extracts Params from a URL query. An empty id counts as absent.
func ParamsFromQuery(q url.Values) Params {
	p := Params{Category: strings.TrimSpace(q.Get("category"))}
	if id := strings.TrimSpace(q.Get("id")); id != "" {
		p.ID, p.HasID = id, true
	}
	return p
}

// Mode selects the renderer for a ViewRequest.
type Mode int

const (
	ModeStatic Mode = iota
	ModeList
	ModeDetail
	ModeNotFound
)

func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	case ModeList:
		return "list"
	case ModeDetail:
		return "detail"
	case ModeNotFound:
		return "not_found"
	}
	return "unknown"
}

// ViewRequest is the router's output: which view to render and with what.
type ViewRequest struct {
	Mode Mode
	Page Page
	Kind content.Kind

	// Detail
	Record content.Record

	// List
	Records  []content.Record
	SortedBy string
	Category string

	// NotFound
	RequestedID string
	Err         error
}

// Router resolves page loads against one content snapshot.
type Router struct {
	store *content.Store
}

// New creates a Router over store.
func New(store *content.Store) *Router {
	return &Router{store: store}
}

// Resolve maps a page and its parameters to a ViewRequest.
func (r *Router) Resolve(page Page, params Params) ViewRequest {
	kind, ok := page.Kind()
	if !ok {
		return ViewRequest{Mode: ModeStatic, Page: page}
	}

	if params.HasID {
		// Only the canonical decimal form names a record: "+2" and "02" do not.
		id, err := strconv.Atoi(params.ID)
		if err != nil || id <= 0 || strconv.Itoa(id) != params.ID {
			return ViewRequest{
				Mode:        ModeNotFound,
				Page:        page,
				Kind:        kind,
				RequestedID: params.ID,
				Err:         fmt.Errorf("%s id %q: %w", kind, params.ID, content.ErrNotFound),
			}
		}
		rec, err := r.store.FindByID(kind, id)
		if err != nil {
			return ViewRequest{Mode: ModeNotFound, Page: page, Kind: kind, RequestedID: params.ID, Err: err}
		}
		return ViewRequest{Mode: ModeDetail, Page: page, Kind: kind, Record: rec}
	}

	req := ViewRequest{Mode: ModeList, Page: page, Kind: kind, Records: r.store.Collection(kind)}
	switch kind {
	case content.KindArchive:
		req.Records = content.SortByDateDesc(req.Records)
		req.SortedBy = "date"
	case content.KindBlog:
		req.Category = params.Category
	}
	return req
}
