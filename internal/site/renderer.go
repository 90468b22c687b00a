package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/router"
)

// Mount ids used by the built-in templates.
const (
	MountPageContent   = "page-content"
	MountCharacterGrid = "character-grid"
	MountArchiveGrid   = "archive-grid"
	MountCategoryList  = "category-list"
	MountBlogList      = "blog-list"
	MountDetail        = "detail"
)

// Options configures a Renderer.
type Options struct {
	Theme  *Theme
	Pages  *Pages
	Links  Linker
	Logger *zap.Logger
	// LiveReload is the websocket path pages connect to; empty disables it.
	LiveReload string
}

// Renderer turns view requests into complete HTML pages.
type Renderer struct {
	theme      *Theme
	pages      *Pages
	links      Linker
	logger     *zap.Logger
	liveReload string
	md         goldmark.Markdown
}

// NewRenderer creates a Renderer. Missing options fall back to the default
// theme, empty pages, server links and a no-op logger.
func NewRenderer(opts Options) (*Renderer, error) {
	r := &Renderer{
		theme:      opts.Theme,
		pages:      opts.Pages,
		links:      opts.Links,
		logger:     opts.Logger,
		liveReload: opts.LiveReload,
		md:         newMarkdown(),
	}
	if r.theme == nil {
		t, err := DefaultTheme()
		if err != nil {
			return nil, err
		}
		r.theme = t
	}
	if r.pages == nil {
		r.pages = &Pages{}
	}
	if r.links == nil {
		r.links = ServerLinks{}
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r, nil
}

// Links returns the renderer's linker.
func (r *Renderer) Links() Linker { return r.links }

// Theme returns the renderer's theme.
func (r *Renderer) Theme() *Theme { return r.theme }

// navLink is one rendered navigation entry.
type navLink struct {
	Href   string
	Label  string
	Active bool
}

// pageData is what the layout and view templates see.
type pageData struct {
	Site        content.Site
	Page        router.Page
	Title       string
	Description string
	Nav         []navLink
	CSS         string
	JS          string
	LiveReload  string
	Category    string
	Message     string

	doc *Document
}

// Mount emits the contents of a container.
func (d *pageData) Mount(id string) template.HTML {
	return d.doc.HTML(id)
}

// Render renders req against store and writes the page to w. It returns the
// HTTP status the page should be served with. Nothing is written if ctx is
// done before rendering finishes.
func (r *Renderer) Render(ctx context.Context, w io.Writer, store *content.Store, req router.ViewRequest) (int, error) {
	view := string(req.Page)
	status := http.StatusOK
	if req.Mode == router.ModeDetail || req.Mode == router.ModeNotFound {
		view += detailSuffix
	}
	if req.Mode == router.ModeNotFound {
		status = http.StatusNotFound
	}

	doc := NewDocument(r.theme.Mounts(view)...)
	data := r.newPageData(store.Site(), req.Page, doc)

	var err error
	switch req.Mode {
	case router.ModeStatic:
		err = r.renderStatic(doc, data)
	case router.ModeList:
		err = r.renderList(doc, data, req)
	case router.ModeDetail:
		data.Title = content.DisplayName(req.Record)
		data.Description = req.Record.Common().Description
		err = r.mount(doc, MountDetail, func(c *Container) error {
			return r.RenderDetail(c, req.Record, r.links.Page(req.Page))
		})
	case router.ModeNotFound:
		err = r.mount(doc, MountDetail, func(c *Container) error {
			return r.RenderNotFound(c, req.Kind, req.RequestedID, r.links.Page(req.Page))
		})
	default:
		err = fmt.Errorf("unsupported view mode %s", req.Mode)
	}
	if err != nil {
		return http.StatusInternalServerError, err
	}

	if err := r.execute(ctx, w, view, data); err != nil {
		return http.StatusInternalServerError, err
	}
	return status, nil
}

// RenderUnavailable writes the fallback page shown while no content is
// loaded. site may be zero.
func (r *Renderer) RenderUnavailable(ctx context.Context, w io.Writer, site content.Site, cause error) error {
	data := r.newPageData(site, router.PageHome, NewDocument())
	data.Title = "Unavailable"
	data.Message = "데이터를 로드할 수 없습니다."
	if cause != nil {
		r.logger.Warn("rendering fallback page", zap.Error(cause))
	}
	return r.execute(ctx, w, viewUnavailable, data)
}

// RenderBlogFragment writes only the blog list for category, as swapped in by
// the category filter script.
func (r *Renderer) RenderBlogFragment(w io.Writer, store *content.Store, category string) error {
	posts := store.Collection(content.KindBlog)
	f := NewCategoryFilter(posts, category)
	c := &Container{id: MountBlogList}
	if err := r.renderBlogList(c, posts, f); err != nil {
		return err
	}
	_, err := io.WriteString(w, string(c.HTML()))
	return err
}

func (r *Renderer) renderStatic(doc *Document, data *pageData) error {
	sp := r.pages.Get(data.Page)
	data.Title = sp.Title
	data.Description = sp.Description
	return r.mount(doc, MountPageContent, func(c *Container) error {
		c.Reset()
		c.Append(sp.HTML)
		return nil
	})
}

func (r *Renderer) renderList(doc *Document, data *pageData, req router.ViewRequest) error {
	data.Title = defaultTitle(req.Page)
	switch req.Kind {
	case content.KindCharacter:
		return r.mount(doc, MountCharacterGrid, func(c *Container) error {
			return r.RenderList(c, req.Records, r.detailLink(req.Kind))
		})
	case content.KindArchive:
		return r.mount(doc, MountArchiveGrid, func(c *Container) error {
			return r.RenderList(c, req.Records, r.detailLink(req.Kind))
		})
	case content.KindBlog:
		f := NewCategoryFilter(req.Records, req.Category)
		data.Category = f.Selected()
		if err := r.mount(doc, MountCategoryList, func(c *Container) error {
			return r.RenderCategories(c, f)
		}); err != nil {
			return err
		}
		return r.mount(doc, MountBlogList, func(c *Container) error {
			return r.renderBlogList(c, req.Records, f)
		})
	}
	return fmt.Errorf("no list renderer for %s", req.Kind)
}

// mount runs fn against the container id. A container the view does not
// declare is logged and skipped so the remaining renderers still run.
func (r *Renderer) mount(doc *Document, id string, fn func(*Container) error) error {
	c, err := doc.Container(id)
	if errors.Is(err, ErrMissingContainer) {
		r.logger.Warn("skipping renderer", zap.String("container", id), zap.Error(err))
		return nil
	}
	if err != nil {
		return err
	}
	return fn(c)
}

func (r *Renderer) newPageData(site content.Site, page router.Page, doc *Document) *pageData {
	d := &pageData{
		Site:       site,
		Page:       page,
		CSS:        r.links.Asset("style.css"),
		JS:         r.links.Asset("script.js"),
		LiveReload: r.liveReload,
		doc:        doc,
	}
	for _, item := range site.Navigation {
		href, p, ok := navHref(r.links, item.Href)
		d.Nav = append(d.Nav, navLink{
			Href:   href,
			Label:  item.Label,
			Active: ok && p == page,
		})
	}
	return d
}

func (r *Renderer) execute(ctx context.Context, w io.Writer, view string, data *pageData) error {
	t, ok := r.theme.views[view]
	if !ok {
		return fmt.Errorf("no template for view %q", view)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("executing %s: %w", view, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
