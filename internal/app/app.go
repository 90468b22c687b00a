// Package app holds the running site: the content source, the current
// content snapshot and the renderer. It is built once at startup and handed
// to the server and the static export.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/router"
	"github.com/ziadkadry99/folio/internal/site"
)

// Options configures an App.
type Options struct {
	Source     content.Source
	RetryDelay time.Duration
	Renderer   *site.Renderer
	Logger     *zap.Logger
	// Close releases the source, e.g. its database handle.
	Close func() error
}

// App owns the current immutable content snapshot. Reloading builds a new
// Store and swaps it in; a Store is never modified after it is published.
type App struct {
	source     content.Source
	retryDelay time.Duration
	renderer   *site.Renderer
	logger     *zap.Logger
	closeFn    func() error

	store  atomic.Pointer[content.Store]
	search atomic.Pointer[[]site.SearchEntry]

	mu      sync.Mutex
	lastErr error
}

// New creates an App. Content is not loaded until Load is called.
func New(opts Options) *App {
	a := &App{
		source:     opts.Source,
		retryDelay: opts.RetryDelay,
		renderer:   opts.Renderer,
		logger:     opts.Logger,
		closeFn:    opts.Close,
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a
}

// Load fetches the content and publishes it as the current snapshot. On
// failure the previous snapshot, if any, stays in place.
func (a *App) Load(ctx context.Context) error {
	store, err := content.Load(ctx, a.source, content.LoadOptions{
		RetryDelay: a.retryDelay,
		Logger:     a.logger,
	})

	a.mu.Lock()
	a.lastErr = err
	a.mu.Unlock()

	if err != nil {
		a.logger.Error("content load failed", zap.String("source", a.source.String()), zap.Error(err))
		return err
	}

	entries := site.BuildSearchIndex(store, a.renderer.Links())
	a.search.Store(&entries)
	a.store.Store(store)
	return nil
}

// Store returns the current snapshot. Without one it returns the error of
// the last load, always wrapping content.ErrDataUnavailable.
func (a *App) Store() (*content.Store, error) {
	if s := a.store.Load(); s != nil {
		return s, nil
	}
	a.mu.Lock()
	err := a.lastErr
	a.mu.Unlock()
	switch {
	case err == nil:
		return nil, content.ErrDataUnavailable
	case errors.Is(err, content.ErrDataUnavailable):
		return nil, err
	default:
		return nil, fmt.Errorf("%w: %w", content.ErrDataUnavailable, err)
	}
}

// Renderer returns the page renderer.
func (a *App) Renderer() *site.Renderer { return a.renderer }

// Render runs one page load and writes the page to w, returning the HTTP
// status to serve it with. Without content it writes the fallback page.
func (a *App) Render(ctx context.Context, w io.Writer, page router.Page, params router.Params) (int, error) {
	store, err := a.Store()
	if err != nil {
		if rerr := a.renderer.RenderUnavailable(ctx, w, content.Site{}, err); rerr != nil {
			return http.StatusInternalServerError, rerr
		}
		return http.StatusServiceUnavailable, nil
	}

	req := router.New(store).Resolve(page, params)
	a.logger.Debug("view resolved",
		zap.String("page", string(page)),
		zap.String("mode", req.Mode.String()),
		zap.String("id", params.ID),
		zap.String("category", params.Category))
	return a.renderer.Render(ctx, w, store, req)
}

// RenderBlogFragment writes the blog list for category.
func (a *App) RenderBlogFragment(w io.Writer, category string) error {
	store, err := a.Store()
	if err != nil {
		return err
	}
	return a.renderer.RenderBlogFragment(w, store, category)
}

// Search queries the search index of the current snapshot.
func (a *App) Search(q string) ([]site.SearchEntry, error) {
	if _, err := a.Store(); err != nil {
		return nil, err
	}
	return site.Search(*a.search.Load(), q), nil
}

// Close releases the content source.
func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	return a.closeFn()
}
