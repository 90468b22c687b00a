package app

import (
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/site"
)

// OpenSource returns the content source cfg selects and a function that
// releases it.
func OpenSource(cfg config.ContentConfig) (content.Source, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Source {
	case config.SourceSample, "":
		return content.SampleSource{}, noop, nil
	case config.SourceFile:
		return content.FileSource{Path: cfg.Path}, noop, nil
	case config.SourceSQLite:
		d, err := db.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("opening content database: %w", err)
		}
		return content.SQLiteSource{DB: d}, d.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown content source %q", cfg.Source)
}

// PagesFS returns the directory static pages are read from: pages_dir when
// set, the built-in sample pages otherwise.
func PagesFS(cfg *config.Config) fs.FS {
	if cfg.PagesDir != "" {
		return os.DirFS(cfg.PagesDir)
	}
	return content.SamplePages()
}

// Assets loads the theme and static pages cfg points at.
func Assets(cfg *config.Config) (*site.Theme, *site.Pages, error) {
	theme, err := site.LoadTheme(cfg.ThemeDir)
	if err != nil {
		return nil, nil, err
	}
	pages, err := site.LoadPages(PagesFS(cfg))
	if err != nil {
		return nil, nil, err
	}
	return theme, pages, nil
}

// FromConfig builds an App serving through links. liveReload is the websocket
// path pages connect to, or empty.
func FromConfig(cfg *config.Config, logger *zap.Logger, links site.Linker, liveReload string) (*App, error) {
	theme, pages, err := Assets(cfg)
	if err != nil {
		return nil, err
	}
	renderer, err := site.NewRenderer(site.Options{
		Theme:      theme,
		Pages:      pages,
		Links:      links,
		Logger:     logger,
		LiveReload: liveReload,
	})
	if err != nil {
		return nil, err
	}
	src, closeFn, err := OpenSource(cfg.Content)
	if err != nil {
		return nil, err
	}
	return New(Options{
		Source:     src,
		RetryDelay: cfg.Content.RetryDelay,
		Renderer:   renderer,
		Logger:     logger,
		Close:      closeFn,
	}), nil
}
