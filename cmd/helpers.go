package cmd

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/content"
)

// validConfig returns the loaded config after validating it.
func validConfig() (*config.Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w\nRun `folio init` to create a config file", cfgFile, err)
	}
	return cfg, nil
}

// loadStore loads src into a store, honoring the configured retry delay.
func loadStore(ctx context.Context, cfg *config.Config, src content.Source) (*content.Store, error) {
	return content.Load(ctx, src, content.LoadOptions{
		RetryDelay: cfg.Content.RetryDelay,
		Logger:     logger,
	})
}

// loadConfiguredStore opens the configured content source and loads it.
func loadConfiguredStore(ctx context.Context, cfg *config.Config) (*content.Store, error) {
	src, closeFn, err := app.OpenSource(cfg.Content)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return loadStore(ctx, cfg, src)
}
