package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long Watch waits for a burst of writes to settle.
const DefaultDebounce = 300 * time.Millisecond

// Watch reloads content whenever the file at path changes, until ctx is done.
// The parent directory is watched so editors that replace the file on save
// are still seen. onReload runs after every successful reload.
func (a *App) Watch(ctx context.Context, path string, debounce time.Duration, onReload func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}
	a.logger.Info("watching content", zap.String("path", target))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				a.logger.Debug("content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			if err := a.Load(ctx); err != nil {
				// The previous snapshot keeps serving.
				continue
			}
			a.logger.Info("content reloaded", zap.String("path", target))
			if onReload != nil {
				onReload()
			}
		}
	}
}
