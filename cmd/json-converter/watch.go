package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls convert once, then again after every write to path, until ctx
// is done. Conversion errors are logged and do not stop the watch.
func watch(ctx context.Context, path string, convert func() error, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	// editors often replace the file, so watch the directory
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	if err := convert(); err != nil {
		logger.Warn("conversion failed", "path", path, "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			logger.Debug("input changed", "path", path, "op", ev.Op.String())

			if err := convert(); err != nil {
				logger.Warn("conversion failed", "path", path, "err", err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watcher error", "err", err)
		}
	}
}
