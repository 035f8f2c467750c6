package app

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/pipbridge/internal/adapters/watcher" //nolint:depguard // Debouncer is wired in app layer
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/zerr"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Debounce is the quiet period before changes are processed.
	Debounce time.Duration
}

// Watch regenerates outputs until ctx is canceled. Changes to the Pipfile, the settings
// file, or .env rewrite pyproject.toml; changes to the resolved graph rewrite Pipfile.lock.
func (a *App) Watch(ctx context.Context, target Target, opts WatchOptions) error {
	ws, err := a.locate(target)
	if err != nil {
		return err
	}
	target.Pipfile = ws.ManifestPath

	if err := a.Convert(ctx, target, ConvertOptions{}); err != nil {
		return err
	}

	w, err := a.newWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() {
		_ = w.Stop()
	}()

	if err := w.Start(ctx, ws.Dir); err != nil {
		return err
	}

	inputs := []string{filepath.Base(ws.ManifestPath), domain.SettingsFileName, domain.EnvFileName}
	graphName := filepath.Base(ws.ResolvedGraphPath)

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		a.regenerate(ctx, target, paths, inputs, graphName)
	})

	a.logger.Info("watching " + filepath.Base(ws.ManifestPath) + " for changes")
	for event := range w.Events() {
		name := filepath.Base(event.Path)
		if slices.Contains(inputs, name) || name == graphName {
			debouncer.Add(event.Path)
		}
	}
	return nil
}

// regenerate handles one debounced batch of changed paths.
func (a *App) regenerate(ctx context.Context, target Target, paths, inputs []string, graphName string) {
	if ctx.Err() != nil {
		return
	}

	var convert, lock bool
	for _, p := range paths {
		name := filepath.Base(p)
		convert = convert || slices.Contains(inputs, name)
		lock = lock || name == graphName
	}

	if convert {
		if err := a.Convert(ctx, target, ConvertOptions{}); err != nil {
			a.logger.Error(err)
		}
	}
	if lock {
		if err := a.Lock(ctx, target); err != nil {
			a.logger.Error(err)
		}
	}
}
