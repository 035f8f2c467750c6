package app

import (
	"context"
	"path/filepath"
)

// ConvertOptions configuration for the Convert method.
type ConvertOptions struct {
	// Force rewrites pyproject.toml even when it is up to date.
	Force bool
}

// Convert writes the pyproject.toml derived from the target's Pipfile.
func (a *App) Convert(ctx context.Context, target Target, opts ConvertOptions) (err error) {
	_, span := a.tracer.Start(ctx, "convert")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	ws, m, err := a.open(target)
	if err != nil {
		return err
	}
	span.SetAttribute("path", ws.ProjectPath)

	return a.writeProject(ws, m, opts.Force)
}

// Format rewrites the target's Pipfile in canonical form.
func (a *App) Format(ctx context.Context, target Target) (err error) {
	_, span := a.tracer.Start(ctx, "fmt")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	ws, m, err := a.open(target)
	if err != nil {
		return err
	}
	if err := a.manifests.Save(ws.ManifestPath, m); err != nil {
		return err
	}

	a.logger.Info("formatted " + filepath.Base(ws.ManifestPath))
	return nil
}
