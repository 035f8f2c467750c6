package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/engine/lockgen"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Lock reconstructs Pipfile.lock from the resolver's graph.
// A project without a resolved graph is skipped with an informational message.
func (a *App) Lock(ctx context.Context, target Target) (err error) {
	_, span := a.tracer.Start(ctx, "lock")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	ws, m, err := a.open(target)
	if err != nil {
		return err
	}
	span.SetAttribute("path", ws.LockPath)

	graph, err := a.graphs.Read(ws.ResolvedGraphPath)
	if err != nil {
		return err
	}
	if graph == nil {
		span.SetAttribute("skipped", true)
		a.logger.Info("skipping "+filepath.Base(ws.LockPath)+", missing", "path", ws.ResolvedGraphPath)
		return nil
	}

	lock, err := lockgen.Generate(graph, m)
	if err != nil {
		return err
	}
	if err := a.locks.Write(ws.LockPath, lock); err != nil {
		return err
	}

	span.SetAttribute("default", len(lock.Default))
	span.SetAttribute("develop", len(lock.Develop))
	a.logger.Info(fmt.Sprintf("wrote %s (%d default, %d develop)",
		filepath.Base(ws.LockPath), len(lock.Default), len(lock.Develop)))
	return nil
}

// Verify checks that Pipfile.lock was generated from the current Pipfile.
// A missing lock counts as out of date.
func (a *App) Verify(ctx context.Context, target Target) (err error) {
	_, span := a.tracer.Start(ctx, "verify")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	ws, m, err := a.open(target)
	if err != nil {
		return err
	}

	hash, err := lockgen.ContentHash(m)
	if err != nil {
		return err
	}

	lock, err := a.locks.Read(ws.LockPath)
	if err != nil {
		return err
	}
	if lock == nil {
		return zerr.With(zerr.With(domain.ErrLockOutdated, "path", ws.LockPath), "reason", "missing")
	}
	if lock.Meta.Hash.SHA256 != hash {
		err := zerr.With(domain.ErrLockOutdated, "expected", hash)
		return zerr.With(err, "found", lock.Meta.Hash.SHA256)
	}

	a.logger.Info(filepath.Base(ws.LockPath) + " is up to date")
	return nil
}

// LockAllOptions configuration for the LockAll method.
type LockAllOptions struct {
	// Jobs bounds the number of projects locked concurrently. Zero means one per CPU.
	Jobs int

	// Recursive treats each directory as a root and locks every project found below it.
	Recursive bool
}

// LockAll locks the project in each directory. Projects are independent: a failure in one
// does not stop the others, and every failure is reported.
func (a *App) LockAll(ctx context.Context, dirs []string, opts LockAllOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, "lock-all")
	defer func() {
		span.RecordError(err)
		span.End()
	}()
	if opts.Recursive {
		if dirs, err = a.findProjects(dirs); err != nil {
			return err
		}
	}
	span.SetAttribute("projects", len(dirs))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(jobs)

	errs := make([]error, len(dirs))
	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			target := Target{Dir: dir, Pipfile: domain.ManifestFileName}
			if err := a.Lock(ctx, target); err != nil {
				errs[i] = zerr.With(err, "dir", dir)
			}
			return nil
		})
	}
	_ = g.Wait()

	var failed []error
	for _, e := range errs {
		if e != nil {
			failed = append(failed, e)
		}
	}
	if len(failed) == 1 {
		return failed[0]
	}
	return errors.Join(failed...)
}

// findProjects expands roots into the project directories below them, without duplicates.
func (a *App) findProjects(roots []string) ([]string, error) {
	var dirs []string
	for _, root := range roots {
		found, err := a.projects.FindProjects(root)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			a.logger.Warn(fmt.Sprintf("no %s found below %s", domain.ManifestFileName, root))
		}
		for _, dir := range found {
			if !slices.Contains(dirs, dir) {
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs, nil
}
