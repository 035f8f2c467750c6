package app

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/engine/lockgen"
	"go.trai.ch/zerr"
)

// Script is one entry of the [scripts] section.
type Script struct {
	Name    string
	Command string
}

// Scripts returns the target's scripts sorted by name.
func (a *App) Scripts(ctx context.Context, target Target) (_ []Script, err error) {
	_, span := a.tracer.Start(ctx, "scripts")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	_, m, err := a.open(target)
	if err != nil {
		return nil, err
	}

	scripts := make([]Script, 0, m.Scripts.Len())
	for name, command := range m.Scripts.All() {
		scripts = append(scripts, Script{Name: name, Command: command})
	}
	return scripts, nil
}

// RequirementsOptions configuration for the Requirements method.
type RequirementsOptions struct {
	// Dev includes the develop section after the default section.
	Dev bool

	// DevOnly emits the develop section alone.
	DevOnly bool

	// Hashes appends --hash options for every recorded hash.
	Hashes bool
}

// Requirements renders the target's Pipfile.lock in requirements.txt format.
func (a *App) Requirements(ctx context.Context, target Target, opts RequirementsOptions) (_ string, err error) {
	_, span := a.tracer.Start(ctx, "requirements")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	ws, err := a.locate(target)
	if err != nil {
		return "", err
	}
	lock, err := a.locks.Read(ws.LockPath)
	if err != nil {
		return "", err
	}
	if lock == nil {
		return "", zerr.With(domain.ErrLockMissing, "path", ws.LockPath)
	}

	return renderRequirements(lock, opts), nil
}

func renderRequirements(lock *domain.LegacyLock, opts RequirementsOptions) string {
	var b strings.Builder

	for i, src := range lock.Meta.Sources {
		if i == 0 {
			b.WriteString("-i " + src.URL + "\n")
		} else {
			b.WriteString("--extra-index-url " + src.URL + "\n")
		}
	}

	if !opts.DevOnly {
		writeRequirementLines(&b, lock.Default, opts.Hashes)
	}
	if opts.Dev || opts.DevOnly {
		writeRequirementLines(&b, lock.Develop, opts.Hashes)
	}
	return b.String()
}

func writeRequirementLines(b *strings.Builder, entries map[string]domain.LockedEntry, hashes bool) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		entry := entries[name]
		b.WriteString(name + entry.Version)
		if entry.Markers != "" {
			b.WriteString(" ; " + entry.Markers)
		}
		if hashes {
			for _, h := range entry.Hashes {
				b.WriteString(" \\\n    --hash=" + h)
			}
		}
		b.WriteString("\n")
	}
}

// Graph returns the resolved dependency tree of the target.
func (a *App) Graph(ctx context.Context, target Target) (_ *domain.DependencyTree, err error) {
	_, span := a.tracer.Start(ctx, "graph")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	ws, m, err := a.open(target)
	if err != nil {
		return nil, err
	}
	graph, err := a.graphs.Read(ws.ResolvedGraphPath)
	if err != nil {
		return nil, err
	}
	if graph == nil {
		return nil, zerr.With(domain.ErrLockGraphMissing, "path", ws.ResolvedGraphPath)
	}
	return lockgen.BuildTree(graph, m), nil
}
