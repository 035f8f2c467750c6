// Package app implements the application layer for pipbridge.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/core/ports"
	"go.trai.ch/pipbridge/internal/engine/bridge"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	locator      ports.WorkspaceLocator
	manifests    ports.ManifestStore
	graphs       ports.GraphReader
	locks        ports.LockStore
	writer       ports.FileWriter
	projects     ports.ProjectFinder
	fingerprints ports.FingerprintStore
	logger       ports.Logger
	tracer       ports.Tracer
	newWatcher   ports.WatcherFactory
	now          func() time.Time
}

// New creates a new App instance.
func New(
	locator ports.WorkspaceLocator,
	manifests ports.ManifestStore,
	graphs ports.GraphReader,
	locks ports.LockStore,
	writer ports.FileWriter,
	projects ports.ProjectFinder,
	fingerprints ports.FingerprintStore,
	log ports.Logger,
	tracer ports.Tracer,
	newWatcher ports.WatcherFactory,
) *App {
	return &App{
		locator:      locator,
		manifests:    manifests,
		graphs:       graphs,
		locks:        locks,
		writer:       writer,
		projects:     projects,
		fingerprints: fingerprints,
		logger:       log,
		tracer:       tracer,
		newWatcher:   newWatcher,
		now:          time.Now,
	}
}

// WithClock replaces the clock used for fingerprint timestamps.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Target selects the project an operation works on.
type Target struct {
	// Dir is where manifest discovery starts.
	Dir string

	// Pipfile is an explicit manifest path. It takes precedence over discovery.
	Pipfile string
}

func (a *App) locate(target Target) (*domain.Workspace, error) {
	return a.locator.Locate(target.Dir, target.Pipfile)
}

// open locates the workspace of target and loads its manifest.
func (a *App) open(target Target) (*domain.Workspace, *domain.Manifest, error) {
	ws, err := a.locate(target)
	if err != nil {
		return nil, nil, err
	}
	m, err := a.manifests.Load(ws.ManifestPath)
	if err != nil {
		return nil, nil, err
	}
	return ws, m, nil
}

// writeProject regenerates pyproject.toml from m. Unless force is set, the write is
// skipped when the recorded fingerprint matches and the file still exists.
func (a *App) writeProject(ws *domain.Workspace, m *domain.Manifest, force bool) error {
	p, err := bridge.ToProjectManifest(m, ws.ProjectName)
	if err != nil {
		return err
	}
	data, err := bridge.Encode(p)
	if err != nil {
		return err
	}

	name := filepath.Base(ws.ProjectPath)
	digest := a.fingerprints.Digest(data)
	if !force && a.writer.Exists(ws.ProjectPath) && a.fingerprintMatches(ws, digest) {
		a.logger.Info(name + " is up to date")
		return nil
	}

	if err := a.writer.WriteFile(ws.ProjectPath, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProjectWrite.Error()), "path", ws.ProjectPath)
	}

	fp := domain.Fingerprint{Output: ws.ProjectPath, Digest: digest, Timestamp: a.now()}
	if err := a.fingerprints.Put(ws.StateDir, fp); err != nil {
		a.logger.Warn("could not record fingerprint: " + err.Error())
	}

	a.logger.Info(fmt.Sprintf("wrote %s (%d dependencies, %d dev)", name, len(p.Dependencies), len(p.DevDependencies)))
	return nil
}

func (a *App) fingerprintMatches(ws *domain.Workspace, digest string) bool {
	fp, err := a.fingerprints.Get(ws.StateDir, ws.ProjectPath)
	if err != nil {
		a.logger.Warn("ignoring fingerprint state: " + err.Error())
		return false
	}
	return fp != nil && fp.Digest == digest
}
