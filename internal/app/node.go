package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pipbridge/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/pipbridge/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pipbridge/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/pipbridge/internal/adapters/lockfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pipbridge/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pipbridge/internal/adapters/pipfile"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pipbridge/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/pipbridge/internal/adapters/uvlock"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pipbridge/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pipbridge/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line needs besides the App itself.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pipfile.NodeID,
			uvlock.NodeID,
			lockfile.NodeID,
			fs.WriterNodeID,
			fs.FinderNodeID,
			cas.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	locator, err := graft.Dep[ports.WorkspaceLocator](ctx)
	if err != nil {
		return nil, err
	}
	manifests, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}
	graphs, err := graft.Dep[ports.GraphReader](ctx)
	if err != nil {
		return nil, err
	}
	locks, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.FileWriter](ctx)
	if err != nil {
		return nil, err
	}
	projects, err := graft.Dep[ports.ProjectFinder](ctx)
	if err != nil {
		return nil, err
	}
	fingerprints, err := graft.Dep[ports.FingerprintStore](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(locator, manifests, graphs, locks, writer, projects, fingerprints, log, tracer, newWatcher), nil
}
