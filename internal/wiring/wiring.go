// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pipbridge/internal/adapters/cas"
	_ "go.trai.ch/pipbridge/internal/adapters/config"
	_ "go.trai.ch/pipbridge/internal/adapters/fs"
	_ "go.trai.ch/pipbridge/internal/adapters/lockfile"
	_ "go.trai.ch/pipbridge/internal/adapters/logger"
	_ "go.trai.ch/pipbridge/internal/adapters/pipfile"
	_ "go.trai.ch/pipbridge/internal/adapters/telemetry"
	_ "go.trai.ch/pipbridge/internal/adapters/uvlock"
	_ "go.trai.ch/pipbridge/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/pipbridge/internal/app"
)
