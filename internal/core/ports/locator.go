package ports

import "go.trai.ch/pipbridge/internal/core/domain"

// WorkspaceLocator defines the interface for finding the manifest and resolving project settings.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type WorkspaceLocator interface {
	// Locate finds the manifest starting from cwd. A non-empty explicit path takes precedence
	// over discovery.
	Locate(cwd, explicit string) (*domain.Workspace, error)
}
