package ports

// ProjectFinder discovers project directories below a root.
//
//go:generate mockgen -source=project_finder.go -destination=mocks/mock_project_finder.go -package=mocks
type ProjectFinder interface {
	// FindProjects returns every directory at or below root that holds a Pipfile, sorted.
	FindProjects(root string) ([]string, error)
}
