package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pipbridge/internal/adapters/fs"
	"go.trai.ch/pipbridge/internal/core/domain"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("[packages]\n"), 0o600))
	}
}

func TestWalker_FindProjects(t *testing.T) {
	// tmp/
	//   Pipfile
	//   services/api/Pipfile
	//   services/worker/Pipfile
	//   services/worker/.venv/lib/Pipfile
	//   .git/Pipfile
	//   vendored/Pipfile
	//   docs/README.md
	root := t.TempDir()
	writeTree(t, root,
		"Pipfile",
		"services/api/Pipfile",
		"services/worker/Pipfile",
		"services/worker/.venv/lib/Pipfile",
		".git/Pipfile",
		"vendored/Pipfile",
		"docs/README.md",
	)

	walker := fs.NewWalker(append([]string{"vendor*"}, fs.DefaultIgnores...))
	dirs, err := walker.FindProjects(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		root,
		filepath.Join(root, "services", "api"),
		filepath.Join(root, "services", "worker"),
	}, dirs)
}

func TestWalker_FindProjects_IgnoredRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), ".venv")
	writeTree(t, root, "Pipfile")

	dirs, err := fs.NewWalker(fs.DefaultIgnores).FindProjects(root)
	require.NoError(t, err)
	assert.Equal(t, []string{root}, dirs)
}

func TestWalker_FindProjects_SkipsPipfileDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Pipfile"), 0o750))

	dirs, err := fs.NewWalker(nil).FindProjects(root)
	require.NoError(t, err)
	assert.Empty(t, dirs)
}

func TestWalker_FindProjects_MissingRoot(t *testing.T) {
	_, err := fs.NewWalker(nil).FindProjects(filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, domain.ErrManifestNotFound.Error())
}
