package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pipbridge/internal/app"
	"go.trai.ch/pipbridge/internal/core/domain"
)

func TestApp_Scripts(t *testing.T) {
	f := newFixture(t)
	m := domain.NewManifest()
	m.Scripts.Set("test", "pytest -q")
	m.Scripts.Set("serve", "flask run")
	f.expectOpen(m)

	scripts, err := f.app.Scripts(t.Context(), f.target)
	require.NoError(t, err)
	assert.Equal(t, []app.Script{
		{Name: "serve", Command: "flask run"},
		{Name: "test", Command: "pytest -q"},
	}, scripts)
}

func requirementsLock() *domain.LegacyLock {
	return &domain.LegacyLock{
		Meta: domain.LockMeta{Sources: []domain.LockSource{
			{Name: "pypi", URL: "https://pypi.org/simple", VerifySSL: true},
			{Name: "private", URL: "https://pkgs.example.com/simple", VerifySSL: true},
		}},
		Default: map[string]domain.LockedEntry{
			"six":      {Version: "==1.16.0", Hashes: []string{"sha256:aaa", "sha256:bbb"}},
			"colorama": {Version: "==0.4.6", Markers: `sys_platform == "win32"`, Hashes: []string{"sha256:ccc"}},
		},
		Develop: map[string]domain.LockedEntry{
			"pytest": {Version: "==8.0.0", Hashes: []string{}},
		},
	}
}

func TestApp_Requirements(t *testing.T) {
	tests := []struct {
		name string
		opts app.RequirementsOptions
		want string
	}{
		{
			name: "default",
			want: "-i https://pypi.org/simple\n" +
				"--extra-index-url https://pkgs.example.com/simple\n" +
				"colorama==0.4.6 ; sys_platform == \"win32\"\n" +
				"six==1.16.0\n",
		},
		{
			name: "with dev",
			opts: app.RequirementsOptions{Dev: true},
			want: "-i https://pypi.org/simple\n" +
				"--extra-index-url https://pkgs.example.com/simple\n" +
				"colorama==0.4.6 ; sys_platform == \"win32\"\n" +
				"six==1.16.0\n" +
				"pytest==8.0.0\n",
		},
		{
			name: "dev only",
			opts: app.RequirementsOptions{DevOnly: true},
			want: "-i https://pypi.org/simple\n" +
				"--extra-index-url https://pkgs.example.com/simple\n" +
				"pytest==8.0.0\n",
		},
		{
			name: "hashes",
			opts: app.RequirementsOptions{Hashes: true},
			want: "-i https://pypi.org/simple\n" +
				"--extra-index-url https://pkgs.example.com/simple\n" +
				"colorama==0.4.6 ; sys_platform == \"win32\" \\\n" +
				"    --hash=sha256:ccc\n" +
				"six==1.16.0 \\\n" +
				"    --hash=sha256:aaa \\\n" +
				"    --hash=sha256:bbb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.locator.EXPECT().Locate("/work", "").Return(f.ws, nil)
			f.locks.EXPECT().Read(f.ws.LockPath).Return(requirementsLock(), nil)

			got, err := f.app.Requirements(t.Context(), f.target, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApp_Requirements_MissingLock(t *testing.T) {
	f := newFixture(t)
	f.locator.EXPECT().Locate("/work", "").Return(f.ws, nil)
	f.locks.EXPECT().Read(f.ws.LockPath).Return(nil, nil)

	_, err := f.app.Requirements(t.Context(), f.target, app.RequirementsOptions{})
	require.ErrorContains(t, err, domain.ErrLockMissing.Error())
}

func TestApp_Graph(t *testing.T) {
	f := newFixture(t)
	f.expectOpen(manifestWith("six"))
	f.graphs.EXPECT().Read(f.ws.ResolvedGraphPath).Return(sixGraph(), nil)

	tree, err := f.app.Graph(t.Context(), f.target)
	require.NoError(t, err)
	assert.Equal(t, []domain.TreeNode{{Name: "six", Version: "1.16.0"}}, tree.Default)
	assert.Empty(t, tree.Develop)
}

func TestApp_Graph_MissingGraph(t *testing.T) {
	f := newFixture(t)
	f.expectOpen(manifestWith("six"))
	f.graphs.EXPECT().Read(f.ws.ResolvedGraphPath).Return(nil, nil)

	_, err := f.app.Graph(t.Context(), f.target)
	require.ErrorContains(t, err, domain.ErrLockGraphMissing.Error())
}
