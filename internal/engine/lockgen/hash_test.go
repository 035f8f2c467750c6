package lockgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/engine/lockgen"
)

func TestContentHash_KnownValues(t *testing.T) {
	detailed := domain.NewManifest()
	detailed.Sources = []domain.Source{{Name: "pypi", URL: "https://pypi.org/simple", VerifySSL: true}}
	detailed.Requires = &domain.Requires{PythonVersion: "3.12"}
	detailed.Packages.Set("six", domain.SimpleSpec{Version: "==1.17.0"})
	detailed.Packages.Set("requests", domain.DetailedSpec{Version: ">=2.0", Extras: []string{"socks"}})
	detailed.DevPackages.Set("pytest", domain.SimpleSpec{Version: "*"})

	tests := []struct {
		name     string
		manifest *domain.Manifest
		want     string
	}{
		{
			name:     "empty manifest",
			manifest: domain.NewManifest(),
			want:     "c4a01a8ec837f6ee29903083cb1f52ac64cfa12b125dc3bb4f17e08ac4acb150",
		},
		{
			name:     "detailed entries serialize every field",
			manifest: detailed,
			want:     "8c8dc2696a3fb0030478bc68df3ede2e52f767fda050fb19118b49e9c8ffd376",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lockgen.ContentHash(tt.manifest)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentHash_Deterministic(t *testing.T) {
	first, err := lockgen.ContentHash(sixManifest())
	require.NoError(t, err)
	second, err := lockgen.ContentHash(sixManifest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Regexp(t, hexDigest, first)
}

func TestContentHash_IgnoresInsertionOrder(t *testing.T) {
	a := domain.NewManifest()
	a.Packages.Set("flask", domain.SimpleSpec{Version: "*"})
	a.Packages.Set("django", domain.SimpleSpec{Version: "*"})

	b := domain.NewManifest()
	b.Packages.Set("django", domain.SimpleSpec{Version: "*"})
	b.Packages.Set("flask", domain.SimpleSpec{Version: "*"})

	ha, err := lockgen.ContentHash(a)
	require.NoError(t, err)
	hb, err := lockgen.ContentHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

func TestContentHash_TracksManifestContent(t *testing.T) {
	base, err := lockgen.ContentHash(sixManifest())
	require.NoError(t, err)

	changed := sixManifest()
	changed.Packages.Set("six", domain.SimpleSpec{Version: "==1.16.0"})
	other, err := lockgen.ContentHash(changed)
	require.NoError(t, err)
	assert.NotEqual(t, base, other)

	scripted := sixManifest()
	scripted.Scripts.Set("test", "pytest")
	scripted.Settings = &domain.Settings{AllowPrereleases: true}
	same, err := lockgen.ContentHash(scripted)
	require.NoError(t, err)
	assert.Equal(t, base, same, "scripts and settings are not part of the hash")
}
