package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pipbridge/internal/adapters/lockfile"
	"go.trai.ch/pipbridge/internal/core/domain"
)

func sampleLock() *domain.LegacyLock {
	return &domain.LegacyLock{
		Meta: domain.LockMeta{
			Hash:        domain.LockHash{SHA256: "c4a01a8ec837f6ee29903083cb1f52ac64cfa12b125dc3bb4f17e08ac4acb150"},
			PipfileSpec: domain.LockSpecVersion,
			Requires:    map[string]string{"python_version": "3.12"},
			Sources:     []domain.LockSource{{Name: "pypi", URL: "https://pypi.org/simple", VerifySSL: true}},
		},
		Default: map[string]domain.LockedEntry{
			"six": {
				Hashes: []string{
					"sha256:ff70335d468e7eb6ec65b95b99d3a2836546063f63acc5171de367e834932a81",
					"sha256:4721f391ed90541fddacab5acf947aa0d3dc7d27b2e1e8eda2be8970586c3274",
				},
				Index:   "pypi",
				Version: "==1.17.0",
			},
			"mylib": {Hashes: []string{}, Version: "==0.1.0"},
		},
		Develop: map[string]domain.LockedEntry{},
	}
}

func TestMarshal_Golden(t *testing.T) {
	data, err := lockfile.Marshal(sampleLock())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "marshal", data)
}

func TestMarshal_Deterministic(t *testing.T) {
	first, err := lockfile.Marshal(sampleLock())
	require.NoError(t, err)
	second, err := lockfile.Marshal(sampleLock())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, byte('\n'), first[len(first)-1])
}

func TestMarshal_Nil(t *testing.T) {
	_, err := lockfile.Marshal(nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLockSerialize.Error())
}

func TestStore_WriteRead(t *testing.T) {
	store := lockfile.NewStore()
	path := filepath.Join(t.TempDir(), domain.LegacyLockFileName)

	require.NoError(t, store.Write(path, sampleLock()))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, sampleLock(), got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestStore_ReadMissing(t *testing.T) {
	got, err := lockfile.NewStore().Read(filepath.Join(t.TempDir(), domain.LegacyLockFileName))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_WriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", domain.LegacyLockFileName)

	err := lockfile.NewStore().Write(path, sampleLock())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLockWrite.Error())
}

func TestStore_ReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed json",
			content: `{"_meta": `,
			wantErr: domain.ErrLockParse,
		},
		{
			name:    "short meta hash",
			content: `{"_meta": {"hash": {"sha256": "abc"}}, "default": {}, "develop": {}}`,
			wantErr: domain.ErrInvalidHash,
		},
		{
			name: "malformed package hash",
			content: `{"_meta": {"hash": {"sha256": "c4a01a8ec837f6ee29903083cb1f52ac64cfa12b125dc3bb4f17e08ac4acb150"}},
"default": {"six": {"hashes": ["md5-nothex"], "version": "==1.17.0"}}, "develop": {}}`,
			wantErr: domain.ErrInvalidHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), domain.LegacyLockFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), domain.FilePerm))

			_, err := lockfile.NewStore().Read(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}

	t.Run("path is a directory", func(t *testing.T) {
		_, err := lockfile.NewStore().Read(t.TempDir())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrLockRead.Error())
	})
}
