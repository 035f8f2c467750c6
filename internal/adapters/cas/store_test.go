package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pipbridge/internal/adapters/cas"
	"go.trai.ch/pipbridge/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	stateDir := filepath.Join(t.TempDir(), domain.StateDirName)

	fp := domain.Fingerprint{
		Output:    "/work/pyproject.toml",
		Digest:    "0123456789abcdef",
		Timestamp: time.Now().Truncate(time.Second),
	}

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, store.Put(stateDir, fp))

		got, err := store.Get(stateDir, fp.Output)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, fp.Timestamp.Equal(got.Timestamp))
		assert.Equal(t, fp.Output, got.Output)
		assert.Equal(t, fp.Digest, got.Digest)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, err := store.Get(stateDir, "/work/missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_Overwrite(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	stateDir := t.TempDir()

	require.NoError(t, store.Put(stateDir, domain.Fingerprint{Output: "a", Digest: "1"}))
	require.NoError(t, store.Put(stateDir, domain.Fingerprint{Output: "a", Digest: "2"}))

	got, err := store.Get(stateDir, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", got.Digest)

	entries, err := os.ReadDir(stateDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()
	stateDir := t.TempDir()
	require.NoError(t, store.Put(stateDir, domain.Fingerprint{Output: "task-2"}))

	entries, err := os.ReadDir(stateDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	err = os.WriteFile(filepath.Join(stateDir, entries[0].Name()), []byte("{ invalid json"), 0o600)
	require.NoError(t, err)

	_, err = store.Get(stateDir, "task-2")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_PutCreateFailure(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := cas.NewStore().Put(filepath.Join(blocker, "state"), domain.Fingerprint{Output: "x"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}

func TestStore_Digest(t *testing.T) {
	t.Parallel()

	store := cas.NewStore()

	a := store.Digest([]byte("Pipfile"), []byte("demo"))
	assert.Len(t, a, 16)
	assert.Equal(t, a, store.Digest([]byte("Pipfile"), []byte("demo")))
	assert.NotEqual(t, a, store.Digest([]byte("Pipfil"), []byte("edemo")), "input boundaries are part of the digest")
	assert.NotEqual(t, a, store.Digest([]byte("Pipfile"), []byte("other")))
}
