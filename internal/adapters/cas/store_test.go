package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reroot/internal/adapters/cas"
	"go.trai.ch/reroot/internal/core/domain"
)

func TestStore_Path(t *testing.T) {
	workDir := t.TempDir()

	store, err := cas.NewStore(workDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(workDir, "packages"), store.Dir())
	assert.Equal(t,
		filepath.Join(workDir, "packages", "pacman-6.1.0-3-x86_64.pkg.tar.zst"),
		store.Path("pacman-6.1.0-3-x86_64.pkg.tar.zst"),
	)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_Path_Deterministic(t *testing.T) {
	workDir := t.TempDir()

	first, err := cas.NewStore(workDir)
	require.NoError(t, err)
	second, err := cas.NewStore(workDir)
	require.NoError(t, err)

	assert.Equal(t, first.Path("glibc-2.39-1-x86_64.pkg.tar.zst"), second.Path("glibc-2.39-1-x86_64.pkg.tar.zst"))
}

func TestStore_Path_StaysInCache(t *testing.T) {
	store, err := cas.NewStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"../../etc/passwd", "/etc/passwd", "sub/dir/file"} {
		got := store.Path(name)
		assert.Equal(t, store.Dir(), filepath.Dir(got), name)
	}
}

func TestStore_CreateFailure(t *testing.T) {
	workDir := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(workDir, []byte("not a directory"), 0o600))

	_, err := cas.NewStore(workDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCacheCreateFailed.Error())
}

func TestOpener_Open(t *testing.T) {
	workDir := t.TempDir()

	cache, err := cas.NewOpener().Open(workDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "packages"), cache.Dir())
}
