package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reroot/internal/adapters/fs"
)

func TestWalker_Walk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "usr", "bin", "pacman"), "bin")
	writeFile(t, filepath.Join(root, "etc", "pacman.conf"), "conf")
	writeFile(t, filepath.Join(root, "reroot", "reroot"), "self")
	writeFile(t, filepath.Join(root, "skipme"), "file")
	writeFile(t, filepath.Join(root, "usr", "skipme"), "nested, not skipped")
	require.NoError(t, os.Symlink("usr/bin", filepath.Join(root, "bin")))

	var rels []string
	for entry, err := range fs.NewWalker().Walk(root, []string{"reroot", "skipme"}) {
		require.NoError(t, err)
		rels = append(rels, entry.Rel)
	}

	assert.Equal(t, []string{
		"bin",
		"etc",
		filepath.Join("etc", "pacman.conf"),
		"usr",
		filepath.Join("usr", "bin"),
		filepath.Join("usr", "bin", "pacman"),
		filepath.Join("usr", "skipme"),
	}, rels)
}

func TestWalker_Walk_SymlinkNotFollowed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "usr", "lib", "libc.so"), "lib")
	require.NoError(t, os.Symlink("usr/lib", filepath.Join(root, "lib")))

	for entry, err := range fs.NewWalker().Walk(root, nil) {
		require.NoError(t, err)
		if entry.Rel == "lib" {
			assert.False(t, entry.Dir.IsDir())
			assert.Equal(t, os.ModeSymlink, entry.Dir.Type())
		}
	}
}

func TestWalker_Walk_MissingRoot(t *testing.T) {
	var errs int
	for _, err := range fs.NewWalker().Walk(filepath.Join(t.TempDir(), "absent"), nil) {
		if err != nil {
			errs++
		}
	}
	assert.Equal(t, 1, errs)
}

func TestWalker_Walk_EarlyBreak(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a"), "a")
	writeFile(t, filepath.Join(root, "b"), "b")

	var count int
	for range fs.NewWalker().Walk(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
