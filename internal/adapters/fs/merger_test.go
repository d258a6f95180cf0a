package fs_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reroot/internal/adapters/fs"
	"go.trai.ch/reroot/internal/core/domain"
)

func inode(t *testing.T, path string) uint64 {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err)
	st, ok := info.Sys().(*syscall.Stat_t)
	require.True(t, ok)
	return uint64(st.Ino) //nolint:unconvert // Ino width differs between platforms
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestMerger_Evacuate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "etc", "debian_version"), "12")
	writeFile(t, filepath.Join(root, "usr", "bin", "apt"), "apt")
	writeFile(t, filepath.Join(root, "archroot", "usr", "bin", "pacman"), "pacman")
	require.NoError(t, os.Symlink("usr/bin", filepath.Join(root, "bin")))

	merger := fs.NewMerger(fs.NewWalker())
	require.NoError(t, merger.Evacuate(root, "archroot", "oldroot"))

	assert.Equal(t, []string{"archroot", "oldroot"}, listNames(t, root))
	assert.Equal(t, []string{"bin", "etc", "usr"}, listNames(t, filepath.Join(root, "oldroot")))
	assert.Equal(t, []string{"usr"}, listNames(t, filepath.Join(root, "archroot")))

	target, err := os.Readlink(filepath.Join(root, "oldroot", "bin"))
	require.NoError(t, err)
	assert.Equal(t, "usr/bin", target)
}

func TestMerger_Evacuate_HoldingExists(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "oldroot", "leftover"), "x")
	require.NoError(t, os.Mkdir(filepath.Join(root, "archroot"), 0o750))

	err := fs.NewMerger(fs.NewWalker()).Evacuate(root, "archroot", "oldroot")
	require.ErrorIs(t, err, domain.ErrHoldingExists)
	assert.Equal(t, []string{"archroot", "oldroot"}, listNames(t, root))
}

func TestMerger_LinkTree(t *testing.T) {
	root := t.TempDir()
	staged := filepath.Join(root, "archroot")
	writeFile(t, filepath.Join(staged, "usr", "bin", "pacman"), "pacman")
	writeFile(t, filepath.Join(staged, "etc", "pacman.conf"), "conf")
	writeFile(t, filepath.Join(staged, "reroot", "reroot"), "self")
	require.NoError(t, os.Symlink("usr/bin", filepath.Join(staged, "bin")))
	require.NoError(t, os.Chmod(filepath.Join(staged, "etc"), 0o751))
	require.NoError(t, os.Mkdir(filepath.Join(staged, "tmp"), 0o700))
	require.NoError(t, os.Chmod(filepath.Join(staged, "tmp"), 0o777|os.ModeSticky))

	merger := fs.NewMerger(fs.NewWalker())
	require.NoError(t, merger.LinkTree(staged, root, []string{"reroot"}))

	assert.Equal(t, []string{"archroot", "bin", "etc", "tmp", "usr"}, listNames(t, root))

	for _, rel := range []string{"usr/bin/pacman", "etc/pacman.conf", "bin"} {
		assert.Equal(t, inode(t, filepath.Join(staged, rel)), inode(t, filepath.Join(root, rel)), rel)
	}

	link, err := os.Readlink(filepath.Join(root, "bin"))
	require.NoError(t, err)
	assert.Equal(t, "usr/bin", link)

	info, err := os.Stat(filepath.Join(root, "etc"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o751), info.Mode().Perm())

	info, err = os.Stat(filepath.Join(root, "tmp"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSticky)

	_, err = os.Lstat(filepath.Join(root, "reroot"))
	assert.True(t, os.IsNotExist(err), "skipped entries are not linked")
}

func TestMerger_LinkTree_Conflict(t *testing.T) {
	root := t.TempDir()
	staged := filepath.Join(root, "archroot")
	writeFile(t, filepath.Join(staged, "etc", "hostname"), "new")
	writeFile(t, filepath.Join(root, "etc", "hostname"), "old")

	err := fs.NewMerger(fs.NewWalker()).LinkTree(staged, root, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLinkFailed.Error())
}

func TestMerger_SwapRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "etc", "os-release"), "ID=debian")
	writeFile(t, filepath.Join(root, "archroot", "etc", "os-release"), "ID=arch")
	writeFile(t, filepath.Join(root, "archroot", "reroot", "reroot"), "self")

	merger := fs.NewMerger(fs.NewWalker())
	require.NoError(t, merger.Evacuate(root, "archroot", "oldroot"))
	require.NoError(t, merger.LinkTree(filepath.Join(root, "archroot"), root, []string{"reroot"}))

	got, err := os.ReadFile(filepath.Join(root, "etc", "os-release")) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "ID=arch", string(got))

	got, err = os.ReadFile(filepath.Join(root, "oldroot", "etc", "os-release")) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "ID=debian", string(got))
}
