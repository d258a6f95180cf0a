//go:build linux

package sys_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reroot/internal/adapters/sys"
	"go.trai.ch/reroot/internal/core/domain"
)

func TestMounter_Mounted(t *testing.T) {
	m := sys.NewMounter()

	mounted, err := m.Mounted(t.TempDir())
	require.NoError(t, err)
	assert.False(t, mounted)

	mounted, err = m.Mounted(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.False(t, mounted)
}

func TestMounter_BindMount(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("mounting requires root")
	}

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "marker"), []byte("x"), 0o600))
	target := filepath.Join(t.TempDir(), "nested", "mnt")

	m := sys.NewMounter()
	if err := m.Mount(domain.Mount{Source: src, Target: target, Bind: true}); err != nil {
		t.Skipf("bind mount not permitted here: %v", err)
	}

	mounted, err := m.Mounted(target)
	require.NoError(t, err)
	assert.True(t, mounted)

	_, err = os.Stat(filepath.Join(target, "marker"))
	require.NoError(t, err)

	require.NoError(t, m.Unmount(target))
	mounted, err = m.Mounted(target)
	require.NoError(t, err)
	assert.False(t, mounted)
}

func TestMounter_UnmountNotMounted(t *testing.T) {
	err := sys.NewMounter().Unmount(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnmountFailed.Error())
}
