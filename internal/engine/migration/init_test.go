package migration_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func (f *fixture) prepareBooted(t *testing.T) {
	t.Helper()
	writeFile(t, f.path("/sbin/init"), rerootBinary, 0o755)
	writeFile(t, f.path("/sbin/init.original"), debianInit, 0o755)
	writeFile(t, f.path("/archroot/etc/pacman.conf"), "[core]\n", 0o644)
}

func TestBecomeInit(t *testing.T) {
	f := newFixture(t)
	f.prepareBooted(t)

	f.probe.EXPECT().SelfPath().Return(f.path("/sbin/init"), nil)
	gomock.InOrder(
		f.mounter.EXPECT().RemountReadWrite(f.root).Return(nil),
		f.mounter.EXPECT().Mount(domain.Mount{
			Source: f.root,
			Target: f.path("/archroot/reroot/original"),
			Bind:   true,
		}).Return(nil),
		f.mounter.EXPECT().Mounted(f.path("/dev/pts")).Return(false, nil),
		f.mounter.EXPECT().Mounted(f.path("/dev")).Return(true, nil),
		f.mounter.EXPECT().Unmount(f.path("/dev")).Return(nil),
		f.mounter.EXPECT().Mounted(f.path("/sys")).Return(false, zerr.New("mountinfo unavailable")),
		f.mounter.EXPECT().Mounted(f.path("/proc")).Return(true, nil),
		f.mounter.EXPECT().Unmount(f.path("/proc")).Return(zerr.With(domain.ErrUnmountFailed, "target", "/proc")),
	)
	f.logger.EXPECT().Error(gomock.Any()).Times(2)

	action := f.machine().BecomeInit(context.Background())
	assert.Equal(t, "/reroot/reroot", action.Path)
	assert.Equal(t, []string{"/reroot/reroot"}, action.Args)
	assert.Equal(t, f.path("/archroot"), action.Root)

	assert.Equal(t, rerootBinary, readFile(t, f.path("/archroot/reroot/reroot")))
	info, err := os.Stat(f.path("/archroot/reroot/reroot"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	assert.Equal(t, debianInit, readFile(t, f.path("/sbin/init")))
	_, err = os.Stat(f.path("/sbin/init.original"))
	assert.True(t, os.IsNotExist(err))
}

func TestBecomeInit_FailureStartsRescueShell(t *testing.T) {
	f := newFixture(t)
	f.prepareBooted(t)

	f.mounter.EXPECT().RemountReadWrite(f.root).Return(zerr.With(domain.ErrMountFailed, "target", "/"))
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), domain.ErrMountFailed.Error())
	})

	action := f.machine().BecomeInit(context.Background())
	assert.Equal(t, "/bin/sh", action.Path)
	assert.Empty(t, action.Root)

	assert.Equal(t, rerootBinary, readFile(t, f.path("/sbin/init")))
	assert.Equal(t, debianInit, readFile(t, f.path("/sbin/init.original")))
}

func TestBecomeInit_MissingOriginalInit(t *testing.T) {
	f := newFixture(t)
	writeFile(t, f.path("/sbin/init"), rerootBinary, 0o755)
	writeFile(t, f.path("/archroot/etc/pacman.conf"), "[core]\n", 0o644)

	f.probe.EXPECT().SelfPath().Return(f.path("/sbin/init"), nil)
	f.mounter.EXPECT().RemountReadWrite(f.root).Return(nil)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), domain.ErrInitInstallFailed.Error())
	})

	action := f.machine().BecomeInit(context.Background())
	assert.Equal(t, "/bin/sh", action.Path)
	assert.Equal(t, rerootBinary, readFile(t, f.path("/sbin/init")))
}
