package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports/mocks"
	"go.trai.ch/reroot/internal/engine/migration"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	mounter := mocks.NewMockMounter(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	mounts := []domain.Mount{
		{Source: "proc", Target: "/mnt/proc", FSType: "proc"},
		{Source: "sysfs", Target: "/mnt/sys", FSType: "sysfs"},
		{Source: "/dev", Target: "/mnt/dev", Bind: true, Recursive: true},
	}

	gomock.InOrder(
		mounter.EXPECT().Mount(mounts[0]).Return(nil),
		mounter.EXPECT().Mount(mounts[1]).Return(nil),
		mounter.EXPECT().Mount(mounts[2]).Return(nil),
		mounter.EXPECT().Unmount("/mnt/dev").Return(nil),
		mounter.EXPECT().Unmount("/mnt/sys").Return(zerr.With(domain.ErrUnmountFailed, "target", "/mnt/sys")),
		mounter.EXPECT().Unmount("/mnt/proc").Return(nil),
	)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), domain.ErrUnmountFailed.Error())
	})

	cleanup := migration.NewCleanup(mounter, logger)
	require.NoError(t, cleanup.MountAll(mounts))
	assert.Equal(t, 3, cleanup.Len())

	cleanup.Release()
	assert.Zero(t, cleanup.Len())

	// A second release has nothing left to do.
	cleanup.Release()
}

func TestCleanup_FailedMountIsNotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	mounter := mocks.NewMockMounter(ctrl)

	m := domain.Mount{Source: "proc", Target: "/mnt/proc", FSType: "proc"}
	mounter.EXPECT().Mount(m).Return(zerr.With(domain.ErrMountFailed, "target", m.Target))

	cleanup := migration.NewCleanup(mounter, mocks.NewMockLogger(ctrl))
	require.Error(t, cleanup.Mount(m))
	assert.Zero(t, cleanup.Len())
	cleanup.Release()
}
