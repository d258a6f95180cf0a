//go:build linux

// Package sys implements the host primitives the migration is built from: mounts, process
// replacement and the facts the migration state is derived from.
package sys

import (
	"errors"
	"os"

	"github.com/moby/sys/mountinfo"
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

const mountPointPerm = 0o755

var _ ports.Mounter = (*Mounter)(nil)

// Mounter implements ports.Mounter with mount(2).
type Mounter struct{}

// NewMounter creates a new Mounter.
func NewMounter() *Mounter {
	return &Mounter{}
}

// Mount attaches m, creating the mount point if it is missing.
func (mt *Mounter) Mount(m domain.Mount) error {
	if err := os.MkdirAll(m.Target, mountPointPerm); err != nil {
		return mountErr(err, m)
	}

	var flags uintptr
	if m.Bind {
		flags |= unix.MS_BIND
		if m.Recursive {
			flags |= unix.MS_REC
		}
	}

	if err := unix.Mount(m.Source, m.Target, m.FSType, flags, ""); err != nil {
		return mountErr(err, m)
	}
	return nil
}

// Unmount detaches target. A busy filesystem is detached lazily.
func (mt *Mounter) Unmount(target string) error {
	err := unix.Unmount(target, 0)
	if errors.Is(err, unix.EBUSY) {
		err = unix.Unmount(target, unix.MNT_DETACH)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUnmountFailed.Error()), "target", target)
	}
	return nil
}

// RemountReadWrite remounts the filesystem at target read-write.
func (mt *Mounter) RemountReadWrite(target string) error {
	if err := unix.Mount("", target, "", unix.MS_REMOUNT, ""); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMountFailed.Error()), "target", target)
	}
	return nil
}

// Mounted reports whether target is a mount point.
func (mt *Mounter) Mounted(target string) (bool, error) {
	mounted, err := mountinfo.Mounted(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to read mount table"), "target", target)
	}
	return mounted, nil
}

func mountErr(err error, m domain.Mount) error {
	wrapped := zerr.With(zerr.Wrap(err, domain.ErrMountFailed.Error()), "target", m.Target)
	wrapped = zerr.With(wrapped, "source", m.Source)
	if m.FSType != "" {
		wrapped = zerr.With(wrapped, "fstype", m.FSType)
	}
	return wrapped
}
