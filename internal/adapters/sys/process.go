//go:build linux

package sys

import (
	"os"

	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var _ ports.Process = (*Process)(nil)

// Process implements ports.Process with chroot(2) and execve(2).
type Process struct{}

// NewProcess creates a new Process.
func NewProcess() *Process {
	return &Process{}
}

// Exec flushes filesystem buffers, changes root if the action asks for it and replaces the
// running process. It only returns on failure.
func (p *Process) Exec(action domain.Action) error {
	unix.Sync()

	if action.Root != "" {
		if err := unix.Chroot(action.Root); err != nil {
			return execErr(err, action)
		}
		if err := unix.Chdir("/"); err != nil {
			return execErr(err, action)
		}
	}

	args := action.Args
	if len(args) == 0 {
		args = []string{action.Path}
	}
	if err := unix.Exec(action.Path, args, os.Environ()); err != nil {
		return execErr(err, action)
	}
	return nil
}

func execErr(err error, action domain.Action) error {
	wrapped := zerr.With(zerr.Wrap(err, domain.ErrExecFailed.Error()), "path", action.Path)
	if action.Root != "" {
		wrapped = zerr.With(wrapped, "root", action.Root)
	}
	return wrapped
}
