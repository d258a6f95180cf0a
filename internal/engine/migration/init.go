package migration

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/zerr"
)

// liveMounts are the virtual filesystems that may be mounted on the live root when the
// replacement init starts, deepest first.
var liveMounts = []string{"/dev/pts", "/dev", "/sys", "/proc"}

// InitPassthrough hands a non-PID-1 invocation of init to the saved original init with the
// arguments it was given.
func (m *Machine) InitPassthrough(args []string) domain.Action {
	action := domain.ExecReplace(m.layout.OriginalInitPath, args...)
	return action.Because("pass through to the original init")
}

// BecomeInit runs as the system's first process on the old root and changes root into the
// staged system. Any failure hands the console to the rescue shell on the live root.
func (m *Machine) BecomeInit(ctx context.Context) domain.Action {
	if err := m.step(ctx, "become init", func(context.Context) error {
		return m.enterStaging()
	}); err != nil {
		m.logger.Error(err)
		m.logger.Warn(fmt.Sprintf("could not enter %s; manual recovery needed", m.layout.StagingRoot))
		return m.rescue("become-init failed")
	}

	return domain.ExecReplace(m.layout.SelfCopyPath()).
		InRoot(m.layout.Host(m.layout.StagingRoot)).
		Because("finalize inside the staged root")
}

func (m *Machine) enterStaging() error {
	if err := m.mounter.RemountReadWrite(m.layout.Host("/")); err != nil {
		return err
	}

	self, err := m.probe.SelfPath()
	if err != nil {
		return zerr.Wrap(err, domain.ErrSelfPathUnresolved.Error())
	}
	selfCopy := m.layout.Host(m.layout.Staged(m.layout.SelfCopyPath()))
	if err := copyExecutable(self, selfCopy); err != nil {
		return initErr(err, selfCopy)
	}

	initPath := m.layout.Host(m.layout.InitPath)
	if err := os.Rename(m.layout.Host(m.layout.OriginalInitPath), initPath); err != nil {
		return initErr(err, initPath)
	}

	// Non-recursive, so the live root's own mount points show up as plain directories.
	oldRoot := domain.Mount{
		Source: m.layout.Host("/"),
		Target: m.layout.Host(m.layout.Staged(m.layout.OldRootPath())),
		Bind:   true,
	}
	if err := m.mounter.Mount(oldRoot); err != nil {
		return err
	}

	m.releaseLiveMounts()
	return nil
}

// releaseLiveMounts unmounts whichever live virtual filesystems are mounted. Failures are
// logged and do not stop the sequence.
func (m *Machine) releaseLiveMounts() {
	for _, target := range liveMounts {
		target = m.layout.Host(target)
		mounted, err := m.mounter.Mounted(target)
		if err != nil {
			m.logger.Error(err)
			continue
		}
		if !mounted {
			continue
		}
		if err := m.mounter.Unmount(target); err != nil {
			m.logger.Error(err)
		}
	}
}
