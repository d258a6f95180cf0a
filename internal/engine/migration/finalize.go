package migration

import (
	"context"
	"fmt"
	"path"

	"go.trai.ch/reroot/internal/core/domain"
)

// ChrootFinalize runs as the system's first process inside the staged root and merges the
// staged root into the old root.
//
// The old root's entries are moved aside into the holding directory first. The staged tree
// is then hard-linked into the old root. Source and destination are both addressed through
// the old-root mount, since link(2) does not cross mounts.
func (m *Machine) ChrootFinalize(ctx context.Context) (domain.Action, error) {
	cleanup := NewCleanup(m.mounter, m.logger)

	if err := cleanup.MountAll(m.finalizeMounts()); err != nil {
		cleanup.Release()
		return domain.Action{}, err
	}

	oldRoot := m.layout.Host(m.layout.OldRootPath())
	staged := path.Join(oldRoot, m.layout.StagingName())

	err := m.step(ctx, "swap root", func(context.Context) error {
		if err := m.merger.Evacuate(oldRoot, m.layout.StagingName(), m.layout.HoldingName); err != nil {
			return err
		}
		return m.merger.LinkTree(staged, oldRoot, []string{m.layout.StateName()})
	})
	if err != nil {
		cleanup.Release()
		return domain.Action{}, err
	}

	m.logger.Info(fmt.Sprintf("root swap complete; the old system is kept in /%s", m.layout.HoldingName))
	return m.rescue("migration complete"), nil
}

// finalizeMounts are the virtual filesystems of the staged root. They stay mounted for the
// interactive shell that follows.
func (m *Machine) finalizeMounts() []domain.Mount {
	return []domain.Mount{
		{Source: "proc", Target: m.layout.Host("/proc"), FSType: "proc"},
		{Source: "sysfs", Target: m.layout.Host("/sys"), FSType: "sysfs"},
		{Source: "devtmpfs", Target: m.layout.Host("/dev"), FSType: "devtmpfs"},
		{Source: "devpts", Target: m.layout.Host("/dev/pts"), FSType: "devpts"},
	}
}
