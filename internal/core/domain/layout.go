package domain

import (
	"path"
	"path/filepath"
)

// Layout holds every fixed path the migration phases agree on.
//
// The values are compiled in rather than configured: after the reboot the program starts with
// no arguments of its own and reads no configuration, so the phases can only find each other
// through these paths.
type Layout struct {
	// Root prefixes every host path. It is empty in production and points at a scratch
	// directory in tests.
	Root string

	// InitPath is where the kernel looks for init.
	InitPath string

	// OriginalInitPath is where the original init is saved while this binary stands in for it.
	OriginalInitPath string

	// StagingRoot is the directory the new system is assembled in.
	StagingRoot string

	// StateDir is the directory inside the staged root that holds the self-copy and the old-root mount point.
	StateDir string

	// SelfCopyName is the filename of the self-copy inside StateDir.
	SelfCopyName string

	// OldRootName is the name of the old-root mount point inside StateDir.
	OldRootName string

	// HoldingName is the name the old system's top-level entries are collected under.
	HoldingName string

	// RescueShell is the interactive command control is handed to when the machine stops.
	RescueShell string

	// RebootCommand is executed at the end of the bootstrap phase.
	RebootCommand string
}

// DefaultLayout returns the production layout.
func DefaultLayout() Layout {
	return Layout{
		InitPath:         "/sbin/init",
		OriginalInitPath: "/sbin/init.original",
		StagingRoot:      "/archroot",
		StateDir:         "/reroot",
		SelfCopyName:     "reroot",
		OldRootName:      "original",
		HoldingName:      "oldroot",
		RescueShell:      "/bin/sh",
		RebootCommand:    "/sbin/reboot",
	}
}

// Host maps an absolute path on the running system to its location under Root.
func (l Layout) Host(p string) string {
	if l.Root == "" {
		return p
	}
	return filepath.Join(l.Root, p)
}

// Staged maps an absolute path inside the new system to its location in the staging root,
// as seen from the running system.
func (l Layout) Staged(p string) string {
	return path.Join(l.StagingRoot, p)
}

// SelfCopyPath is the self-copy's path as seen from inside the staged root.
func (l Layout) SelfCopyPath() string {
	return path.Join(l.StateDir, l.SelfCopyName)
}

// OldRootPath is the old-root mount point as seen from inside the staged root.
func (l Layout) OldRootPath() string {
	return path.Join(l.StateDir, l.OldRootName)
}

// StagingName is the staging root's entry name in the old root's top level.
func (l Layout) StagingName() string {
	return path.Base(l.StagingRoot)
}

// StateName is the state directory's entry name in the staged root's top level.
func (l Layout) StateName() string {
	return path.Base(l.StateDir)
}
