package ports

import "go.trai.ch/reroot/internal/core/domain"

// Mounter attaches and detaches filesystems.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Mounter interface {
	// Mount attaches the described filesystem.
	Mount(m domain.Mount) error

	// Unmount detaches the filesystem mounted at target.
	Unmount(target string) error

	// RemountReadWrite remounts the filesystem at target read-write.
	RemountReadWrite(target string) error

	// Mounted reports whether target is a mount point.
	Mounted(target string) (bool, error)
}

// Process replaces the running process image.
type Process interface {
	// Exec performs the action. On success it does not return.
	Exec(action domain.Action) error
}

// Probe reads the facts the migration derives its state and preconditions from.
type Probe interface {
	// IsPID1 reports whether the process is the system's first process.
	IsPID1() bool

	// SelfPath returns the canonical path of the running binary.
	SelfPath() (string, error)

	// Canonical resolves the symlinks in path the way SelfPath does. A path that cannot be
	// resolved is returned cleaned but otherwise unchanged.
	Canonical(path string) string

	// Exists reports whether path exists, without following a final symlink.
	Exists(path string) bool

	// EffectiveUID returns the effective user id of the process.
	EffectiveUID() int

	// Architecture returns the machine hardware name (e.g., "x86_64").
	Architecture() (string, error)

	// OSRelease returns the running distribution's identity.
	OSRelease() (domain.OSRelease, error)
}

// TreeMerger performs the filesystem half of the root swap.
type TreeMerger interface {
	// Evacuate moves every top-level entry of root except keep into a new directory root/holding.
	// The directory is assembled inside root/keep and moved into place once full.
	Evacuate(root, keep, holding string) error

	// LinkTree recreates the tree under src inside dst, hard-linking every non-directory.
	// Top-level entries of src named in skip are left out.
	LinkTree(src, dst string, skip []string) error
}
