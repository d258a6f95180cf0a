package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"syscall"

	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
)

const holdingPerm = 0o700

var _ ports.TreeMerger = (*Merger)(nil)

// Merger swaps one directory tree for another with renames and hard links.
// Every path it touches lives on one filesystem, as link(2) and rename(2) require.
type Merger struct {
	walker *Walker
}

// NewMerger creates a new Merger.
func NewMerger(walker *Walker) *Merger {
	return &Merger{walker: walker}
}

// Evacuate moves every top-level entry of root except keep into root/holding.
//
// The holding directory is filled while it sits inside root/keep and is moved to the top
// level last, so the listing being moved never contains it.
func (m *Merger) Evacuate(root, keep, holding string) error {
	final := filepath.Join(root, holding)
	staging := filepath.Join(root, keep, holding)

	for _, p := range []string{final, staging} {
		if _, err := os.Lstat(p); err == nil {
			return zerr.With(zerr.Wrap(domain.ErrHoldingExists, "evacuate"), "path", p)
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRelocateFailed.Error()), "root", root)
	}

	if err := os.Mkdir(staging, holdingPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRelocateFailed.Error()), "path", staging)
	}

	for _, entry := range entries {
		if entry.Name() == keep {
			continue
		}
		from := filepath.Join(root, entry.Name())
		to := filepath.Join(staging, entry.Name())
		if err := os.Rename(from, to); err != nil {
			relocateErr := zerr.With(zerr.Wrap(err, domain.ErrRelocateFailed.Error()), "from", from)
			return zerr.With(relocateErr, "to", to)
		}
	}

	if err := os.Rename(staging, final); err != nil {
		relocateErr := zerr.With(zerr.Wrap(err, domain.ErrRelocateFailed.Error()), "from", staging)
		return zerr.With(relocateErr, "to", final)
	}
	return nil
}

// LinkTree recreates src inside dst. Directories are created with the source's mode and
// ownership; every other node is hard-linked. Existing directories in dst are reused.
func (m *Merger) LinkTree(src, dst string, skip []string) error {
	for entry, err := range m.walker.Walk(src, skip) {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "path", entry.Path)
		}

		target := filepath.Join(dst, entry.Rel)
		if entry.Dir.IsDir() {
			err = m.mirrorDir(entry.Path, target)
		} else {
			err = os.Link(entry.Path, target)
		}
		if err != nil {
			linkErr := zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "source", entry.Path)
			return zerr.With(linkErr, "target", target)
		}
	}
	return nil
}

func (m *Merger) mirrorDir(src, target string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	if err := os.Mkdir(target, holdingPerm); err != nil {
		if !errors.Is(err, iofs.ErrExist) {
			return err
		}
		existing, statErr := os.Lstat(target)
		if statErr != nil {
			return statErr
		}
		if !existing.IsDir() {
			return err
		}
	}

	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		if err := os.Lchown(target, int(st.Uid), int(st.Gid)); err != nil {
			return err
		}
	}
	return os.Chmod(target, info.Mode()&(iofs.ModePerm|iofs.ModeSetuid|iofs.ModeSetgid|iofs.ModeSticky))
}
