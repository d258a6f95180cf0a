package migration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/engine/closure"
	"go.trai.ch/zerr"
)

const (
	indexDirName   = "index"
	mirrorListPath = "/etc/pacman.d/mirrorlist"
	resolvConfPath = "/etc/resolv.conf"
)

// Resolve downloads the repository index and computes the closure of the configured seeds.
// It needs no privileges beyond write access to the work directory.
func (m *Machine) Resolve(ctx context.Context, cfg domain.Config) (*closure.Plan, error) {
	work := m.layout.Host(cfg.WorkDir)
	if err := os.MkdirAll(work, dirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", work)
	}

	archive := filepath.Join(work, cfg.IndexFilename())
	indexDir := filepath.Join(work, indexDirName)
	url := cfg.RepositoryURL() + "/" + cfg.IndexFilename()
	if err := m.acquirer.Index(ctx, url, archive, indexDir); err != nil {
		return nil, err
	}

	var plan *closure.Plan
	err := m.step(ctx, "resolve", func(context.Context) error {
		index, err := m.indexes.Open(indexDir)
		if err != nil {
			return err
		}
		plan, err = closure.Resolve(index, cfg.Seeds())
		return err
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info(fmt.Sprintf("resolved %d packages from %d seeds (%s to download, plan %s)",
		len(plan.Records), len(cfg.Seeds()), humanize.Bytes(uint64(max(plan.DownloadSize, 0))), plan.ID))
	return plan, nil
}

// Bootstrap stages the new root, installs the running binary as init and asks for a reboot.
//
// Preconditions are checked before anything is written. Every mount made here is released
// before Bootstrap returns, on success and on failure.
func (m *Machine) Bootstrap(ctx context.Context, cfg domain.Config) (domain.Action, error) {
	if err := m.Preflight(cfg); err != nil {
		return domain.Action{}, err
	}

	self, err := m.probe.SelfPath()
	if err != nil {
		return domain.Action{}, zerr.Wrap(err, domain.ErrSelfPathUnresolved.Error())
	}

	cache, err := m.caches.Open(m.layout.Host(cfg.WorkDir))
	if err != nil {
		return domain.Action{}, err
	}

	plan, err := m.Resolve(ctx, cfg)
	if err != nil {
		return domain.Action{}, err
	}

	artifacts, err := m.acquirer.Acquire(ctx, cache, cfg.RepositoryURL(), plan.Records)
	if err != nil {
		return domain.Action{}, err
	}

	staging := m.layout.Host(m.layout.StagingRoot)
	if err := m.acquirer.Stage(ctx, artifacts, staging); err != nil {
		return domain.Action{}, err
	}

	if err := m.step(ctx, "configure staging root", func(context.Context) error {
		return m.configureStaging(cfg)
	}); err != nil {
		return domain.Action{}, err
	}

	if err := m.installPackages(ctx, cfg, staging); err != nil {
		return domain.Action{}, err
	}

	if err := m.step(ctx, "install init", func(context.Context) error {
		return m.installInit(self)
	}); err != nil {
		return domain.Action{}, err
	}

	m.logger.Info("staging root is ready; rebooting into the replacement init")
	return domain.ExecReplace(m.layout.RebootCommand).Because("boot into the replacement init"), nil
}

// configureStaging writes the files the package manager needs to reach the mirror from
// inside the staging root.
func (m *Machine) configureStaging(cfg domain.Config) error {
	mirrorList := m.layout.Host(m.layout.Staged(mirrorListPath))
	if err := writeFileAtomic(mirrorList, []byte(cfg.MirrorList()), filePerm); err != nil {
		return stagingErr(err, mirrorList)
	}

	resolvConf := m.layout.Host(resolvConfPath)
	data, err := os.ReadFile(resolvConf) //nolint:gosec // fixed host path
	switch {
	case errors.Is(err, os.ErrNotExist):
		m.logger.Warn(fmt.Sprintf("%s not found; the staging root has no name resolution", resolvConfPath))
		return nil
	case err != nil:
		return stagingErr(err, resolvConf)
	}

	staged := m.layout.Host(m.layout.Staged(resolvConfPath))
	// A staged resolv.conf may be a dangling symlink into /run.
	if err := os.Remove(staged); err != nil && !errors.Is(err, os.ErrNotExist) {
		return stagingErr(err, staged)
	}
	if err := writeFileAtomic(staged, data, filePerm); err != nil {
		return stagingErr(err, staged)
	}
	return nil
}

// installPackages runs the package manager inside the staging root with the virtual
// filesystems mounted for the duration of the transaction.
func (m *Machine) installPackages(ctx context.Context, cfg domain.Config, staging string) error {
	cleanup := NewCleanup(m.mounter, m.logger)
	defer cleanup.Release()

	return m.step(ctx, "install packages", func(ctx context.Context) error {
		if err := cleanup.MountAll(m.stagingMounts(staging)); err != nil {
			return err
		}
		if err := m.installer.InitKeyring(ctx, staging); err != nil {
			return err
		}
		if err := m.installer.PopulateKeyring(ctx, staging, cfg.Keyring); err != nil {
			return err
		}
		return m.installer.Install(ctx, staging, cfg.InstallSet())
	})
}

// stagingMounts are the live system's virtual filesystems as the package manager's
// install scripts expect them inside the staging root. Binds are single-level so that
// releasing them in reverse order detaches exactly what was attached.
func (m *Machine) stagingMounts(staging string) []domain.Mount {
	return []domain.Mount{
		{Source: "proc", Target: filepath.Join(staging, "proc"), FSType: "proc"},
		{Source: "sysfs", Target: filepath.Join(staging, "sys"), FSType: "sysfs"},
		{Source: m.layout.Host("/dev"), Target: filepath.Join(staging, "dev"), Bind: true},
		{Source: m.layout.Host("/dev/pts"), Target: filepath.Join(staging, "dev", "pts"), Bind: true},
	}
}

// installInit saves the original init, unless it is already saved, and puts self in its place.
func (m *Machine) installInit(self string) error {
	initPath := m.layout.Host(m.layout.InitPath)
	original := m.layout.Host(m.layout.OriginalInitPath)

	if m.probe.Exists(original) {
		m.logger.Info(fmt.Sprintf("original init already saved at %s", m.layout.OriginalInitPath))
	} else if err := os.Rename(initPath, original); err != nil {
		return initErr(err, initPath)
	}

	if err := copyExecutable(self, initPath); err != nil {
		return initErr(err, initPath)
	}
	return nil
}

func stagingErr(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrStagingConfigFailed.Error()), "path", path)
}

func initErr(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrInitInstallFailed.Error()), "path", path)
}
