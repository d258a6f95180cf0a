// Package migration drives the phases of the root swap.
//
// Every phase handler ends in a domain.Action. The handlers never replace the process
// themselves, so a test can check which program a phase would hand over to.
package migration

import (
	"context"
	"fmt"

	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
)

// Acquirer moves the repository index and package artifacts onto the local disk.
type Acquirer interface {
	// Index downloads the index archive at url to archive and unpacks it into dest.
	Index(ctx context.Context, url, archive, dest string) error

	// Acquire makes every record's artifact present and verified in cache.
	Acquire(
		ctx context.Context,
		cache ports.ArtifactCache,
		baseURL string,
		records []*domain.PackageRecord,
	) ([]domain.CachedArtifact, error)

	// Stage unpacks artifacts into root in order.
	Stage(ctx context.Context, artifacts []domain.CachedArtifact, root string) error
}

// Deps holds the collaborators of a Machine.
type Deps struct {
	Probe     ports.Probe
	Mounter   ports.Mounter
	Merger    ports.TreeMerger
	Installer ports.PackageInstaller
	Indexes   ports.IndexOpener
	Caches    ports.CacheOpener
	Acquirer  Acquirer
	Telemetry ports.Telemetry
	Logger    ports.Logger
}

// Machine runs one phase of the migration per process.
type Machine struct {
	probe     ports.Probe
	mounter   ports.Mounter
	merger    ports.TreeMerger
	installer ports.PackageInstaller
	indexes   ports.IndexOpener
	caches    ports.CacheOpener
	acquirer  Acquirer
	telemetry ports.Telemetry
	logger    ports.Logger
	layout    domain.Layout
}

// New creates a Machine working on the given layout.
func New(deps Deps, layout domain.Layout) *Machine {
	return &Machine{
		probe:     deps.Probe,
		mounter:   deps.Mounter,
		merger:    deps.Merger,
		installer: deps.Installer,
		indexes:   deps.Indexes,
		caches:    deps.Caches,
		acquirer:  deps.Acquirer,
		telemetry: deps.Telemetry,
		logger:    deps.Logger,
		layout:    layout,
	}
}

// Layout returns the layout the machine works on.
func (m *Machine) Layout() domain.Layout {
	return m.layout
}

// Observe reads the observables the phase is derived from.
func (m *Machine) Observe() (domain.Observables, error) {
	obs := domain.Observables{
		IsPID1: m.probe.IsPID1(),
		Sentinels: domain.Sentinels{
			OriginalInit: m.probe.Exists(m.layout.Host(m.layout.OriginalInitPath)),
			StagingRoot:  m.probe.Exists(m.layout.Host(m.layout.StagingRoot)),
		},
	}

	self, err := m.probe.SelfPath()
	if err != nil {
		return obs, zerr.Wrap(err, domain.ErrSelfPathUnresolved.Error())
	}
	obs.SelfPath = self
	return obs, nil
}

// Phase derives the role of the current process.
func (m *Machine) Phase() (domain.Phase, domain.Observables, error) {
	obs, err := m.Observe()
	if err != nil {
		return domain.PhaseUnknown, obs, err
	}
	return domain.DeriveState(obs, m.canonicalLayout()), obs, nil
}

// canonicalLayout returns the layout with the init path resolved the way the self path is,
// so a binary started through a symlinked directory (merged /usr) still matches it.
func (m *Machine) canonicalLayout() domain.Layout {
	layout := m.layout
	layout.InitPath = m.probe.Canonical(m.layout.Host(m.layout.InitPath))
	return layout
}

// Preflight checks every precondition of the bootstrap phase. It mutates nothing.
func (m *Machine) Preflight(cfg domain.Config) error {
	if uid := m.probe.EffectiveUID(); uid != 0 {
		return zerr.With(zerr.Wrap(domain.ErrNotRoot, "preflight"), "uid", uid)
	}

	rel, err := m.probe.OSRelease()
	if err != nil {
		return zerr.Wrap(err, domain.ErrUnsupportedOS.Error())
	}
	if !cfg.Supports(rel) {
		unsupported := zerr.With(zerr.Wrap(domain.ErrUnsupportedOS, "preflight"), "id", rel.ID)
		return zerr.With(unsupported, "version_id", rel.VersionID)
	}

	arch, err := m.probe.Architecture()
	if err != nil {
		return zerr.Wrap(err, domain.ErrUnsupportedArchitecture.Error())
	}
	if arch != cfg.Architecture {
		unsupported := zerr.With(zerr.Wrap(domain.ErrUnsupportedArchitecture, "preflight"), "machine", arch)
		return zerr.With(unsupported, "repository", cfg.Architecture)
	}

	m.logger.Info(fmt.Sprintf("preflight passed: %s on %s", rel, arch))
	return nil
}

// Unknown hands control to the operator when no phase matches.
func (m *Machine) Unknown(obs domain.Observables) domain.Action {
	m.logger.Warn(fmt.Sprintf("no migration phase matches (pid1=%t self=%s original_init=%t staging_root=%t); starting %s",
		obs.IsPID1, obs.SelfPath, obs.Sentinels.OriginalInit, obs.Sentinels.StagingRoot, m.layout.RescueShell))
	return m.rescue("unknown migration state")
}

func (m *Machine) rescue(reason string) domain.Action {
	return domain.ExecReplace(m.layout.RescueShell).Because(reason)
}

// step runs fn inside a telemetry vertex named name.
func (m *Machine) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := m.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}
