// Package app implements the application layer for reroot.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"go.trai.ch/reroot/internal/adapters/config" //nolint:depguard // Validation is shared with the loader
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/reroot/internal/engine/migration"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	machine   *migration.Machine
	loader    ports.ConfigLoader
	process   ports.Process
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	machine *migration.Machine,
	loader ports.ConfigLoader,
	process ports.Process,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		machine:   machine,
		loader:    loader,
		process:   process,
		telemetry: telemetry,
		logger:    logger,
	}
}

// ConfigOptions are the operator's overrides of the configuration file.
type ConfigOptions struct {
	// Path is the configuration file. Empty means config.DefaultPath.
	Path string
	// Mirror replaces the configured mirror when set.
	Mirror string
	// Packages are appended to the configured extra packages.
	Packages []string
	// WorkDir replaces the configured work directory when set.
	WorkDir string
}

// LoadConfig reads the configuration file, applies the overrides and validates the result.
func (a *App) LoadConfig(opts ConfigOptions) (domain.Config, error) {
	cfg, err := a.loader.Load(opts.Path)
	if err != nil {
		return domain.Config{}, err
	}

	if mirror := strings.TrimSpace(opts.Mirror); mirror != "" {
		cfg.Mirror = mirror
	}
	if workDir := strings.TrimSpace(opts.WorkDir); workDir != "" {
		cfg.WorkDir = workDir
	}
	for _, name := range opts.Packages {
		if name = strings.TrimSpace(name); name != "" {
			cfg.ExtraPackages = append(cfg.ExtraPackages, name)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Phase derives the role of the current process.
func (a *App) Phase() (domain.Phase, domain.Observables, error) {
	return a.machine.Phase()
}

// Migrate runs the bootstrap phase and reboots into the replacement init.
func (a *App) Migrate(ctx context.Context, opts ConfigOptions) error {
	cfg, err := a.LoadConfig(opts)
	if err != nil {
		return err
	}

	action, err := a.machine.Bootstrap(ctx, cfg)
	if err != nil {
		return zerr.Wrap(err, "bootstrap failed")
	}
	return a.perform(action)
}

// Resolve prints the packages the bootstrap phase would unpack, without touching the system.
func (a *App) Resolve(ctx context.Context, opts ConfigOptions, w io.Writer) error {
	cfg, err := a.LoadConfig(opts)
	if err != nil {
		return err
	}

	plan, err := a.machine.Resolve(ctx, cfg)
	if err != nil {
		return err
	}

	for _, record := range plan.Records {
		if _, err := fmt.Fprintf(w, "%s %s\n", record.Name, record.Version); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "\n%d packages, %s to download, plan %s\n",
		len(plan.Records), humanize.Bytes(uint64(max(plan.DownloadSize, 0))), plan.ID)
	return err
}

// DescribePhase prints the derived phase and the observables it was derived from.
func (a *App) DescribePhase(w io.Writer) error {
	phase, obs, err := a.machine.Phase()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "phase: %s\npid1: %t\nself: %s\noriginal init saved: %t\nstaging root present: %t\n",
		phase, obs.IsPID1, obs.SelfPath, obs.Sentinels.OriginalInit, obs.Sentinels.StagingRoot)
	return err
}

// Handoff runs every role other than bootstrap. These roles receive arguments meant for
// init, so nothing here parses them.
func (a *App) Handoff(ctx context.Context, phase domain.Phase, obs domain.Observables, args []string) error {
	a.logger.Info(fmt.Sprintf("reroot running as %s", phase))

	var action domain.Action
	switch phase {
	case domain.PhaseInitPassthrough:
		action = a.machine.InitPassthrough(args)
	case domain.PhaseBecomeInit:
		action = a.machine.BecomeInit(ctx)
	case domain.PhaseChrootFinalize:
		var err error
		if action, err = a.machine.ChrootFinalize(ctx); err != nil {
			return zerr.Wrap(err, "chroot finalize failed")
		}
	case domain.PhaseUnknown:
		action = a.machine.Unknown(obs)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownPhase, "handoff"), "phase", phase.String())
	}

	err := a.perform(action)
	if err == nil || !obs.IsPID1 {
		return err
	}

	// As the first process there is no one to report to but the console.
	a.logger.Error(err)
	rescue := domain.ExecReplace(a.machine.Layout().RescueShell).Because("exec failed")
	if action.Path == rescue.Path && action.Root == "" {
		return err
	}
	return a.perform(rescue)
}

// perform replaces the process with action. It only returns on failure.
func (a *App) perform(action domain.Action) error {
	target := action.Path
	if action.Root != "" {
		target = action.Root + ":" + action.Path
	}
	a.logger.Info(fmt.Sprintf("exec %s (%s)", target, action.Reason))

	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to flush progress: %v", err))
	}
	return a.process.Exec(action)
}
