// Package pacman drives the target system's package manager inside the staging root.
package pacman

import (
	"context"
	"slices"

	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	keyBinary     = "/usr/bin/pacman-key"
	pacmanBinary  = "/usr/bin/pacman"
	overwriteGlob = "*"
)

// Installer implements ports.PackageInstaller with pacman-key and pacman run in a chroot.
type Installer struct {
	runner ports.Runner
}

// NewInstaller creates a new Installer.
func NewInstaller(runner ports.Runner) *Installer {
	return &Installer{runner: runner}
}

// InitKeyring creates the local key store in root.
func (i *Installer) InitKeyring(ctx context.Context, root string) error {
	return i.run(ctx, "init-keyring", domain.Command{
		Name: keyBinary,
		Args: []string{"--init"},
		Root: root,
	})
}

// PopulateKeyring imports and trusts the named keyring in root.
func (i *Installer) PopulateKeyring(ctx context.Context, root, keyring string) error {
	return i.run(ctx, "populate-keyring", domain.Command{
		Name: keyBinary,
		Args: []string{"--populate", keyring},
		Root: root,
	})
}

// Install refreshes the package database and installs packages in one transaction.
//
// Files already unpacked into root by hand are overwritten, which lets pacman take
// ownership of the bootstrap packages.
func (i *Installer) Install(ctx context.Context, root string, packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	args := slices.Concat(
		[]string{"-Sy", "--noconfirm", "--needed", "--overwrite", overwriteGlob},
		packages,
	)
	return i.run(ctx, "install", domain.Command{
		Name: pacmanBinary,
		Args: args,
		Root: root,
	})
}

func (i *Installer) run(ctx context.Context, step string, cmd domain.Command) error {
	if err := i.runner.Run(ctx, cmd); err != nil {
		installErr := zerr.Wrap(err, domain.ErrInstallFailed.Error())
		installErr = zerr.With(installErr, "step", step)
		return zerr.With(installErr, "root", cmd.Root)
	}
	return nil
}

var _ ports.PackageInstaller = (*Installer)(nil)
