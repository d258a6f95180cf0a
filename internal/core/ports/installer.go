package ports

import "context"

// PackageInstaller drives the target distribution's package manager inside a root directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type PackageInstaller interface {
	// InitKeyring creates the package manager's local key store in root.
	InitKeyring(ctx context.Context, root string) error

	// PopulateKeyring imports and trusts the named keyring in root.
	PopulateKeyring(ctx context.Context, root, keyring string) error

	// Install synchronises the package database and installs packages in root in one transaction.
	Install(ctx context.Context, root string, packages []string) error
}
