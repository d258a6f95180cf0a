// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/reroot/internal/core/domain"

// PackageIndex reads an unpacked repository index.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type PackageIndex interface {
	// Lookup returns the index subdirectory for name, matching the primary name first and the
	// provides lists second. It returns domain.ErrPackageNotFound when neither matches.
	Lookup(name string) (string, error)

	// Record parses the package record stored in the given subdirectory.
	Record(dir string) (*domain.PackageRecord, error)
}

// IndexOpener opens an unpacked repository index rooted at a directory.
type IndexOpener interface {
	// Open returns a PackageIndex over dir. It fails if dir does not exist.
	Open(dir string) (PackageIndex, error)
}
