// Package domain contains the core domain models for resolving, staging and swapping in a new root filesystem.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ChecksumLength is the number of hex characters in a SHA-256 artifact digest.
const ChecksumLength = 64

// PackageMetadataFiles are the archive members the package manager writes into its own database.
// They are skipped when an artifact is unpacked into the staging root.
var PackageMetadataFiles = []string{".PKGINFO", ".MTREE", ".BUILDINFO", ".INSTALL", ".CHANGELOG"}

// PackageRecord is one entry of the repository index.
// Records are created by the index reader and never modified afterwards.
type PackageRecord struct {
	// Name is the package's primary name and the unique key within a resolution run.
	Name string

	// Version is the full version string (e.g., "6.2.1-1").
	Version string

	// Depends holds the raw dependency strings in declaration order, possibly version-qualified
	// (e.g., "glibc>=2.38").
	Depends []string

	// Provides holds the names this package satisfies on behalf of other names, possibly
	// version-qualified (e.g., "iproute=6.2.0").
	Provides []string

	// Filename is the artifact's filename in the repository (e.g., "bash-5.2.15-1-x86_64.pkg.tar.zst").
	Filename string

	// Checksum is the artifact's SHA-256 digest in lowercase hex.
	Checksum string

	// Size is the compressed artifact size in bytes as published by the index.
	Size int64

	// Dir is the index subdirectory the record was read from.
	Dir string
}

// Validate checks that the record carries everything acquisition needs.
func (r *PackageRecord) Validate() error {
	if r.Name == "" {
		return zerr.With(zerr.Wrap(ErrInvalidRecord, "validate record"), "dir", r.Dir)
	}
	if r.Filename == "" {
		err := zerr.With(zerr.Wrap(ErrInvalidRecord, "validate record"), "package", r.Name)
		return zerr.With(err, "reason", "missing filename")
	}
	if len(r.Checksum) != ChecksumLength {
		err := zerr.With(zerr.Wrap(ErrInvalidRecord, "validate record"), "package", r.Name)
		err = zerr.With(err, "checksum", r.Checksum)
		return zerr.With(err, "reason", "checksum is not a sha256 digest")
	}
	return nil
}

// DependencyNames returns the package's dependencies with version qualifiers stripped.
func (r *PackageRecord) DependencyNames() []string {
	names := make([]string, 0, len(r.Depends))
	for _, dep := range r.Depends {
		if name := StripVersion(dep); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ProvidedNames returns the names the package provides with version qualifiers stripped.
func (r *PackageRecord) ProvidedNames() []string {
	names := make([]string, 0, len(r.Provides))
	for _, p := range r.Provides {
		if name := StripVersion(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// StripVersion returns the leading identifier token of a dependency or provides entry.
// "glibc>=2.38" becomes "glibc", "iproute=6.2.0" becomes "iproute", "sh" stays "sh".
func StripVersion(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "<>=: \t"); i >= 0 {
		s = s[:i]
	}
	return s
}

// CachedArtifact is a package file at a deterministic local path, paired with the checksum it must match.
// It is usable if and only if the file exists and its digest equals Checksum.
type CachedArtifact struct {
	// Package is the name of the record the artifact belongs to.
	Package string

	// Path is the absolute local path of the artifact.
	Path string

	// Checksum is the expected SHA-256 digest.
	Checksum string
}
