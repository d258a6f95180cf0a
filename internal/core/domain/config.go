package domain

import (
	"slices"
	"strings"
)

// OSRelease identifies a distribution release as published in /etc/os-release.
type OSRelease struct {
	// ID is the distribution identifier (e.g., "debian").
	ID string `yaml:"id"`

	// VersionID is the release version (e.g., "12"). Empty matches any version.
	VersionID string `yaml:"version_id"`
}

// String returns "id version".
func (r OSRelease) String() string {
	if r.VersionID == "" {
		return r.ID
	}
	return r.ID + " " + r.VersionID
}

// Config holds the options of the bootstrap phase.
// Later phases never read it.
type Config struct {
	// Mirror is the base URL of the package mirror.
	Mirror string

	// Repository is the single repository packages are resolved from.
	Repository string

	// Architecture is the single architecture packages are resolved for.
	Architecture string

	// BootstrapPackages seed the dependency closure that is unpacked by hand.
	BootstrapPackages []string

	// Packages are installed by the package manager inside the staging root.
	Packages []string

	// ExtraPackages are operator-specified additions to both lists.
	ExtraPackages []string

	// Keyring is the trust-store the package manager is populated with.
	Keyring string

	// WorkDir holds the downloaded index and the artifact cache.
	WorkDir string

	// SupportedReleases lists the source systems the migration may run on.
	SupportedReleases []OSRelease
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Mirror:            "https://geo.mirror.pkgbuild.com",
		Repository:        "core",
		Architecture:      "x86_64",
		BootstrapPackages: []string{"pacman"},
		Packages:          []string{"base", "linux", "openssh"},
		Keyring:           "archlinux",
		WorkDir:           "/var/cache/reroot",
		SupportedReleases: []OSRelease{
			{ID: "debian", VersionID: "11"},
			{ID: "debian", VersionID: "12"},
		},
	}
}

// RepositoryURL is the URL of the directory holding the repository's index and artifacts.
func (c Config) RepositoryURL() string {
	return strings.TrimRight(c.Mirror, "/") + "/" + c.Repository + "/os/" + c.Architecture
}

// IndexFilename is the filename of the repository's index archive.
func (c Config) IndexFilename() string {
	return c.Repository + ".db"
}

// MirrorList renders the package manager mirror list for the staging root.
func (c Config) MirrorList() string {
	return "Server = " + strings.TrimRight(c.Mirror, "/") + "/$repo/os/$arch\n"
}

// Seeds returns the root set of the dependency closure.
func (c Config) Seeds() []string {
	return mergeNames(c.BootstrapPackages, c.ExtraPackages)
}

// InstallSet returns the packages the package manager installs in the staging root.
// The bootstrap packages are included so the package manager records them as installed.
func (c Config) InstallSet() []string {
	return mergeNames(c.BootstrapPackages, c.Packages, c.ExtraPackages)
}

// Supports reports whether rel is one of the supported source systems.
func (c Config) Supports(rel OSRelease) bool {
	for _, s := range c.SupportedReleases {
		if s.ID != rel.ID {
			continue
		}
		if s.VersionID == "" || s.VersionID == rel.VersionID {
			return true
		}
	}
	return false
}

// mergeNames concatenates the lists, dropping empty names and repeats while keeping first-seen order.
func mergeNames(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		for _, name := range list {
			if name != "" && !slices.Contains(out, name) {
				out = append(out, name)
			}
		}
	}
	return out
}
