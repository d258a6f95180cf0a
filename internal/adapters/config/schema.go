package config

// SupportedVersion is the only config file format version understood.
const SupportedVersion = "1"

// File represents the structure of the reroot.yaml configuration file.
// Omitted fields keep their default; an explicitly empty list clears it.
type File struct {
	Version           string       `yaml:"version"`
	Mirror            string       `yaml:"mirror"`
	Repository        string       `yaml:"repository"`
	Architecture      string       `yaml:"architecture"`
	BootstrapPackages []string     `yaml:"bootstrap_packages"`
	Packages          []string     `yaml:"packages"`
	ExtraPackages     []string     `yaml:"extra_packages"`
	Keyring           string       `yaml:"keyring"`
	WorkDir           string       `yaml:"work_dir"`
	SupportedReleases []ReleaseDTO `yaml:"supported_releases"`
}

// ReleaseDTO represents one supported source system.
type ReleaseDTO struct {
	ID        string `yaml:"id"`
	VersionID string `yaml:"version_id"`
}
