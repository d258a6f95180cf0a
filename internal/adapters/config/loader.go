// Package config provides the configuration loader for reroot.
package config

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the configuration is looked for when no path is given.
const DefaultPath = "/etc/reroot.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path. A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the operator
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("no configuration at " + path + ", using defaults")
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes a configuration document on top of the defaults and validates the result.
func Parse(data []byte) (domain.Config, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if file.Version != "" && file.Version != SupportedVersion {
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "parse config"), "version", file.Version)
	}

	cfg := apply(domain.DefaultConfig(), &file)
	if err := Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func apply(cfg domain.Config, file *File) domain.Config {
	setString(&cfg.Mirror, file.Mirror)
	setString(&cfg.Repository, file.Repository)
	setString(&cfg.Architecture, file.Architecture)
	setString(&cfg.Keyring, file.Keyring)
	setString(&cfg.WorkDir, file.WorkDir)

	setList(&cfg.BootstrapPackages, file.BootstrapPackages)
	setList(&cfg.Packages, file.Packages)
	setList(&cfg.ExtraPackages, file.ExtraPackages)

	if file.SupportedReleases != nil {
		cfg.SupportedReleases = make([]domain.OSRelease, 0, len(file.SupportedReleases))
		for _, r := range file.SupportedReleases {
			cfg.SupportedReleases = append(cfg.SupportedReleases, domain.OSRelease{ID: r.ID, VersionID: r.VersionID})
		}
	}
	return cfg
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setList(dst *[]string, v []string) {
	if v == nil {
		return
	}
	out := make([]string, 0, len(v))
	for _, s := range v {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	*dst = out
}

// Validate checks a configuration, whether it came from a file or from flags.
func Validate(cfg domain.Config) error {
	u, err := url.Parse(cfg.Mirror)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("mirror", cfg.Mirror, "must be an http or https URL")
	}

	for _, f := range []struct{ field, value string }{
		{"repository", cfg.Repository},
		{"architecture", cfg.Architecture},
		{"keyring", cfg.Keyring},
	} {
		if f.value == "" || strings.ContainsAny(f.value, "/ \t") {
			return invalid(f.field, f.value, "must be a single path segment")
		}
	}

	if !filepath.IsAbs(cfg.WorkDir) {
		return invalid("work_dir", cfg.WorkDir, "must be an absolute path")
	}

	if len(cfg.Seeds()) == 0 {
		return invalid("bootstrap_packages", "", "at least one package is required")
	}

	for _, name := range cfg.InstallSet() {
		if domain.StripVersion(name) != name {
			return invalid("packages", name, "must be a bare package name")
		}
	}

	if len(cfg.SupportedReleases) == 0 {
		return invalid("supported_releases", "", "at least one release is required")
	}
	for _, r := range cfg.SupportedReleases {
		if r.ID == "" {
			return invalid("supported_releases", r.String(), "id is required")
		}
	}
	return nil
}

func invalid(field, value, reason string) error {
	err := zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "validate config"), "field", field)
	err = zerr.With(err, "value", value)
	return zerr.With(err, "reason", reason)
}
