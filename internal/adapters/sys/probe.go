//go:build linux

package sys

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var _ ports.Probe = (*Probe)(nil)

// DefaultOSReleasePaths are read in order; the first that exists wins.
var DefaultOSReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Probe implements ports.Probe for the running process.
type Probe struct {
	argv0          string
	osReleasePaths []string
}

// NewProbe creates a Probe for the running process.
func NewProbe() *Probe {
	return NewProbeWith(os.Args[0], DefaultOSReleasePaths...)
}

// NewProbeWith creates a Probe with an explicit argv[0] and os-release search path.
func NewProbeWith(argv0 string, osReleasePaths ...string) *Probe {
	return &Probe{argv0: argv0, osReleasePaths: osReleasePaths}
}

// IsPID1 reports whether the process is the system's first process.
func (p *Probe) IsPID1() bool {
	return os.Getpid() == 1
}

// SelfPath returns the canonical path of the running binary.
//
// It is derived from argv[0] rather than /proc/self/exe because /proc is not mounted
// when the binary runs inside the freshly chrooted root.
func (p *Probe) SelfPath() (string, error) {
	path := p.argv0
	if path == "" {
		return "", domain.ErrSelfPathUnresolved
	}

	if !strings.ContainsRune(path, filepath.Separator) {
		found, err := exec.LookPath(path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrSelfPathUnresolved.Error()), "argv0", p.argv0)
		}
		path = found
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSelfPathUnresolved.Error()), "argv0", p.argv0)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSelfPathUnresolved.Error()), "argv0", p.argv0)
	}
	return resolved, nil
}

// Canonical resolves the symlinks in path. When the final component does not exist only
// its directory is resolved.
func (p *Probe) Canonical(path string) string {
	path = filepath.Clean(path)
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(path)); err == nil {
		return filepath.Join(dir, filepath.Base(path))
	}
	return path
}

// Exists reports whether path exists, without following a final symlink.
func (p *Probe) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// EffectiveUID returns the effective user id of the process.
func (p *Probe) EffectiveUID() int {
	return os.Geteuid()
}

// Architecture returns the machine hardware name reported by uname(2).
func (p *Probe) Architecture() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", zerr.Wrap(err, "failed to read machine architecture")
	}
	return unix.ByteSliceToString(uts.Machine[:]), nil
}

// OSRelease reads the distribution identity from os-release.
func (p *Probe) OSRelease() (domain.OSRelease, error) {
	for _, path := range p.osReleasePaths {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return domain.OSRelease{}, zerr.With(zerr.Wrap(err, domain.ErrUnsupportedOS.Error()), "path", path)
		}
		return domain.OSRelease{ID: values["ID"], VersionID: values["VERSION_ID"]}, nil
	}
	return domain.OSRelease{}, zerr.With(zerr.Wrap(domain.ErrUnsupportedOS, "read os-release"), "reason", "no os-release file")
}
