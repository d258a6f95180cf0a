package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reroot/internal/core/domain"
)

func TestConfig_URLs(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Mirror = "https://mirror.example.org/archlinux/"

	assert.Equal(t, "https://mirror.example.org/archlinux/core/os/x86_64", cfg.RepositoryURL())
	assert.Equal(t, "core.db", cfg.IndexFilename())
	assert.Equal(t, "Server = https://mirror.example.org/archlinux/$repo/os/$arch\n", cfg.MirrorList())
}

func TestConfig_Sets(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.ExtraPackages = []string{"vim", "pacman", ""}

	assert.Equal(t, []string{"pacman", "vim"}, cfg.Seeds())
	assert.Equal(t, []string{"pacman", "base", "linux", "openssh", "vim"}, cfg.InstallSet())
}

func TestConfig_Supports(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.SupportedReleases = append(cfg.SupportedReleases, domain.OSRelease{ID: "ubuntu"})

	assert.True(t, cfg.Supports(domain.OSRelease{ID: "debian", VersionID: "12"}))
	assert.False(t, cfg.Supports(domain.OSRelease{ID: "debian", VersionID: "8"}))
	assert.True(t, cfg.Supports(domain.OSRelease{ID: "ubuntu", VersionID: "24.04"}))
	assert.False(t, cfg.Supports(domain.OSRelease{ID: "fedora", VersionID: "40"}))
}

func TestAction(t *testing.T) {
	a := domain.ExecReplace("/bin/sh")
	assert.Equal(t, []string{"/bin/sh"}, a.Args)
	assert.Empty(t, a.Root)

	b := domain.ExecReplace("/reroot/reroot").InRoot("/archroot").Because("enter staged root")
	assert.Equal(t, "/archroot", b.Root)
	assert.Equal(t, "enter staged root", b.Reason)
	assert.Empty(t, a.Reason)
}
