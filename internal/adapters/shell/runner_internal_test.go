package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	got := resolveEnvironment(
		[]string{"PATH=/usr/bin", "HOME=/root", "malformed"},
		[]string{"HOME=/", "LANG=C"},
	)

	assert.Equal(t, []string{"HOME=/", "LANG=C", "PATH=/usr/bin"}, got)
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755)) //nolint:gosec // executable fixture
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain"), []byte("x"), 0o600))

	got, err := lookPath("tool", []string{"PATH=/nonexistent:" + dir})
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	_, err = lookPath("plain", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = lookPath("tool", nil)
	require.Error(t, err)
}
