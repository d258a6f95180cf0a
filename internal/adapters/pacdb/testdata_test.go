package pacdb_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// entry describes one package of a fixture index.
type entry struct {
	dir      string
	name     string
	version  string
	depends  []string
	provides []string
	// splitDepends writes DEPENDS and PROVIDES into a separate depends file.
	splitDepends bool
}

func block(key string, values ...string) string {
	if len(values) == 0 {
		return ""
	}
	return "%" + key + "%\n" + strings.Join(values, "\n") + "\n\n"
}

func writeIndex(t *testing.T, entries ...entry) string {
	t.Helper()
	root := t.TempDir()

	for _, e := range entries {
		dir := filepath.Join(root, e.dir)
		require.NoError(t, os.MkdirAll(dir, 0o750))

		desc := block("FILENAME", e.dir+"-x86_64.pkg.tar.zst") +
			block("NAME", e.name) +
			block("VERSION", e.version) +
			block("CSIZE", "1024") +
			block("SHA256SUM", strings.Repeat("AB", 32))
		rels := block("DEPENDS", e.depends...) + block("PROVIDES", e.provides...)

		if e.splitDepends {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "depends"), []byte(rels), 0o600))
		} else {
			desc += rels
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, "desc"), []byte(desc), 0o600))
	}
	return root
}
