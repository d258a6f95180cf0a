package migration

import (
	"io"
	"os"
	"path/filepath"
)

const (
	dirPerm   = 0o755
	filePerm  = 0o644
	execPerm  = 0o755
	tmpSuffix = ".reroot-tmp"
)

// copyExecutable copies src to dst with mode 0755. The copy is written next to dst and
// renamed over it, so dst is never seen half-written and a running dst is not modified.
func copyExecutable(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // src is the running binary
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	return writeAtomic(dst, execPerm, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}

// writeFileAtomic writes data to dst through a temporary file in the same directory.
func writeFileAtomic(dst string, data []byte, perm os.FileMode) error {
	return writeAtomic(dst, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func writeAtomic(dst string, perm os.FileMode, fill func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return err
	}

	tmpName := dst + tmpSuffix
	tmp, err := os.OpenFile(tmpName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm) //nolint:gosec // dst is a layout path
	if err != nil {
		return err
	}

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Lstat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err := fill(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// The umask may have narrowed perm at creation.
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, dst)
}
