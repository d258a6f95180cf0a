package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"strings"

	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes and checks the SHA-256 digests the repository index publishes.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Sum returns the lowercase hex SHA-256 digest of the file at path.
func (h *Hasher) Sum(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := sha256.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrHashFailed.Error()), "path", path)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Verify reports whether the file at path has the expected digest.
// A missing file does not verify and is not an error.
func (h *Hasher) Verify(path, expected string) (bool, error) {
	sum, err := h.Sum(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(sum, expected), nil
}
