// Package cas implements the artifact cache: downloaded packages at deterministic paths.
package cas

import (
	"os"
	"path/filepath"

	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	packagesDir = "packages"
	dirPerm     = 0o755
)

// Store implements ports.ArtifactCache as a flat directory of artifacts named by their filename.
// Whether an entry is usable is decided by verifying its digest, never by the Store.
type Store struct {
	dir string
}

// NewStore creates the cache directory below workDir and returns a Store over it.
func NewStore(workDir string) (*Store, error) {
	dir := filepath.Join(filepath.Clean(workDir), packagesDir)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", dir)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the location of the artifact named filename.
// Directory components in filename are discarded so entries cannot escape the cache.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filepath.Clean("/"+filename)))
}

// Opener implements ports.CacheOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open returns the cache below workDir, creating it if needed.
func (o *Opener) Open(workDir string) (ports.ArtifactCache, error) {
	store, err := NewStore(workDir)
	if err != nil {
		return nil, err
	}
	return store, nil
}

var (
	_ ports.ArtifactCache = (*Store)(nil)
	_ ports.CacheOpener   = (*Opener)(nil)
)
