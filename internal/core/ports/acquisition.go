package ports

import "context"

// Fetcher downloads a URL into a local file.
//
//go:generate go run go.uber.org/mock/mockgen -source=acquisition.go -destination=mocks/mock_acquisition.go -package=mocks
type Fetcher interface {
	// Fetch downloads url to dest, replacing any existing file.
	// On error dest is left absent or unchanged.
	Fetch(ctx context.Context, url, dest string) error
}

// Hasher computes and compares artifact digests.
type Hasher interface {
	// Sum returns the hex digest of the file at path.
	Sum(path string) (string, error)

	// Verify reports whether the file at path exists and its digest equals expected.
	// A missing file is reported as false with no error.
	Verify(path, expected string) (bool, error)
}

// ArtifactCache maps artifact filenames to deterministic local paths.
type ArtifactCache interface {
	// Dir returns the directory the cache stores artifacts in.
	Dir() string

	// Path returns the local path for the artifact named filename.
	Path(filename string) string
}

// CacheOpener prepares an artifact cache under a work directory.
type CacheOpener interface {
	// Open creates the cache directory under workDir if needed and returns the cache.
	Open(workDir string) (ArtifactCache, error)
}

// Extractor unpacks archives.
type Extractor interface {
	// Extract unpacks archive into dest, overlaying existing files.
	// Members whose names match an entry in excludes are skipped.
	Extract(ctx context.Context, archive, dest string, excludes ...string) error
}
