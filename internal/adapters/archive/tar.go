// Package archive unpacks package archives with the host's tar.
package archive

import (
	"context"
	"os"

	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	tarBinary = "tar"
	dirPerm   = 0o755
)

var _ ports.Extractor = (*TarExtractor)(nil)

// TarExtractor implements ports.Extractor by running tar.
// tar detects the compression (gzip for the index, zstd for packages) on its own.
type TarExtractor struct {
	runner ports.Runner
}

// NewTarExtractor creates a new TarExtractor.
func NewTarExtractor(runner ports.Runner) *TarExtractor {
	return &TarExtractor{runner: runner}
}

// Extract unpacks archive into dest, keeping numeric ownership and permissions.
// Members already present in dest are overwritten.
func (e *TarExtractor) Extract(ctx context.Context, archive, dest string, excludes ...string) error {
	if err := os.MkdirAll(dest, dirPerm); err != nil {
		return extractErr(err, archive, dest)
	}

	if err := e.runner.Run(ctx, domain.Command{Name: tarBinary, Args: Args(archive, dest, excludes...)}); err != nil {
		return extractErr(err, archive, dest)
	}
	return nil
}

// Args returns the tar arguments that unpack archive into dest.
func Args(archive, dest string, excludes ...string) []string {
	args := []string{"-x", "-f", archive, "-C", dest, "--numeric-owner", "--preserve-permissions"}
	for _, pattern := range excludes {
		args = append(args, "--exclude", pattern)
	}
	return args
}

func extractErr(err error, archive, dest string) error {
	wrapped := zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "archive", archive)
	return zerr.With(wrapped, "dest", dest)
}
