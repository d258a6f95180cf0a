// Package acquire downloads, verifies and unpacks the artifacts of a resolved plan.
package acquire

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline moves package artifacts from the mirror into a root directory.
type Pipeline struct {
	fetcher   ports.Fetcher
	hasher    ports.Hasher
	extractor ports.Extractor
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Pipeline.
func New(
	fetcher ports.Fetcher,
	hasher ports.Hasher,
	extractor ports.Extractor,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		fetcher:   fetcher,
		hasher:    hasher,
		extractor: extractor,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Index downloads the repository index archive to archive and unpacks it into a fresh dest.
// The index carries no checksum of its own, so it is fetched on every run.
func (p *Pipeline) Index(ctx context.Context, url, archive, dest string) (err error) {
	ctx, vertex := p.telemetry.Record(ctx, "index "+url)
	defer func() { vertex.Complete(err) }()

	if err := p.fetcher.Fetch(ctx, url, archive); err != nil {
		return err
	}
	if err := os.RemoveAll(dest); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "dest", dest)
	}
	return p.extractor.Extract(ctx, archive, dest)
}

// Acquire makes every record's artifact present and verified in cache, in record order.
//
// An artifact that already verifies is not fetched. Any other artifact is fetched once and
// verified again; a second mismatch is fatal. The first failure aborts the whole run.
func (p *Pipeline) Acquire(
	ctx context.Context,
	cache ports.ArtifactCache,
	baseURL string,
	records []*domain.PackageRecord,
) ([]domain.CachedArtifact, error) {
	artifacts := make([]domain.CachedArtifact, 0, len(records))
	var fetched int
	var fetchedBytes int64

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		artifact := domain.CachedArtifact{
			Package:  record.Name,
			Path:     cache.Path(record.Filename),
			Checksum: record.Checksum,
		}

		wasFetched, err := p.acquireOne(ctx, baseURL, record, artifact)
		if err != nil {
			return nil, err
		}
		if wasFetched {
			fetched++
			fetchedBytes += record.Size
		}
		artifacts = append(artifacts, artifact)
	}

	p.logger.Info(fmt.Sprintf("acquired %d packages: %d fetched (%s), %d cached",
		len(artifacts), fetched, humanize.Bytes(uint64(max(fetchedBytes, 0))), len(artifacts)-fetched))
	return artifacts, nil
}

func (p *Pipeline) acquireOne(
	ctx context.Context,
	baseURL string,
	record *domain.PackageRecord,
	artifact domain.CachedArtifact,
) (fetched bool, err error) {
	ctx, vertex := p.telemetry.Record(ctx, "fetch "+record.Name)
	defer func() {
		if err != nil {
			err = zerr.With(err, "package", record.Name)
		}
		vertex.Complete(err)
	}()

	ok, err := p.hasher.Verify(artifact.Path, artifact.Checksum)
	if err != nil {
		return false, err
	}
	if ok {
		vertex.Cached()
		return false, nil
	}

	if err := p.fetcher.Fetch(ctx, ArtifactURL(baseURL, record.Filename), artifact.Path); err != nil {
		return false, err
	}

	ok, err = p.hasher.Verify(artifact.Path, artifact.Checksum)
	if err != nil {
		return true, err
	}
	if !ok {
		mismatch := zerr.With(zerr.Wrap(domain.ErrChecksumMismatch, "verify artifact"), "path", artifact.Path)
		mismatch = zerr.With(mismatch, "expected", artifact.Checksum)
		if actual, sumErr := p.hasher.Sum(artifact.Path); sumErr == nil {
			mismatch = zerr.With(mismatch, "actual", actual)
		}
		return true, mismatch
	}
	return true, nil
}

// Stage unpacks every artifact into root in order, so later artifacts overwrite files of
// earlier ones. The package manager's own metadata members are left out.
func (p *Pipeline) Stage(ctx context.Context, artifacts []domain.CachedArtifact, root string) error {
	for _, artifact := range artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.stageOne(ctx, artifact, root); err != nil {
			return err
		}
	}
	p.logger.Info(fmt.Sprintf("unpacked %d packages into %s", len(artifacts), root))
	return nil
}

func (p *Pipeline) stageOne(ctx context.Context, artifact domain.CachedArtifact, root string) (err error) {
	ctx, vertex := p.telemetry.Record(ctx, "unpack "+artifact.Package)
	defer func() { vertex.Complete(err) }()

	if err := p.extractor.Extract(ctx, artifact.Path, root, domain.PackageMetadataFiles...); err != nil {
		return zerr.With(err, "package", artifact.Package)
	}
	return nil
}

// ArtifactURL joins the repository URL and an artifact filename.
func ArtifactURL(baseURL, filename string) string {
	return strings.TrimRight(baseURL, "/") + "/" + filename
}
