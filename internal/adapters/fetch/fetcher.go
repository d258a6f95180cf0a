// Package fetch downloads repository files over HTTP.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// Artifacts such as the kernel package are large; the timeout only bounds stalled transfers.
	httpClientTimeout = 30 * time.Minute
	dirPerm           = 0o755
	filePerm          = 0o644
	partialSuffix     = ".part"
	userAgent         = "reroot"
)

// HTTPFetcher implements ports.Fetcher using net/http.
type HTTPFetcher struct {
	client *http.Client
	logger ports.Logger
}

// NewHTTPFetcher creates a new HTTPFetcher with a default client.
func NewHTTPFetcher(logger ports.Logger) *HTTPFetcher {
	return NewHTTPFetcherWithClient(&http.Client{Timeout: httpClientTimeout}, logger)
}

// NewHTTPFetcherWithClient creates a new HTTPFetcher with a custom client.
func NewHTTPFetcherWithClient(client *http.Client, logger ports.Logger) *HTTPFetcher {
	return &HTTPFetcher{client: client, logger: logger}
}

// Fetch downloads url to dest.
//
// The body is written to a sibling partial file that is renamed over dest once complete, so
// dest is never left truncated.
func (f *HTTPFetcher) Fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fetchErr(err, url)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return fetchErr(err, url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := zerr.With(zerr.Wrap(domain.ErrFetchFailed, "unexpected status"), "url", url)
		return zerr.With(statusErr, "status_code", resp.StatusCode)
	}

	written, err := writeAtomic(dest, resp.Body)
	if err != nil {
		return zerr.With(fetchErr(err, url), "dest", dest)
	}

	f.logger.Info("fetched " + filepath.Base(dest) + " (" + humanize.Bytes(uint64(written)) + ")") //nolint:gosec // written is non-negative
	return nil
}

func writeAtomic(dest string, r io.Reader) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return 0, err
	}

	tmpName := dest + partialSuffix
	tmpFile, err := os.OpenFile(tmpName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm) //nolint:gosec // dest is built from the cache root
	if err != nil {
		return 0, err
	}

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	written, err := io.Copy(tmpFile, r)
	if err != nil {
		_ = tmpFile.Close()
		return 0, err
	}

	if err := tmpFile.Close(); err != nil {
		return 0, err
	}

	return written, os.Rename(tmpName, dest)
}

func fetchErr(err error, url string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
}

var _ ports.Fetcher = (*HTTPFetcher)(nil)
