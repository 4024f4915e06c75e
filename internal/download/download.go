// Package download writes resolved audio files to disk. A file that already
// exists at the destination is treated as already succeeded and skipped
// without a network call, which makes repeated runs idempotent.
package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"saints/internal/fetch"
)

// Outcome reports what the downloader did for one task.
type Outcome int

const (
	// OutcomeDownloaded means the file was fetched and written.
	OutcomeDownloaded Outcome = iota
	// OutcomeSkipped means the destination already existed.
	OutcomeSkipped
	// OutcomeNoURL means there was nothing to download.
	OutcomeNoURL
)

// Downloader streams audio files to their destination paths.
type Downloader struct {
	client *fetch.Client
}

// New creates a Downloader using the given HTTP client.
func New(client *fetch.Client) *Downloader {
	return &Downloader{client: client}
}

// Download fetches url into dest. An empty url is a no-op; an existing dest
// skips the fetch entirely. Bytes are written verbatim, with no integrity
// check. A failed write removes the partial file so the next run retries it.
func (d *Downloader) Download(ctx context.Context, url, dest string) (Outcome, error) {
	if url == "" {
		return OutcomeNoURL, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, fmt.Errorf("create directory %q: %w", filepath.Dir(dest), err)
	}

	if _, err := os.Stat(dest); err == nil {
		return OutcomeSkipped, nil
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("stat %q: %w", dest, err)
	}

	body, err := d.client.Fetch(ctx, url)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create %q: %w", dest, err)
	}

	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		os.Remove(dest)
		return 0, fmt.Errorf("write %q: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return 0, fmt.Errorf("close %q: %w", dest, err)
	}
	return OutcomeDownloaded, nil
}
