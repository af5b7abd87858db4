package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"kat/internal/domain"
	"kat/internal/ui"
)

// Fetcher downloads a single resource to a local path
type Fetcher struct {
	client   *http.Client
	progress bool
}

// NewFetcher creates a Fetcher whose transfers are bounded by timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// SetProgress toggles the per-transfer progress bar
func (f *Fetcher) SetProgress(enabled bool) {
	f.progress = enabled
}

// Fetch downloads url to destination, creating parent directories as
// needed. An existing destination file is truncated, so re-runs are
// deterministic. One attempt per call; all failures come back as values.
func (f *Fetcher) Fetch(url, destination string) domain.DownloadResult {
	start := time.Now()
	result := f.fetch(url, destination)
	result.Duration = time.Since(start)
	return result
}

func (f *Fetcher) fetch(url, destination string) domain.DownloadResult {
	result := domain.DownloadResult{URL: url, Destination: destination}

	if err := os.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		result.Error = fmt.Errorf("create destination dir: %w", err)
		return result
	}

	resp, err := f.client.Get(url)
	if err != nil {
		result.Error = fmt.Errorf("download %s: %w", url, err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.Error = fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
		return result
	}

	out, err := os.Create(destination)
	if err != nil {
		result.Error = fmt.Errorf("create %s: %w", destination, err)
		return result
	}

	var dst io.Writer = out
	if f.progress {
		bar := ui.NewByteBar(resp.ContentLength, filepath.Base(destination))
		defer bar.Finish()
		dst = io.MultiWriter(out, bar)
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		out.Close()
		result.Error = fmt.Errorf("write %s: %w", destination, err)
		return result
	}
	if err := out.Close(); err != nil {
		result.Error = fmt.Errorf("write %s: %w", destination, err)
		return result
	}

	result.Success = true
	return result
}
