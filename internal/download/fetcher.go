package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/model"
)

// Streaming constants
const (
	DefaultChunkSize  = 32 * 1024
	ArchiveFilePrefix = "theme-"
	ArchiveFileExt    = ".zip"
)

// Fetcher streams remote archives into a local directory
type Fetcher struct {
	client    *http.Client
	dir       string
	chunkSize int
}

// NewFetcher creates a fetcher writing into dir (the system temp dir when empty)
func NewFetcher(dir string) *Fetcher {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Fetcher{
		client:    &http.Client{},
		dir:       dir,
		chunkSize: DefaultChunkSize,
	}
}

// Download fetches url into a new local file and returns its path. When the
// response declares its size, onProgress is called after every chunk with a
// fraction that never decreases and never exceeds 1; otherwise it is never called.
func (f *Fetcher) Download(ctx context.Context, url string, onProgress ProgressFunc) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrNetwork, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: GET %s: %s", model.ErrNetwork, url, resp.Status)
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}

	path := filepath.Join(f.dir, ArchiveFilePrefix+uuid.NewString()+ArchiveFileExt)
	out, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("create download file: %w", err)
	}

	done, err := f.copy(out, resp.Body, total, onProgress)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close download file: %w", cerr)
	}
	if err != nil {
		os.Remove(path)
		return "", err
	}

	pslog.Ctx(ctx).Debug("archive downloaded", "url", url, "path", path, "size", humanize.Bytes(uint64(done)))
	return path, nil
}

func (f *Fetcher) copy(dst io.Writer, src io.Reader, total int64, onProgress ProgressFunc) (int64, error) {
	buf := make([]byte, f.chunkSize)
	start := time.Now()
	var done int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return done, fmt.Errorf("write download file: %w", werr)
			}
			done += int64(n)
			if total > 0 && onProgress != nil {
				onProgress(progressSample(done, total, time.Since(start)))
			}
		}
		if errors.Is(rerr, io.EOF) {
			return done, nil
		}
		if rerr != nil {
			return done, fmt.Errorf("%w: read body: %w", model.ErrNetwork, rerr)
		}
	}
}

// progressSample builds a progress value; total must be positive
func progressSample(done, total int64, elapsed time.Duration) model.Progress {
	fraction := float64(done) / float64(total)
	if fraction > 1 {
		fraction = 1
	}
	return model.Progress{
		Fraction:   fraction,
		Throughput: ThroughputLabel(done, elapsed),
		Done:       done,
		Total:      total,
	}
}

// ThroughputLabel formats an average transfer rate, e.g. "1.2 MB/s"
func ThroughputLabel(bytes int64, elapsed time.Duration) string {
	secs := elapsed.Seconds()
	if secs <= 0 || bytes <= 0 {
		return "0 B/s"
	}
	return humanize.Bytes(uint64(float64(bytes)/secs)) + "/s"
}
