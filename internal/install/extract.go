package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/ytget/plymouth-manager/internal/model"
)

// extractZip unpacks archivePath into dest, which must already exist.
// Entries that would land outside dest are rejected.
func extractZip(archivePath, dest string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", model.ErrExtraction, filepath.Base(archivePath), err)
	}
	defer r.Close()

	root := filepath.Clean(dest) + string(os.PathSeparator)
	for _, f := range r.File {
		target := filepath.Join(dest, f.Name)
		if !strings.HasPrefix(target+string(os.PathSeparator), root) {
			return fmt.Errorf("%w: entry %q escapes the extraction directory", model.ErrExtraction, f.Name)
		}

		mode := f.Mode()
		switch {
		case mode.IsDir():
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("%w: %w", model.ErrExtraction, err)
			}
		case mode&os.ModeSymlink != 0:
			// theme bundles are plain files; links could point anywhere
			continue
		default:
			if err := extractFile(f, target); err != nil {
				return fmt.Errorf("%w: %s: %w", model.ErrExtraction, f.Name, err)
			}
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
