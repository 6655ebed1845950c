package model

import (
	"fmt"
	"strings"
)

// Theme describes one installed boot-splash theme bundle found on disk
type Theme struct {
	ID            string // directory name, equal to the descriptor base name for well-formed bundles
	Dir           string // absolute path of the bundle directory
	Descriptor    string // absolute path of the first *.plymouth file inside Dir
	HasDescriptor bool
	HasGraphics   bool // at least one raster or vector image inside Dir
}

// CatalogEntry is one theme repository returned by a remote or local catalog
type CatalogEntry struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	ArchiveURL  string `json:"download"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars,omitempty"`
}

// Progress is a download progress sample handed to UI indicators
type Progress struct {
	Fraction   float64 // 0.0 to 1.0
	Throughput string  // human readable, e.g. "1.2 MB/s"
	Done       int64
	Total      int64
}

// Percent returns Fraction as a whole percentage
func (p Progress) Percent() int {
	return int(p.Fraction * 100)
}

// ValidateThemeID rejects identifiers that cannot name a directory directly
// under a theme root
func ValidateThemeID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || strings.HasPrefix(id, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidThemeID, id)
	}
	return nil
}
