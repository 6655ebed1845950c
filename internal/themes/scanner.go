package themes

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/model"
)

// Scanner lists valid theme bundles under the configured roots
type Scanner struct {
	roots           []string
	descriptorExt   string
	imageExts       []string
	requireGraphics bool
	isProtected     func(string) bool
}

// NewScanner creates a scanner from the process configuration
func NewScanner(cfg config.Config) *Scanner {
	return &Scanner{
		roots:           cfg.Roots(),
		descriptorExt:   cfg.DescriptorExt,
		imageExts:       cfg.ImageExts,
		requireGraphics: cfg.RequireGraphics,
		isProtected:     cfg.IsProtected,
	}
}

// Roots returns the directories the scanner walks, in priority order
func (s *Scanner) Roots() []string {
	return s.roots
}

// List returns every valid theme sorted by identifier, case-insensitively.
// Unreadable roots and bundles are skipped; this never fails.
func (s *Scanner) List() []model.Theme {
	return s.ListContext(context.Background())
}

// ListContext is List with a logger-carrying context
func (s *Scanner) ListContext(ctx context.Context) []model.Theme {
	log := pslog.Ctx(ctx)
	seen := make(map[string]struct{})
	themes := []model.Theme{}

	for _, root := range s.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			log.Debug("skip theme root", "root", root, "err", err)
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if s.isProtected(name) {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			if !dirEntryIsDir(root, e) {
				continue
			}
			theme, ok := s.inspect(ctx, filepath.Join(root, name))
			if !ok {
				continue
			}
			seen[name] = struct{}{}
			themes = append(themes, theme)
		}
	}

	// roots are walked in priority order, so a stable sort keeps ties deterministic
	sort.SliceStable(themes, func(i, j int) bool {
		return strings.ToLower(themes[i].ID) < strings.ToLower(themes[j].ID)
	})
	return themes
}

// Find returns the listed theme with the given identifier
func (s *Scanner) Find(id string) (model.Theme, bool) {
	for _, t := range s.List() {
		if t.ID == id {
			return t, true
		}
	}
	return model.Theme{}, false
}

// inspect validates one candidate bundle directory, one level deep
func (s *Scanner) inspect(ctx context.Context, dir string) (model.Theme, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		pslog.Ctx(ctx).Debug("skip unreadable theme", "dir", dir, "err", err)
		return model.Theme{}, false
	}

	theme := model.Theme{ID: filepath.Base(dir), Dir: dir}
	if name, ok := pickDescriptor(entries, theme.ID, s.descriptorExt); ok {
		theme.HasDescriptor = true
		theme.Descriptor = filepath.Join(dir, name)
	}
	for _, e := range entries {
		if !e.IsDir() && s.isImage(e.Name()) {
			theme.HasGraphics = true
			break
		}
	}

	if !theme.HasDescriptor {
		return model.Theme{}, false
	}
	if s.requireGraphics && !theme.HasGraphics {
		return model.Theme{}, false
	}
	return theme, true
}

// FindDescriptor returns the descriptor file of the bundle in dir: <id><ext>
// when present, otherwise the first file ending in ext in lexical order
func FindDescriptor(dir, ext string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	name, ok := pickDescriptor(entries, filepath.Base(dir), ext)
	if !ok {
		return "", false
	}
	return filepath.Join(dir, name), true
}

func pickDescriptor(entries []os.DirEntry, id, ext string) (string, bool) {
	first := ""
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		if e.Name() == id+ext {
			return e.Name(), true
		}
		if first == "" {
			first = e.Name()
		}
	}
	return first, first != ""
}

func (s *Scanner) isImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, img := range s.imageExts {
		if ext == strings.ToLower(img) {
			return true
		}
	}
	return false
}

// dirEntryIsDir returns true for real directories and for symlinks that point to directories
func dirEntryIsDir(parent string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(parent, e.Name()))
	if err != nil {
		return false
	}
	return fi.IsDir()
}
