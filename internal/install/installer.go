package install

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/model"
	"github.com/ytget/plymouth-manager/internal/platform"
)

// ScratchPrefix names the per-install extraction directory
const ScratchPrefix = "plymouth-manager-"

// Installer copies theme bundles from archives into the install root
type Installer struct {
	root          string
	descriptorExt string
	imageExts     []string
	scratchDir    string
	isProtected   func(string) bool
	runner        platform.Runner
}

// NewInstaller creates an installer that performs privileged steps through runner
func NewInstaller(cfg config.Config, runner platform.Runner) *Installer {
	scratch := cfg.ScratchDir
	if scratch == "" {
		scratch = os.TempDir()
	}
	return &Installer{
		root:          cfg.InstallRoot,
		descriptorExt: cfg.DescriptorExt,
		imageExts:     cfg.ImageExts,
		scratchDir:    scratch,
		isProtected:   cfg.IsProtected,
		runner:        runner,
	}
}

// InstallFromArchive installs the bundle inside archivePath and deletes the
// archive afterwards, whatever the outcome. Use it for downloaded files.
func (i *Installer) InstallFromArchive(ctx context.Context, archivePath string) (model.Theme, error) {
	return i.install(ctx, archivePath, true)
}

// ImportArchive installs the bundle inside a user-selected archive and leaves
// the archive in place.
func (i *Installer) ImportArchive(ctx context.Context, archivePath string) (model.Theme, error) {
	return i.install(ctx, archivePath, false)
}

func (i *Installer) install(ctx context.Context, archivePath string, removeArchive bool) (model.Theme, error) {
	log := pslog.Ctx(ctx).With("archive", archivePath)

	scratch := filepath.Join(i.scratchDir, ScratchPrefix+generateScratchID())
	if err := os.MkdirAll(scratch, 0o700); err != nil {
		return model.Theme{}, fmt.Errorf("%w: create scratch dir: %w", model.ErrExtraction, err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			log.Warn("remove scratch dir", "dir", scratch, "err", err)
		}
		if removeArchive {
			if err := os.Remove(archivePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
				log.Warn("remove archive", "err", err)
			}
		}
	}()

	if err := extractZip(archivePath, scratch); err != nil {
		return model.Theme{}, err
	}

	bundle, descriptor, err := findBundle(scratch, i.descriptorExt)
	if err != nil {
		log.Warn("archive has no theme descriptor")
		return model.Theme{}, err
	}

	id := strings.TrimSuffix(filepath.Base(descriptor), i.descriptorExt)
	if err := model.ValidateThemeID(id); err != nil {
		return model.Theme{}, err
	}
	if i.isProtected(id) {
		return model.Theme{}, fmt.Errorf("%w: %s", model.ErrProtectedTheme, id)
	}

	dest := filepath.Join(i.root, id)
	log = log.With("theme", id, "dest", dest)

	// remove first so a reinstall replaces the bundle instead of merging into it
	if err := i.runner.Run(ctx, "rm", "-rf", "--", dest); err != nil {
		return model.Theme{}, fmt.Errorf("clear %s: %w", dest, err)
	}
	if err := i.runner.Run(ctx, "mkdir", "-p", "--", dest); err != nil {
		return model.Theme{}, fmt.Errorf("create %s: %w", dest, err)
	}
	if err := i.runner.Run(ctx, "cp", "-r", "--", bundle+string(os.PathSeparator)+".", dest); err != nil {
		return model.Theme{}, fmt.Errorf("copy bundle to %s: %w", dest, err)
	}
	log.Info("theme installed")

	return model.Theme{
		ID:            id,
		Dir:           dest,
		Descriptor:    filepath.Join(dest, filepath.Base(descriptor)),
		HasDescriptor: true,
		HasGraphics:   hasImage(bundle, i.imageExts),
	}, nil
}

// Owns reports whether t lives directly under the install root, the only
// root Remove touches
func (i *Installer) Owns(t model.Theme) bool {
	return t.Dir != "" && filepath.Dir(filepath.Clean(t.Dir)) == filepath.Clean(i.root)
}

// Remove deletes a theme bundle from the install root
func (i *Installer) Remove(ctx context.Context, id string) error {
	if err := model.ValidateThemeID(id); err != nil {
		return err
	}
	if i.isProtected(id) {
		return fmt.Errorf("%w: %s", model.ErrProtectedTheme, id)
	}
	dest := filepath.Join(i.root, id)
	if _, err := os.Stat(dest); err != nil {
		return fmt.Errorf("%w: %s", model.ErrThemeNotFound, id)
	}
	if err := i.runner.Run(ctx, "rm", "-rf", "--", dest); err != nil {
		return fmt.Errorf("remove %s: %w", dest, err)
	}
	pslog.Ctx(ctx).Info("theme removed", "theme", id)
	return nil
}

// findBundle returns the first directory, in lexical walk order, that directly
// contains a descriptor file, together with that descriptor's path
func findBundle(root, ext string) (string, string, error) {
	var bundle, descriptor string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
				bundle = path
				descriptor = filepath.Join(path, e.Name())
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", model.ErrExtraction, err)
	}
	if bundle == "" {
		return "", "", model.ErrDescriptorNotFound
	}
	return bundle, descriptor, nil
}

func hasImage(dir string, exts []string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, img := range exts {
			if ext == strings.ToLower(img) {
				return true
			}
		}
	}
	return false
}

// generateScratchID returns a time-ordered unique suffix using UUID v7
func generateScratchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
