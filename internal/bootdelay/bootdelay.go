package bootdelay

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/model"
	"github.com/ytget/plymouth-manager/internal/platform"
)

// Configurator manages the display manager override snippet
type Configurator struct {
	dir     string
	file    string
	reload  []string
	tempDir string
	runner  platform.Runner
}

// NewConfigurator creates a configurator from the process configuration
func NewConfigurator(cfg config.Config, runner platform.Runner) *Configurator {
	return &Configurator{
		dir:     cfg.BootDelay.Dir,
		file:    cfg.BootDelay.File,
		reload:  cfg.BootDelay.ReloadCommand,
		tempDir: cfg.ScratchDir,
		runner:  runner,
	}
}

// Render returns the drop-in content for a delay of seconds
func Render(seconds int) string {
	return fmt.Sprintf("[Service]\nExecStartPre=/bin/sleep %d\n", seconds)
}

// Validate rejects delays outside [0, 20] seconds
func Validate(seconds int) error {
	if seconds < config.MinBootDelaySeconds || seconds > config.MaxBootDelaySeconds {
		return fmt.Errorf("%w: %d not in [%d,%d]", model.ErrInvalidDelay, seconds, config.MinBootDelaySeconds, config.MaxBootDelaySeconds)
	}
	return nil
}

// Path returns where the drop-in is installed
func (c *Configurator) Path() string {
	return filepath.Join(c.dir, c.file)
}

// Apply installs a drop-in sleeping seconds (0-20) and reloads systemd.
// Partial state is not cleaned up if a later step fails.
func (c *Configurator) Apply(ctx context.Context, seconds int) error {
	if err := Validate(seconds); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.tempDir, "plymouth-delay-*.conf")
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrConfigWrite, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(Render(seconds)); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", model.ErrConfigWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrConfigWrite, err)
	}

	if err := c.runner.Run(ctx, "mkdir", "-p", "--", c.dir); err != nil {
		return fmt.Errorf("%w: create %s: %w", model.ErrConfigWrite, c.dir, err)
	}
	// install(1) moves the content into place with a fixed, world-readable mode
	if err := c.runner.Run(ctx, "install", "-m", "0644", "--", tmp.Name(), c.Path()); err != nil {
		return fmt.Errorf("%w: place %s: %w", model.ErrConfigWrite, c.Path(), err)
	}
	if len(c.reload) > 0 {
		if err := c.runner.Run(ctx, c.reload[0], c.reload[1:]...); err != nil {
			return fmt.Errorf("reload service manager: %w", err)
		}
	}
	pslog.Ctx(ctx).Info("boot delay applied", "seconds", seconds, "path", c.Path())
	return nil
}
