package core

import (
	"github.com/ytget/plymouth-manager/internal/activate"
	"github.com/ytget/plymouth-manager/internal/bootdelay"
	"github.com/ytget/plymouth-manager/internal/catalog"
	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/download"
	"github.com/ytget/plymouth-manager/internal/install"
	"github.com/ytget/plymouth-manager/internal/platform"
	"github.com/ytget/plymouth-manager/internal/themes"
)

// Services bundles every component built from one Config
type Services struct {
	Config    config.Config
	Runner    platform.Runner
	Scanner   *themes.Scanner
	Installer *install.Installer
	Activator *activate.Activator
	Catalog   *catalog.Client
	Fetcher   *download.Fetcher
	Downloads *download.Service
	BootDelay *bootdelay.Configurator
}

// NewRunner returns the runner for privileged steps. direct skips the
// elevation helper, for callers that already run as root or under sudo.
func NewRunner(cfg config.Config, direct bool) platform.Runner {
	if direct {
		return platform.NewDirectRunner()
	}
	return platform.NewElevatedRunner(cfg.Elevation.Helper)
}

// New builds the services for cfg; privileged steps go through runner
func New(cfg config.Config, runner platform.Runner) Services {
	installer := install.NewInstaller(cfg, runner)
	fetcher := download.NewFetcher(cfg.ScratchDir)
	return Services{
		Config:    cfg,
		Runner:    runner,
		Scanner:   themes.NewScanner(cfg),
		Installer: installer,
		Activator: activate.NewActivator(cfg, runner),
		Catalog:   catalog.NewClient(cfg.Search),
		Fetcher:   fetcher,
		Downloads: download.NewService(fetcher, installer),
		BootDelay: bootdelay.NewConfigurator(cfg, runner),
	}
}
