package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"
	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/core"
	"github.com/ytget/plymouth-manager/internal/platform"
	"github.com/ytget/plymouth-manager/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.plymouth-manager"
	AppName = "Plymouth Manager"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config.yaml")
	direct := pflag.Bool("direct", false, "run privileged commands without the elevation helper")
	pflag.Parse()

	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx, cancel := context.WithCancel(pslog.ContextWithLogger(context.Background(), logger))
	defer cancel()
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	logger.Info("starting", "app", AppName, "version", version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("load config failed", "error", err)
		os.Exit(1)
	}
	if err := platform.CreateDirectoryIfNotExists(cfg.ScratchDir); err != nil {
		logger.Warn("scratch dir unavailable", "dir", cfg.ScratchDir, "error", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	services := core.New(cfg, core.NewRunner(cfg, *direct))
	root := ui.NewRootUI(ctx, myWindow, myApp, services)
	root.Start()

	myWindow.ShowAndRun()
}
