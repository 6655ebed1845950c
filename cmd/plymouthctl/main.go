package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/core"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	root := newRootCmd()
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("plymouthctl command failed")
		return 1
	}
	return 0
}

// globalOptions holds the persistent flags every subcommand shares
type globalOptions struct {
	configPath string
	lenient    bool
	direct     bool
}

// services loads configuration and builds the theme services
func (o *globalOptions) services() (core.Services, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return core.Services{}, err
	}
	if o.lenient {
		cfg.Activation.Policy = config.PolicyLenient
	}
	return core.New(cfg, core.NewRunner(cfg, o.direct)), nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "plymouthctl",
		Short:         "Manage Plymouth boot splash themes",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config.yaml")
	root.PersistentFlags().BoolVar(&opts.lenient, "lenient", false, "keep applying after a failed activation step")
	root.PersistentFlags().BoolVar(&opts.direct, "direct", false, "run privileged commands without the elevation helper")

	root.AddCommand(newListCmd(opts))
	root.AddCommand(newCurrentCmd(opts))
	root.AddCommand(newApplyCmd(opts))
	root.AddCommand(newInstallCmd(opts))
	root.AddCommand(newRemoveCmd(opts))
	root.AddCommand(newSearchCmd(opts))
	root.AddCommand(newGetCmd(opts))
	root.AddCommand(newDelayCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}
