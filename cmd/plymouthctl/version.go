package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			module := "github.com/ytget/plymouth-manager"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
				module = info.Main.Path
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", module, version)
			return err
		},
	}
}
