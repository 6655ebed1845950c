package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ytget/plymouth-manager/internal/bootdelay"
	"github.com/ytget/plymouth-manager/internal/config"
)

func newDelayCmd(opts *globalOptions) *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "delay SECONDS",
		Short: fmt.Sprintf("Delay the display manager by %d to %d seconds so the splash stays visible", config.MinBootDelaySeconds, config.MaxBootDelaySeconds),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid seconds %q: %w", args[0], err)
			}
			if err := bootdelay.Validate(seconds); err != nil {
				return err
			}
			if printOnly {
				_, err := fmt.Fprint(cmd.OutOrStdout(), bootdelay.Render(seconds))
				return err
			}

			svc, err := opts.services()
			if err != nil {
				return err
			}
			if err := svc.BootDelay.Apply(cmd.Context(), seconds); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svc.BootDelay.Path())
			return err
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the override snippet instead of installing it")
	return cmd
}
