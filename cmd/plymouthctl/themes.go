package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services()
			if err != nil {
				return err
			}
			current := svc.Activator.Current()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range svc.Scanner.ListContext(cmd.Context()) {
				marker := " "
				if t.ID == current {
					marker = "*"
				}
				notes := ""
				if !t.HasGraphics {
					notes = "no images"
				}
				fmt.Fprintf(tw, "%s %s\t%s\t%s\n", marker, t.ID, t.Dir, notes)
			}
			return tw.Flush()
		},
	}
}

func newCurrentCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services()
			if err != nil {
				return err
			}
			current := svc.Activator.Current()
			if current == "" {
				current = "none"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), current)
			return err
		},
	}
}

func newApplyCmd(opts *globalOptions) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "apply THEME",
		Short: "Make THEME the default boot splash and rebuild the initramfs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services()
			if err != nil {
				return err
			}
			id := args[0]
			if dryRun {
				descriptor, err := svc.Activator.Resolve(id)
				if err != nil {
					return err
				}
				for _, step := range svc.Activator.Plan(descriptor) {
					fmt.Fprintln(cmd.OutOrStdout(), step.String())
				}
				return nil
			}
			if err := svc.Activator.Apply(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", id)
			return err
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the commands instead of running them")
	return cmd
}

func newInstallCmd(opts *globalOptions) *cobra.Command {
	var apply bool
	cmd := &cobra.Command{
		Use:   "install ARCHIVE.zip",
		Short: "Install a theme from a local ZIP archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services()
			if err != nil {
				return err
			}
			installed, err := svc.Installer.ImportArchive(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "installed %s into %s\n", installed.ID, installed.Dir)
			if !apply {
				return nil
			}
			if err := svc.Activator.Apply(cmd.Context(), installed.ID); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", installed.ID)
			return err
		},
	}
	cmd.Flags().BoolVar(&apply, "apply", false, "apply the theme after installing it")
	return cmd
}

func newRemoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove THEME",
		Short: "Delete an installed theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services()
			if err != nil {
				return err
			}
			if err := svc.Installer.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return err
		},
	}
}
