package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ytget/plymouth-manager/internal/model"
)

func newSearchCmd(opts *globalOptions) *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "search [QUERY...]",
		Short: "Search the online theme catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services()
			if err != nil {
				return err
			}

			var entries []model.CatalogEntry
			if local {
				entries = svc.Catalog.Local(cmd.Context())
			} else {
				entries, err = svc.Catalog.SearchResult(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Name, e.Author, e.Stars, e.ArchiveURL)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "read the configured local index instead of the remote catalog")
	return cmd
}

func newGetCmd(opts *globalOptions) *cobra.Command {
	var apply bool
	cmd := &cobra.Command{
		Use:   "get URL",
		Short: "Download a theme archive and install it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services()
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			path, err := svc.Fetcher.Download(cmd.Context(), args[0], func(p model.Progress) {
				fmt.Fprintf(stderr, "\r%3d%%  %s / %s  %s   ", p.Percent(),
					humanize.Bytes(uint64(p.Done)), humanize.Bytes(uint64(p.Total)), p.Throughput)
			})
			fmt.Fprintln(stderr)
			if err != nil {
				return err
			}

			installed, err := svc.Installer.InstallFromArchive(cmd.Context(), path)
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
