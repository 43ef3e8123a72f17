package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/widgetic/apidocs/internal/linkcheck"
)

func newCheckLinksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-links",
		Short: "Verify that internal documentation links resolve to files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := linkcheck.Check(linkcheck.Options{
				Root:      a.cfg.Links.Root,
				Folders:   a.cfg.Links.Folders,
				Extension: a.cfg.Links.Extension,
			})
			if report == nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "checked %d links in %d files, %d broken\n", report.Links, report.Files, len(report.Broken))
			return err
		},
	}
}
