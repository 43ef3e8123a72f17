package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/widgetic/apidocs/internal/specsync"
)

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Copy the OpenAPI document from the API repository or OPENAPI_SOURCE_URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := specsync.Sync(cmd.Context(), specsync.Options{
				Source: a.source(),
				Target: a.cfg.Target,
				Hint:   a.cfg.Source.Hint,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Written {
				_, _ = fmt.Fprintf(out, "synced %s -> %s\n", res.Source, res.Target)
			} else {
				_, _ = fmt.Fprintf(out, "%s is up to date\n", res.Target)
			}

			if res.Summary != nil {
				res.Summary.Write(out)
			}
			return nil
		},
	}
}
