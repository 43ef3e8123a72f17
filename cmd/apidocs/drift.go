package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/widgetic/apidocs/internal/drift"
)

func newCheckDriftCmd(a *app) *cobra.Command {
	var strictOrder bool

	cmd := &cobra.Command{
		Use:   "check-drift",
		Short: "Fail when the published document differs from the source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := drift.Check(cmd.Context(), drift.Options{
				Source:      a.source(),
				Target:      a.cfg.Target,
				Ignore:      a.cfg.Drift.Ignore,
				StrictOrder: strictOrder,
			})

			out := cmd.OutOrStdout()
			if errors.Is(err, drift.ErrDriftDetected) && res != nil {
				_, _ = fmt.Fprintln(out, "differences:")
				for _, pointer := range res.Differences {
					_, _ = fmt.Fprintf(out, "  %s\n", pointer)
				}
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "%s is in sync\n", a.cfg.Target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strictOrder, "strict-order", false, "treat object key order as significant")
	return cmd
}
