package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/widgetic/apidocs/internal/document"
	"github.com/widgetic/apidocs/pkg/codesample"
)

func newGenSamplesCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "gen-samples",
		Short: "Write x-codeSamples for every operation of the published document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(a.cfg.Target)
			if err != nil {
				return fmt.Errorf("loading %s: %w", a.cfg.Target, err)
			}

			gen, err := codesample.New(codesample.Options{
				BaseURL: a.cfg.Samples.BaseURL,
				Token:   a.cfg.Samples.Token,
			})
			if err != nil {
				return err
			}

			count, err := gen.Apply(doc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				_, _ = fmt.Fprintf(out, "would generate samples for %d operations\n", count)
				return nil
			}

			if err := doc.Save(a.cfg.Target); err != nil {
				return fmt.Errorf("writing %s: %w", a.cfg.Target, err)
			}
			_, _ = fmt.Fprintf(out, "generated samples for %d operations in %s\n", count, a.cfg.Target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report the operation count without writing")
	return cmd
}
