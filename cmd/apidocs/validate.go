package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/widgetic/apidocs/internal/files"
	"github.com/widgetic/apidocs/internal/specsync"
)

func newValidateCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the published document and print its endpoint summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.cfg.Target
			}

			content, err := files.ReadFileOrURL(cmd.Context(), file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}

			doc, err := specsync.LoadOpenAPI(content)
			if err != nil {
				return fmt.Errorf("loading %s: %w", file, err)
			}
			if err := doc.Validate(cmd.Context()); err != nil {
				return fmt.Errorf("validating %s: %w", file, err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s is valid\n", file)
			specsync.NewSummary(doc).Write(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "document path or URL to validate (default: configured target)")
	return cmd
}
