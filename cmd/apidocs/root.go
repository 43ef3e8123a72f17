package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/widgetic/apidocs/internal/config"
	"github.com/widgetic/apidocs/internal/files"
)

// app holds the state shared by the subcommands.
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "apidocs",
		Short:         "Documentation site toolchain for the Widgetic API",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultConfigFile, "configuration file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newSyncCmd(a),
		newCheckDriftCmd(a),
		newGenSamplesCmd(a),
		newCheckLinksCmd(a),
		newValidateCmd(a),
		newServeCmd(a),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.SlogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Debug("configuration loaded", "config", a.configPath, "target", cfg.Target)
	return nil
}

// source is decided once: the remote URL wins over the local path.
func (a *app) source() files.Source {
	return files.NewSource(a.cfg.Source.Path, a.cfg.Source.URL, a.cfg.Source.Timeout)
}

// targetExists reports whether the published document is present.
func (a *app) targetExists() bool {
	_, err := os.Stat(a.cfg.Target)
	return err == nil
}
