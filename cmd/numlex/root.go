package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	logger     *slog.Logger
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "numlex",
		Short:         "Parse and write integers and floats under a configurable number-format grammar",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(verbose)
			if err := loadCustomPresets(configPath); err != nil {
				return err
			}
			if configPath != "" {
				logger.Info("loaded custom format presets", "path", configPath)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML file of custom format presets")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-line parse failures")

	root.AddCommand(
		newParseIntCommand(),
		newParseFloatCommand(),
		newWriteIntCommand(),
		newWriteFloatCommand(),
	)
	return root
}
