package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "buttonkit",
		Short:         "buttonkit builds button styles and theme files from design tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to buttonkit.yaml or buttonkit.toml")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newVarsCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
